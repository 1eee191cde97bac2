package routes

import (
	"abstract-review-web/controllers"
	"abstract-review-web/middleware"
	"abstract-review-web/session"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// Public pages
	router.GET("/", controllers.Home)
	router.GET("/submit", controllers.ShowSubmitForm)
	router.POST("/submit", controllers.SubmitAbstract)
	router.GET("/status/:token", controllers.ShowStatus)
	router.GET("/published", controllers.Published)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Research Forum front end is running",
		})
	})

	// Reviewer workflow
	reviewer := router.Group("/reviewer")
	{
		reviewer.GET("/login", controllers.ShowReviewerLogin)
		reviewer.POST("/login", controllers.ReviewerLogin)

		gated := reviewer.Group("")
		gated.Use(middleware.RequireSession(session.RoleReviewer, "/reviewer/login"))
		{
			gated.GET("", controllers.ReviewerDashboard)
			gated.GET("/review/:id", controllers.ShowReviewForm)
			gated.POST("/review/:id", controllers.SubmitReview)
			gated.POST("/logout", controllers.ReviewerLogout)
		}
	}

	// Admin workflow
	admin := router.Group("/admin")
	{
		admin.GET("/login", controllers.ShowAdminLogin)
		admin.POST("/login", controllers.AdminLogin)

		gated := admin.Group("")
		gated.Use(middleware.RequireSession(session.RoleAdmin, "/admin/login"))
		{
			gated.GET("", controllers.AdminDashboard)
			gated.POST("/logout", controllers.AdminLogout)

			gated.POST("/abstracts/:id/accept", controllers.AcceptAbstract)
			gated.POST("/abstracts/:id/reject", controllers.RejectAbstract)
			gated.POST("/abstracts/:id/resend-acceptance", controllers.ResendAcceptance)
			gated.GET("/abstracts/:id/edit", controllers.ShowEditAbstract)
			gated.POST("/abstracts/:id/edit", controllers.UpdateAbstract)

			gated.POST("/reviewers/:id/assignment", controllers.ToggleAssignment)
			gated.POST("/reviewers/:id/assignments/clear", controllers.ClearAssignments)
			gated.GET("/reviewers/:id/delete", controllers.ConfirmDeleteReviewer)
			gated.POST("/reviewers/:id/delete", controllers.DeleteReviewer)
			gated.POST("/reviewers/randomize", controllers.RandomizeAssignments)
		}
	}
}
