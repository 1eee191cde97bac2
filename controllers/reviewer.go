// controllers/reviewer.go - reviewer login, dashboard and review submission
package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"abstract-review-web/api"
	"abstract-review-web/config"
	"abstract-review-web/middleware"
	"abstract-review-web/models"
	"abstract-review-web/session"
	"abstract-review-web/utils"

	"github.com/gin-gonic/gin"
)

// ShowReviewerLogin renders the reviewer login form.
func ShowReviewerLogin(c *gin.Context) {
	data := pageData(c, "Reviewer Login")
	data["Name"] = ""
	data["Email"] = ""
	c.HTML(http.StatusOK, "reviewer_login", data)
}

// ReviewerLogin posts name+email+password to the backend. Any {name, email}
// pair with the shared reviewer password is an implicit upsert; first use
// provisions the account server-side.
func ReviewerLogin(c *gin.Context) {
	name := utils.SanitizeInput(c.PostForm("name"))
	email := utils.SanitizeInput(c.PostForm("email"))
	password := c.PostForm("password")

	renderError := func(message string) {
		data := pageData(c, "Reviewer Login")
		data["FlashError"] = message
		data["Name"] = name
		data["Email"] = email
		c.HTML(http.StatusOK, "reviewer_login", data)
	}

	if name == "" || !utils.ValidateEmail(email) || password == "" {
		renderError("Name, a valid email and the reviewer password are required")
		return
	}

	result, err := config.Backend.ReviewerLogin(c.Request.Context(), name, email, password)
	if err != nil {
		renderError(api.ErrorMessage(err))
		return
	}

	sess, err := config.Sessions.Create(session.RoleReviewer, result.Token, result.Reviewer)
	if err != nil {
		renderError("Could not store the login session")
		return
	}

	middleware.SetSessionCookie(c, sess.ID)
	c.Redirect(http.StatusSeeOther, "/reviewer")
}

// ReviewerLogout clears the cached session and returns to the login page.
func ReviewerLogout(c *gin.Context) {
	if sess := middleware.SessionFrom(c); sess != nil {
		_ = config.Sessions.Delete(sess.ID)
	}
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/reviewer/login")
}

// ReviewerDashboard lists the reviewer's visible abstracts. The backend has
// already narrowed the set by assignment mode; the all/pending/reviewed
// filter is a purely local predicate over the fetched list.
func ReviewerDashboard(c *gin.Context) {
	token := middleware.TokenFrom(c)
	filter := c.DefaultQuery("filter", models.ReviewFilterAll)

	data := pageData(c, "Review Dashboard")
	data["Filter"] = filter

	var reviewer models.Reviewer
	if sess := middleware.SessionFrom(c); sess != nil {
		_ = sess.DecodeProfile(&reviewer)
	}
	data["Reviewer"] = reviewer

	list, err := config.Backend.ReviewerAbstracts(c.Request.Context(), token)
	if err != nil {
		data["FlashError"] = api.ErrorMessage(err)
		data["Total"] = 0
		data["Abstracts"] = []models.Abstract{}
		c.HTML(http.StatusOK, "reviewer_dashboard", data)
		return
	}

	data["Total"] = len(list)
	data["Abstracts"] = models.FilterByReview(list, filter)
	c.HTML(http.StatusOK, "reviewer_dashboard", data)
}

// ShowReviewForm renders the score+comments form for one assigned abstract.
// Once the backend reports hasReviewed, the form renders disabled; the
// backend is the actual enforcement point for the one-review rule.
func ShowReviewForm(c *gin.Context) {
	token := middleware.TokenFrom(c)
	id := c.Param("id")

	list, err := config.Backend.ReviewerAbstracts(c.Request.Context(), token)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/reviewer?err="+url.QueryEscape(api.ErrorMessage(err)))
		return
	}

	for i := range list {
		if list[i].ID == id {
			data := pageData(c, "Review Abstract")
			data["Abstract"] = &list[i]
			data["Body"] = list[i].Body()
			data["Score"] = ""
			data["Comments"] = ""
			c.HTML(http.StatusOK, "review_form", data)
			return
		}
	}

	c.Redirect(http.StatusSeeOther, "/reviewer?err="+url.QueryEscape("Abstract not found in your assignments"))
}

// SubmitReview validates the score locally (1-10 inclusive) and posts the
// review. Out-of-range scores never reach the network.
func SubmitReview(c *gin.Context) {
	token := middleware.TokenFrom(c)
	id := c.Param("id")
	comments := c.PostForm("comments")

	renderError := func(message string) {
		data := pageData(c, "Review Abstract")
		data["FlashError"] = message
		data["AbstractID"] = id
		data["Comments"] = comments
		data["Score"] = c.PostForm("score")
		// Keep the abstract on screen while the reviewer corrects the form.
		if list, lErr := config.Backend.ReviewerAbstracts(c.Request.Context(), token); lErr == nil {
			for i := range list {
				if list[i].ID == id {
					data["Abstract"] = &list[i]
					data["Body"] = list[i].Body()
					break
				}
			}
		}
		c.HTML(http.StatusOK, "review_form", data)
	}

	score, err := strconv.Atoi(c.PostForm("score"))
	if err != nil {
		renderError("Score must be a whole number between 1 and 10")
		return
	}
	if err := utils.ValidateScore(score); err != nil {
		renderError(err.Error())
		return
	}

	if err := config.Backend.SubmitReview(c.Request.Context(), token, id, score, comments); err != nil {
		renderError(api.ErrorMessage(err))
		return
	}

	// Confirmation page navigates back to the dashboard after a short delay.
	data := pageData(c, "Review Submitted")
	data["RedirectTo"] = "/reviewer"
	data["RedirectAfter"] = 2
	c.HTML(http.StatusOK, "review_done", data)
}
