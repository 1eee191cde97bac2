// controllers/admin_auth.go - admin login/logout
package controllers

import (
	"net/http"

	"abstract-review-web/api"
	"abstract-review-web/config"
	"abstract-review-web/middleware"
	"abstract-review-web/session"
	"abstract-review-web/utils"

	"github.com/gin-gonic/gin"
)

// ShowAdminLogin renders the admin login form.
func ShowAdminLogin(c *gin.Context) {
	data := pageData(c, "Admin Login")
	data["Email"] = ""
	c.HTML(http.StatusOK, "admin_login", data)
}

// AdminLogin exchanges credentials for a backend bearer token and caches it
// in the session store.
func AdminLogin(c *gin.Context) {
	email := utils.SanitizeInput(c.PostForm("email"))
	password := c.PostForm("password")

	renderError := func(message string) {
		data := pageData(c, "Admin Login")
		data["FlashError"] = message
		data["Email"] = email
		c.HTML(http.StatusOK, "admin_login", data)
	}

	if !utils.ValidateEmail(email) || password == "" {
		renderError("A valid email and password are required")
		return
	}

	result, err := config.Backend.AdminLogin(c.Request.Context(), email, password)
	if err != nil {
		renderError(api.ErrorMessage(err))
		return
	}

	sess, err := config.Sessions.Create(session.RoleAdmin, result.Token, result.Admin)
	if err != nil {
		renderError("Could not store the login session")
		return
	}

	middleware.SetSessionCookie(c, sess.ID)
	c.Redirect(http.StatusSeeOther, "/admin")
}

// AdminLogout clears the cached session and cookie.
func AdminLogout(c *gin.Context) {
	if sess := middleware.SessionFrom(c); sess != nil {
		_ = config.Sessions.Delete(sess.ID)
		dashboards.invalidate(sess.ID)
	}
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/admin/login")
}
