// controllers/admin_abstracts.go - accept/reject, resend email, metadata edit
package controllers

import (
	"net/http"
	"net/url"

	"abstract-review-web/api"
	"abstract-review-web/config"
	"abstract-review-web/middleware"
	"abstract-review-web/models"
	"abstract-review-web/utils"

	"github.com/gin-gonic/gin"
)

func redirectAdmin(c *gin.Context, msg, errMsg string) {
	target := "/admin"
	if msg != "" {
		target += "?msg=" + url.QueryEscape(msg)
	} else if errMsg != "" {
		target += "?err=" + url.QueryEscape(errMsg)
	}
	c.Redirect(http.StatusSeeOther, target)
}

// AcceptAbstract accepts one abstract, then drops the cached list so the
// dashboard re-fetches. The backend may have sent emails and recalculated
// scores; a local patch could not reflect that.
func AcceptAbstract(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if err := config.Backend.AcceptAbstract(c.Request.Context(), middleware.TokenFrom(c), c.Param("id")); err != nil {
		redirectAdmin(c, "", api.ErrorMessage(err))
		return
	}
	dashboards.invalidate(sess.ID)
	redirectAdmin(c, "Abstract accepted", "")
}

// RejectAbstract rejects one abstract; same re-fetch semantics as accept.
func RejectAbstract(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if err := config.Backend.RejectAbstract(c.Request.Context(), middleware.TokenFrom(c), c.Param("id")); err != nil {
		redirectAdmin(c, "", api.ErrorMessage(err))
		return
	}
	dashboards.invalidate(sess.ID)
	redirectAdmin(c, "Abstract rejected", "")
}

// ResendAcceptance asks the backend to re-send the acceptance email.
func ResendAcceptance(c *gin.Context) {
	msg, err := config.Backend.ResendAcceptance(c.Request.Context(), middleware.TokenFrom(c), c.Param("id"))
	if err != nil {
		redirectAdmin(c, "", api.ErrorMessage(err))
		return
	}
	if msg == "" {
		msg = "Acceptance email sent"
	}
	redirectAdmin(c, msg, "")
}

// findAbstract resolves an abstract by ID for the edit form, from the
// session cache when possible, else with a fresh fetch.
func findAbstract(c *gin.Context, id string) (*models.Abstract, error) {
	sess := middleware.SessionFrom(c)

	list, ok := dashboards.get(sess.ID)
	if !ok {
		fetched, err := config.Backend.AdminAbstracts(c.Request.Context(), middleware.TokenFrom(c))
		if err != nil {
			return nil, err
		}
		dashboards.set(sess.ID, fetched)
		list = fetched
	}

	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, nil
}

// ShowEditAbstract renders the metadata edit form: primary author, the
// variable-length additional-author list, department (with the free-text
// override) and category.
func ShowEditAbstract(c *gin.Context) {
	abstract, err := findAbstract(c, c.Param("id"))
	if err != nil {
		redirectAdmin(c, "", api.ErrorMessage(err))
		return
	}
	if abstract == nil {
		redirectAdmin(c, "", "Abstract not found")
		return
	}

	data := pageData(c, "Edit Abstract")
	data["Abstract"] = abstract
	data["Edit"] = models.AbstractEdit{
		Title:             abstract.Title,
		Author:            abstract.Author,
		AdditionalAuthors: abstract.AdditionalAuthors,
		Department:        abstract.Department,
		DepartmentOther:   abstract.DepartmentOther,
		Category:          abstract.Category,
	}
	c.HTML(http.StatusOK, "abstract_edit", data)
}

// UpdateAbstract saves the edit. The backend returns the canonical record,
// which patches the cached list entry in place; this mutation has no
// server-side side effects beyond the edited fields, so no re-fetch.
func UpdateAbstract(c *gin.Context) {
	id := c.Param("id")
	sess := middleware.SessionFrom(c)

	edit := models.AbstractEdit{
		Title: utils.SanitizeInput(c.PostForm("title")),
		Author: models.Author{
			FirstName: utils.SanitizeInput(c.PostForm("firstName")),
			LastName:  utils.SanitizeInput(c.PostForm("lastName")),
			Degree:    utils.SanitizeInput(c.PostForm("degree")),
			Email:     utils.SanitizeInput(c.PostForm("email")),
		},
		AdditionalAuthors: parseAuthors(
			c.PostFormArray("coFirstName"),
			c.PostFormArray("coLastName"),
			c.PostFormArray("coDegree"),
		),
		Department:      c.PostForm("department"),
		DepartmentOther: utils.SanitizeInput(c.PostForm("departmentOther")),
		Category:        c.PostForm("category"),
	}

	renderError := func(message string) {
		data := pageData(c, "Edit Abstract")
		data["FlashError"] = message
		data["AbstractID"] = id
		data["Edit"] = edit
		c.HTML(http.StatusOK, "abstract_edit", data)
	}

	if edit.Title == "" || edit.Author.FirstName == "" || edit.Author.LastName == "" {
		renderError("Title and primary author name are required")
		return
	}
	if edit.Author.Email != "" && !utils.ValidateEmail(edit.Author.Email) {
		renderError("Primary author email is not valid")
		return
	}

	canonical, err := config.Backend.UpdateAbstract(c.Request.Context(), middleware.TokenFrom(c), id, edit)
	if err != nil {
		renderError(api.ErrorMessage(err))
		return
	}

	dashboards.patch(sess.ID, *canonical)
	redirectAdmin(c, "Abstract updated", "")
}
