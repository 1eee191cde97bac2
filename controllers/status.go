// controllers/status.go - public status lookup and showcase pages
package controllers

import (
	"net/http"

	"abstract-review-web/api"
	"abstract-review-web/config"
	"abstract-review-web/models"

	"github.com/gin-gonic/gin"
)

// Home renders the landing page.
func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home", pageData(c, "Research Forum"))
}

// ShowStatus fetches one submission by tracking token and renders its
// current state, including the author-response block once accepted.
func ShowStatus(c *gin.Context) {
	token := c.Param("token")

	abstract, err := config.Backend.AbstractByToken(c.Request.Context(), token)
	if err != nil {
		data := pageData(c, "Submission Status")
		data["FlashError"] = api.ErrorMessage(err)
		c.HTML(http.StatusOK, "status", data)
		return
	}

	data := pageData(c, "Submission Status")
	data["Abstract"] = abstract
	data["Body"] = abstract.Body()
	c.HTML(http.StatusOK, "status", data)
}

// Published renders the public showcase of accepted abstracts.
func Published(c *gin.Context) {
	data := pageData(c, "Published Abstracts")
	data["Abstracts"] = []models.Abstract{}

	list, err := config.Backend.PublishedAbstracts(c.Request.Context())
	if err != nil {
		data["FlashError"] = api.ErrorMessage(err)
	} else {
		data["Abstracts"] = list
	}
	c.HTML(http.StatusOK, "published", data)
}
