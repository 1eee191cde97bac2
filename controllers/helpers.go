package controllers

import (
	"strings"

	"abstract-review-web/models"

	"github.com/gin-gonic/gin"
)

// Department choices offered on the submission and edit forms. "other"
// enables the free-text override.
var Departments = []string{
	"internal_medicine",
	"surgery",
	"pediatrics",
	"obstetrics_gynecology",
	"psychiatry",
	"radiology",
	"pathology",
	"family_medicine",
	"emergency_medicine",
	"other",
}

// Categories the forum accepts.
var Categories = []string{
	"clinical_research",
	"basic_science",
	"case_report",
	"quality_improvement",
	"medical_education",
}

// flash reads the post-redirect banner messages from the query string.
func flash(c *gin.Context) (msg, errMsg string) {
	return c.Query("msg"), c.Query("err")
}

// pageData seeds the common template fields every page shares.
func pageData(c *gin.Context, title string) gin.H {
	msg, errMsg := flash(c)
	return gin.H{
		"Title":       title,
		"Flash":       msg,
		"FlashError":  errMsg,
		"Departments": Departments,
		"Categories":  Categories,
	}
}

// parseAuthors rebuilds the variable-length additional-author rows from the
// parallel form arrays, dropping rows left entirely blank.
func parseAuthors(firsts, lasts, degrees []string) []models.Author {
	n := len(firsts)
	if len(lasts) > n {
		n = len(lasts)
	}
	if len(degrees) > n {
		n = len(degrees)
	}

	at := func(list []string, i int) string {
		if i < len(list) {
			return strings.TrimSpace(list[i])
		}
		return ""
	}

	var authors []models.Author
	for i := 0; i < n; i++ {
		author := models.Author{
			FirstName: at(firsts, i),
			LastName:  at(lasts, i),
			Degree:    at(degrees, i),
		}
		if author.FirstName == "" && author.LastName == "" && author.Degree == "" {
			continue
		}
		authors = append(authors, author)
	}
	return authors
}
