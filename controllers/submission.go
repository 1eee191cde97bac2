// controllers/submission.go - public abstract submission workflow
package controllers

import (
	"log"
	"net/http"

	"abstract-review-web/api"
	"abstract-review-web/config"
	"abstract-review-web/models"
	"abstract-review-web/utils"

	"github.com/gin-gonic/gin"
)

// ShowSubmitForm renders the empty submission form.
func ShowSubmitForm(c *gin.Context) {
	data := pageData(c, "Submit Abstract")
	data["Form"] = models.Submission{}
	c.HTML(http.StatusOK, "submit", data)
}

// SubmitAbstract validates the posted form locally and, only when every
// check passes, forwards it to the backend as a multipart payload. A failed
// validation never causes a network call and keeps the entered values so
// the author can correct and resubmit.
func SubmitAbstract(c *gin.Context) {
	sub := models.Submission{
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
		Keywords:        utils.SanitizeInput(c.PostForm("keywords")),
		Content: models.AbstractContent{
			Background: c.PostForm("background"),
			Methods:    c.PostForm("methods"),
			Results:    c.PostForm("results"),
			Conclusion: c.PostForm("conclusion"),
		},
	}

	errs := utils.ValidateSubmission(sub)

	var pdf *api.PDFUpload
	file, err := c.FormFile("pdf")
	if err == nil && file != nil && file.Size > 0 {
		contentType := file.Header.Get("Content-Type")
		if vErr := utils.ValidatePDF(contentType, file.Size); vErr != nil {
			errs = append(errs, vErr.Error())
		} else {
			opened, oErr := file.Open()
			if oErr != nil {
				errs = append(errs, "Could not read the attached PDF")
			} else {
				defer opened.Close()
				pdf = &api.PDFUpload{
					Filename:    file.Filename,
					ContentType: contentType,
					Reader:      opened,
				}
			}
		}
	}

	if len(errs) > 0 {
		data := pageData(c, "Submit Abstract")
		data["Form"] = sub
		data["Errors"] = errs
		c.HTML(http.StatusOK, "submit", data)
		return
	}

	result, err := config.Backend.SubmitAbstract(c.Request.Context(), sub, pdf)
	if err != nil {
		data := pageData(c, "Submit Abstract")
		data["Form"] = sub
		data["FlashError"] = api.ErrorMessage(err)
		c.HTML(http.StatusOK, "submit", data)
		return
	}

	if rErr := config.Sessions.SaveReceipt(sub.Title, result.TrackingToken); rErr != nil {
		log.Printf("failed to record submission receipt: %v", rErr)
	}

	data := pageData(c, "Submit Abstract")
	data["Form"] = models.Submission{}
	data["Success"] = true
	if result.Message != "" {
		data["Flash"] = result.Message
	} else {
		data["Flash"] = "Abstract submitted successfully. A confirmation email is on its way."
	}
	c.HTML(http.StatusOK, "submit", data)
}
