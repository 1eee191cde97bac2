package utils

import (
	"strings"
	"testing"

	"abstract-review-web/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateScore(t *testing.T) {
	assert.Error(t, ValidateScore(0))
	assert.Error(t, ValidateScore(11))
	assert.Error(t, ValidateScore(-3))
	assert.NoError(t, ValidateScore(1))
	assert.NoError(t, ValidateScore(10))
	assert.NoError(t, ValidateScore(5))
}

func TestValidatePDF(t *testing.T) {
	t.Run("size boundary is inclusive", func(t *testing.T) {
		assert.NoError(t, ValidatePDF(PDFMimeType, MaxPDFSize))
		assert.Error(t, ValidatePDF(PDFMimeType, MaxPDFSize+1))
	})

	t.Run("mime type must be exactly application/pdf", func(t *testing.T) {
		assert.Error(t, ValidatePDF("application/msword", 100))
		assert.Error(t, ValidatePDF("application/pdf; charset=binary", 100))
		assert.NoError(t, ValidatePDF("application/pdf", 100))
	})
}

func validSubmission() models.Submission {
	return models.Submission{
		Title: "A study",
		Author: models.Author{
			FirstName: "Grace",
			LastName:  "Hopper",
			Email:     "grace@example.org",
		},
		Department: "surgery",
		Category:   "clinical_research",
		Content: models.AbstractContent{
			Background: "Background text.",
			Methods:    "Methods text.",
			Results:    "Results text.",
			Conclusion: "Conclusion text.",
		},
	}
}

func TestValidateSubmission(t *testing.T) {
	t.Run("valid form passes", func(t *testing.T) {
		assert.Empty(t, ValidateSubmission(validSubmission()))
	})

	t.Run("required fields", func(t *testing.T) {
		sub := validSubmission()
		sub.Title = "  "
		sub.Author.Email = "not-an-email"
		sub.Category = ""
		errs := ValidateSubmission(sub)
		assert.Len(t, errs, 3)
	})

	t.Run("other department needs the free-text override", func(t *testing.T) {
		sub := validSubmission()
		sub.Department = "other"
		assert.NotEmpty(t, ValidateSubmission(sub))

		sub.DepartmentOther = "Sports Medicine"
		assert.Empty(t, ValidateSubmission(sub))
	})

	t.Run("empty body is rejected", func(t *testing.T) {
		sub := validSubmission()
		sub.Content = models.AbstractContent{}
		assert.NotEmpty(t, ValidateSubmission(sub))
	})

	t.Run("word limit counts all sections together", func(t *testing.T) {
		sub := validSubmission()
		sub.Content.Methods = strings.Repeat("word ", MaxAbstractWords)
		assert.NotEmpty(t, ValidateSubmission(sub))
	})
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("a.b+c@example.co"))
	assert.False(t, ValidateEmail("missing-at.example.com"))
	assert.False(t, ValidateEmail(""))
}
