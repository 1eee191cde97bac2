// utils/validator.go - Input validation
package utils

import (
	"fmt"
	"regexp"
	"strings"

	"abstract-review-web/models"
)

const (
	// MaxPDFSize is the inclusive upper bound for an attached PDF.
	MaxPDFSize = 10 << 20 // 10 MiB

	// MaxAbstractWords bounds the combined word count of all body sections.
	MaxAbstractWords = 500

	// PDFMimeType is the only accepted attachment type.
	PDFMimeType = "application/pdf"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// SanitizeInput removes leading/trailing spaces and null bytes.
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	return input
}

// ValidateScore enforces the 1-10 inclusive review score range.
func ValidateScore(score int) error {
	if score < 1 || score > 10 {
		return fmt.Errorf("score must be between 1 and 10")
	}
	return nil
}

// ValidatePDF checks the attachment constraints: exact PDF MIME type and a
// size of at most MaxPDFSize (the boundary itself is allowed).
func ValidatePDF(contentType string, size int64) error {
	if contentType != PDFMimeType {
		return fmt.Errorf("attachment must be a PDF file")
	}
	if size > MaxPDFSize {
		return fmt.Errorf("PDF must be 10 MB or smaller")
	}
	return nil
}

// CountWords counts whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ValidateSubmission runs every local check on a submission form and
// returns the list of problems. An empty result means the form may be sent;
// any entry blocks the network call entirely.
func ValidateSubmission(sub models.Submission) []string {
	var errs []string

	if strings.TrimSpace(sub.Title) == "" {
		errs = append(errs, "Title is required")
	}
	if strings.TrimSpace(sub.Author.FirstName) == "" || strings.TrimSpace(sub.Author.LastName) == "" {
		errs = append(errs, "Primary author name is required")
	}
	if !ValidateEmail(sub.Author.Email) {
		errs = append(errs, "A valid email address is required")
	}
	if strings.TrimSpace(sub.Department) == "" {
		errs = append(errs, "Department is required")
	}
	if sub.Department == "other" && strings.TrimSpace(sub.DepartmentOther) == "" {
		errs = append(errs, "Please specify the department")
	}
	if strings.TrimSpace(sub.Category) == "" {
		errs = append(errs, "Category is required")
	}

	sections := []string{
		sub.Content.Background,
		sub.Content.Methods,
		sub.Content.Results,
		sub.Content.Conclusion,
	}
	total := 0
	empty := true
	for _, section := range sections {
		if strings.TrimSpace(section) != "" {
			empty = false
		}
		total += CountWords(section)
	}
	if empty {
		errs = append(errs, "Abstract body is required")
	} else if total > MaxAbstractWords {
		errs = append(errs, fmt.Sprintf("Abstract must be %d words or fewer (currently %d)", MaxAbstractWords, total))
	}

	return errs
}
