// api/abstracts.go - public abstract endpoints
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"abstract-review-web/models"
)

// PDFUpload describes the optional attachment of a submission. Size and
// content type come from the browser's multipart part; validation happens
// before this struct is ever built.
type PDFUpload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// SubmissionResult is what the backend reports for a stored submission.
type SubmissionResult struct {
	TrackingToken string `json:"trackingToken,omitempty"`
	Message       string
}

// SubmitAbstract posts the submission as a multipart payload. The multipart
// boundary comes from the writer itself; setting it by hand would
// desynchronize header and body.
func (c *Client) SubmitAbstract(ctx context.Context, sub models.Submission, pdf *PDFUpload) (*SubmissionResult, error) {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	fields := map[string]string{
		"title":           sub.Title,
		"firstName":       sub.Author.FirstName,
		"lastName":        sub.Author.LastName,
		"degree":          sub.Author.Degree,
		"email":           sub.Author.Email,
		"department":      sub.Department,
		"departmentOther": sub.DepartmentOther,
		"category":        sub.Category,
		"keywords":        sub.Keywords,
		"background":      sub.Content.Background,
		"methods":         sub.Content.Methods,
		"results":         sub.Content.Results,
		"conclusion":      sub.Content.Conclusion,
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", name, err)
		}
	}

	if len(sub.AdditionalAuthors) > 0 {
		encoded, err := json.Marshal(sub.AdditionalAuthors)
		if err != nil {
			return nil, fmt.Errorf("encode additional authors: %w", err)
		}
		if err := form.WriteField("additionalAuthors", string(encoded)); err != nil {
			return nil, err
		}
	}

	if pdf != nil {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="pdf"; filename=%q`, pdf.Filename)}
		header["Content-Type"] = []string{pdf.ContentType}
		part, err := form.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("create pdf part: %w", err)
		}
		if _, err := io.Copy(part, pdf.Reader); err != nil {
			return nil, fmt.Errorf("copy pdf: %w", err)
		}
	}

	if err := form.Close(); err != nil {
		return nil, err
	}

	env, err := c.do(ctx, http.MethodPost, "/api/abstracts/submit", "", body, form.FormDataContentType())
	if err != nil {
		return nil, err
	}

	result := &SubmissionResult{Message: env.Message}
	if len(env.Data) > 0 {
		if err := env.DecodeData(result); err != nil {
			return nil, err
		}
		if result.Message == "" {
			result.Message = env.Message
		}
	}
	return result, nil
}

// PublishedAbstracts lists the accepted abstracts visible on the public
// showcase page.
func (c *Client) PublishedAbstracts(ctx context.Context) ([]models.Abstract, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/abstracts/published", "", nil, "")
	if err != nil {
		return nil, err
	}
	var list []models.Abstract
	if err := env.DecodeData(&list); err != nil {
		return nil, err
	}
	return list, nil
}

// AbstractByToken fetches one submission by its opaque tracking token.
func (c *Client) AbstractByToken(ctx context.Context, token string) (*models.Abstract, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/abstracts/view/"+url.PathEscape(token), "", nil, "")
	if err != nil {
		return nil, err
	}
	var abstract models.Abstract
	if err := env.DecodeData(&abstract); err != nil {
		return nil, err
	}
	return &abstract, nil
}
