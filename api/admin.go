// api/admin.go - admin endpoints (bearer auth)
package api

import (
	"context"
	"net/http"
	"net/url"

	"abstract-review-web/models"
)

// LoginResult carries the bearer token plus the profile the backend returns
// on a successful login.
type LoginResult struct {
	Token    string           `json:"token"`
	Admin    *models.Admin    `json:"admin,omitempty"`
	Reviewer *models.Reviewer `json:"reviewer,omitempty"`
}

// AdminLogin exchanges credentials for a bearer token and admin profile.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	env, err := c.doJSON(ctx, http.MethodPost, "/api/admin/login", "", payload)
	if err != nil {
		return nil, err
	}
	var result LoginResult
	if err := env.DecodeData(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AdminAbstracts fetches the full abstract list.
func (c *Client) AdminAbstracts(ctx context.Context, token string) ([]models.Abstract, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/admin/abstracts", token, nil, "")
	if err != nil {
		return nil, err
	}
	var list []models.Abstract
	if err := env.DecodeData(&list); err != nil {
		return nil, err
	}
	return list, nil
}

// AdminStats fetches the aggregate dashboard counters.
func (c *Client) AdminStats(ctx context.Context, token string) (*models.Stats, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/admin/stats", token, nil, "")
	if err != nil {
		return nil, err
	}
	var stats models.Stats
	if err := env.DecodeData(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AcceptAbstract marks an abstract accepted. Side effects (emails, score
// recalculation) happen server-side; callers re-fetch afterwards.
func (c *Client) AcceptAbstract(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodPut, "/api/admin/accept/"+url.PathEscape(id), token, nil, "")
	return err
}

// RejectAbstract marks an abstract rejected.
func (c *Client) RejectAbstract(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodPut, "/api/admin/reject/"+url.PathEscape(id), token, nil, "")
	return err
}

// UpdateAbstract saves an author-metadata edit and returns the canonical
// record for the targeted local patch.
func (c *Client) UpdateAbstract(ctx context.Context, token, id string, edit models.AbstractEdit) (*models.Abstract, error) {
	env, err := c.doJSON(ctx, http.MethodPut, "/api/admin/abstracts/"+url.PathEscape(id), token, edit)
	if err != nil {
		return nil, err
	}
	var canonical models.Abstract
	if err := env.DecodeData(&canonical); err != nil {
		return nil, err
	}
	return &canonical, nil
}

// ResendAcceptance asks the backend to re-send the acceptance email.
func (c *Client) ResendAcceptance(ctx context.Context, token, id string) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/admin/resend-acceptance/"+url.PathEscape(id), token, nil, "")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Reviewers lists all reviewers.
func (c *Client) Reviewers(ctx context.Context, token string) ([]models.Reviewer, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/admin/reviewers", token, nil, "")
	if err != nil {
		return nil, err
	}
	var list []models.Reviewer
	if err := env.DecodeData(&list); err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteReviewer removes a reviewer. The backend cascade-deletes that
// reviewer's reviews; the confirmation step warning the operator happens
// before this call.
func (c *Client) DeleteReviewer(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/admin/reviewers/"+url.PathEscape(id), token, nil, "")
	return err
}

// SetAssignmentType toggles a reviewer between "all" and "limited".
func (c *Client) SetAssignmentType(ctx context.Context, token, id, assignmentType string) error {
	payload := map[string]string{"assignmentType": assignmentType}
	_, err := c.doJSON(ctx, http.MethodPut, "/api/admin/reviewers/"+url.PathEscape(id)+"/assignment", token, payload)
	return err
}

// ClearAssignments drops a reviewer's assigned subset and resets the mode
// to "all".
func (c *Client) ClearAssignments(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/admin/reviewers/"+url.PathEscape(id)+"/assignments", token, nil, "")
	return err
}

// RandomizeAssignments triggers the server-side non-overlapping random
// distribution and returns the per-reviewer counts verbatim.
func (c *Client) RandomizeAssignments(ctx context.Context, token string, reviewerIDs []string, abstractsPerReviewer int) ([]models.AssignmentCount, string, error) {
	payload := map[string]interface{}{
		"reviewerIds":          reviewerIDs,
		"abstractsPerReviewer": abstractsPerReviewer,
	}
	env, err := c.doJSON(ctx, http.MethodPost, "/api/admin/reviewers/randomize-assignments", token, payload)
	if err != nil {
		return nil, "", err
	}
	var counts []models.AssignmentCount
	if len(env.Data) > 0 {
		if err := env.DecodeData(&counts); err != nil {
			return nil, "", err
		}
	}
	return counts, env.Message, nil
}
