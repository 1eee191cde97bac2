// api/reviewers.go - reviewer endpoints (bearer auth)
package api

import (
	"context"
	"net/http"
	"net/url"

	"abstract-review-web/models"
)

// ReviewerLogin authenticates a reviewer. Any {name, email} pair with the
// shared reviewer password is an implicit upsert: first use provisions the
// account server-side.
func (c *Client) ReviewerLogin(ctx context.Context, name, email, password string) (*LoginResult, error) {
	payload := map[string]string{"name": name, "email": email, "password": password}
	env, err := c.doJSON(ctx, http.MethodPost, "/api/reviewers/login", "", payload)
	if err != nil {
		return nil, err
	}
	var result LoginResult
	if err := env.DecodeData(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReviewerAbstracts fetches the abstracts visible to the logged-in reviewer,
// pre-filtered server-side by assignment mode, with per-abstract hasReviewed
// flags for this session.
func (c *Client) ReviewerAbstracts(ctx context.Context, token string) ([]models.Abstract, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/reviewers/abstracts", token, nil, "")
	if err != nil {
		return nil, err
	}
	var list []models.Abstract
	if err := env.DecodeData(&list); err != nil {
		return nil, err
	}
	return list, nil
}

// SubmitReview posts a single score+comments review for one abstract. The
// backend enforces the one-review-per-pair rule.
func (c *Client) SubmitReview(ctx context.Context, token, abstractID string, score int, comments string) error {
	payload := map[string]interface{}{"score": score, "comments": comments}
	_, err := c.doJSON(ctx, http.MethodPost, "/api/reviewers/review/"+url.PathEscape(abstractID), token, payload)
	return err
}
