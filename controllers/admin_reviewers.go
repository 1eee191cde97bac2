// controllers/admin_reviewers.go - reviewer management and randomized assignment
package controllers

import (
	"net/http"
	"strconv"

	"abstract-review-web/api"
	"abstract-review-web/config"
	"abstract-review-web/middleware"
	"abstract-review-web/models"

	"github.com/gin-gonic/gin"
)

// ToggleAssignment switches a reviewer between "all" and "limited".
func ToggleAssignment(c *gin.Context) {
	mode := c.PostForm("assignmentType")
	if mode != models.AssignmentAll && mode != models.AssignmentLimited {
		redirectAdmin(c, "", "Unknown assignment mode")
		return
	}

	if err := config.Backend.SetAssignmentType(c.Request.Context(), middleware.TokenFrom(c), c.Param("id"), mode); err != nil {
		redirectAdmin(c, "", api.ErrorMessage(err))
		return
	}
	redirectAdmin(c, "Assignment mode updated", "")
}

// ClearAssignments drops a reviewer's assigned subset; the backend resets
// the mode to "all" and zeroes the assigned count.
func ClearAssignments(c *gin.Context) {
	if err := config.Backend.ClearAssignments(c.Request.Context(), middleware.TokenFrom(c), c.Param("id")); err != nil {
		redirectAdmin(c, "", api.ErrorMessage(err))
		return
	}
	redirectAdmin(c, "Assignments cleared", "")
}

// ConfirmDeleteReviewer shows the confirmation step before a reviewer
// deletion. Deletion cascades to that reviewer's reviews server-side, so
// the page states the number of completed reviews about to be lost.
func ConfirmDeleteReviewer(c *gin.Context) {
	id := c.Param("id")

	list, err := config.Backend.Reviewers(c.Request.Context(), middleware.TokenFrom(c))
	if err != nil {
		redirectAdmin(c, "", api.ErrorMessage(err))
		return
	}

	for i := range list {
		if list[i].ID == id {
			data := pageData(c, "Delete Reviewer")
			data["Reviewer"] = list[i]
			c.HTML(http.StatusOK, "reviewer_delete", data)
			return
		}
	}
	redirectAdmin(c, "", "Reviewer not found")
}

// DeleteReviewer fires the deletion after the confirmation step.
func DeleteReviewer(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if err := config.Backend.DeleteReviewer(c.Request.Context(), middleware.TokenFrom(c), c.Param("id")); err != nil {
		redirectAdmin(c, "", api.ErrorMessage(err))
		return
	}
	// Cascade-deleted reviews change review counts and averages.
	dashboards.invalidate(sess.ID)
	redirectAdmin(c, "Reviewer deleted", "")
}

// RandomizeAssignments validates the capacity guard and triggers the
// server-side non-overlapping random distribution. The guard re-runs here
// even though the dashboard disables the button, since the form posts an
// operator-chosen quota.
func RandomizeAssignments(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	token := middleware.TokenFrom(c)
	ctx := c.Request.Context()

	reviewerIDs := c.PostFormArray("reviewerIds")
	perReviewer, err := strconv.Atoi(c.PostForm("abstractsPerReviewer"))
	if err != nil {
		redirectAdmin(c, "", "Abstracts per reviewer must be a whole number")
		return
	}

	// Count the assignable pool from a fresh list; the form's snapshot may
	// be stale.
	list, fetchErr := config.Backend.AdminAbstracts(ctx, token)
	if fetchErr != nil {
		redirectAdmin(c, "", api.ErrorMessage(fetchErr))
		return
	}
	dashboards.set(sess.ID, list)

	pending := 0
	for i := range list {
		if list[i].Status == models.StatusPending || list[i].Status == models.StatusUnderReview {
			pending++
		}
	}

	if !models.CanRandomize(len(reviewerIDs), perReviewer, pending) {
		redirectAdmin(c, "", "Selection exceeds the available abstracts; pick fewer reviewers or a smaller quota")
		return
	}

	counts, message, err := config.Backend.RandomizeAssignments(ctx, token, reviewerIDs, perReviewer)
	if err != nil {
		redirectAdmin(c, "", api.ErrorMessage(err))
		return
	}

	// Assignment flips abstracts to under_review server-side.
	dashboards.invalidate(sess.ID)

	data := pageData(c, "Assignment Results")
	data["Counts"] = counts
	data["Message"] = message
	c.HTML(http.StatusOK, "randomize_result", data)
}
