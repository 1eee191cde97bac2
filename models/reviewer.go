package models

import "time"

// Reviewer assignment modes.
const (
	AssignmentAll     = "all"     // sees every abstract
	AssignmentLimited = "limited" // sees only the assigned subset
)

// Reviewer mirrors the backend reviewer record. The credential itself never
// reaches this side; login returns only a bearer token plus this profile.
type Reviewer struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	AssignmentType  string `json:"assignmentType"`
	AssignmentLimit int    `json:"assignmentLimit,omitempty"`
	AssignedCount   int    `json:"assignedCount"`
	CompletedCount  int    `json:"completedReviews"`
}

// Review is a single (reviewer, abstract) score. The backend enforces the
// one-per-pair rule and recomputes the abstract's average.
type Review struct {
	ID           string          `json:"id"`
	ReviewerID   string          `json:"reviewerId,omitempty"`
	ReviewerName string          `json:"reviewerName,omitempty"`
	Score        int             `json:"score"`
	Scores       *ScoreBreakdown `json:"scores,omitempty"`
	Comments     string          `json:"comments,omitempty"`
	CreatedAt    time.Time       `json:"createdAt,omitempty"`
}

// ScoreBreakdown is the five-dimension variant (each 1-5) some review rounds
// use instead of the single 1-10 score.
type ScoreBreakdown struct {
	Originality  int `json:"originality"`
	Methodology  int `json:"methodology"`
	Clarity      int `json:"clarity"`
	Relevance    int `json:"relevance"`
	Significance int `json:"significance"`
}

// AssignmentCount is one row of the randomize-assignments result, surfaced
// verbatim to the operator.
type AssignmentCount struct {
	ReviewerID   string `json:"reviewerId"`
	ReviewerName string `json:"reviewerName"`
	Assigned     int    `json:"assigned"`
}
