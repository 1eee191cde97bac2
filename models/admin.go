package models

// Admin is the logged-in operator profile returned by the admin login.
type Admin struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Stats is the aggregate dashboard summary from /api/admin/stats.
type Stats struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	UnderReview int `json:"underReview"`
	Accepted    int `json:"accepted"`
	Rejected    int `json:"rejected"`
	Reviewers   int `json:"reviewers"`
	Reviews     int `json:"reviews"`
}
