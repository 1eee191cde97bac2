package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Abstract lifecycle statuses as reported by the backend.
const (
	StatusPending     = "pending"
	StatusUnderReview = "under_review"
	StatusAccepted    = "accepted"
	StatusRejected    = "rejected"
)

// Author response states, meaningful only once an abstract is accepted.
const (
	ResponsePending  = "pending"
	ResponseAccepted = "accepted"
	ResponseDeclined = "declined"
)

// Author is the primary-author shape; additional authors reuse it and
// usually carry no email.
type Author struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Degree    string `json:"degree"`
	Email     string `json:"email,omitempty"`
}

// FullName joins the name parts for display and search.
func (a Author) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// AbstractContent holds the four structured sections of a structured body.
type AbstractContent struct {
	Background string `json:"background"`
	Methods    string `json:"methods"`
	Results    string `json:"results"`
	Conclusion string `json:"conclusion"`
}

// Body is the resolved abstract body: either the four structured sections or
// a single flat text. Exactly one branch is populated.
type Body struct {
	Structured *AbstractContent
	Text       string
}

// IsStructured reports whether the structured branch is active.
func (b Body) IsStructured() bool { return b.Structured != nil }

// Abstract is the display projection of a submission as returned by the
// backend. The backend owns the canonical record; this side never derives
// status, scores or counts locally.
type Abstract struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Author            Author   `json:"author"`
	AdditionalAuthors []Author `json:"additionalAuthors,omitempty"`
	Department        string   `json:"department"`
	DepartmentOther   string   `json:"departmentOther,omitempty"`
	Category          string   `json:"category"`
	Keywords          Keywords `json:"keywords"`
	AbstractText      string   `json:"abstract"`

	AbstractContent *AbstractContent `json:"abstractContent,omitempty"`

	PDFURL      string    `json:"pdfUrl,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
	Status      string    `json:"status"`

	Reviews      []Review `json:"reviews,omitempty"`
	AverageScore float64  `json:"averageScore"`
	ReviewCount  int      `json:"reviewCount"`

	// Only meaningful when Status == StatusAccepted.
	AuthorResponse string `json:"authorResponse,omitempty"`
	Showcase       bool   `json:"showcase,omitempty"`

	// Set by the backend per reviewer session.
	HasReviewed bool `json:"hasReviewed,omitempty"`
}

// Body resolves the flat-vs-structured duality once. The structured branch
// wins whenever a non-empty background section is present; otherwise the
// flat text is used.
func (a *Abstract) Body() Body {
	if a.AbstractContent != nil && strings.TrimSpace(a.AbstractContent.Background) != "" {
		return Body{Structured: a.AbstractContent}
	}
	return Body{Text: a.AbstractText}
}

// AuthorsLine renders the full author list as a single display string.
func (a *Abstract) AuthorsLine() string {
	parts := []string{a.Author.FullName()}
	for _, extra := range a.AdditionalAuthors {
		if name := extra.FullName(); name != "" {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}

// DepartmentLabel resolves the free-text override used with the "other"
// department choice.
func (a *Abstract) DepartmentLabel() string {
	if a.Department == "other" && a.DepartmentOther != "" {
		return a.DepartmentOther
	}
	return a.Department
}

// AbstractEdit is the JSON body of the admin metadata edit. Only these
// fields are editable; everything else stays server-owned.
type AbstractEdit struct {
	Title             string   `json:"title"`
	Author            Author   `json:"author"`
	AdditionalAuthors []Author `json:"additionalAuthors"`
	Department        string   `json:"department"`
	DepartmentOther   string   `json:"departmentOther,omitempty"`
	Category          string   `json:"category"`
}

// ApplyCanonical replaces the list entry matching canonical.ID and returns
// whether a match was found. This is the one targeted patch in the admin
// workflow; every other mutation triggers a full re-fetch instead.
func ApplyCanonical(list []Abstract, canonical Abstract) bool {
	for i := range list {
		if list[i].ID == canonical.ID {
			list[i] = canonical
			return true
		}
	}
	return false
}

// Keywords is the normalized keyword list. The backend stores keywords
// either as a comma-separated string or as an array; both decode to a
// sequence of trimmed, non-empty strings.
type Keywords []string

func (k *Keywords) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*k = NormalizeKeywords(asString)
		return nil
	}

	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*k = NormalizeKeywords(asList)
		return nil
	}

	// null or an unexpected shape decode to an empty list rather than failing
	// the whole abstract.
	*k = nil
	return nil
}

// NormalizeKeywords converts any supported keyword representation into a
// sequence of trimmed, non-empty strings. It is idempotent: feeding its own
// output back returns an equal sequence.
func NormalizeKeywords(raw interface{}) Keywords {
	var items []string
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		items = strings.Split(v, ",")
	case []string:
		items = v
	case Keywords:
		items = v
	case []interface{}:
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				items = append(items, s)
			}
		}
	default:
		return nil
	}

	out := make(Keywords, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
