package models

// Submission is the new-abstract form payload. Keywords stay in their raw
// comma-separated form here; the backend normalizes on its side and this
// side normalizes again at display time.
type Submission struct {
	Title             string
	Author            Author
	AdditionalAuthors []Author
	Department        string
	DepartmentOther   string
	Category          string
	Keywords          string
	Content           AbstractContent
}
