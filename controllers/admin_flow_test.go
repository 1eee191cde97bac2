package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminState is the mutable backend fixture: accept/reject flip statuses the
// way the real backend would, so re-fetches observe the change.
type adminState struct {
	mu       sync.Mutex
	statuses map[string]string
	titles   map[string]string
}

func newAdminBackend(t *testing.T) (*fakeBackend, *adminState) {
	state := &adminState{
		statuses: map[string]string{"a1": "pending", "a2": "pending", "a3": "accepted"},
		titles: map[string]string{
			"a1": "Deep learning triage",
			"a2": "Handwashing adherence",
			"a3": "Accepted already",
		},
	}

	fb := newFakeBackend(t)
	fb.handle("/api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, map[string]interface{}{
			"token": "admin-token",
			"admin": map[string]string{"id": "adm1", "name": "Rosalind", "email": "ros@example.org"},
		}, "")
	})
	fb.handle("/api/admin/abstracts", func(w http.ResponseWriter, r *http.Request) {
		state.mu.Lock()
		defer state.mu.Unlock()
		writeEnvelope(w, []map[string]interface{}{
			{"id": "a1", "title": state.titles["a1"], "status": state.statuses["a1"], "averageScore": 9.1, "reviewCount": 3, "submittedAt": "2026-02-01T00:00:00Z"},
			{"id": "a2", "title": state.titles["a2"], "status": state.statuses["a2"], "averageScore": 7.0, "reviewCount": 2, "submittedAt": "2026-02-02T00:00:00Z"},
			{"id": "a3", "title": state.titles["a3"], "status": state.statuses["a3"], "averageScore": 5.0, "reviewCount": 1, "submittedAt": "2026-02-03T00:00:00Z"},
		}, "")
	})
	fb.handle("/api/admin/stats", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, map[string]int{"total": 3, "pending": 2, "accepted": 1}, "")
	})
	fb.handle("/api/admin/reviewers", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, []map[string]interface{}{
			{"id": "r1", "name": "Grace", "email": "g@example.org", "assignmentType": "all", "completedReviews": 4},
			{"id": "r2", "name": "Alan", "email": "a@example.org", "assignmentType": "limited", "assignedCount": 3},
		}, "")
	})
	fb.handle("/api/admin/accept/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/admin/accept/")
		state.mu.Lock()
		state.statuses[id] = "accepted"
		state.mu.Unlock()
		writeEnvelope(w, nil, "accepted")
	})
	fb.handle("/api/admin/abstracts/", func(w http.ResponseWriter, r *http.Request) {
		// PUT /api/admin/abstracts/{id} echoes the canonical record back.
		id := strings.TrimPrefix(r.URL.Path, "/api/admin/abstracts/")
		var edit struct {
			Title string `json:"title"`
			Author struct {
				FirstName string `json:"firstName"`
				LastName  string `json:"lastName"`
			} `json:"author"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&edit))
		state.mu.Lock()
		state.titles[id] = edit.Title
		status := state.statuses[id]
		state.mu.Unlock()
		writeEnvelope(w, map[string]interface{}{
			"id": id, "title": edit.Title, "status": status,
			"author":       map[string]string{"firstName": edit.Author.FirstName, "lastName": edit.Author.LastName},
			"averageScore": 9.1, "reviewCount": 3, "submittedAt": "2026-02-01T00:00:00Z",
		}, "")
	})
	fb.handle("/api/admin/reviewers/randomize-assignments", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, []map[string]interface{}{
			{"reviewerId": "r2", "reviewerName": "Alan", "assigned": 2},
		}, "Assigned 2 abstracts")
	})

	return fb, state
}

func loginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec := postForm(router, "/admin/login", url.Values{
		"email":    {"ros@example.org"},
		"password": {"hunter2"},
	}, "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin", rec.Header().Get("Location"))
	return sessionCookie(t, rec)
}

func TestAdminEndToEnd(t *testing.T) {
	fb, _ := newAdminBackend(t)
	router := newTestApp(t, fb)

	// Unauthenticated access fails closed before any data fetch.
	rec := get(router, "/admin", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
	assert.Equal(t, 0, fb.count("GET /api/admin/abstracts"))

	cookie := loginAdmin(t, router)

	// Dashboard joins the three concurrent fetches.
	rec = get(router, "/admin", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, fb.count("GET /api/admin/abstracts"))
	assert.Equal(t, 1, fb.count("GET /api/admin/stats"))
	assert.Equal(t, 1, fb.count("GET /api/admin/reviewers"))

	// Default view: pending only, best score first.
	body := rec.Body.String()
	assert.NotContains(t, body, "Accepted already")
	first := strings.Index(body, "Deep learning triage")
	second := strings.Index(body, "Handwashing adherence")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)

	// Accept issues the PUT and forces a full re-fetch on the next load.
	rec = postForm(router, "/admin/abstracts/a1/accept", url.Values{}, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 1, fb.count("PUT /api/admin/accept/a1"))

	rec = get(router, "/admin?status=accepted", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, fb.count("GET /api/admin/abstracts"))
	assert.Contains(t, rec.Body.String(), "Deep learning triage")
}

func TestAdminEditPatchesLocally(t *testing.T) {
	fb, _ := newAdminBackend(t)
	router := newTestApp(t, fb)
	cookie := loginAdmin(t, router)

	// Prime the dashboard cache.
	rec := get(router, "/admin", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	fetches := fb.count("GET /api/admin/abstracts")

	rec = postForm(router, "/admin/abstracts/a2/edit", url.Values{
		"title":      {"Hand hygiene adherence"},
		"firstName":  {"Florence"},
		"lastName":   {"Nightingale"},
		"department": {"surgery"},
		"category":   {"quality_improvement"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 1, fb.count("PUT /api/admin/abstracts/a2"))

	// The canonical record patched the cached list: the next filter
	// navigation shows the new title without another abstracts fetch.
	rec = get(router, "/admin?status=pending", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hand hygiene adherence")
	assert.Equal(t, fetches, fb.count("GET /api/admin/abstracts"))
}

func TestDashboardRefetchesOnEntry(t *testing.T) {
	fb, state := newAdminBackend(t)
	router := newTestApp(t, fb)
	cookie := loginAdmin(t, router)

	rec := get(router, "/admin", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, fb.count("GET /api/admin/abstracts"))

	// Another admin (or reviewer activity) changes the record server-side.
	state.mu.Lock()
	state.titles["a1"] = "Deep learning triage, revised"
	state.mu.Unlock()

	// A fresh visit re-fetches and shows the change.
	rec = get(router, "/admin", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, fb.count("GET /api/admin/abstracts"))
	assert.Contains(t, rec.Body.String(), "Deep learning triage, revised")

	// Filter navigation right after still reuses the cached list.
	rec = get(router, "/admin?status=pending", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, fb.count("GET /api/admin/abstracts"))
}

func TestRandomizeGuard(t *testing.T) {
	fb, _ := newAdminBackend(t)
	router := newTestApp(t, fb)
	cookie := loginAdmin(t, router)

	// Two assignable abstracts exist (a1, a2 pending). 2 reviewers x 2 each
	// is unsatisfiable and must never reach the backend.
	rec := postForm(router, "/admin/reviewers/randomize", url.Values{
		"reviewerIds":          {"r1", "r2"},
		"abstractsPerReviewer": {"2"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "err=")
	assert.Equal(t, 0, fb.count("POST /api/admin/reviewers/randomize-assignments"))

	// An exactly-full request (1 reviewer x 2 = 2) goes through and surfaces
	// the backend's counts verbatim.
	rec = postForm(router, "/admin/reviewers/randomize", url.Values{
		"reviewerIds":          {"r2"},
		"abstractsPerReviewer": {"2"},
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, fb.count("POST /api/admin/reviewers/randomize-assignments"))
	assert.Contains(t, rec.Body.String(), "Alan")
	assert.Contains(t, rec.Body.String(), "Assigned 2 abstracts")
}
