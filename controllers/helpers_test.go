package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"abstract-review-web/api"
	"abstract-review-web/config"
	"abstract-review-web/routes"
	"abstract-review-web/session"
	"abstract-review-web/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// fakeBackend is an httptest stand-in for the conference API. It records
// every request so tests can assert which calls did (or did not) happen.
type fakeBackend struct {
	mu       sync.Mutex
	mux      *http.ServeMux
	srv      *httptest.Server
	requests []string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{mux: http.NewServeMux()}
	fb.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.requests = append(fb.requests, r.Method+" "+r.URL.Path)
		fb.mu.Unlock()
		fb.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(fb.srv.Close)
	return fb
}

func (fb *fakeBackend) handle(pattern string, h http.HandlerFunc) {
	fb.mux.HandleFunc(pattern, h)
}

// count returns how many recorded requests match "METHOD /path".
func (fb *fakeBackend) count(methodAndPath string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	n := 0
	for _, r := range fb.requests {
		if r == methodAndPath {
			n++
		}
	}
	return n
}

func writeEnvelope(w http.ResponseWriter, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	payload := map[string]interface{}{"success": true}
	if data != nil {
		payload["data"] = data
	}
	if message != "" {
		payload["message"] = message
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": message})
}

// newTestApp wires the real router and templates against the fake backend
// and a throwaway session store.
func newTestApp(t *testing.T, fb *fakeBackend) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.Backend = api.NewClient(fb.srv.URL, nil)

	mgr, err := session.Open(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { mgr.Close() })
	config.Sessions = mgr

	router := gin.New()
	router.SetHTMLTemplate(web.Templates())
	routes.SetupRoutes(router)
	return router
}

// postForm performs a urlencoded POST through the router.
func postForm(router *gin.Engine, path string, form url.Values, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func get(router *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// sessionCookie extracts the front-end session cookie from a login response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "forum_session" && c.Value != "" {
			return fmt.Sprintf("%s=%s", c.Name, c.Value)
		}
	}
	t.Fatal("no session cookie set")
	return ""
}

// submissionForm builds the multipart body for the public submission form,
// optionally attaching a PDF of pdfSize bytes.
func submissionForm(t *testing.T, fields map[string]string, pdfSize int) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, form.WriteField(k, v))
	}
	if pdfSize > 0 {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="pdf"; filename="poster.pdf"`)
		header.Set("Content-Type", "application/pdf")
		part, err := form.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte{'x'}, pdfSize))
		require.NoError(t, err)
	}
	require.NoError(t, form.Close())
	return body, form.FormDataContentType()
}

func validSubmissionFields() map[string]string {
	return map[string]string{
		"title":      "A study of things",
		"firstName":  "Grace",
		"lastName":   "Hopper",
		"degree":     "PhD",
		"email":      "grace@example.org",
		"department": "surgery",
		"category":   "clinical_research",
		"keywords":   "a, b",
		"background": "Background.",
		"methods":    "Methods.",
		"results":    "Results.",
		"conclusion": "Conclusion.",
	}
}
