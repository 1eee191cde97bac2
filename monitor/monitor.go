package monitor

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Status is a snapshot of backend reachability as seen from this front end.
type Status struct {
	Reachable   bool          `json:"reachable"`
	LastChecked time.Time     `json:"lastChecked"`
	LastOK      time.Time     `json:"lastOk,omitempty"`
	Latency     time.Duration `json:"latencyMs"`
	Detail      string        `json:"detail,omitempty"`
}

// Monitor polls the backend base URL so operators can tell a dead backend
// from a front-end fault without reading logs.
type Monitor struct {
	mu       sync.Mutex
	status   Status
	baseURL  string
	client   *http.Client
	interval time.Duration
}

// New creates a Monitor for the given backend base URL.
func New(baseURL string, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Monitor{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		interval: interval,
	}
}

// Start begins polling until ctx is cancelled.
func (m *Monitor) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		m.check(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.check(ctx)
			}
		}
	}()
}

func (m *Monitor) check(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/api/abstracts/published", nil)
	if err != nil {
		return
	}

	started := time.Now()
	resp, err := m.client.Do(req)
	latency := time.Since(started)

	m.mu.Lock()
	defer m.mu.Unlock()

	wasReachable := m.status.Reachable
	m.status.LastChecked = time.Now()
	m.status.Latency = latency

	if err != nil {
		m.status.Reachable = false
		m.status.Detail = err.Error()
	} else {
		resp.Body.Close()
		m.status.Reachable = resp.StatusCode < 500
		m.status.Detail = resp.Status
		if m.status.Reachable {
			m.status.LastOK = m.status.LastChecked
		}
	}

	if wasReachable != m.status.Reachable {
		log.Printf("backend reachability changed: reachable=%v (%s)", m.status.Reachable, m.status.Detail)
	}
}

// Current returns the latest snapshot.
func (m *Monitor) Current() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// RegisterMonitorPage exposes the snapshot as JSON at /monitor.
func (m *Monitor) RegisterMonitorPage(router *gin.Engine) {
	router.GET("/monitor", func(c *gin.Context) {
		status := m.Current()
		code := http.StatusOK
		if !status.Reachable {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}
