// Package metrics tracks console serving statistics
package metrics

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks request handling statistics
type Metrics struct {
	// Request counts
	TotalRequests uint64
	Unauthorized  uint64
	Forbidden     uint64
	NotFound      uint64

	// Auth counts
	LoginSuccesses uint64
	LoginFailures  uint64
	Logouts        uint64

	// Report downloads
	ExportsGenerated uint64

	// Timing
	LastRequestTime time.Time

	routeHits map[string]uint64
	mu        sync.RWMutex
}

// New creates a new Metrics instance
func New() *Metrics {
	return &Metrics{
		LastRequestTime: time.Now(),
		routeHits:       make(map[string]uint64),
	}
}

// IncrementRequests counts one handled request against its route
func (m *Metrics) IncrementRequests(route string) {
	atomic.AddUint64(&m.TotalRequests, 1)
	m.mu.Lock()
	m.routeHits[route]++
	m.LastRequestTime = time.Now()
	m.mu.Unlock()
}

// IncrementUnauthorized counts a request rejected for missing a session
func (m *Metrics) IncrementUnauthorized() {
	atomic.AddUint64(&m.Unauthorized, 1)
}

// IncrementForbidden counts a request rejected for lacking a capability
func (m *Metrics) IncrementForbidden() {
	atomic.AddUint64(&m.Forbidden, 1)
}

// IncrementNotFound counts a lookup that found no record
func (m *Metrics) IncrementNotFound() {
	atomic.AddUint64(&m.NotFound, 1)
}

// IncrementLoginSuccesses counts a successful login
func (m *Metrics) IncrementLoginSuccesses() {
	atomic.AddUint64(&m.LoginSuccesses, 1)
}

// IncrementLoginFailures counts a rejected login
func (m *Metrics) IncrementLoginFailures() {
	atomic.AddUint64(&m.LoginFailures, 1)
}

// IncrementLogouts counts a session cleared on request
func (m *Metrics) IncrementLogouts() {
	atomic.AddUint64(&m.Logouts, 1)
}

// IncrementExports counts a generated CSV download
func (m *Metrics) IncrementExports() {
	atomic.AddUint64(&m.ExportsGenerated, 1)
}

// RouteHits returns a copy of the per-route counters
func (m *Metrics) RouteHits() map[string]uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]uint64, len(m.routeHits))
	for k, v := range m.routeHits {
		out[k] = v
	}
	return out
}

// String returns a string representation of the statistics
func (m *Metrics) String() string {
	m.mu.RLock()
	last := m.LastRequestTime
	routes := make([]string, 0, len(m.routeHits))
	for route := range m.routeHits {
		routes = append(routes, route)
	}
	sort.Strings(routes)
	var perRoute strings.Builder
	for _, route := range routes {
		fmt.Fprintf(&perRoute, "\n  %s: %d", route, m.routeHits[route])
	}
	m.mu.RUnlock()

	return fmt.Sprintf(
		"Total Requests: %d\n"+
			"Unauthorized: %d\n"+
			"Forbidden: %d\n"+
			"Not Found: %d\n"+
			"Login Successes: %d\n"+
			"Login Failures: %d\n"+
			"Logouts: %d\n"+
			"Exports Generated: %d\n"+
			"Last Request Time: %s\n"+
			"Route Hits:%s",
		atomic.LoadUint64(&m.TotalRequests),
		atomic.LoadUint64(&m.Unauthorized),
		atomic.LoadUint64(&m.Forbidden),
		atomic.LoadUint64(&m.NotFound),
		atomic.LoadUint64(&m.LoginSuccesses),
		atomic.LoadUint64(&m.LoginFailures),
		atomic.LoadUint64(&m.Logouts),
		atomic.LoadUint64(&m.ExportsGenerated),
		last,
		perRoute.String(),
	)
}

// StartLogging periodically dumps the statistics to the process log until
// the context is cancelled
func (m *Metrics) StartLogging(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Final serving statistics:\n%s", m.String())
			return
		case <-ticker.C:
			log.Printf("Serving statistics:\n%s", m.String())
		}
	}
}
