package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/jonesrussell/gocompare/internal/content"
)

// GraphQLBackend is a mock content API backend for tests. It serves the
// devices it was seeded with and counts the calls it receives per operation.
type GraphQLBackend struct {
	mu          sync.Mutex
	devices     map[string]*content.Device
	searchCalls int
	detailCalls int
}

// NewGraphQLBackend creates a backend seeded with the given devices.
func NewGraphQLBackend(devices ...*content.Device) *GraphQLBackend {
	b := &GraphQLBackend{devices: make(map[string]*content.Device)}
	for _, dev := range devices {
		b.devices[dev.Slug] = dev
	}
	return b
}

// Server starts an httptest server answering GraphQL POSTs for this backend.
// The caller owns the returned server and must Close it.
func (b *GraphQLBackend) Server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(b.handle))
}

// SearchCalls returns how many search operations the backend served.
func (b *GraphQLBackend) SearchCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.searchCalls
}

// DetailCalls returns how many detail operations the backend served.
func (b *GraphQLBackend) DetailCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.detailCalls
}

// handle decodes one GraphQL request and dispatches on the operation name
// embedded in the query document.
func (b *GraphQLBackend) handle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch {
	case strings.Contains(req.Query, "SearchDevices"):
		b.handleSearch(w, req.Variables)
	case strings.Contains(req.Query, "DeviceBySlug"):
		b.handleDetail(w, req.Variables)
	default:
		writeGraphQL(w, map[string]any{
			"errors": []map[string]any{{"message": "unknown operation"}},
		})
	}
}

// handleSearch matches seeded devices whose title contains the search text.
func (b *GraphQLBackend) handleSearch(w http.ResponseWriter, variables map[string]any) {
	search, _ := variables["search"].(string)

	b.mu.Lock()
	b.searchCalls++
	var nodes []map[string]any
	for _, dev := range b.devices {
		if strings.Contains(strings.ToLower(dev.Title), strings.ToLower(search)) {
			nodes = append(nodes, postJSON(dev, false))
		}
	}
	b.mu.Unlock()

	if nodes == nil {
		nodes = []map[string]any{}
	}
	writeGraphQL(w, map[string]any{
		"data": map[string]any{
			"posts": map[string]any{"nodes": nodes},
		},
	})
}

// handleDetail resolves one seeded device by slug; unknown slugs yield a
// null post, matching the WPGraphQL contract.
func (b *GraphQLBackend) handleDetail(w http.ResponseWriter, variables map[string]any) {
	slug, _ := variables["slug"].(string)

	b.mu.Lock()
	b.detailCalls++
	dev := b.devices[slug]
	b.mu.Unlock()

	var post any
	if dev != nil {
		post = postJSON(dev, true)
	}
	writeGraphQL(w, map[string]any{
		"data": map[string]any{"post": post},
	})
}

// postJSON renders one device as a WPGraphQL post node.
func postJSON(dev *content.Device, withContent bool) map[string]any {
	node := map[string]any{
		"id":    dev.ID,
		"title": dev.Title,
		"slug":  dev.Slug,
	}
	if withContent {
		node["content"] = dev.BodyHTML
	}
	if dev.ImageURL != "" {
		node["featuredImage"] = map[string]any{
			"node": map[string]any{"sourceUrl": dev.ImageURL},
		}
	}
	return node
}

// writeGraphQL writes a JSON GraphQL response envelope.
func writeGraphQL(w http.ResponseWriter, envelope map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(envelope)
}
