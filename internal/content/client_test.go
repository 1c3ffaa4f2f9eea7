package content_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gocompare/internal/config"
	"github.com/jonesrussell/gocompare/internal/content"
	"github.com/jonesrussell/gocompare/internal/logger"
	"github.com/jonesrussell/gocompare/testutils"
)

func newClient(t *testing.T, endpoint string) *content.Client {
	t.Helper()

	return content.NewClient(&config.ContentConfig{
		Endpoint:       endpoint,
		Timeout:        5 * time.Second,
		SearchPageSize: 10,
	}, logger.NewNoOp())
}

func TestSearchDevices_Success(t *testing.T) {
	t.Parallel()

	backend := testutils.NewGraphQLBackend(
		&content.Device{ID: "1", Slug: "phone-a", Title: "Phone A", ImageURL: "https://cdn.example.com/a.jpg"},
		&content.Device{ID: "2", Slug: "phone-b", Title: "Phone B"},
		&content.Device{ID: "3", Slug: "tablet-c", Title: "Tablet C"},
	)
	srv := backend.Server()
	defer srv.Close()

	results, err := newClient(t, srv.URL).SearchDevices(context.Background(), "phone")
	require.NoError(t, err)
	require.Len(t, results, 2)

	bySlug := map[string]content.DeviceSummary{}
	for _, result := range results {
		bySlug[result.Slug] = result
	}
	assert.Equal(t, "Phone A", bySlug["phone-a"].Title)
	assert.Equal(t, "https://cdn.example.com/a.jpg", bySlug["phone-a"].ImageURL)
	assert.Empty(t, bySlug["phone-b"].ImageURL)
}

func TestSearchDevices_NoMatches(t *testing.T) {
	t.Parallel()

	backend := testutils.NewGraphQLBackend()
	srv := backend.Server()
	defer srv.Close()

	results, err := newClient(t, srv.URL).SearchDevices(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchDevices_HTTPErrorIsNetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).SearchDevices(context.Background(), "phone")

	var netErr *content.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "search", netErr.Op)
}

func TestSearchDevices_GraphQLErrorsIsAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": null, "errors": [{"message": "rate limited"}]}`))
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).SearchDevices(context.Background(), "phone")

	var apiErr *content.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"rate limited"}, apiErr.Messages)
}

func TestSearchDevices_TransportFailureIsNetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newClient(t, srv.URL).SearchDevices(context.Background(), "phone")

	var netErr *content.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotNil(t, errors.Unwrap(netErr))
}

func TestGetDeviceBySlug_Success(t *testing.T) {
	t.Parallel()

	backend := testutils.NewGraphQLBackend(&content.Device{
		ID:       "1",
		Slug:     "phone-a",
		Title:    "Phone A",
		BodyHTML: "<h3>Display</h3><figure><table><tr><td>Size</td><td>6.1 in</td></tr></table></figure>",
	})
	srv := backend.Server()
	defer srv.Close()

	dev, err := newClient(t, srv.URL).GetDeviceBySlug(context.Background(), "phone-a")
	require.NoError(t, err)
	assert.Equal(t, "phone-a", dev.Slug)
	assert.Equal(t, "Phone A", dev.Title)
	assert.Contains(t, dev.BodyHTML, "<table>")
}

func TestGetDeviceBySlug_NotFound(t *testing.T) {
	t.Parallel()

	backend := testutils.NewGraphQLBackend()
	srv := backend.Server()
	defer srv.Close()

	_, err := newClient(t, srv.URL).GetDeviceBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestGetDeviceBySlug_MalformedResponseIsNetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).GetDeviceBySlug(context.Background(), "phone-a")

	var netErr *content.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "detail", netErr.Op)
}
