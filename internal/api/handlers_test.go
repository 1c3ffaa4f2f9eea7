package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gocompare/internal/api"
	"github.com/jonesrussell/gocompare/internal/config"
	"github.com/jonesrussell/gocompare/internal/content"
	"github.com/jonesrussell/gocompare/internal/logger"
	"github.com/jonesrussell/gocompare/testutils"
)

const phoneABody = `<h3>Display</h3><figure><table>` +
	`<tr><td>Size</td><td>6.1 in</td></tr>` +
	`</table></figure>`

func testConfig() *config.Config {
	return &config.Config{
		Content: &config.ContentConfig{
			Endpoint:       "http://localhost/graphql",
			Timeout:        5 * time.Second,
			SearchPageSize: 10,
		},
		Compare: &config.CompareConfig{DebounceDelay: 10 * time.Millisecond},
		Server: &config.ServerConfig{
			Address:      ":0",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			IdleTimeout:  5 * time.Second,
		},
		Log: &logger.Config{Level: logger.ErrorLevel},
	}
}

func newRouter(reader content.Reader) http.Handler {
	return api.SetupRouter(api.NewHandlers(reader, testConfig(), logger.NewNoOp()))
}

func doRequest(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newRouter(testutils.NewMockReader()), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestSearch_MissingQuery(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newRouter(testutils.NewMockReader()), "/api/v1/search")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearch_ReturnsResults(t *testing.T) {
	t.Parallel()

	reader := testutils.NewMockReader()
	reader.On("SearchDevices", mock.Anything, "phone").Return([]content.DeviceSummary{
		{ID: "1", Slug: "phone-a", Title: "Phone A"},
	}, nil)

	rec := doRequest(t, newRouter(reader), "/api/v1/search?q=phone")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "phone-a", resp.Results[0].Slug)
	reader.AssertExpectations(t)
}

func TestSearch_UpstreamFailure(t *testing.T) {
	t.Parallel()

	reader := testutils.NewMockReader()
	reader.On("SearchDevices", mock.Anything, "phone").
		Return(nil, &content.NetworkError{Op: "search"})

	rec := doRequest(t, newRouter(reader), "/api/v1/search?q=phone")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCompare_NoParamsPrompts(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newRouter(testutils.NewMockReader()), "/api/v1/compare")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.CompareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Devices[0])
	assert.Nil(t, resp.Devices[1])
	assert.Empty(t, resp.Sections)
	assert.NotEmpty(t, resp.Message)
}

func TestCompare_TwoDevices(t *testing.T) {
	t.Parallel()

	reader := testutils.NewMockReader()
	reader.On("GetDeviceBySlug", mock.Anything, "phone-a").
		Return(&content.Device{ID: "1", Slug: "phone-a", Title: "Phone A", BodyHTML: phoneABody}, nil)
	reader.On("GetDeviceBySlug", mock.Anything, "phone-b").
		Return(&content.Device{ID: "2", Slug: "phone-b", Title: "Phone B"}, nil)

	rec := doRequest(t, newRouter(reader), "/api/v1/compare?device1=phone-a&device2=phone-b")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.CompareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Devices[0])
	require.NotNil(t, resp.Devices[1])
	assert.Equal(t, "Phone A", resp.Devices[0].Title)

	require.Len(t, resp.Sections, 1)
	assert.Equal(t, "Display", resp.Sections[0].Name)
	require.Len(t, resp.Sections[0].Rows, 1)
	assert.Equal(t, "6.1 in", resp.Sections[0].Rows[0].ValueA)
	assert.Equal(t, "N/A", resp.Sections[0].Rows[0].ValueB)
}

func TestCompare_UnresolvedSlugLeavesSlotNull(t *testing.T) {
	t.Parallel()

	reader := testutils.NewMockReader()
	reader.On("GetDeviceBySlug", mock.Anything, "phone-a").
		Return(&content.Device{ID: "1", Slug: "phone-a", Title: "Phone A", BodyHTML: phoneABody}, nil)
	reader.On("GetDeviceBySlug", mock.Anything, "ghost").
		Return(nil, content.ErrNotFound)

	rec := doRequest(t, newRouter(reader), "/api/v1/compare?device1=phone-a&device2=ghost")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.CompareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Devices[0])
	assert.Nil(t, resp.Devices[1])
}

func TestCompare_CacheSharedAcrossRequests(t *testing.T) {
	t.Parallel()

	reader := testutils.NewMockReader()
	reader.On("GetDeviceBySlug", mock.Anything, "phone-a").
		Return(&content.Device{ID: "1", Slug: "phone-a", Title: "Phone A", BodyHTML: phoneABody}, nil).
		Once()

	router := newRouter(reader)
	first := doRequest(t, router, "/api/v1/compare?device1=phone-a")
	second := doRequest(t, router, "/api/v1/compare?device1=phone-a")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	// Once() would fail the second request if the cache were not consulted.
	reader.AssertNumberOfCalls(t, "GetDeviceBySlug", 1)
}
