package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/gocompare/internal/compare"
	"github.com/jonesrussell/gocompare/internal/content"
	"github.com/jonesrussell/gocompare/internal/selection"
)

// promptMessage is returned when no device parameter is present.
const promptMessage = "Select two devices to compare"

// SearchResponse is the payload of GET /api/v1/search.
type SearchResponse struct {
	Results []content.DeviceSummary `json:"results"`
}

// CompareResponse is the payload of GET /api/v1/compare. Devices holds the
// resolved slot devices in slot order; a slot whose parameter is absent or
// whose slug failed to resolve is null.
type CompareResponse struct {
	Devices  [selection.SlotCount]*content.DeviceSummary `json:"devices"`
	Sections []compare.CategorySection                   `json:"sections"`
	Message  string                                      `json:"message,omitempty"`
}

// handleSearch serves device search: GET /api/v1/search?q=<text>.
func (h *Handlers) handleSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter 'q'"})
		return
	}

	results, err := h.client.SearchDevices(c.Request.Context(), query)
	if err != nil {
		h.log.Error("device search failed", "query", query, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "search failed"})
		return
	}

	if results == nil {
		results = []content.DeviceSummary{}
	}
	c.JSON(http.StatusOK, SearchResponse{Results: results})
}

// handleCompare serves the comparison screen:
// GET /api/v1/compare?device1=<slug>&device2=<slug>.
//
// The handler projects the URL query parameters onto a selection screen
// backed by the server's session cache and reconciles it, so the response
// reflects exactly the state a share-link open would produce. A slug that
// fails to resolve leaves its slot empty rather than failing the request.
func (h *Handlers) handleCompare(c *gin.Context) {
	params := selection.Params{
		Device1: c.Query(selection.ParamDevice1),
		Device2: c.Query(selection.ParamDevice2),
	}

	screen := selection.NewScreen(
		c.Request.Context(),
		h.client,
		h.cache,
		selection.NewMemoryParams(params),
		h.log,
		h.cfg.GetCompareConfig(),
	)

	reconcileErr := screen.Reconcile(c.Request.Context())
	if reconcileErr != nil {
		h.log.Warn("comparison left slots unresolved",
			"device1", params.Device1,
			"device2", params.Device2,
			"error", reconcileErr,
		)
	}

	resp := CompareResponse{Sections: screen.Comparison()}
	devices := screen.SelectedDevices()
	for i, dev := range devices {
		if dev != nil {
			summary := dev.Summary()
			resp.Devices[i] = &summary
		}
	}

	if devices[0] == nil && devices[1] == nil {
		resp.Message = promptMessage
	}
	c.JSON(http.StatusOK, resp)
}
