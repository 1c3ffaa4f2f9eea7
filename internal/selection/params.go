package selection

import "sync"

// Navigation parameter names, one per comparison slot.
const (
	ParamDevice1 = "device1"
	ParamDevice2 = "device2"
)

// Params is the navigation-parameter pair carried by the hosting screen's
// location. It is the source of truth for which two devices are being
// compared; in-memory slot state is a projection of it. An empty string
// means the parameter is absent.
type Params struct {
	Device1 string `json:"device1,omitempty"`
	Device2 string `json:"device2,omitempty"`
}

// Device returns the slug named by the parameter for the given slot index.
func (p Params) Device(idx int) string {
	if idx == 0 {
		return p.Device1
	}
	return p.Device2
}

// ParamName returns the navigation parameter name for the given slot index.
func ParamName(idx int) string {
	if idx == 0 {
		return ParamDevice1
	}
	return ParamDevice2
}

// ParamStore abstracts the navigation-parameter pair: read by reconciliation,
// written by selection and removal.
type ParamStore interface {
	// Params returns the current parameter pair.
	Params() Params
	// SetDevice writes the slug into the parameter for the slot index.
	SetDevice(idx int, slug string)
	// ClearDevice removes the parameter for the slot index (absent, not
	// empty string).
	ClearDevice(idx int)
}

// MemoryParams is an in-memory ParamStore for CLI runs and tests.
type MemoryParams struct {
	mu     sync.Mutex
	params Params
}

// Ensure MemoryParams implements ParamStore
var _ ParamStore = (*MemoryParams)(nil)

// NewMemoryParams creates a memory-backed parameter store seeded with the
// given pair.
func NewMemoryParams(params Params) *MemoryParams {
	return &MemoryParams{params: params}
}

// Params returns the current parameter pair.
func (m *MemoryParams) Params() Params {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.params
}

// SetDevice writes the slug into the parameter for the slot index.
func (m *MemoryParams) SetDevice(idx int, slug string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if idx == 0 {
		m.params.Device1 = slug
	} else {
		m.params.Device2 = slug
	}
}

// ClearDevice removes the parameter for the slot index.
func (m *MemoryParams) ClearDevice(idx int) {
	m.SetDevice(idx, "")
}
