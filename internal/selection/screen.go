// Package selection implements the device selection state machine for the
// two-slot comparison screen: per-slot search with debounce, detail fetches
// through a session cache, and reconciliation against navigation parameters.
package selection

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonesrussell/gocompare/internal/compare"
	"github.com/jonesrussell/gocompare/internal/config"
	"github.com/jonesrussell/gocompare/internal/content"
	"github.com/jonesrussell/gocompare/internal/logger"
	"github.com/jonesrussell/gocompare/internal/specs"
)

// SlotCount is the number of comparison slots.
const SlotCount = 2

// Diagnostic messages shown in place of results when a fetch fails.
const (
	msgSearchFailed = "Search failed, please try again"
	msgDetailFailed = "Could not load device, please try again"
)

// slot holds the per-slot state: search query, debounced results, the
// in-flight detail flag, and the selected device. Each slot owns its own
// debounce timer and results buffer, so activity in one slot never cancels
// or clobbers the other's.
type slot struct {
	query    string
	results  []content.DeviceSummary
	message  string
	fetching bool
	selected *content.Device
	// target is the slug this slot is holding or resolving. A detail
	// response only updates the slot while its slug still matches target.
	target string
	// pending is the armed debounce timer, if any.
	pending *time.Timer
	// searchSeq invalidates superseded debounce timers that already fired.
	searchSeq uint64
}

// SlotView is a read-only snapshot of one slot's state.
type SlotView struct {
	Query    string
	Results  []content.DeviceSummary
	Message  string
	Fetching bool
	Selected *content.Device
}

// Screen is the comparison screen's state machine. All slot state is guarded
// by a single mutex; fetches for the two slots run independently and may be
// in flight simultaneously.
type Screen struct {
	mu        sync.Mutex
	client    content.Reader
	cache     *DeviceCache
	params    ParamStore
	extractor *specs.Extractor
	log       logger.Interface
	debounce  time.Duration
	ctx       context.Context
	slots     [SlotCount]*slot
}

// NewScreen creates a comparison screen over the given content client,
// session cache, and navigation-parameter store. The context bounds the
// debounced searches the screen starts on its own.
func NewScreen(
	ctx context.Context,
	client content.Reader,
	cache *DeviceCache,
	params ParamStore,
	log logger.Interface,
	cfg *config.CompareConfig,
) *Screen {
	s := &Screen{
		client:    client,
		cache:     cache,
		params:    params,
		extractor: specs.NewExtractor(),
		log:       log.WithComponent("selection"),
		debounce:  cfg.DebounceDelay,
		ctx:       ctx,
	}
	for i := range s.slots {
		s.slots[i] = &slot{}
	}
	return s
}

// SetQuery records new search text for the slot. Non-empty text re-arms the
// slot's debounce timer; only the most recent timer within the delay window
// issues a search. Clearing the text empties the slot's results synchronously.
func (s *Screen) SetQuery(idx int, text string) {
	if idx < 0 || idx >= SlotCount {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slots[idx]
	sl.stopPending()
	sl.query = text
	sl.message = ""

	if text == "" {
		sl.results = nil
		return
	}

	sl.searchSeq++
	seq := sl.searchSeq
	sl.pending = time.AfterFunc(s.debounce, func() {
		s.runSearch(idx, seq, text)
	})
}

// runSearch executes the debounced search for a slot. A stale sequence number
// means the timer was superseded after firing; it does nothing.
func (s *Screen) runSearch(idx int, seq uint64, text string) {
	s.mu.Lock()
	sl := s.slots[idx]
	if sl.searchSeq != seq || sl.selected != nil {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	results, err := s.client.SearchDevices(s.ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if sl.searchSeq != seq || sl.selected != nil {
		return
	}
	if err != nil {
		sl.results = nil
		sl.message = msgSearchFailed
		s.log.Error("device search failed", "slot", idx, "query", text, "error", err)
		return
	}
	sl.results = results
}

// Select resolves a search result into the slot's selection: the session
// cache is consulted first, the slot's query and results are cleared, and on
// success the slug is written to the slot's navigation parameter.
func (s *Screen) Select(ctx context.Context, idx int, slug string) error {
	if idx < 0 || idx >= SlotCount {
		return nil
	}

	s.mu.Lock()
	sl := s.slots[idx]
	sl.stopPending()
	sl.searchSeq++
	sl.query = ""
	sl.results = nil
	sl.message = ""
	sl.target = slug
	s.mu.Unlock()

	if err := s.resolve(ctx, idx, slug); err != nil {
		return err
	}

	// A late-arriving resolve past a newer Remove or Select must not write
	// the stale slug back into the navigation parameters.
	s.mu.Lock()
	still := sl.target == slug
	s.mu.Unlock()
	if still {
		s.params.SetDevice(idx, slug)
	}
	return nil
}

// Remove clears the slot's selection, query, and results, and removes the
// slot's navigation parameter.
func (s *Screen) Remove(idx int) {
	if idx < 0 || idx >= SlotCount {
		return
	}

	s.mu.Lock()
	sl := s.slots[idx]
	sl.stopPending()
	sl.searchSeq++
	sl.query = ""
	sl.results = nil
	sl.message = ""
	sl.selected = nil
	sl.target = ""
	// An in-flight resolve for the old target no longer owns the flag.
	sl.fetching = false
	s.mu.Unlock()

	s.params.ClearDevice(idx)
}

// Reconcile syncs the in-memory slots to the current navigation parameters:
// a parameter naming a slug the slot does not hold triggers a detail fetch,
// and an absent parameter clears its slot. Repeated runs with consistent
// state perform no network calls. The two slots reconcile concurrently.
func (s *Screen) Reconcile(ctx context.Context) error {
	params := s.params.Params()

	var wg sync.WaitGroup
	errs := make([]error, SlotCount)

	for idx := 0; idx < SlotCount; idx++ {
		desired := params.Device(idx)

		s.mu.Lock()
		sl := s.slots[idx]
		current := ""
		if sl.selected != nil {
			current = sl.selected.Slug
		}

		switch {
		case desired == current:
			// Already consistent.
			s.mu.Unlock()
		case desired == "":
			// Parameter removed while the slot still holds a selection.
			sl.selected = nil
			sl.target = ""
			sl.fetching = false
			s.mu.Unlock()
		default:
			sl.target = desired
			s.mu.Unlock()
			wg.Add(1)
			go func(idx int, slug string) {
				defer wg.Done()
				errs[idx] = s.resolve(ctx, idx, slug)
			}(idx, desired)
		}
	}

	wg.Wait()
	return errors.Join(errs...)
}

// resolve obtains the device for slug, cache first, and assigns it to the
// slot if the slot still targets that slug. A late response past a changed
// target still populates the cache for future hits. On failure the slot is
// left empty.
func (s *Screen) resolve(ctx context.Context, idx int, slug string) error {
	if dev, ok := s.cache.Get(slug); ok {
		s.assign(idx, slug, dev)
		return nil
	}

	s.mu.Lock()
	s.slots[idx].fetching = true
	s.mu.Unlock()

	dev, err := s.client.GetDeviceBySlug(ctx, slug)

	s.mu.Lock()
	sl := s.slots[idx]
	if sl.target == slug {
		sl.fetching = false
	}
	s.mu.Unlock()

	if err != nil {
		s.clearIfTarget(idx, slug)
		s.log.Error("device detail fetch failed", "slot", idx, "slug", slug, "error", err)
		return err
	}

	s.cache.Put(dev)
	s.assign(idx, slug, dev)
	return nil
}

// assign sets the resolved device on the slot while its target still matches.
func (s *Screen) assign(idx int, slug string, dev *content.Device) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slots[idx]
	if sl.target != slug {
		return
	}
	sl.selected = dev
	sl.query = ""
	sl.results = nil
	sl.message = ""
}

// clearIfTarget empties the slot after a failed fetch, unless a newer action
// retargeted it meanwhile.
func (s *Screen) clearIfTarget(idx int, slug string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slots[idx]
	if sl.target != slug {
		return
	}
	sl.selected = nil
	sl.target = ""
	sl.message = msgDetailFailed
}

// Slot returns a read-only snapshot of one slot's state.
func (s *Screen) Slot(idx int) SlotView {
	if idx < 0 || idx >= SlotCount {
		return SlotView{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slots[idx]
	view := SlotView{
		Query:    sl.query,
		Message:  sl.message,
		Fetching: sl.fetching,
		Selected: sl.selected,
	}
	view.Results = append(view.Results, sl.results...)
	return view
}

// SelectedDevices returns the devices currently held by the two slots.
// Either entry may be nil.
func (s *Screen) SelectedDevices() [SlotCount]*content.Device {
	s.mu.Lock()
	defer s.mu.Unlock()

	var devices [SlotCount]*content.Device
	for i, sl := range s.slots {
		devices[i] = sl.selected
	}
	return devices
}

// Comparison extracts both selected devices' specifications and builds the
// comparison. Empty when neither slot holds a device; the caller renders a
// prompt instead of a table.
func (s *Screen) Comparison() []compare.CategorySection {
	devices := s.SelectedDevices()

	var specA, specB specs.SpecMap
	if devices[0] != nil {
		specA = s.extractor.Extract(devices[0].BodyHTML)
	}
	if devices[1] != nil {
		specB = s.extractor.Extract(devices[1].BodyHTML)
	}
	return compare.Build(specA, specB)
}

// stopPending cancels the slot's armed debounce timer, if any.
// Caller must hold the screen mutex.
func (sl *slot) stopPending() {
	if sl.pending != nil {
		sl.pending.Stop()
		sl.pending = nil
	}
}
