// Package searchbox implements the interactive search box state machine:
// debounced query commits, ranked result display, and keyboard or pointer
// driven selection.
//
// The box never blocks. Text input updates the raw query immediately; the
// effective query is committed only after the debounce window elapses without
// another keystroke. A stale timer firing after the input moved on is
// dropped; a commit that does land searches the catalog active at apply
// time, under the same lock that stores its results, so displayed results
// always match the current (query, catalog) pair.
package searchbox

import (
	"sync"
	"time"

	"lakeview/internal/search"
)

// State is the box's lifecycle position. Activation is terminal per search:
// it resets the box to StateIdle before the caller navigates away.
type State int

const (
	// StateIdle: no query, popup closed.
	StateIdle State = iota
	// StateTyping: text present, results pending or shown.
	StateTyping
	// StateNavigating: keyboard-driven selection among shown results.
	StateNavigating
)

// Defaults match the browsing UI: a 100ms quiet period and ten results.
const (
	DefaultDebounce = 100 * time.Millisecond
	DefaultLimit    = 10
)

// Searcher runs a ranked query against one catalog's index.
// *search.Registry satisfies it.
type Searcher interface {
	Search(catalog, query string, limit int) []search.Match
}

// Config configures a Box.
type Config struct {
	Searcher  Searcher
	Scheduler Scheduler
	Catalog   string        // initially active catalog
	Debounce  time.Duration // 0 means DefaultDebounce
	Limit     int           // 0 means DefaultLimit

	// OnUpdate, when set, is called after a debounced commit applies new
	// results. Callers that render from another goroutine (the TUI event
	// loop) use it to trigger a repaint.
	OnUpdate func()
}

// Box is the search box state machine. All methods are safe for concurrent
// use; the debounce timer fires on a scheduler goroutine.
type Box struct {
	searcher Searcher
	sched    Scheduler
	debounce time.Duration
	limit    int
	onUpdate func()

	mu        sync.Mutex
	state     State
	catalog   string
	query     string
	committed string
	results   []search.Match
	active    int
	cancel    func()
}

// New creates an idle box.
func New(cfg Config) *Box {
	b := &Box{
		searcher: cfg.Searcher,
		sched:    cfg.Scheduler,
		catalog:  cfg.Catalog,
		debounce: cfg.Debounce,
		limit:    cfg.Limit,
		onUpdate: cfg.OnUpdate,
	}
	if b.sched == nil {
		b.sched = TimerScheduler{}
	}
	if b.debounce <= 0 {
		b.debounce = DefaultDebounce
	}
	if b.limit <= 0 {
		b.limit = DefaultLimit
	}
	return b
}

// SetCatalog switches the active catalog. A committed query still on screen
// is re-run against the new catalog's index immediately; a query in flight
// keeps its debounce window and will commit against the new catalog.
func (b *Box) SetCatalog(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.catalog == name {
		return
	}
	b.catalog = name
	if b.committed != "" {
		b.applyLocked(b.committed)
	}
}

// SetQuery records a keystroke. The raw query updates immediately; the
// committed search is rescheduled to fire after the debounce window, so a
// burst of keystrokes triggers exactly one search, for the final text.
func (b *Box) SetQuery(q string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.query = q
	b.cancelPendingLocked()

	if q == "" {
		b.resetLocked()
		return
	}

	b.state = StateTyping
	b.cancel = b.sched.Schedule(b.debounce, func() {
		b.commit(q)
	})
}

// commit applies a debounced query if it is still the one on screen. The
// search runs against whatever catalog is active at apply time, so a catalog
// switch during the debounce window lands on the new index.
func (b *Box) commit(query string) {
	b.mu.Lock()
	if b.query != query {
		b.mu.Unlock()
		return
	}
	b.applyLocked(query)
	onUpdate := b.onUpdate
	b.mu.Unlock()

	if onUpdate != nil {
		onUpdate()
	}
}

func (b *Box) applyLocked(query string) {
	b.committed = query
	b.results = b.searcher.Search(b.catalog, query, b.limit)
	b.active = 0
	b.state = StateTyping
}

// MoveDown advances the highlighted result, wrapping past the end. No-op
// when the list is empty.
func (b *Box) MoveDown() { b.move(1) }

// MoveUp moves the highlight back, wrapping past the start. No-op when the
// list is empty.
func (b *Box) MoveUp() { b.move(-1) }

func (b *Box) move(delta int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := len(b.results)
	if n == 0 {
		return
	}
	b.active = (b.active + delta + n) % n
	b.state = StateNavigating
}

// Activate selects the highlighted result: the box fully resets before the
// locator is handed back, so returning to the page never shows stale results.
func (b *Box) Activate() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.activateLocked(b.active)
}

// ActivateAt selects the result at index i, the pointer-click equivalent of
// Enter on it.
func (b *Box) ActivateAt(i int) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.activateLocked(i)
}

func (b *Box) activateLocked(i int) (string, bool) {
	if i < 0 || i >= len(b.results) {
		return "", false
	}
	locator := b.results[i].Item.Locator
	b.cancelPendingLocked()
	b.resetLocked()
	return locator, true
}

// Dismiss clears the query and results, returning to idle. Used for Escape
// and for pointer-down outside the field and popup.
func (b *Box) Dismiss() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cancelPendingLocked()
	b.resetLocked()
}

func (b *Box) resetLocked() {
	b.query = ""
	b.committed = ""
	b.results = nil
	b.active = 0
	b.state = StateIdle
}

func (b *Box) cancelPendingLocked() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}

// State returns the current lifecycle state.
func (b *Box) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Query returns the raw (not necessarily committed) query text.
func (b *Box) Query() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.query
}

// Results returns the current ranked results.
func (b *Box) Results() []search.Match {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.results
}

// Active returns the index of the highlighted result.
func (b *Box) Active() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active
}

// PopupVisible reports whether the result popup should be shown. It is
// visible iff there is at least one current result.
func (b *Box) PopupVisible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.results) > 0
}
