package searchbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakeview/internal/domain"
	"lakeview/internal/search"
)

// manualScheduler collects scheduled callbacks so tests control when the
// debounce window "elapses".
type manualScheduler struct {
	pending []*scheduledCall
}

type scheduledCall struct {
	delay    time.Duration
	fn       func()
	canceled bool
}

func (s *manualScheduler) Schedule(d time.Duration, fn func()) func() {
	call := &scheduledCall{delay: d, fn: fn}
	s.pending = append(s.pending, call)
	return func() { call.canceled = true }
}

// fire runs every pending, non-canceled callback once.
func (s *manualScheduler) fire() {
	calls := s.pending
	s.pending = nil
	for _, c := range calls {
		if !c.canceled {
			c.fn()
		}
	}
}

// countingSearcher wraps a registry and records every committed search.
type countingSearcher struct {
	registry *search.Registry
	queries  []string
	catalogs []string
}

func (c *countingSearcher) Search(catalog, query string, limit int) []search.Match {
	c.catalogs = append(c.catalogs, catalog)
	c.queries = append(c.queries, query)
	return c.registry.Search(catalog, query, limit)
}

func strPtr(s string) *string { return &s }

func testRegistry() *search.Registry {
	return search.BuildRegistry(domain.Snapshot{Catalogs: []domain.Catalog{
		{
			Name: "tpc-h",
			Databases: []domain.Database{{
				Name: "sales",
				Tables: []domain.Table{
					{
						Name:    "customer",
						Columns: []domain.Column{{Name: "c_custkey", Type: "Int64"}},
						Partitions: []domain.Partition{
							{ColumnName: "c_custkey", TypeAnnotation: strPtr("int"), Value: 1},
						},
					},
					{Name: "orders", Columns: []domain.Column{{Name: "o_custkey", Type: "Int64"}}},
				},
			}},
		},
		{
			Name: "alt",
			Databases: []domain.Database{{
				Name:   "sales",
				Tables: []domain.Table{{Name: "customer_snapshot"}},
			}},
		},
	}})
}

func newTestBox(t *testing.T) (*Box, *manualScheduler, *countingSearcher) {
	t.Helper()
	sched := &manualScheduler{}
	searcher := &countingSearcher{registry: testRegistry()}
	box := New(Config{
		Searcher:  searcher,
		Scheduler: sched,
		Catalog:   "tpc-h",
	})
	return box, sched, searcher
}

func TestBox_DebounceCoalescesKeystrokes(t *testing.T) {
	box, sched, searcher := newTestBox(t)

	// "cus" then "customer" inside the quiet period: one search, for the
	// final text.
	box.SetQuery("cus")
	box.SetQuery("customer")
	sched.fire()

	assert.Equal(t, []string{"customer"}, searcher.queries)
	assert.True(t, box.PopupVisible())
	assert.Equal(t, 0, box.Active())
	assert.Equal(t, StateTyping, box.State())
}

func TestBox_StaleTimerIsDropped(t *testing.T) {
	box, sched, searcher := newTestBox(t)

	box.SetQuery("cus")
	call := sched.pending[0]
	box.SetQuery("customer")

	// Simulate the first timer racing its cancellation: even if it fires,
	// the commit must not apply because the query moved on.
	call.canceled = false
	call.fn()
	assert.Empty(t, searcher.queries)

	sched.fire()
	assert.Equal(t, []string{"customer"}, searcher.queries)
}

func TestBox_EmptyQueryResetsWithoutSearch(t *testing.T) {
	box, sched, searcher := newTestBox(t)

	box.SetQuery("customer")
	sched.fire()
	require.True(t, box.PopupVisible())

	box.SetQuery("")
	assert.Equal(t, StateIdle, box.State())
	assert.False(t, box.PopupVisible())

	sched.fire()
	assert.Equal(t, []string{"customer"}, searcher.queries, "clearing must not schedule a search")
}

func TestBox_ArrowNavigationWrapsAround(t *testing.T) {
	box, sched, _ := newTestBox(t)

	box.SetQuery("custkey")
	sched.fire()
	results := box.Results()
	require.Len(t, results, 3)

	box.MoveDown()
	assert.Equal(t, 1, box.Active())
	assert.Equal(t, StateNavigating, box.State())

	box.MoveDown()
	box.MoveDown()
	assert.Equal(t, 0, box.Active(), "down past the end wraps to the first result")

	box.MoveUp()
	assert.Equal(t, len(results)-1, box.Active(), "up at the start wraps to the last result")
}

func TestBox_ArrowKeysNoOpOnEmptyResults(t *testing.T) {
	box, _, _ := newTestBox(t)

	box.MoveDown()
	box.MoveUp()
	assert.Equal(t, 0, box.Active())
	assert.Equal(t, StateIdle, box.State())
}

func TestBox_ActivateResetsBeforeNavigation(t *testing.T) {
	box, sched, _ := newTestBox(t)

	box.SetQuery("customer")
	sched.fire()
	require.True(t, box.PopupVisible())

	locator, ok := box.Activate()
	require.True(t, ok)
	assert.Equal(t, "/tpc-h/sales/customer", locator)

	assert.Equal(t, StateIdle, box.State())
	assert.Empty(t, box.Query())
	assert.False(t, box.PopupVisible(), "no stale results after activation")
}

func TestBox_ActivateAt(t *testing.T) {
	box, sched, _ := newTestBox(t)

	box.SetQuery("custkey")
	sched.fire()
	results := box.Results()
	require.Len(t, results, 3)

	locator, ok := box.ActivateAt(2)
	require.True(t, ok)
	assert.Equal(t, results[2].Item.Locator, locator)
	assert.Equal(t, StateIdle, box.State())

	_, ok = box.ActivateAt(5)
	assert.False(t, ok)
}

func TestBox_ActivateWithNoResults(t *testing.T) {
	box, _, _ := newTestBox(t)
	_, ok := box.Activate()
	assert.False(t, ok)
}

func TestBox_DismissClearsQueryAndResults(t *testing.T) {
	box, sched, _ := newTestBox(t)

	box.SetQuery("customer")
	sched.fire()
	require.True(t, box.PopupVisible())

	// Pointer-down outside the field and popup, or Escape.
	box.Dismiss()
	assert.Empty(t, box.Query())
	assert.False(t, box.PopupVisible())
	assert.Equal(t, StateIdle, box.State())
}

func TestBox_CatalogSwitchRerunsCommittedQuery(t *testing.T) {
	box, sched, searcher := newTestBox(t)

	box.SetQuery("customer")
	sched.fire()
	require.True(t, box.PopupVisible())
	assert.Equal(t, "/tpc-h/sales/customer", box.Results()[0].Item.Locator)

	box.SetCatalog("alt")
	assert.Equal(t, []string{"tpc-h", "alt"}, searcher.catalogs)
	require.True(t, box.PopupVisible())
	assert.Equal(t, "/alt/sales/customer_snapshot", box.Results()[0].Item.Locator)
	assert.Equal(t, 0, box.Active())
}

func TestBox_CatalogSwitchWithQueryInFlight(t *testing.T) {
	box, sched, searcher := newTestBox(t)

	box.SetQuery("customer")
	box.SetCatalog("alt")

	// The query keeps its debounce window across the switch and commits
	// against the catalog active at apply time.
	sched.fire()
	assert.Equal(t, []string{"customer"}, searcher.queries)
	assert.Equal(t, []string{"alt"}, searcher.catalogs)
	require.True(t, box.PopupVisible())
	assert.Equal(t, "/alt/sales/customer_snapshot", box.Results()[0].Item.Locator)
}

func TestBox_OnUpdateFiresAfterCommit(t *testing.T) {
	sched := &manualScheduler{}
	var updates int
	box := New(Config{
		Searcher:  &countingSearcher{registry: testRegistry()},
		Scheduler: sched,
		Catalog:   "tpc-h",
		OnUpdate:  func() { updates++ },
	})

	box.SetQuery("customer")
	assert.Zero(t, updates)
	sched.fire()
	assert.Equal(t, 1, updates)
}

func TestBox_UnknownCatalogYieldsEmptyResults(t *testing.T) {
	sched := &manualScheduler{}
	box := New(Config{
		Searcher:  &countingSearcher{registry: testRegistry()},
		Scheduler: sched,
		Catalog:   "missing",
	})

	box.SetQuery("customer")
	sched.fire()
	assert.False(t, box.PopupVisible())
	assert.Equal(t, StateTyping, box.State())
}

func TestTimerScheduler(t *testing.T) {
	var sched TimerScheduler
	done := make(chan struct{})
	cancel := sched.Schedule(time.Millisecond, func() { close(done) })
	defer cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled callback never fired")
	}
}
