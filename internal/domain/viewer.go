package domain

// ViewerPhase is the fetch state of a viewer session.
type ViewerPhase string

// Viewer phases. A session starts Loading and terminates in Ready or
// Unavailable; there is no crash path.
const (
	PhaseLoading     ViewerPhase = "loading"
	PhaseReady       ViewerPhase = "ready"
	PhaseUnavailable ViewerPhase = "unavailable"
)

// ViewRecorder receives the single views event a session emits on its
// first successful load. Implementations must not block; the session
// calls it exactly once per successful resolve.
type ViewRecorder func(catalogID string)

// filterKey is the explicit memo key for derived item lists: catalog
// identity plus the active filter. Results are never reused across
// catalogs.
type filterKey struct {
	catalogID string
	query     string
	category  string
}

// ViewerSession is the per-visit state machine behind a storefront page:
// the catalog fetch lifecycle, the live filter, and the single-item
// detail modal. Sessions are confined to one goroutine (the event loop
// serving a visit) and perform no locking.
type ViewerSession struct {
	phase    ViewerPhase
	catalog  *Catalog
	torndown bool

	recorder     ViewRecorder
	viewRecorded bool

	filter   ItemFilter
	selected *CatalogItem

	memoKey   filterKey
	memoItems []CatalogItem
	memoValid bool

	categories      []string
	categoriesValid bool
}

// NewViewerSession creates a session in the Loading phase. The recorder
// may be nil when view tracking is not wanted (tests, previews).
func NewViewerSession(recorder ViewRecorder) *ViewerSession {
	return &ViewerSession{
		phase:    PhaseLoading,
		recorder: recorder,
	}
}

// Phase returns the current fetch phase.
func (s *ViewerSession) Phase() ViewerPhase {
	return s.phase
}

// Catalog returns the resolved catalog, or nil before a successful load.
func (s *ViewerSession) Catalog() *Catalog {
	return s.catalog
}

// Resolve completes the fetch with a catalog. The first successful
// resolve records exactly one views event; later calls (re-renders,
// duplicate deliveries) change nothing. A resolve arriving after
// Teardown is discarded entirely.
func (s *ViewerSession) Resolve(catalog *Catalog) {
	if s.torndown || s.phase != PhaseLoading || catalog == nil {
		return
	}
	s.catalog = catalog
	s.phase = PhaseReady

	if !s.viewRecorded && s.recorder != nil {
		s.recorder(catalog.ID)
	}
	s.viewRecorded = true
}

// Fail completes the fetch with an error. NotFound and transport
// failures collapse into the same Unavailable terminal phase; no views
// event is recorded.
func (s *ViewerSession) Fail() {
	if s.torndown || s.phase != PhaseLoading {
		return
	}
	s.phase = PhaseUnavailable
}

// Teardown marks the session dead. Any in-flight fetch result arriving
// afterwards is discarded and mutates nothing.
func (s *ViewerSession) Teardown() {
	s.torndown = true
}

// SetQuery updates the free-text query.
func (s *ViewerSession) SetQuery(query string) {
	s.filter.Query = query
}

// SetCategory updates the active category; empty clears it.
func (s *ViewerSession) SetCategory(category string) {
	s.filter.Category = category
}

// Filter returns the active filter.
func (s *ViewerSession) Filter() ItemFilter {
	return s.filter
}

// VisibleItems returns the filtered item list for the current catalog
// and filter. The computation is memoized on (catalog, query, category)
// so repeated renders with unchanged inputs reuse the previous result.
func (s *ViewerSession) VisibleItems() []CatalogItem {
	if s.catalog == nil {
		return nil
	}
	key := filterKey{
		catalogID: s.catalog.ID,
		query:     s.filter.Query,
		category:  s.filter.Category,
	}
	if s.memoValid && s.memoKey == key {
		return s.memoItems
	}
	s.memoKey = key
	s.memoItems = FilterItems(s.catalog.Items, s.filter)
	s.memoValid = true
	return s.memoItems
}

// Categories returns the catalog's category facets, computed once per
// resolved catalog.
func (s *ViewerSession) Categories() []string {
	if s.catalog == nil {
		return nil
	}
	if !s.categoriesValid {
		s.categories = Categories(s.catalog.Items)
		s.categoriesValid = true
	}
	return s.categories
}

// Select opens the detail modal for the item with the given ID.
// Selecting while another item is open replaces it directly; at most one
// item is ever open. Unknown IDs are ignored.
func (s *ViewerSession) Select(itemID string) {
	if s.catalog == nil {
		return
	}
	if item := s.catalog.Item(itemID); item != nil {
		s.selected = item
	}
}

// Dismiss closes the detail modal. Overlay clicks, the close control,
// and completing the in-modal CTA all funnel here.
func (s *ViewerSession) Dismiss() {
	s.selected = nil
}

// Selected returns the open item, or nil when the modal is closed.
func (s *ViewerSession) Selected() *CatalogItem {
	return s.selected
}
