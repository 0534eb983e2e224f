package client

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"alx_stays/internal/domain"
)

// DefaultDebounce is the quiet window after the last filter change before
// a fetch is issued.
const DefaultDebounce = 300 * time.Millisecond

// SearchFunc is the fetch the controller drives; *API.SearchProperties
// satisfies it.
type SearchFunc func(ctx context.Context, c domain.Criteria) ([]domain.Property, error)

// Snapshot is the observable state of the controller at one instant.
type Snapshot struct {
	Loading bool
	Err     string
	Results []domain.Property
}

// Controller owns the search/filter state for a listing view. Every
// criteria change restarts a single debounce timer; when the window
// elapses one fetch is issued, tagged with a sequence number. Only the
// latest-issued fetch may apply its result, so a slow stale response
// never overwrites a newer one regardless of network ordering.
//
// The favorites set lives here too but is synchronous and independent of
// the fetch state machine.
type Controller struct {
	search   SearchFunc
	debounce time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	criteria  domain.Criteria
	timer     *time.Timer
	seq       uint64
	loading   bool
	errMsg    string
	results   []domain.Property
	favorites map[string]struct{}
}

func NewController(search SearchFunc, debounce time.Duration) *Controller {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		search:    search,
		debounce:  debounce,
		ctx:       ctx,
		cancel:    cancel,
		loading:   true, // initial state is Loading until the first fetch settles
		favorites: map[string]struct{}{},
	}
}

// Start issues the initial fetch without waiting out a debounce window.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fireLocked()
}

func (c *Controller) SetSearch(s string) {
	c.update(func(cr *domain.Criteria) { cr.Search = s })
}

func (c *Controller) SetMinPrice(p *float64) {
	c.update(func(cr *domain.Criteria) { cr.MinPrice = p })
}

func (c *Controller) SetMaxPrice(p *float64) {
	c.update(func(cr *domain.Criteria) { cr.MaxPrice = p })
}

func (c *Controller) SetPropertyType(t string) {
	c.update(func(cr *domain.Criteria) { cr.PropertyType = t })
}

func (c *Controller) SetMinBedrooms(n *int) {
	c.update(func(cr *domain.Criteria) { cr.MinBedrooms = n })
}

func (c *Controller) SetMinRating(r *float64) {
	c.update(func(cr *domain.Criteria) { cr.MinRating = r })
}

// SetCriteria replaces the whole criteria record atomically.
func (c *Controller) SetCriteria(cr domain.Criteria) {
	c.update(func(dst *domain.Criteria) { *dst = cr })
}

// ClearFilters resets every criterion and the search text in one state
// update, scheduling exactly one re-fetch.
func (c *Controller) ClearFilters() {
	c.update(func(cr *domain.Criteria) { *cr = domain.Criteria{} })
}

// Refresh re-schedules a fetch for the current criteria (route/navigation
// parameter changes).
func (c *Controller) Refresh() {
	c.update(func(*domain.Criteria) {})
}

func (c *Controller) Criteria() domain.Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Property, len(c.results))
	copy(out, c.results)
	return Snapshot{Loading: c.loading, Err: c.errMsg, Results: out}
}

// Close cancels the pending timer and any in-flight fetch. Late results
// are ignored by the sequence check anyway; this just stops the work.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.seq++ // retire any in-flight fetch
	c.mu.Unlock()
	c.cancel()
}

// update applies one mutation to the criteria and restarts the debounce
// timer. At most one timer is live at a time: a newer change stops the
// pending one before scheduling its own.
func (c *Controller) update(mut func(*domain.Criteria)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	mut(&c.criteria)
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.fireLocked()
	})
}

// fireLocked issues one fetch for the current criteria. The caller holds
// the lock; the fetch itself runs outside it.
func (c *Controller) fireLocked() {
	c.seq++
	seq := c.seq
	crit := c.criteria
	c.loading = true

	go func() {
		results, err := c.search(c.ctx, crit)
		c.mu.Lock()
		defer c.mu.Unlock()
		if seq != c.seq {
			return // stale response, a newer request was issued
		}
		c.loading = false
		if err != nil {
			if c.ctx.Err() != nil {
				return // view retired, keep whatever state we had
			}
			log.Error().Err(err).Msg("property search failed")
			c.errMsg = "Failed to load properties. Please try again later."
			c.results = nil
			return
		}
		c.errMsg = ""
		c.results = results
	}()
}

// ---- favorites ----

// ToggleFavorite adds id if absent and removes it if present, returning
// the new membership. Toggling twice restores the original state.
func (c *Controller) ToggleFavorite(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.favorites[id]; ok {
		delete(c.favorites, id)
		return false
	}
	c.favorites[id] = struct{}{}
	return true
}

func (c *Controller) IsFavorite(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.favorites[id]
	return ok
}

// Favorites returns a copy of the current set.
func (c *Controller) Favorites() map[string]struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]struct{}, len(c.favorites))
	for id := range c.favorites {
		out[id] = struct{}{}
	}
	return out
}
