package cli

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/khebbar/ayuda-cli/internal/client/models"
	"github.com/khebbar/ayuda-cli/internal/client/services"
	"github.com/khebbar/ayuda-cli/internal/logging"
)

// Debouncer coalesces rapid successive triggers into a single deferred call.
// Each Schedule cancels the previously armed timer and bumps the sequence
// number, so a caller can tell whether a slow response still belongs to the
// newest trigger.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	seq   uint64
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule arms the timer to call fn after the quiet period, cancelling any
// pending call. fn receives the sequence number of this trigger; check it
// against Current before committing the result.
func (d *Debouncer) Schedule(fn func(seq uint64)) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() { fn(seq) })
	return seq
}

// Cancel stops any pending call and invalidates all in-flight sequence
// numbers.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}

// Current reports whether seq is still the newest trigger.
func (d *Debouncer) Current(seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return seq == d.seq
}

// minQueryLength is the shortest query the search will send to the server.
const minQueryLength = 2

// searchController drives the incremental course search. Every input line
// reschedules the debounced lookup; a stale response, one whose sequence
// number is no longer current when it lands, is discarded instead of
// overwriting newer results.
type searchController struct {
	profiles services.ProfileService
	debounce *Debouncer
	log      logging.Logger

	mu      sync.Mutex
	results []models.Course
	notify  func([]models.Course)
}

func newSearchController(profiles services.ProfileService, delay time.Duration, log logging.Logger) *searchController {
	return &searchController{profiles: profiles, debounce: NewDebouncer(delay), log: log}
}

// SetNotify registers the callback invoked whenever a result set commits.
// Pass nil to detach.
func (s *searchController) SetNotify(fn func([]models.Course)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = fn
}

// Input feeds the current query text. Queries under two characters clear the
// results and cancel any pending lookup without touching the network.
func (s *searchController) Input(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if len(query) < minQueryLength {
		s.debounce.Cancel()
		s.commit(nil)
		return
	}

	s.debounce.Schedule(func(seq uint64) {
		courses, err := s.profiles.SearchCourses(ctx, query)
		if err != nil {
			s.log.Warn(ctx, "course search failed", "query", query, "err", err)
			return
		}
		if !s.debounce.Current(seq) {
			return
		}
		s.commit(courses)
	})
}

func (s *searchController) Results() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

func (s *searchController) commit(courses []models.Course) {
	s.mu.Lock()
	s.results = courses
	notify := s.notify
	s.mu.Unlock()
	if notify != nil {
		notify(courses)
	}
}
