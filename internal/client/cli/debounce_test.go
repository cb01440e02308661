package cli

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/khebbar/ayuda-cli/internal/client/models"
	"github.com/khebbar/ayuda-cli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeProfiles implements services.ProfileService for cli tests.
type fakeProfiles struct {
	mu       sync.Mutex
	searches []string
	searchFn func(query string) ([]models.Course, error)

	uploads   []string
	added     []string
	removed   []string
	completed []models.Course

	savedSkills string
	skills      string
}

func (f *fakeProfiles) UploadResume(_ context.Context, filename string, _ []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, filename)
	return nil
}

func (f *fakeProfiles) ParseResume(context.Context, string, []byte) error { return nil }

func (f *fakeProfiles) SearchCourses(_ context.Context, query string) ([]models.Course, error) {
	f.mu.Lock()
	f.searches = append(f.searches, query)
	fn := f.searchFn
	f.mu.Unlock()
	if fn != nil {
		return fn(query)
	}
	return []models.Course{{CourseID: query}}, nil
}

func (f *fakeProfiles) AddCompletedCourse(_ context.Context, courseID string) ([]models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, courseID)
	f.completed = append(f.completed, models.Course{CourseID: courseID, Name: courseID})
	return f.completed, nil
}

func (f *fakeProfiles) RemoveCompletedCourse(_ context.Context, courseID string) ([]models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, courseID)
	return f.completed, nil
}

func (f *fakeProfiles) CompletedCourses(context.Context) ([]models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.completed, nil
}

func (f *fakeProfiles) SaveAdditionalSkills(_ context.Context, skills string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.savedSkills = skills
	return nil
}

func (f *fakeProfiles) AdditionalSkills(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.skills, nil
}

func (f *fakeProfiles) UserByEmail(_ context.Context, email string) (*models.User, error) {
	return &models.User{Email: email}, nil
}

func (f *fakeProfiles) ReplaceSkills(context.Context, string, []string) error  { return nil }
func (f *fakeProfiles) ReplaceDomains(context.Context, string, []string) error { return nil }

func (f *fakeProfiles) searchLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searches...)
}

func TestSearchController_CoalescesRapidQueries(t *testing.T) {
	f := &fakeProfiles{}
	sc := newSearchController(f, 40*time.Millisecond, testLogger())

	committed := make(chan []models.Course, 1)
	sc.SetNotify(func(cs []models.Course) { committed <- cs })

	ctx := context.Background()
	sc.Input(ctx, "Calc")
	time.Sleep(10 * time.Millisecond)
	sc.Input(ctx, "Calculus")

	select {
	case <-committed:
	case <-time.After(time.Second):
		t.Fatal("no results committed")
	}

	searches := f.searchLog()
	if len(searches) != 1 || searches[0] != "Calculus" {
		t.Fatalf("want exactly one search for %q, got %v", "Calculus", searches)
	}
}

func TestSearchController_ShortQueryClearsWithoutNetwork(t *testing.T) {
	f := &fakeProfiles{}
	sc := newSearchController(f, 20*time.Millisecond, testLogger())

	ctx := context.Background()
	sc.Input(ctx, "Ca")
	sc.Input(ctx, "C")

	time.Sleep(80 * time.Millisecond)

	if searches := f.searchLog(); len(searches) != 0 {
		t.Fatalf("unexpected network searches: %v", searches)
	}
	if got := sc.Results(); len(got) != 0 {
		t.Fatalf("results not cleared: %v", got)
	}
}

func TestSearchController_StaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	f := &fakeProfiles{
		searchFn: func(query string) ([]models.Course, error) {
			if query == "Cal" {
				<-release
			}
			return []models.Course{{CourseID: query}}, nil
		},
	}
	sc := newSearchController(f, 10*time.Millisecond, testLogger())

	committed := make(chan []models.Course, 2)
	sc.SetNotify(func(cs []models.Course) { committed <- cs })

	ctx := context.Background()
	sc.Input(ctx, "Cal")
	time.Sleep(30 * time.Millisecond)
	sc.Input(ctx, "Calculus")
	close(release)

	select {
	case got := <-committed:
		if len(got) != 1 || got[0].CourseID != "Calculus" {
			t.Fatalf("stale result committed: %v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no results committed")
	}

	select {
	case extra := <-committed:
		t.Fatalf("second commit observed: %v", extra)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestDebouncer_CancelInvalidatesInFlight(t *testing.T) {
	d := NewDebouncer(5 * time.Millisecond)

	fired := make(chan uint64, 1)
	seq := d.Schedule(func(s uint64) { fired <- s })

	select {
	case got := <-fired:
		if got != seq {
			t.Fatalf("seq mismatch: got %d want %d", got, seq)
		}
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}

	if !d.Current(seq) {
		t.Fatal("seq should still be current")
	}
	d.Cancel()
	if d.Current(seq) {
		t.Fatal("seq should be invalidated after Cancel")
	}
}
