package jobs_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"burger/internal/jobs"
	"burger/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lastLoad = time.Date(2024, 4, 25, 23, 0, 24, 0, time.UTC)

type fakeRefresher struct {
	mu    sync.Mutex
	calls int
	size  int
	err   error
	done  chan struct{}
}

func newFakeRefresher(size int, err error) *fakeRefresher {
	return &fakeRefresher{size: size, err: err, done: make(chan struct{}, 16)}
}

func (f *fakeRefresher) Refresh(ctx context.Context) (int, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("refresh must run with a deadline")
	}
	select {
	case f.done <- struct{}{}:
	default:
	}
	return f.size, f.err
}

func (f *fakeRefresher) RefreshedAt() time.Time {
	return lastLoad
}

func (f *fakeRefresher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type recordingObserver struct {
	mu    sync.Mutex
	sizes []int
	times []time.Time
	errs  []error
}

func (o *recordingObserver) CatalogRefreshed(size int, refreshedAt time.Time, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sizes = append(o.sizes, size)
	o.times = append(o.times, refreshedAt)
	o.errs = append(o.errs, err)
}

func TestNewCatalogRefreshJob_Spec(t *testing.T) {
	for _, spec := range []string{"", "*/30 * * * * *", "0 */5 * * *", "@every 1m"} {
		_, err := jobs.NewCatalogRefreshJob(newFakeRefresher(0, nil), spec, logging.NewNop())
		require.NoError(t, err, spec)
	}

	_, err := jobs.NewCatalogRefreshJob(newFakeRefresher(0, nil), "every now and then", logging.NewNop())
	require.Error(t, err)
}

func TestCatalogRefreshJob_Run(t *testing.T) {
	t.Run("should notify observers on success", func(t *testing.T) {
		refresher := newFakeRefresher(5, nil)
		observer := &recordingObserver{}
		job, err := jobs.NewCatalogRefreshJob(refresher, "", logging.NewNop(), observer)
		require.NoError(t, err)

		job.Run()

		assert.Equal(t, 1, refresher.Calls())
		assert.Equal(t, []int{5}, observer.sizes)
		assert.Equal(t, []time.Time{lastLoad}, observer.times)
		assert.Equal(t, []error{nil}, observer.errs)
	})

	t.Run("should notify observers on failure", func(t *testing.T) {
		refreshErr := errors.New("db down")
		observer := &recordingObserver{}
		job, err := jobs.NewCatalogRefreshJob(newFakeRefresher(0, refreshErr), "", logging.NewNop(), observer)
		require.NoError(t, err)

		job.Run()

		assert.Equal(t, []error{refreshErr}, observer.errs)
	})
}

func TestCatalogRefreshJob_Schedule(t *testing.T) {
	refresher := newFakeRefresher(1, nil)
	job, err := jobs.NewCatalogRefreshJob(refresher, "* * * * * *", logging.NewNop())
	require.NoError(t, err)

	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-refresher.done:
	case <-time.After(3 * time.Second):
		t.Fatal("refresh was not scheduled")
	}
	assert.GreaterOrEqual(t, refresher.Calls(), 1)
}

type stubJob struct {
	name     string
	startErr error
	events   *[]string
}

func (s stubJob) Name() string { return s.name }

func (s stubJob) Start() error {
	if s.startErr != nil {
		return s.startErr
	}
	*s.events = append(*s.events, "start "+s.name)
	return nil
}

func (s stubJob) Stop() { *s.events = append(*s.events, "stop "+s.name) }

func TestJobManager(t *testing.T) {
	t.Run("should start in order and stop in reverse", func(t *testing.T) {
		var events []string
		jm := jobs.NewJobManager(logging.NewNop(),
			stubJob{name: "a", events: &events},
			stubJob{name: "b", events: &events},
		)

		require.NoError(t, jm.StartAll())
		jm.StopAll()
		jm.StopAll()

		assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, events)
	})

	t.Run("should stop started jobs when one fails", func(t *testing.T) {
		var events []string
		jm := jobs.NewJobManager(logging.NewNop(),
			stubJob{name: "a", events: &events},
			stubJob{name: "b", events: &events, startErr: errors.New("boom")},
		)

		err := jm.StartAll()

		require.ErrorContains(t, err, "failed to start b")
		assert.Equal(t, []string{"start a", "stop a"}, events)
	})
}
