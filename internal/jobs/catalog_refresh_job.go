package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultCatalogRefreshSpec runs the refresh every 30 seconds.
const DefaultCatalogRefreshSpec = "*/30 * * * * *"

const catalogRefreshTimeout = 10 * time.Second

// CatalogRefresher reloads a catalog and reports how many entries it holds.
type CatalogRefresher interface {
	Refresh(ctx context.Context) (int, error)
	RefreshedAt() time.Time
}

// CatalogRefreshObserver is told about every refresh attempt. refreshedAt is
// the time of the last successful load, which predates a failed attempt.
type CatalogRefreshObserver interface {
	CatalogRefreshed(size int, refreshedAt time.Time, err error)
}

// CatalogRefreshJob keeps the catalog cache in step with the database.
type CatalogRefreshJob struct {
	refresher CatalogRefresher
	observers []CatalogRefreshObserver
	spec      string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCatalogRefreshJob creates the job. The spec is a six-field cron
// expression (seconds first) or a descriptor such as "@every 1m"; it is
// validated here so that a bad configuration fails at startup.
func NewCatalogRefreshJob(
	refresher CatalogRefresher,
	spec string,
	logger *slog.Logger,
	observers ...CatalogRefreshObserver,
) (*CatalogRefreshJob, error) {
	if spec == "" {
		spec = DefaultCatalogRefreshSpec
	}

	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	if _, err := parser.Parse(spec); err != nil {
		return nil, err
	}

	return &CatalogRefreshJob{
		refresher: refresher,
		observers: observers,
		spec:      spec,
		cron:      cron.New(cron.WithParser(parser)),
		logger:    logger.With("component", "catalog_refresh_job"),
	}, nil
}

// Name identifies the job in logs.
func (j *CatalogRefreshJob) Name() string {
	return "catalog refresh job"
}

// Start schedules the refresh.
func (j *CatalogRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "spec", j.spec)
	return nil
}

// Run performs one refresh. It is what the schedule calls and may also be
// called directly, for example to warm the cache at startup.
func (j *CatalogRefreshJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), catalogRefreshTimeout)
	defer cancel()

	size, err := j.refresher.Refresh(ctx)
	refreshedAt := j.refresher.RefreshedAt()
	for _, o := range j.observers {
		o.CatalogRefreshed(size, refreshedAt, err)
	}

	if err != nil {
		j.logger.ErrorContext(ctx, "Catalog refresh failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Catalog refreshed", "ingredients", size)
}

// Stop stops the schedule and waits for a running refresh to finish.
func (j *CatalogRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}
