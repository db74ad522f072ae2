package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/viadorassan/viador/backend/go-services/internal/database"
	"github.com/viadorassan/viador/backend/go-services/internal/models"
	"github.com/viadorassan/viador/backend/go-services/pkg/logger"
	"github.com/viadorassan/viador/backend/go-services/pkg/metrics"
)

const (
	resultInserted = "inserted"
	resultSkipped  = "skipped"
)

// Report counts what a run did per collection.
type Report struct {
	Inserted map[string]int
	Skipped  map[string]int
}

func newReport() Report {
	return Report{Inserted: map[string]int{}, Skipped: map[string]int{}}
}

func (r Report) record(collection, result string) {
	if result == resultInserted {
		r.Inserted[collection]++
	} else {
		r.Skipped[collection]++
	}
	metrics.SeedDocuments.WithLabelValues(collection, result).Inc()
}

// Seeder makes sure the reference collections hold the canonical dataset.
// Documents already present (matched by natural key) are left untouched.
type Seeder struct {
	store  *database.Store
	locker Locker
	now    func() time.Time
}

type Option func(*Seeder)

// WithLocker serializes runs across processes.
func WithLocker(l Locker) Option {
	return func(s *Seeder) { s.locker = l }
}

// WithClock overrides the time source used for created_at.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.now = now }
}

func New(store *database.Store, opts ...Option) *Seeder {
	s := &Seeder{store: store, locker: NoopLocker{}, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run seeds contact info, services and courses in that order. Any store
// error aborts the run; callers treat it as fatal.
func (s *Seeder) Run(ctx context.Context) (Report, error) {
	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("seed lock: %w", err)
	}
	defer func() {
		if err := unlock(context.Background()); err != nil {
			logger.Warnf("seed: releasing lock: %v", err)
		}
	}()

	if err := s.store.EnsureIndexes(ctx); err != nil {
		return Report{}, fmt.Errorf("seed indexes: %w", err)
	}

	rep := newReport()
	err = ensure(ctx, s.store.ContactInfo, database.CollectionContactInfo, "name", models.BusinessName, rep, func() (models.ContactInfo, error) {
		return models.NewContactInfo(DefaultContactInfo())
	})
	if err != nil {
		return rep, err
	}
	for _, svc := range DefaultServices() {
		err := ensure(ctx, s.store.Services, database.CollectionServices, "title", svc.Title, rep, func() (models.Service, error) {
			return models.NewService(svc, s.now())
		})
		if err != nil {
			return rep, err
		}
	}
	for _, c := range DefaultCourses() {
		err := ensure(ctx, s.store.Courses, database.CollectionCourses, "title", c.Title, rep, func() (models.ITCourse, error) {
			return models.NewITCourse(c, s.now())
		})
		if err != nil {
			return rep, err
		}
	}

	for _, name := range []string{database.CollectionContactInfo, database.CollectionServices, database.CollectionCourses} {
		logger.Infof("seed: %s inserted=%d skipped=%d", name, rep.Inserted[name], rep.Skipped[name])
	}
	return rep, nil
}

// ensure inserts build() unless a document with key=value already exists.
// Losing an insert race to another process counts as skipped.
func ensure[T any](ctx context.Context, col database.Collection[T], collection, key string, value any, rep Report, build func() (T, error)) error {
	existing, err := col.FindOne(ctx, database.Eq(key, value))
	if err != nil {
		return fmt.Errorf("seed %s %q: %w", collection, value, err)
	}
	if existing != nil {
		rep.record(collection, resultSkipped)
		return nil
	}
	doc, err := build()
	if err != nil {
		return fmt.Errorf("seed %s %q: %w", collection, value, err)
	}
	if err := col.InsertOne(ctx, &doc); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			logger.Debugf("seed: %s %q inserted concurrently", collection, value)
			rep.record(collection, resultSkipped)
			return nil
		}
		return fmt.Errorf("seed %s %q: %w", collection, value, err)
	}
	rep.record(collection, resultInserted)
	return nil
}
