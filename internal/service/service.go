package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/events"
	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/models"
	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/store"
)

// Recorder counts applied mutations per entity and outcome. The metrics
// package provides a Prometheus implementation; the default is a no-op.
type Recorder interface {
	Observe(entity, action, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) Observe(string, string, string) {}

// Service owns the in-memory dataset and enforces every business rule:
// the work-order state machine, technician binding, history writes and the
// referential-integrity rules on deletes. One mutex guards the whole
// dataset so each operation is a single atomic transaction, including its
// cross-entity side effects.
type Service struct {
	mu       sync.Mutex
	store    store.Store
	data     *models.Dataset
	notifier events.Notifier
	metrics  Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithNotifier publishes a change event after every persisted mutation.
func WithNotifier(n events.Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithMetrics records mutation counters.
func WithMetrics(r Recorder) Option {
	return func(s *Service) { s.metrics = r }
}

// New creates a Service over the given store with an empty dataset. Call
// Load to pull the last stored state before serving requests.
func New(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:    st,
		data:     models.NewDataset(),
		notifier: events.Nop{},
		metrics:  nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory dataset with the last stored state.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %v: %w", err, ErrPersistence)
	}
	data.Normalize()
	s.data = data
	log.WithFields(log.Fields{
		"equipment":   len(data.Equipment),
		"work_orders": len(data.WorkOrders),
		"technicians": len(data.Technicians),
		"history":     len(data.History),
		"plans":       len(data.Plans),
	}).Info("dataset loaded")
	return nil
}

// Save writes the current in-memory dataset to the store.
func (s *Service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(ctx, s.data); err != nil {
		return fmt.Errorf("save dataset: %v: %w", err, ErrPersistence)
	}
	return nil
}

// commit persists the dataset after a mutation and records the event.
// The mutation is already applied; a failed save reports ErrPersistence so
// the caller knows durable state lags behind, but nothing is rolled back.
// Called with the lock held.
func (s *Service) commit(ctx context.Context, entity, action string, id int) error {
	if err := s.store.Save(ctx, s.data); err != nil {
		log.WithFields(log.Fields{"entity": entity, "action": action, "id": id}).
			WithError(err).Warn("mutation applied in memory but not persisted")
		s.metrics.Observe(entity, action, "persistence_error")
		return fmt.Errorf("%s %s #%d applied but not persisted: %v: %w", action, entity, id, err, ErrPersistence)
	}
	s.metrics.Observe(entity, action, "ok")
	if err := s.notifier.Publish(ctx, events.Event{Entity: entity, Action: action, ID: id, At: time.Now()}); err != nil {
		log.WithError(err).Warn("change event not published")
	}
	return nil
}

// Stats summarizes the dataset for the reports surface.
type Stats struct {
	Equipment        int `json:"equipment"`
	WorkOrders       int `json:"work_orders"`
	Technicians      int `json:"technicians"`
	CompletedInTotal int `json:"completed_in_total"`
	Plans            int `json:"plans"`
	OrdersPending    int `json:"orders_pending"`
	OrdersInProgress int `json:"orders_in_progress"`
	OrdersCompleted  int `json:"orders_completed"`
}

// Stats returns aggregate counts over the current dataset.
func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{
		Equipment:        len(s.data.Equipment),
		WorkOrders:       len(s.data.WorkOrders),
		Technicians:      len(s.data.Technicians),
		CompletedInTotal: len(s.data.History),
		Plans:            len(s.data.Plans),
	}
	for _, o := range s.data.WorkOrders {
		switch o.Status {
		case models.StatusPending:
			st.OrdersPending++
		case models.StatusInProgress:
			st.OrdersInProgress++
		case models.StatusCompleted:
			st.OrdersCompleted++
		}
	}
	return st
}
