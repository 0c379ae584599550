package store

import (
	"log/slog"

	"burger/internal/core/domain/model/kernel"
	"burger/internal/core/ports"
)

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the default UUID placement id generator.
func WithIDGenerator(gen kernel.IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.nextID = gen
		}
	}
}

// WithLogger sets the logger. The store tags it with component=assembly_store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver registers a submit lifecycle observer. It may be given several times.
func WithObserver(observer ports.SubmitObserver) Option {
	return func(s *Store) {
		if observer != nil {
			s.observers = append(s.observers, observer)
		}
	}
}
