package calendar

import (
	"context"
	"log/slog"

	"agenda/internal/database"
	"agenda/internal/events"
	"agenda/internal/logging"
)

// Service runs calendar mutations against a database file.
type Service struct {
	store  *database.Store
	logger *slog.Logger
}

// New returns a Service persisting through store.
func New(store *database.Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logging.NewComponentLogger(logger, "calendar"),
	}
}

// Add stores entry as a dated event, or in the TBA list when its month is
// "tba".
func (s *Service) Add(ctx context.Context, entry events.Entry) (bool, error) {
	if entry.IsTBA() {
		return s.AddTBA(ctx, entry.TBA())
	}
	return s.AddEvent(ctx, entry)
}

// Remove is the inverse of Add.
func (s *Service) Remove(ctx context.Context, entry events.Entry) (bool, error) {
	if entry.IsTBA() {
		return s.RemoveTBA(ctx, entry.TBA())
	}
	return s.RemoveEvent(ctx, entry)
}

// AddEvent inserts a dated event.
func (s *Service) AddEvent(ctx context.Context, entry events.Entry) (bool, error) {
	changed, err := s.store.Update(ctx, func(doc *database.Document) bool {
		return AddEvent(doc, entry)
	})
	s.report(changed, err, "event added", "event_added", entryAttrs(entry)...)
	return changed, err
}

// RemoveEvent deletes a dated event.
func (s *Service) RemoveEvent(ctx context.Context, entry events.Entry) (bool, error) {
	changed, err := s.store.Update(ctx, func(doc *database.Document) bool {
		return RemoveEvent(doc, entry)
	})
	s.report(changed, err, "event removed", "event_removed", entryAttrs(entry)...)
	return changed, err
}

// AddTBA appends a to-be-announced event unless it is already listed.
func (s *Service) AddTBA(ctx context.Context, event database.TbaEvent) (bool, error) {
	changed, err := s.store.Update(ctx, func(doc *database.Document) bool {
		return AddTBA(doc, event)
	})
	s.report(changed, err, "tba event added", "tba_added", logging.String(logging.FieldEventName, event.Name))
	return changed, err
}

// RemoveTBA deletes a to-be-announced event.
func (s *Service) RemoveTBA(ctx context.Context, event database.TbaEvent) (bool, error) {
	changed, err := s.store.Update(ctx, func(doc *database.Document) bool {
		return RemoveTBA(doc, event)
	})
	s.report(changed, err, "tba event removed", "tba_removed", logging.String(logging.FieldEventName, event.Name))
	return changed, err
}

// ArchiveMonth flags a month as archived.
func (s *Service) ArchiveMonth(ctx context.Context, year int, month string) (bool, error) {
	changed, err := s.store.Update(ctx, func(doc *database.Document) bool {
		return ArchiveMonth(doc, year, month)
	})
	s.report(changed, err, "month archived", "month_archived", logging.Int(logging.FieldYear, year), logging.String(logging.FieldMonth, month))
	return changed, err
}

// UnarchiveMonth clears a month's archived flag.
func (s *Service) UnarchiveMonth(ctx context.Context, year int, month string) (bool, error) {
	changed, err := s.store.Update(ctx, func(doc *database.Document) bool {
		return UnarchiveMonth(doc, year, month)
	})
	s.report(changed, err, "month unarchived", "month_unarchived", logging.Int(logging.FieldYear, year), logging.String(logging.FieldMonth, month))
	return changed, err
}

// ArchiveYear flags a year as archived.
func (s *Service) ArchiveYear(ctx context.Context, year int) (bool, error) {
	changed, err := s.store.Update(ctx, func(doc *database.Document) bool {
		return ArchiveYear(doc, year)
	})
	s.report(changed, err, "year archived", "year_archived", logging.Int(logging.FieldYear, year))
	return changed, err
}

// UnarchiveYear clears a year's archived flag.
func (s *Service) UnarchiveYear(ctx context.Context, year int) (bool, error) {
	changed, err := s.store.Update(ctx, func(doc *database.Document) bool {
		return UnarchiveYear(doc, year)
	})
	s.report(changed, err, "year unarchived", "year_unarchived", logging.Int(logging.FieldYear, year))
	return changed, err
}

func (s *Service) report(changed bool, err error, msg, eventType string, attrs ...logging.Attr) {
	if err != nil {
		return
	}
	attrs = append(attrs, logging.String(logging.FieldPath, s.store.Path()))
	if !changed {
		s.logger.Debug("database unchanged", logging.Args(append(attrs, logging.String(logging.FieldEventType, eventType+"_noop"))...)...)
		return
	}
	s.logger.Info(msg, logging.Args(append(attrs, logging.String(logging.FieldEventType, eventType))...)...)
}

func entryAttrs(entry events.Entry) []logging.Attr {
	return []logging.Attr{
		logging.Int(logging.FieldYear, entry.Year),
		logging.String(logging.FieldMonth, entry.Month),
		logging.String(logging.FieldEventName, entry.Event.Name),
	}
}
