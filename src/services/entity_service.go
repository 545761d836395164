package services

import (
	"context"
	"fmt"
	"log/slog"

	"healthgraph/src/domain"
	"healthgraph/src/domain/entities"
	"healthgraph/src/services/events"
)

// Store is the part of the generic graph repository the entity services use.
type Store[T entities.Entity] interface {
	Label() entities.Label
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, entity T) error
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id string) error
}

// EntityService holds the CRUD flow shared by every entity kind: absence turns
// into domain.ErrEntityNotFound and every mutation emits a domain event.
type EntityService[T entities.Entity] struct {
	logger    *slog.Logger
	store     Store[T]
	publisher events.Publisher
}

func NewEntityService[T entities.Entity](logger *slog.Logger, store Store[T], publisher events.Publisher) *EntityService[T] {
	return &EntityService[T]{
		logger:    logger,
		store:     store,
		publisher: publisher,
	}
}

func (s *EntityService[T]) GetAll(ctx context.Context) ([]T, error) {
	all, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("EntityService.GetAll - failed to list %s: %w", s.store.Label(), err)
	}
	return all, nil
}

func (s *EntityService[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T

	entity, err := s.store.GetByID(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("EntityService.GetByID - failed to get %s '%s': %w", s.store.Label(), id, err)
	}
	if entity == nil {
		return zero, fmt.Errorf("EntityService.GetByID - %s '%s': %w", s.store.Label(), id, domain.ErrEntityNotFound)
	}

	return *entity, nil
}

// Create persists an entity whose identity and timestamps are already set.
func (s *EntityService[T]) Create(ctx context.Context, entity T) (T, error) {
	if err := s.store.Create(ctx, entity); err != nil {
		var zero T
		return zero, fmt.Errorf("EntityService.Create - %w", err)
	}

	s.logger.Info("Entity created", "label", s.store.Label(), "id", entity.GetID())
	s.publish(ctx, events.NewDomainEvent(events.EventEntityCreated, string(s.store.Label()), entity.GetID(), nil))

	return entity, nil
}

// Update merges the supplied fields of patch into the stored entity and
// returns the result as stored.
func (s *EntityService[T]) Update(ctx context.Context, patch T) (T, error) {
	var zero T

	if _, err := s.GetByID(ctx, patch.GetID()); err != nil {
		return zero, err
	}

	if err := s.store.Update(ctx, patch); err != nil {
		return zero, fmt.Errorf("EntityService.Update - %w", err)
	}

	updated, err := s.GetByID(ctx, patch.GetID())
	if err != nil {
		return zero, err
	}

	s.logger.Info("Entity updated", "label", s.store.Label(), "id", patch.GetID())
	s.publish(ctx, events.NewDomainEvent(events.EventEntityUpdated, string(s.store.Label()), patch.GetID(), nil))

	return updated, nil
}

// Delete soft-deletes the entity. Unknown ids are reported as not found.
func (s *EntityService[T]) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("EntityService.Delete - %w", err)
	}

	s.logger.Info("Entity deactivated", "label", s.store.Label(), "id", id)
	s.publish(ctx, events.NewDomainEvent(events.EventEntityDeleted, string(s.store.Label()), id, nil))

	return nil
}

func (s *EntityService[T]) publish(ctx context.Context, event events.DomainEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish domain event",
			"error", err,
			"event_type", event.EventType,
			"event_id", event.EventID)
	}
}

// Publish lets composing services emit their own events through the same path.
func (s *EntityService[T]) Publish(ctx context.Context, event events.DomainEvent) {
	s.publish(ctx, event)
}
