// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/connector-sync/internal/adapter"
	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/internal/metrics"
	"github.com/MKhiriev/connector-sync/internal/store"
	"github.com/MKhiriev/connector-sync/models"
)

// KindAdapter is everything the sync engine needs to know about one entity
// kind: how it is addressed remotely, where it is stored locally and how it
// maps to and from its wire shape.
type KindAdapter[E models.Entity, D models.Payload] struct {
	Kind    adapter.Kind
	Store   store.EntityRepository[E]
	ToDTO   func(E) D
	FromDTO func(D) E
}

// entitySyncService is the generic implementation of [EntitySyncService].
type entitySyncService[E models.Entity, D models.Payload] struct {
	kind       KindAdapter[E, D]
	clients    ClientResolver
	transactor store.Transactor
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

// NewEntitySyncService builds the sync engine for one entity kind.
func NewEntitySyncService[E models.Entity, D models.Payload](
	kind KindAdapter[E, D],
	clients ClientResolver,
	transactor store.Transactor,
	m *metrics.Metrics,
	log *logger.Logger,
) EntitySyncService[D] {
	return &entitySyncService[E, D]{
		kind:       kind,
		clients:    clients,
		transactor: transactor,
		metrics:    m,
		logger:     log,
	}
}

// GetWithSyncCheck implements [EntitySyncService].
//
// A 404 from the remote connector, or a 2xx without a body, marks the entity
// out of sync and is not an error. Authorization, connection and malformed
// outcomes return [ErrFetchingFailed] and leave the stored flag untouched.
func (s *entitySyncService[E, D]) GetWithSyncCheck(ctx context.Context, id int64) (models.Synced[D], error) {
	var result models.Synced[D]

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		entity, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		state := entity.State()

		client, err := s.clients.Client(ctx, state.EndpointID)
		if err != nil {
			return err
		}

		outcome := s.observe(ctx, "get", state, adapter.Classify(client.Get(ctx, s.kind.Kind, state.RemoteID)))

		var remote *D
		switch outcome.Category {
		case adapter.DriftSignal, adapter.EmptySuccess:
			// remote copy is missing
		case adapter.Success:
			dtos, err := s.parse(ctx, outcome)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrFetchingFailed, err)
			}
			if len(dtos) > 0 {
				remote = &dtos[0]
			}
		default:
			return fmt.Errorf("%w: %w", ErrFetchingFailed, outcome.Err())
		}

		local := s.kind.ToDTO(entity)
		if err = s.setOutOfSync(ctx, state, IsOutOfSync(local, remote)); err != nil {
			return err
		}

		result = synced(state, local)
		return nil
	})
	if err != nil {
		return models.Synced[D]{}, err
	}

	return result, nil
}

// GetAllWithSyncCheck implements [EntitySyncService]. It issues exactly one
// remote list call per invocation, however many local entities exist. Any
// non-success outcome of that call fails the whole batch.
func (s *entitySyncService[E, D]) GetAllWithSyncCheck(ctx context.Context, endpointID int64) ([]models.Synced[D], error) {
	var results []models.Synced[D]

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		client, err := s.clients.Client(ctx, endpointID)
		if err != nil {
			return err
		}

		entities, err := s.kind.Store.ListByEndpoint(ctx, endpointID)
		if err != nil {
			return err
		}

		endpointState := &models.SyncState{EndpointID: endpointID}
		outcome := s.observe(ctx, "list", endpointState, adapter.Classify(client.List(ctx, s.kind.Kind)))

		var dtos []D
		switch outcome.Category {
		case adapter.EmptySuccess:
		case adapter.Success:
			if dtos, err = s.parse(ctx, outcome); err != nil {
				return fmt.Errorf("%w: %w", ErrFetchingFailed, err)
			}
		default:
			return fmt.Errorf("%w: %w", ErrFetchingFailed, outcome.Err())
		}

		remoteByID := make(map[string]D, len(dtos))
		for _, dto := range dtos {
			remoteByID[dto.Identifier()] = dto
		}

		results = make([]models.Synced[D], 0, len(entities))
		for _, entity := range entities {
			state := entity.State()
			local := s.kind.ToDTO(entity)

			var remote *D
			if dto, ok := remoteByID[state.RemoteID]; ok {
				remote = &dto
			}

			if err = s.setOutOfSync(ctx, state, IsOutOfSync(local, remote)); err != nil {
				return err
			}
			results = append(results, synced(state, local))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// Create implements [EntitySyncService].
//
// When the remote echo equals the intended DTO the intended entity is
// persisted. When it differs the remote values are persisted instead and the
// difference is logged. A 2xx without a body persists the intended entity if
// it names its own identifier.
func (s *entitySyncService[E, D]) Create(ctx context.Context, endpointID int64, dto D) (models.Synced[D], error) {
	var result models.Synced[D]

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		log := logger.FromContext(ctx)

		client, err := s.clients.Client(ctx, endpointID)
		if err != nil {
			return err
		}

		intended := s.kind.FromDTO(dto)
		intendedDTO := s.kind.ToDTO(intended)
		endpointState := &models.SyncState{EndpointID: endpointID, RemoteID: intendedDTO.Identifier()}

		outcome := s.observe(ctx, "create", endpointState, adapter.Classify(client.Create(ctx, s.kind.Kind, intendedDTO)))
		if !outcome.Category.IsSuccess() {
			return fmt.Errorf("%w: %w", ErrCreationFailed, outcome.Err())
		}

		dtos, err := s.parse(ctx, outcome)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCreationFailed, err)
		}

		toPersist := intended
		if len(dtos) > 0 && IsOutOfSync(intendedDTO, &dtos[0]) {
			remote := dtos[0]
			if expected := s.withRemoteID(intendedDTO, remote.Identifier()); IsOutOfSync(expected, &remote) {
				log.Warn().
					Str("func", "entitySyncService.Create").
					Str("kind", s.kind.Kind.Name).
					Int64("endpoint_id", endpointID).
					Str("remote_id", remote.Identifier()).
					Str("diff", driftDiff(expected, remote)).
					Msg("remote connector accepted different values than requested, persisting remote values")
			}

			toPersist = s.kind.FromDTO(remote)
			if toPersist.State().RemoteID == "" {
				toPersist.State().RemoteID = intendedDTO.Identifier()
			}
		}

		state := toPersist.State()
		if state.RemoteID == "" {
			return fmt.Errorf("%w: remote connector returned no identifier for the created %s", ErrCreationFailed, s.kind.Kind.Name)
		}
		state.EndpointID = endpointID
		state.OutOfSync = false

		if err = s.kind.Store.Create(ctx, toPersist); err != nil {
			return s.storeError(err, ErrCreationFailed)
		}

		result = synced(state, s.kind.ToDTO(toPersist))
		return nil
	})
	if err != nil {
		return models.Synced[D]{}, err
	}

	return result, nil
}

// Update implements [EntitySyncService]. The remote response overwrites every
// local field without comparison; a 2xx without a body overwrites them with
// the values that were sent. A response naming a new identifier rebinds the
// entity to it.
func (s *entitySyncService[E, D]) Update(ctx context.Context, id int64, dto D) (models.Synced[D], error) {
	var result models.Synced[D]

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		entity, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		state := entity.State()

		client, err := s.clients.Client(ctx, state.EndpointID)
		if err != nil {
			return err
		}

		outcome := s.observe(ctx, "update", state, adapter.Classify(client.Update(ctx, s.kind.Kind, state.RemoteID, dto)))
		if !outcome.Category.IsSuccess() {
			return fmt.Errorf("%w: %w", ErrUpdateFailed, outcome.Err())
		}

		dtos, err := s.parse(ctx, outcome)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUpdateFailed, err)
		}

		source := dto
		if len(dtos) > 0 {
			source = dtos[0]
		}

		updated := s.kind.FromDTO(source)
		updatedState := updated.State()
		remoteID := source.Identifier()
		if len(dtos) == 0 || remoteID == "" {
			remoteID = state.RemoteID
		}
		*updatedState = models.SyncState{
			ID:         state.ID,
			EndpointID: state.EndpointID,
			RemoteID:   remoteID,
			OutOfSync:  state.OutOfSync,
		}

		if err = s.kind.Store.Update(ctx, updated); err != nil {
			return s.storeError(err, ErrUpdateFailed)
		}

		result = synced(updatedState, s.kind.ToDTO(updated))
		return nil
	})
	if err != nil {
		return models.Synced[D]{}, err
	}

	return result, nil
}

// Delete implements [EntitySyncService]. Only a remote 200 deletes the local
// record; every other status, 404 and 204 included, is [ErrDeletionFailed]
// and leaves both copies in place.
func (s *entitySyncService[E, D]) Delete(ctx context.Context, id int64) error {
	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		entity, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		state := entity.State()

		client, err := s.clients.Client(ctx, state.EndpointID)
		if err != nil {
			return err
		}

		outcome := s.observe(ctx, "delete", state, adapter.Classify(client.Delete(ctx, s.kind.Kind, state.RemoteID)))
		if outcome.Status != http.StatusOK {
			if cause := outcome.Err(); cause != nil {
				return fmt.Errorf("%w: %w", ErrDeletionFailed, cause)
			}
			return fmt.Errorf("%w: remote connector answered %s, expected 200", ErrDeletionFailed, outcome.Message)
		}

		if err = s.kind.Store.Delete(ctx, state.ID); err != nil {
			return s.storeError(err, ErrDeletionFailed)
		}
		return nil
	})
}

func (s *entitySyncService[E, D]) load(ctx context.Context, id int64) (E, error) {
	entity, err := s.kind.Store.Get(ctx, id)
	if errors.Is(err, store.ErrEntityNotFound) {
		var zero E
		return zero, fmt.Errorf("%w: %s %d", ErrNotFound, s.kind.Kind.Name, id)
	}
	return entity, err
}

func (s *entitySyncService[E, D]) parse(ctx context.Context, outcome adapter.Outcome) ([]D, error) {
	dtos, warnings, err := adapter.ParsePayload[D](ctx, outcome)
	if len(warnings) > 0 {
		logger.FromContext(ctx).Warn().
			Str("func", "entitySyncService.parse").
			Str("kind", s.kind.Kind.Name).
			Int("dropped", len(warnings)).
			Int("kept", len(dtos)).
			Msg("list response contained unparseable elements")
		s.metrics.AddDroppedElements(s.kind.Kind.Name, len(warnings))
	}
	return dtos, err
}

// observe records the outcome of a remote call in logs and metrics and
// returns it unchanged.
// withRemoteID returns dto carrying remoteID when it has no identifier of its
// own. A remote-assigned id alone is not a correction of the sent values.
func (s *entitySyncService[E, D]) withRemoteID(dto D, remoteID string) D {
	if dto.Identifier() != "" || remoteID == "" {
		return dto
	}
	entity := s.kind.FromDTO(dto)
	entity.State().RemoteID = remoteID
	return s.kind.ToDTO(entity)
}

func (s *entitySyncService[E, D]) observe(ctx context.Context, op string, state *models.SyncState, outcome adapter.Outcome) adapter.Outcome {
	s.metrics.ObserveRemoteCall(s.kind.Kind.Name, op, outcome.Category.String())

	log := logger.FromContext(ctx)
	event := log.Debug()
	if !outcome.Category.IsSuccess() {
		event = log.Warn().Err(outcome.Err())
	}
	event.
		Str("func", "entitySyncService."+op).
		Str("kind", s.kind.Kind.Name).
		Int64("local_id", state.ID).
		Int64("endpoint_id", state.EndpointID).
		Str("remote_id", state.RemoteID).
		Int("status", outcome.Status).
		Stringer("category", outcome.Category).
		Msg("remote call classified")

	return outcome
}

func (s *entitySyncService[E, D]) setOutOfSync(ctx context.Context, state *models.SyncState, outOfSync bool) error {
	if err := s.kind.Store.SetOutOfSync(ctx, state.ID, outOfSync); err != nil {
		return err
	}
	state.OutOfSync = outOfSync
	s.metrics.ObserveDriftCheck(s.kind.Kind.Name, outOfSync)

	logger.FromContext(ctx).Debug().
		Str("func", "entitySyncService.setOutOfSync").
		Str("kind", s.kind.Kind.Name).
		Int64("local_id", state.ID).
		Str("remote_id", state.RemoteID).
		Bool("out_of_sync", outOfSync).
		Msg("drift verdict persisted")

	return nil
}

// storeError maps store failures after a successful remote call.
func (s *entitySyncService[E, D]) storeError(err, opErr error) error {
	switch {
	case errors.Is(err, store.ErrEntityNotFound), errors.Is(err, store.ErrEndpointNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrRemoteIDAlreadyExists):
		return fmt.Errorf("%w: %w: %w", opErr, ErrInvalidDataProvided, err)
	}
	return err
}

func synced[D models.Payload](state *models.SyncState, dto D) models.Synced[D] {
	return models.Synced[D]{
		ID:         state.ID,
		EndpointID: state.EndpointID,
		OutOfSync:  state.OutOfSync,
		Data:       dto,
	}
}
