package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/models"
)

const (
	assetsTable              = "assets"
	contractDefinitionsTable = "contract_definitions"
	policyDefinitionsTable   = "policy_definitions"
)

var entityColumns = []string{"id", "endpoint_id", "remote_id", "out_of_sync", "payload"}

// entityRepository is the SQL implementation of [EntityRepository] shared by
// every entity kind. Sync bookkeeping lives in dedicated columns and the
// kind-specific fields are stored as a JSON document in "payload".
type entityRepository[E models.Entity] struct {
	*DB
	table     string
	newEntity func() E
	logger    *logger.Logger
}

// NewAssetRepository returns the [EntityRepository] of data assets.
func NewAssetRepository(db *DB, log *logger.Logger) EntityRepository[*models.Asset] {
	return newEntityRepository(db, assetsTable, func() *models.Asset { return &models.Asset{} }, log)
}

// NewContractDefinitionRepository returns the [EntityRepository] of contract
// definitions.
func NewContractDefinitionRepository(db *DB, log *logger.Logger) EntityRepository[*models.ContractDefinition] {
	return newEntityRepository(db, contractDefinitionsTable, func() *models.ContractDefinition { return &models.ContractDefinition{} }, log)
}

// NewPolicyDefinitionRepository returns the [EntityRepository] of policy
// definitions.
func NewPolicyDefinitionRepository(db *DB, log *logger.Logger) EntityRepository[*models.PolicyDefinition] {
	return newEntityRepository(db, policyDefinitionsTable, func() *models.PolicyDefinition { return &models.PolicyDefinition{} }, log)
}

func newEntityRepository[E models.Entity](db *DB, table string, newEntity func() E, log *logger.Logger) *entityRepository[E] {
	return &entityRepository[E]{
		DB:        db,
		table:     table,
		newEntity: newEntity,
		logger:    log,
	}
}

func (r *entityRepository[E]) Get(ctx context.Context, id int64) (E, error) {
	log := logger.FromContext(ctx)
	var zero E

	query, args, err := r.builder.Select(entityColumns...).
		From(r.table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entity, err := r.scan(r.executor(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrEntityNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.Get").
			Str("table", r.table).
			Int64("local_id", id).
			Msg("failed to load entity")
		return zero, err
	}

	return entity, nil
}

func (r *entityRepository[E]) ListByEndpoint(ctx context.Context, endpointID int64) ([]E, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Select(entityColumns...).
		From(r.table).
		Where(sq.Eq{"endpoint_id": endpointID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.ListByEndpoint").
			Str("table", r.table).
			Int64("endpoint_id", endpointID).
			Msg("failed to execute query for listing entities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entities := make([]E, 0, 16)
	for rows.Next() {
		entity, scanErr := r.scan(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "entityRepository.ListByEndpoint").
				Str("table", r.table).
				Int64("endpoint_id", endpointID).
				Msg("failed to scan entity row")
			return nil, scanErr
		}
		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "entityRepository.ListByEndpoint").
			Str("table", r.table).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entities, nil
}

func (r *entityRepository[E]) Create(ctx context.Context, entity E) error {
	log := logger.FromContext(ctx)
	state := entity.State()

	payload, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	query, args, err := r.builder.Insert(r.table).
		Columns("endpoint_id", "remote_id", "out_of_sync", "payload").
		Values(state.EndpointID, state.RemoteID, state.OutOfSync, string(payload)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.executor(ctx).QueryRowContext(ctx, query, args...).Scan(&state.ID); err != nil {
		log.Err(err).
			Str("func", "entityRepository.Create").
			Str("table", r.table).
			Int64("endpoint_id", state.EndpointID).
			Str("remote_id", state.RemoteID).
			Msg("failed to insert entity")
		return r.classify(err)
	}

	return nil
}

func (r *entityRepository[E]) Update(ctx context.Context, entity E) error {
	log := logger.FromContext(ctx)
	state := entity.State()

	payload, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	query, args, err := r.builder.Update(r.table).
		Set("remote_id", state.RemoteID).
		Set("out_of_sync", state.OutOfSync).
		Set("payload", string(payload)).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": state.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args); err != nil {
		log.Err(err).
			Str("func", "entityRepository.Update").
			Str("table", r.table).
			Int64("local_id", state.ID).
			Msg("failed to update entity")
		return err
	}

	return nil
}

func (r *entityRepository[E]) SetOutOfSync(ctx context.Context, id int64, outOfSync bool) error {
	query, args, err := r.builder.Update(r.table).
		Set("out_of_sync", outOfSync).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entityRepository.SetOutOfSync").
			Str("table", r.table).
			Int64("local_id", id).
			Bool("out_of_sync", outOfSync).
			Msg("failed to persist drift flag")
		return err
	}

	return nil
}

func (r *entityRepository[E]) Delete(ctx context.Context, id int64) error {
	query, args, err := r.builder.Delete(r.table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entityRepository.Delete").
			Str("table", r.table).
			Int64("local_id", id).
			Msg("failed to delete entity")
		return err
	}

	return nil
}

// execAffectingOne runs a statement targeting one row by id and reports
// [ErrEntityNotFound] when nothing matched.
func (r *entityRepository[E]) execAffectingOne(ctx context.Context, query string, args []any) error {
	result, err := r.executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return r.classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntityNotFound
	}

	return nil
}

func (r *entityRepository[E]) classify(err error) error {
	switch r.errorClassificator.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrRemoteIDAlreadyExists, err)
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrEndpointNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scan decodes the payload into a fresh entity and then applies the
// bookkeeping columns, which take precedence over the stored document.
func (r *entityRepository[E]) scan(row rowScanner) (E, error) {
	var (
		zero    E
		state   models.SyncState
		payload []byte
	)

	if err := row.Scan(&state.ID, &state.EndpointID, &state.RemoteID, &state.OutOfSync, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, err
		}
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	entity := r.newEntity()
	if err := json.Unmarshal(payload, entity); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrDecodingPayload, err)
	}
	*entity.State() = state

	return entity, nil
}
