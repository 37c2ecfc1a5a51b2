package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/models"
)

const endpointsTable = "endpoints"

var endpointColumns = []string{"id", "management_url", "api_key", "protocol_version", "description", "created_at"}

// endpointRepository is the SQL implementation of [EndpointRepository].
type endpointRepository struct {
	*DB
	logger *logger.Logger
}

func NewEndpointRepository(db *DB, log *logger.Logger) EndpointRepository {
	return &endpointRepository{
		DB:     db,
		logger: log,
	}
}

// Create inserts endpoint and returns it with the generated id and creation
// time filled in.
func (r *endpointRepository) Create(ctx context.Context, endpoint models.Endpoint) (models.Endpoint, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Insert(endpointsTable).
		Columns("management_url", "api_key", "protocol_version", "description").
		Values(endpoint.ManagementURL, endpoint.APIKey, endpoint.ProtocolVersion, endpoint.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.Endpoint{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var createdAt time.Time
	if err = r.executor(ctx).QueryRowContext(ctx, query, args...).Scan(&endpoint.ID, &createdAt); err != nil {
		log.Err(err).
			Str("func", "endpointRepository.Create").
			Str("management_url", endpoint.ManagementURL).
			Msg("failed to insert endpoint")
		return models.Endpoint{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	endpoint.CreatedAt = &createdAt

	return endpoint, nil
}

// Get returns [ErrEndpointNotFound] when no endpoint has the given id.
func (r *endpointRepository) Get(ctx context.Context, id int64) (models.Endpoint, error) {
	query, args, err := r.builder.Select(endpointColumns...).
		From(endpointsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Endpoint{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	endpoint, err := scanEndpoint(r.executor(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Endpoint{}, ErrEndpointNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "endpointRepository.Get").
			Int64("endpoint_id", id).
			Msg("failed to load endpoint")
		return models.Endpoint{}, err
	}

	return endpoint, nil
}

func (r *endpointRepository) List(ctx context.Context) ([]models.Endpoint, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Select(endpointColumns...).
		From(endpointsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "endpointRepository.List").Msg("failed to execute query for listing endpoints")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	endpoints := make([]models.Endpoint, 0, 8)
	for rows.Next() {
		endpoint, scanErr := scanEndpoint(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "endpointRepository.List").Msg("failed to scan endpoint row")
			return nil, scanErr
		}
		endpoints = append(endpoints, endpoint)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return endpoints, nil
}

// Delete removes the endpoint; owned entities go with it through the
// ON DELETE CASCADE foreign keys.
func (r *endpointRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.builder.Delete(endpointsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "endpointRepository.Delete").
			Int64("endpoint_id", id).
			Msg("failed to delete endpoint")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEndpointNotFound
	}

	return nil
}

func scanEndpoint(row rowScanner) (models.Endpoint, error) {
	var (
		endpoint  models.Endpoint
		createdAt time.Time
	)

	err := row.Scan(
		&endpoint.ID,
		&endpoint.ManagementURL,
		&endpoint.APIKey,
		&endpoint.ProtocolVersion,
		&endpoint.Description,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Endpoint{}, err
		}
		return models.Endpoint{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	endpoint.CreatedAt = &createdAt

	return endpoint, nil
}
