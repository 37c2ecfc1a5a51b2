package store

import (
	"context"

	"github.com/MKhiriev/connector-sync/internal/config"
	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/models"
)

// Storages groups every repository of the application together with the
// transaction boundary they share.
type Storages struct {
	Transactor          Transactor
	Endpoints           EndpointRepository
	Assets              EntityRepository[*models.Asset]
	ContractDefinitions EntityRepository[*models.ContractDefinition]
	PolicyDefinitions   EntityRepository[*models.PolicyDefinition]

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds all repositories on top of the connection.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds all repositories on top of an open connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Transactor:          NewTransactor(db),
		Endpoints:           NewEndpointRepository(db, log),
		Assets:              NewAssetRepository(db, log),
		ContractDefinitions: NewContractDefinitionRepository(db, log),
		PolicyDefinitions:   NewPolicyDefinitionRepository(db, log),
		db:                  db,
	}
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
