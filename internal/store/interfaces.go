package store

import (
	"context"

	"github.com/MKhiriev/connector-sync/models"
)

// EntityRepository is the keyed local store of one synced entity kind.
// E is a pointer type such as *models.Asset.
type EntityRepository[E models.Entity] interface {
	// Get loads the entity with the given local id or returns
	// [ErrEntityNotFound].
	Get(ctx context.Context, id int64) (E, error)
	// ListByEndpoint returns every entity owned by endpointID, ordered by id.
	ListByEndpoint(ctx context.Context, endpointID int64) ([]E, error)
	// Create inserts entity and assigns the generated local id to it.
	Create(ctx context.Context, entity E) error
	// Update overwrites the remote id, drift flag and payload of entity.
	Update(ctx context.Context, entity E) error
	// SetOutOfSync persists a freshly computed drift verdict.
	SetOutOfSync(ctx context.Context, id int64, outOfSync bool) error
	Delete(ctx context.Context, id int64) error
}

// EndpointRepository persists remote connector endpoints. The API key column
// holds whatever the caller passes, sealing is done by the service layer.
type EndpointRepository interface {
	Create(ctx context.Context, endpoint models.Endpoint) (models.Endpoint, error)
	Get(ctx context.Context, id int64) (models.Endpoint, error)
	List(ctx context.Context) ([]models.Endpoint, error)
	Delete(ctx context.Context, id int64) error
}

// Transactor runs fn inside one database transaction. Repositories called
// with the context passed to fn take part in that transaction; fn returning an
// error rolls it back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
