package service

import (
	"context"

	"github.com/MKhiriev/connector-sync/internal/adapter"
	"github.com/MKhiriev/connector-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// EntitySyncService keeps one entity kind reconciled between the local store
// and remote connectors. Every operation runs in one local transaction that
// spans the remote call.
type EntitySyncService[D models.Payload] interface {
	// GetWithSyncCheck returns the local values of entity id after comparing
	// them with the remote copy and persisting the drift verdict. A missing
	// remote copy is drift, not an error.
	GetWithSyncCheck(ctx context.Context, id int64) (models.Synced[D], error)

	// GetAllWithSyncCheck checks every entity of the endpoint against one
	// remote list call.
	GetAllWithSyncCheck(ctx context.Context, endpointID int64) ([]models.Synced[D], error)

	// Create creates dto remotely and persists what the remote accepted.
	Create(ctx context.Context, endpointID int64, dto D) (models.Synced[D], error)

	// Update sends dto to the remote connector and overwrites the local
	// entity with the remote response.
	Update(ctx context.Context, id int64, dto D) (models.Synced[D], error)

	// Delete removes the local entity only after the remote connector
	// answered exactly 200.
	Delete(ctx context.Context, id int64) error
}

// EndpointService manages remote connector endpoints. Returned endpoints
// never carry their API key.
type EndpointService interface {
	Create(ctx context.Context, endpoint models.Endpoint) (models.Endpoint, error)
	Get(ctx context.Context, id int64) (models.Endpoint, error)
	List(ctx context.Context) ([]models.Endpoint, error)
	Delete(ctx context.Context, id int64) error

	ClientResolver
}

// ClientResolver builds a management API client for a stored endpoint,
// returning [ErrNotFound] when the endpoint does not exist.
type ClientResolver interface {
	Client(ctx context.Context, endpointID int64) (adapter.ConnectorClient, error)
}

// DriftService summarizes the drift state of every kind of one endpoint.
type DriftService interface {
	Report(ctx context.Context, endpointID int64) (models.DriftReport, error)
}

// EntitySyncServiceWrapper decorates an [EntitySyncService], e.g. with input
// validation.
type EntitySyncServiceWrapper[D models.Payload] interface {
	Wrap(EntitySyncService[D]) EntitySyncService[D]
}
