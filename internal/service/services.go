package service

import (
	"github.com/MKhiriev/connector-sync/internal/adapter"
	"github.com/MKhiriev/connector-sync/internal/crypto"
	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/internal/metrics"
	"github.com/MKhiriev/connector-sync/internal/store"
	"github.com/MKhiriev/connector-sync/internal/validators"
	"github.com/MKhiriev/connector-sync/models"
)

type Services struct {
	EndpointService           EndpointService
	AssetService              EntitySyncService[models.AssetDTO]
	ContractDefinitionService EntitySyncService[models.ContractDefinitionDTO]
	PolicyDefinitionService   EntitySyncService[models.PolicyDefinitionDTO]
	DriftService              DriftService
}

func NewServices(
	storages *store.Storages,
	sealer crypto.Sealer,
	factory adapter.ClientFactory,
	m *metrics.Metrics,
	log *logger.Logger,
) *Services {
	validator := validators.NewStructValidator()
	endpoints := NewEndpointService(storages.Endpoints, sealer, factory, validator, log)

	assets := NewEntityValidationService[models.AssetDTO](validator).Wrap(
		NewEntitySyncService(AssetKind(storages.Assets), endpoints, storages.Transactor, m, log))
	contractDefinitions := NewEntityValidationService[models.ContractDefinitionDTO](validator).Wrap(
		NewEntitySyncService(ContractDefinitionKind(storages.ContractDefinitions), endpoints, storages.Transactor, m, log))
	policyDefinitions := NewEntityValidationService[models.PolicyDefinitionDTO](validator).Wrap(
		NewEntitySyncService(PolicyDefinitionKind(storages.PolicyDefinitions), endpoints, storages.Transactor, m, log))

	return &Services{
		EndpointService:           endpoints,
		AssetService:              assets,
		ContractDefinitionService: contractDefinitions,
		PolicyDefinitionService:   policyDefinitions,
		DriftService:              NewDriftService(assets, contractDefinitions, policyDefinitions),
	}
}
