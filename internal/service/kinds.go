package service

import (
	"github.com/MKhiriev/connector-sync/internal/adapter"
	"github.com/MKhiriev/connector-sync/internal/store"
	"github.com/MKhiriev/connector-sync/models"
)

// AssetKind binds data assets to the sync engine.
func AssetKind(repo store.EntityRepository[*models.Asset]) KindAdapter[*models.Asset, models.AssetDTO] {
	return KindAdapter[*models.Asset, models.AssetDTO]{
		Kind:    adapter.Assets,
		Store:   repo,
		ToDTO:   (*models.Asset).DTO,
		FromDTO: models.NewAssetFromDTO,
	}
}

// ContractDefinitionKind binds contract definitions to the sync engine.
func ContractDefinitionKind(repo store.EntityRepository[*models.ContractDefinition]) KindAdapter[*models.ContractDefinition, models.ContractDefinitionDTO] {
	return KindAdapter[*models.ContractDefinition, models.ContractDefinitionDTO]{
		Kind:    adapter.ContractDefinitions,
		Store:   repo,
		ToDTO:   (*models.ContractDefinition).DTO,
		FromDTO: models.NewContractDefinitionFromDTO,
	}
}

// PolicyDefinitionKind binds policy definitions to the sync engine.
func PolicyDefinitionKind(repo store.EntityRepository[*models.PolicyDefinition]) KindAdapter[*models.PolicyDefinition, models.PolicyDefinitionDTO] {
	return KindAdapter[*models.PolicyDefinition, models.PolicyDefinitionDTO]{
		Kind:    adapter.PolicyDefinitions,
		Store:   repo,
		ToDTO:   (*models.PolicyDefinition).DTO,
		FromDTO: models.NewPolicyDefinitionFromDTO,
	}
}
