package service

import (
	"context"

	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/models"
)

type driftService struct {
	assets              EntitySyncService[models.AssetDTO]
	contractDefinitions EntitySyncService[models.ContractDefinitionDTO]
	policyDefinitions   EntitySyncService[models.PolicyDefinitionDTO]
}

// NewDriftService returns a [DriftService] running list checks through the
// given per-kind services.
func NewDriftService(
	assets EntitySyncService[models.AssetDTO],
	contractDefinitions EntitySyncService[models.ContractDefinitionDTO],
	policyDefinitions EntitySyncService[models.PolicyDefinitionDTO],
) DriftService {
	return &driftService{
		assets:              assets,
		contractDefinitions: contractDefinitions,
		policyDefinitions:   policyDefinitions,
	}
}

// Report runs GetAllWithSyncCheck for every kind, one after another. The
// first failing kind aborts the report.
func (d *driftService) Report(ctx context.Context, endpointID int64) (models.DriftReport, error) {
	report := models.DriftReport{EndpointID: endpointID}

	assets, err := d.assets.GetAllWithSyncCheck(ctx, endpointID)
	if err != nil {
		return models.DriftReport{}, err
	}
	report.Kinds = append(report.Kinds, summarize("assets", assets))

	contractDefinitions, err := d.contractDefinitions.GetAllWithSyncCheck(ctx, endpointID)
	if err != nil {
		return models.DriftReport{}, err
	}
	report.Kinds = append(report.Kinds, summarize("contract-definitions", contractDefinitions))

	policyDefinitions, err := d.policyDefinitions.GetAllWithSyncCheck(ctx, endpointID)
	if err != nil {
		return models.DriftReport{}, err
	}
	report.Kinds = append(report.Kinds, summarize("policy-definitions", policyDefinitions))

	logger.FromContext(ctx).Info().
		Str("func", "driftService.Report").
		Int64("endpoint_id", endpointID).
		Bool("in_sync", report.InSync()).
		Msg("drift report computed")

	return report, nil
}

func summarize[D models.Payload](kind string, items []models.Synced[D]) models.KindDrift {
	drift := models.KindDrift{Kind: kind, Total: len(items)}
	for _, item := range items {
		if item.OutOfSync {
			drift.OutOfSync++
			drift.OutOfSyncIDs = append(drift.OutOfSyncIDs, item.ID)
		}
	}
	return drift
}
