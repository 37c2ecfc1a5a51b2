package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/connector-sync/internal/service"
	"github.com/MKhiriev/connector-sync/models"
)

const (
	kindAssets              = "assets"
	kindContractDefinitions = "contract-definitions"
	kindPolicyDefinitions   = "policy-definitions"
)

var checkKinds = []string{kindAssets, kindContractDefinitions, kindPolicyDefinitions}

func newDriftCmd(opts *rootOptions) *cobra.Command {
	var failOnDrift bool

	cmd := &cobra.Command{
		Use:   "drift <endpointID>",
		Short: "Check every entity of an endpoint against its connector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			services, closeFn, err := opts.services(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			report, err := services.DriftService.Report(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("error checking drift of endpoint %d: %w", id, err)
			}

			if err = renderDriftReport(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if failOnDrift && !report.InSync() {
				return errDriftDetected
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&failOnDrift, "fail", false, "Exit non-zero when drift is found")
	return cmd
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "check <kind> <endpointID>",
		Short:     "Check one entity kind of an endpoint and list every entity",
		Long:      "Check one entity kind of an endpoint. Kind is one of: " + strings.Join(checkKinds, ", ") + ".",
		Args:      cobra.MatchAll(cobra.ExactArgs(2), validKindArg),
		ValidArgs: checkKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}

			services, closeFn, err := opts.services(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			rows, err := checkKind(cmd.Context(), services, args[0], id)
			if err != nil {
				return fmt.Errorf("error checking %s of endpoint %d: %w", args[0], id, err)
			}

			return renderEntities(cmd.OutOrStdout(), args[0], rows)
		},
	}
}

func validKindArg(_ *cobra.Command, args []string) error {
	for _, k := range checkKinds {
		if args[0] == k {
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q, expected one of: %s", args[0], strings.Join(checkKinds, ", "))
}

// entityRow is the kind-independent projection of a checked entity.
type entityRow struct {
	ID        int64
	RemoteID  string
	OutOfSync bool
}

func checkKind(ctx context.Context, services *service.Services, kind string, endpointID int64) ([]entityRow, error) {
	switch kind {
	case kindAssets:
		return checkAll(ctx, services.AssetService, endpointID)
	case kindContractDefinitions:
		return checkAll(ctx, services.ContractDefinitionService, endpointID)
	case kindPolicyDefinitions:
		return checkAll(ctx, services.PolicyDefinitionService, endpointID)
	}
	return nil, fmt.Errorf("unknown kind %q", kind)
}

func checkAll[D models.Payload](ctx context.Context, svc service.EntitySyncService[D], endpointID int64) ([]entityRow, error) {
	synced, err := svc.GetAllWithSyncCheck(ctx, endpointID)
	if err != nil {
		return nil, err
	}

	rows := make([]entityRow, 0, len(synced))
	for _, s := range synced {
		rows = append(rows, entityRow{ID: s.ID, RemoteID: s.Data.Identifier(), OutOfSync: s.OutOfSync})
	}
	return rows, nil
}
