package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/connector-sync/models"
)

func newEndpointsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "endpoints",
		Aliases: []string{"ep"},
		Short:   "Manage registered connector endpoints",
	}

	cmd.AddCommand(
		newEndpointsListCmd(opts),
		newEndpointsAddCmd(opts),
		newEndpointsRemoveCmd(opts),
	)
	return cmd
}

func newEndpointsListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, closeFn, err := opts.services(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			endpoints, err := services.EndpointService.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("error listing endpoints: %w", err)
			}

			return renderEndpoints(cmd.OutOrStdout(), endpoints)
		},
	}
}

func newEndpointsAddCmd(opts *rootOptions) *cobra.Command {
	var endpoint models.Endpoint

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a connector endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, closeFn, err := opts.services(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			created, err := services.EndpointService.Create(cmd.Context(), endpoint)
			if err != nil {
				return fmt.Errorf("error registering endpoint: %w", err)
			}

			return renderEndpoints(cmd.OutOrStdout(), []models.Endpoint{created})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&endpoint.ManagementURL, "url", "", "Management API base URL")
	flags.StringVar(&endpoint.APIKey, "api-key", "", "Management API key")
	flags.StringVar(&endpoint.ProtocolVersion, "protocol-version", "", "Management API version (default "+models.DefaultProtocolVersion+")")
	flags.StringVar(&endpoint.Description, "description", "", "Free-form description")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("api-key")

	return cmd
}

func newEndpointsRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <endpointID>",
		Aliases: []string{"rm"},
		Short:   "Remove an endpoint together with its local entities",
		Args:    cobra.ExactArgs(1),
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

			if err = services.EndpointService.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("error removing endpoint %d: %w", id, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "endpoint %d removed\n", id)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
