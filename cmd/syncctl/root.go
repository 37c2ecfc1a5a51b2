package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/connector-sync/internal/adapter"
	"github.com/MKhiriev/connector-sync/internal/config"
	"github.com/MKhiriev/connector-sync/internal/crypto"
	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/internal/metrics"
	"github.com/MKhiriev/connector-sync/internal/service"
	"github.com/MKhiriev/connector-sync/internal/store"
)

// rootOptions are the persistent flags shared by every subcommand. Empty
// values fall back to the environment and the JSON config file.
type rootOptions struct {
	configPath string
	dsn        string
	secretKey  string
	verbose    bool

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "syncctl",
		Short:        "Inspect and reconcile entities of remote connectors",
		SilenceUsage: true,
		// services and parsers log through the context logger
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.log = opts.newLogger(cmd.ErrOrStderr())
			cmd.SetContext(opts.log.WithContext(cmd.Context()))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "JSON config file path")
	flags.StringVarP(&opts.dsn, "database", "d", "", "Database DSN")
	flags.StringVar(&opts.secretKey, "secret-key", "", "Secret key for sealing endpoint API keys")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log to stderr")

	cmd.AddCommand(
		newEndpointsCmd(opts),
		newDriftCmd(opts),
		newCheckCmd(opts),
		newTokenCmd(),
		newVersionCmd(),
	)

	return cmd
}

// configArgs translates the persistent flags into the flag syntax understood
// by [config.GetStructuredConfig].
func (o *rootOptions) configArgs() []string {
	var args []string
	if o.configPath != "" {
		args = append(args, "-c", o.configPath)
	}
	if o.dsn != "" {
		args = append(args, "-d", o.dsn)
	}
	if o.secretKey != "" {
		args = append(args, "-secret-key", o.secretKey)
	}
	return args
}

func (o *rootOptions) newLogger(w io.Writer) *logger.Logger {
	if o.verbose {
		return logger.NewConsoleLogger(w, "syncctl")
	}
	return logger.Nop()
}

// services opens the local store and builds the service layer the same way
// the server binary does. The returned func releases the store.
func (o *rootOptions) services(ctx context.Context) (*service.Services, func(), error) {
	cfg, err := config.GetStructuredConfig(o.configArgs())
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := o.log
	if log == nil {
		log = logger.Nop()
	}

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating storages: %w", err)
	}

	sealer, err := crypto.NewSealer(cfg.App.SecretKey)
	if err != nil {
		storages.Close()
		return nil, nil, fmt.Errorf("error creating sealer: %w", err)
	}

	factory := adapter.NewClientFactory(adapter.ClientFactoryConfig{
		Timeout:   cfg.Adapter.RequestTimeout,
		ListLimit: cfg.Adapter.ListLimit,
	})

	return service.NewServices(storages, sealer, factory, metrics.New(), log), func() { storages.Close() }, nil
}
