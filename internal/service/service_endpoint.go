package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/connector-sync/internal/adapter"
	"github.com/MKhiriev/connector-sync/internal/crypto"
	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/internal/store"
	"github.com/MKhiriev/connector-sync/internal/validators"
	"github.com/MKhiriev/connector-sync/models"
)

// endpointService implements [EndpointService]. API keys are sealed before
// they are stored and opened only to build a client.
type endpointService struct {
	repo      store.EndpointRepository
	sealer    crypto.Sealer
	factory   adapter.ClientFactory
	validator validators.Validator
	logger    *logger.Logger
}

func NewEndpointService(
	repo store.EndpointRepository,
	sealer crypto.Sealer,
	factory adapter.ClientFactory,
	validator validators.Validator,
	log *logger.Logger,
) EndpointService {
	return &endpointService{
		repo:      repo,
		sealer:    sealer,
		factory:   factory,
		validator: validator,
		logger:    log,
	}
}

// Create validates and normalizes endpoint, seals its API key and stores it.
func (e *endpointService) Create(ctx context.Context, endpoint models.Endpoint) (models.Endpoint, error) {
	if err := e.validator.Validate(ctx, endpoint); err != nil {
		return models.Endpoint{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	managementURL, err := normalizeBaseURL(endpoint.ManagementURL)
	if err != nil {
		return models.Endpoint{}, fmt.Errorf("%w: management url: %w", ErrInvalidDataProvided, err)
	}
	endpoint.ManagementURL = managementURL

	endpoint.ProtocolVersion = strings.TrimSpace(endpoint.ProtocolVersion)
	if endpoint.ProtocolVersion == "" {
		endpoint.ProtocolVersion = models.DefaultProtocolVersion
	}

	if endpoint.APIKey, err = e.sealer.Seal(endpoint.APIKey); err != nil {
		return models.Endpoint{}, fmt.Errorf("sealing api key: %w", err)
	}

	created, err := e.repo.Create(ctx, endpoint)
	if err != nil {
		return models.Endpoint{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "endpointService.Create").
		Int64("endpoint_id", created.ID).
		Str("management_url", created.ManagementURL).
		Msg("endpoint registered")

	return created.Redacted(), nil
}

func (e *endpointService) Get(ctx context.Context, id int64) (models.Endpoint, error) {
	endpoint, err := e.get(ctx, id)
	if err != nil {
		return models.Endpoint{}, err
	}
	return endpoint.Redacted(), nil
}

func (e *endpointService) List(ctx context.Context) ([]models.Endpoint, error) {
	endpoints, err := e.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range endpoints {
		endpoints[i] = endpoints[i].Redacted()
	}
	return endpoints, nil
}

// Delete removes the endpoint and, through the store, every local entity it
// owns. Remote state is not touched.
func (e *endpointService) Delete(ctx context.Context, id int64) error {
	err := e.repo.Delete(ctx, id)
	if errors.Is(err, store.ErrEndpointNotFound) {
		return fmt.Errorf("%w: endpoint %d", ErrNotFound, id)
	}
	return err
}

// Client implements [ClientResolver].
func (e *endpointService) Client(ctx context.Context, endpointID int64) (adapter.ConnectorClient, error) {
	endpoint, err := e.get(ctx, endpointID)
	if err != nil {
		return nil, err
	}

	if endpoint.APIKey, err = e.sealer.Open(endpoint.APIKey); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "endpointService.Client").
			Int64("endpoint_id", endpointID).
			Msg("failed to open endpoint api key")
		return nil, fmt.Errorf("opening api key of endpoint %d: %w", endpointID, err)
	}

	return e.factory.Client(endpoint), nil
}

func (e *endpointService) get(ctx context.Context, id int64) (models.Endpoint, error) {
	endpoint, err := e.repo.Get(ctx, id)
	if errors.Is(err, store.ErrEndpointNotFound) {
		return models.Endpoint{}, fmt.Errorf("%w: endpoint %d", ErrNotFound, id)
	}
	return endpoint, err
}

// normalizeBaseURL defaults the scheme to http and strips trailing slashes.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
