// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the management API of remote connectors.
//
// [ConnectorClient] performs the raw calls and returns the status code and
// body untouched. [Classify] turns that result into an [Outcome] with one of
// a closed set of categories, and [ParsePayload] normalizes a successful
// body, whether it holds one object or an array, into a slice of DTOs.
//
// Error values defined in errors.go are the transport-level taxonomy; callers
// match them with [errors.Is] on the error returned by [Outcome.Err].
package adapter

import (
	"context"

	"github.com/MKhiriev/connector-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/connector_client_mock.go -package=mock

// ConnectorClient issues management API calls against one remote connector
// endpoint. The returned error is non-nil only for transport failures (no
// response was received); any HTTP status, including 4xx and 5xx, is reported
// through [Response].
type ConnectorClient interface {
	// Get fetches the entity of kind with the given remote identifier.
	Get(ctx context.Context, kind Kind, remoteID string) (Response, error)

	// List fetches every entity of kind known to the endpoint in one call.
	List(ctx context.Context, kind Kind) (Response, error)

	// Create submits payload as a new entity of kind.
	Create(ctx context.Context, kind Kind, payload models.Payload) (Response, error)

	// Update replaces the entity identified by remoteID with payload.
	Update(ctx context.Context, kind Kind, remoteID string, payload models.Payload) (Response, error)

	// Delete removes the entity identified by remoteID. No body is expected.
	Delete(ctx context.Context, kind Kind, remoteID string) (Response, error)
}

// ClientFactory builds a [ConnectorClient] bound to one endpoint's
// management URL, protocol version and plaintext API key.
type ClientFactory interface {
	Client(endpoint models.Endpoint) ConnectorClient
}
