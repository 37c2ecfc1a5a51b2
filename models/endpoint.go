package models

import "time"

// DefaultProtocolVersion is the management API version used when an endpoint
// is registered without an explicit one.
const DefaultProtocolVersion = "v3"

// Endpoint identifies one remote connector instance reachable through its
// management API. Every synced entity belongs to exactly one Endpoint.
type Endpoint struct {
	ID              int64      `json:"id"`
	ManagementURL   string     `json:"managementUrl" validate:"required"`
	APIKey          string     `json:"apiKey,omitempty" validate:"required"`
	ProtocolVersion string     `json:"protocolVersion,omitempty"`
	Description     string     `json:"description,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
}

// Redacted returns a copy of the endpoint without its credential, suitable for
// responses and logs.
func (e Endpoint) Redacted() Endpoint {
	e.APIKey = ""
	return e
}
