// Package http implements the REST surface of the sync service.
//
// It exposes endpoint management, per-kind sync operations and drift
// reports. Request tracing, access logging and optional bearer-token
// authentication are handled here before requests reach the service layer.
package http
