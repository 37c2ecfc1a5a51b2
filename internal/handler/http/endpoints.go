package http

import (
	"net/http"

	"github.com/MKhiriev/connector-sync/internal/utils"
	"github.com/MKhiriev/connector-sync/models"
)

func (h *Handler) createEndpoint(w http.ResponseWriter, r *http.Request) {
	var endpoint models.Endpoint
	if err := decodeJSON(w, r, &endpoint); err != nil {
		writeError(w, r, "*Handler.createEndpoint", err)
		return
	}
	endpoint.ID = 0
	endpoint.CreatedAt = nil

	created, err := h.services.EndpointService.Create(r.Context(), endpoint)
	if err != nil {
		writeError(w, r, "*Handler.createEndpoint", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listEndpoints(w http.ResponseWriter, r *http.Request) {
	endpoints, err := h.services.EndpointService.List(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listEndpoints", err)
		return
	}
	if endpoints == nil {
		endpoints = []models.Endpoint{}
	}

	utils.WriteJSON(w, endpoints, http.StatusOK)
}

func (h *Handler) getEndpoint(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "endpointID")
	if err != nil {
		writeError(w, r, "*Handler.getEndpoint", err)
		return
	}

	endpoint, err := h.services.EndpointService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getEndpoint", err)
		return
	}

	utils.WriteJSON(w, endpoint, http.StatusOK)
}

// deleteEndpoint removes the endpoint and its local entities. Remote state is
// left alone.
func (h *Handler) deleteEndpoint(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "endpointID")
	if err != nil {
		writeError(w, r, "*Handler.deleteEndpoint", err)
		return
	}

	if err = h.services.EndpointService.Delete(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteEndpoint", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) driftReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "endpointID")
	if err != nil {
		writeError(w, r, "*Handler.driftReport", err)
		return
	}

	report, err := h.services.DriftService.Report(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.driftReport", err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
