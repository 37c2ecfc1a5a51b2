package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/connector-sync/internal/service"
	"github.com/MKhiriev/connector-sync/internal/utils"
	"github.com/MKhiriev/connector-sync/models"
)

// entityHandler serves the sync operations of one entity kind.
type entityHandler[D models.Payload] struct {
	kind string
	svc  service.EntitySyncService[D]
}

// mountEndpointKindRoutes registers the endpoint-scoped routes of a kind:
// GET lists with a sync check, POST creates.
func mountEndpointKindRoutes[D models.Payload](r chi.Router, kind string, svc service.EntitySyncService[D]) {
	h := &entityHandler[D]{kind: kind, svc: svc}
	r.Get("/"+kind, h.list)
	r.Post("/"+kind, h.create)
}

// mountEntityRoutes registers the routes addressing one local entity by id.
func mountEntityRoutes[D models.Payload](r chi.Router, kind string, svc service.EntitySyncService[D]) {
	h := &entityHandler[D]{kind: kind, svc: svc}
	r.Route("/"+kind+"/{id}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Put("/", h.update)
		r.Delete("/", h.delete)
	})
}

func (h *entityHandler[D]) list(w http.ResponseWriter, r *http.Request) {
	endpointID, err := pathID(r, "endpointID")
	if err != nil {
		writeError(w, r, h.fn("list"), err)
		return
	}

	items, err := h.svc.GetAllWithSyncCheck(r.Context(), endpointID)
	if err != nil {
		writeError(w, r, h.fn("list"), err)
		return
	}
	if items == nil {
		items = []models.Synced[D]{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *entityHandler[D]) create(w http.ResponseWriter, r *http.Request) {
	endpointID, err := pathID(r, "endpointID")
	if err != nil {
		writeError(w, r, h.fn("create"), err)
		return
	}

	var dto D
	if err = decodeJSON(w, r, &dto); err != nil {
		writeError(w, r, h.fn("create"), err)
		return
	}

	created, err := h.svc.Create(r.Context(), endpointID, dto)
	if err != nil {
		writeError(w, r, h.fn("create"), err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *entityHandler[D]) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.fn("get"), err)
		return
	}

	item, err := h.svc.GetWithSyncCheck(r.Context(), id)
	if err != nil {
		writeError(w, r, h.fn("get"), err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *entityHandler[D]) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.fn("update"), err)
		return
	}

	var dto D
	if err = decodeJSON(w, r, &dto); err != nil {
		writeError(w, r, h.fn("update"), err)
		return
	}

	updated, err := h.svc.Update(r.Context(), id, dto)
	if err != nil {
		writeError(w, r, h.fn("update"), err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *entityHandler[D]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.fn("delete"), err)
		return
	}

	if err = h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.fn("delete"), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *entityHandler[D]) fn(op string) string {
	return "entityHandler[" + h.kind + "]." + op
}
