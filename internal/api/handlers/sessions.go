package handlers

import (
	"navigation-service/internal/api/dto"
	"navigation-service/internal/domain"
	"navigation-service/internal/ports"
	"navigation-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SessionHandler exposes session lifecycle and location slot endpoints.
type SessionHandler struct {
	Store    ports.SessionStore
	Geocoder ports.Geocoder
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := services.CreateSession(r.Context(), h.Store)
	if err != nil {
		writeDomainError(w, r, "create session", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.CreateSessionResponse{SessionID: id})
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	state, err := services.SessionState(r.Context(), id, h.Store)
	if err != nil {
		writeDomainError(w, r, "get session", err)
		return
	}

	writeJSON(w, r, http.StatusOK, sessionResponse(id, state))
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		writeDomainError(w, r, "delete session", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reset clears both location slots but keeps the session.
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	if err := services.ResetSession(r.Context(), id, h.Store); err != nil {
		writeDomainError(w, r, "reset session", err)
		return
	}

	writeJSON(w, r, http.StatusOK, sessionResponse(id, domain.NewLocationState()))
}

// SetLocation resolves the request query and stores it in the named slot.
func (h *SessionHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	slot, err := domain.ParseSlot(chi.URLParam(r, "slot"))
	if err != nil {
		writeDomainError(w, r, "set location", err)
		return
	}

	var req dto.ResolveLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	loc, err := services.ResolveLocation(r.Context(), services.ResolveLocationRequest{
		SessionID: chi.URLParam(r, "sessionID"),
		Slot:      slot,
		Query:     req.Query,
	}, h.Geocoder, h.Store)
	if err != nil {
		writeDomainError(w, r, "set location", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ResolveLocationResponse{
		Slot:     string(slot),
		Location: locationResponse(loc),
	})
}

func locationResponse(loc domain.ResolvedLocation) dto.LocationResponse {
	return dto.LocationResponse{
		Lat:            loc.Coordinates.Lat,
		Lon:            loc.Coordinates.Lon,
		DisplayAddress: loc.DisplayAddress,
	}
}

func sessionResponse(id string, state *domain.LocationState) dto.SessionResponse {
	res := dto.SessionResponse{SessionID: id, Phase: string(state.Phase())}
	if loc, ok := state.Get(domain.SlotOrigin); ok {
		lr := locationResponse(loc)
		res.Origin = &lr
	}
	if loc, ok := state.Get(domain.SlotDestination); ok {
		lr := locationResponse(loc)
		res.Destination = &lr
	}
	return res
}
