package handlers

import (
	"navigation-service/internal/api/dto"
	"navigation-service/internal/domain"
	"navigation-service/internal/ports"
	"navigation-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NavigationHandler derives distance, route links and messages from a session.
type NavigationHandler struct {
	Store ports.SessionStore
}

// Navigation returns distance and route links. An optional ?mode= narrows the
// links to a single travel mode.
func (h *NavigationHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	var mode domain.TravelMode
	if raw := r.URL.Query().Get("mode"); raw != "" {
		m, err := domain.ParseTravelMode(raw)
		if err != nil {
			writeDomainError(w, r, "navigation", err)
			return
		}
		mode = m
	}

	summary, err := services.SessionNavigation(r.Context(), chi.URLParam(r, "sessionID"), h.Store)
	if err != nil {
		writeDomainError(w, r, "navigation", err)
		return
	}

	links := make([]dto.LinkResponse, 0, len(summary.Links))
	for _, l := range summary.Links {
		if mode != "" && l.Mode != mode {
			continue
		}
		links = append(links, dto.LinkResponse{Mode: string(l.Mode), URL: l.URL})
	}

	writeJSON(w, r, http.StatusOK, dto.NavigationResponse{
		Origin:      locationResponse(summary.Origin),
		Destination: locationResponse(summary.Destination),
		DistanceKm:  summary.DistanceKm,
		Distance:    summary.DistanceText,
		Links:       links,
	})
}

func (h *NavigationHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req dto.MessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	share, err := domain.ParseLocationShare(req.Share)
	if err != nil {
		writeDomainError(w, r, "compose message", err)
		return
	}

	payload, err := services.ComposeMessage(r.Context(), services.ComposeMessageRequest{
		SessionID: chi.URLParam(r, "sessionID"),
		Recipient: req.Recipient,
		Body:      req.Body,
		Template:  req.Template,
		Share:     share,
	}, h.Store)
	if err != nil {
		writeDomainError(w, r, "compose message", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MessageResponse{
		RecipientDigits: payload.RecipientDigits,
		Body:            payload.Body,
		URL:             payload.EncodedURL,
	})
}

// Templates lists the quick message templates.
func Templates(w http.ResponseWriter, r *http.Request) {
	templates := domain.MessageTemplates()

	res := dto.ListTemplatesResponse{Templates: make([]dto.TemplateResponse, 0, len(templates))}
	for _, t := range templates {
		res.Templates = append(res.Templates, dto.TemplateResponse{Name: t.Name, Body: t.Body})
	}

	writeJSON(w, r, http.StatusOK, res)
}
