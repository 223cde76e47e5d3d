package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"navigation-service/internal/domain"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// domainStatuses maps domain errors to HTTP status codes. Their messages are
// shown to users as-is.
var domainStatuses = []struct {
	err    error
	status int
}{
	{domain.ErrEmptyQuery, http.StatusBadRequest},
	{domain.ErrInvalidRecipient, http.StatusBadRequest},
	{domain.ErrEmptyBody, http.StatusBadRequest},
	{domain.ErrInvalidSlot, http.StatusBadRequest},
	{domain.ErrInvalidShare, http.StatusBadRequest},
	{domain.ErrInvalidMode, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrSessionNotFound, http.StatusNotFound},
	{domain.ErrUnknownTemplate, http.StatusNotFound},
	{domain.ErrIncompleteRoute, http.StatusConflict},
	{domain.ErrMalformedCoordinate, http.StatusBadGateway},
	{domain.ErrProviderUnavailable, http.StatusServiceUnavailable},
}

// writeDomainError responds with the first matching domain error or a 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, op string, err error) {
	for _, d := range domainStatuses {
		if errors.Is(err, d.err) {
			if d.status >= http.StatusInternalServerError {
				log.Printf("%s failed: %v", op, err)
			}
			writeError(w, r, d.status, d.err.Error())
			return
		}
	}

	log.Printf("%s failed: %v", op, err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

// decodeJSON reads exactly one JSON object into dst and validates it.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<16))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return errors.New("invalid json body")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}

	return nil
}
