package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"alx_stays/internal/adapters/observability"
	"alx_stays/internal/app"
	"alx_stays/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	C *app.CommandService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// reviewEnvelope matches the {success, data, message?} shape the review
// endpoints always returned.
type reviewEnvelope struct {
	Success bool            `json:"success"`
	Data    []domain.Review `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/properties", h.listProperties)
	s.mux.Get("/properties/{id}", h.getProperty)
	s.mux.Get("/properties/{id}/reviews", h.listReviews)
	s.mux.Post("/properties/{id}/reviews", h.addReview)
	s.mux.Post("/bookings", h.createBooking)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	c := ParseCriteria(r.URL.Query())
	observability.ObserveFilterQuery(!c.IsZero())

	ps, err := h.Q.ListProperties(r.Context(), c)
	if err != nil {
		log.Error().Err(err).Msg("list properties failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "failed to load properties")
		return
	}
	if ps == nil {
		ps = []domain.Property{} // empty result is a valid result, not null
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.Q.GetProperty(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "property not found")
			return
		}
		log.Error().Err(err).Str("id", id).Msg("get property failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "failed to load property")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rs, err := h.Q.ListReviews(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("list reviews failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "failed to fetch reviews")
		return
	}
	if rs == nil {
		rs = []domain.Review{}
	}
	writeJSON(w, http.StatusOK, reviewEnvelope{Success: true, Data: rs})
}

func (h *Handlers) addReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var in app.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	rv, err := h.C.AddReview(r.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeProblem(w, http.StatusBadRequest, "Invalid Review", err.Error())
		case errors.Is(err, domain.ErrNotFound):
			writeProblem(w, http.StatusNotFound, "Not Found", "property not found")
		default:
			log.Error().Err(err).Str("id", id).Msg("add review failed")
			writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "failed to create review")
		}
		return
	}
	writeJSON(w, http.StatusCreated, reviewEnvelope{Success: true, Data: []domain.Review{rv}})
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var in domain.BookingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	b, err := h.C.CreateBooking(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeProblem(w, http.StatusBadRequest, "Invalid Booking", err.Error())
		case errors.Is(err, domain.ErrPaymentDeclined):
			writeProblem(w, http.StatusPaymentRequired, "Payment Failed", "payment failed, please check your payment details")
		default:
			log.Error().Err(err).Msg("create booking failed")
			writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "an error occurred while processing your booking")
		}
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		BookingID string `json:"bookingId"`
	}{true, "Booking confirmed successfully!", b.ID})
}
