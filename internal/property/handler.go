// AngelaMos | 2026
// handler.go

package property

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/AaryaRajwade/SE-RMS/internal/core"
	"github.com/AaryaRajwade/SE-RMS/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, optionalAuth, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/property", func(r chi.Router) {
		r.Get("/approved", h.ListApproved)
		r.Post("/search", h.Search)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Post("/register", h.Submit)
			r.Get("/my-properties", h.MyProperties)
			r.Put("/{propertyID}", h.Edit)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)

			r.Get("/pending", h.ListPending)
			r.Post("/approve/{propertyID}", h.Approve)
			r.Delete("/reject/{propertyID}", h.Reject)
		})

		// Optional auth: a pending listing is only visible to its owner
		// or an admin, so identity matters here when present.
		r.Group(func(r chi.Router) {
			r.Use(optionalAuth)

			r.Get("/{propertyID}", h.GetProperty)
		})
	})
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	var req CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	property, err := h.service.Submit(r.Context(), ownerID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, CreatePropertyResponse{
		Message:    "Property registered successfully. Waiting for admin approval.",
		PropertyID: property.ID,
	})
}

func (h *Handler) ListApproved(w http.ResponseWriter, r *http.Request) {
	properties, err := h.service.ListApproved(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPropertyResponseList(properties))
}

func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	properties, err := h.service.ListPending(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPropertyResponseList(properties))
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	properties, err := h.service.Search(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPropertyResponseList(properties))
}

func (h *Handler) MyProperties(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	properties, err := h.service.ListByOwner(r.Context(), ownerID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPropertyResponseList(properties))
}

func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")

	property, err := h.service.GetVisible(
		r.Context(),
		propertyID,
		middleware.GetUserID(r.Context()),
		middleware.IsAdmin(r.Context()),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "property")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPropertyResponse(property))
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")

	if err := h.service.Approve(r.Context(), propertyID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "property")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, MessageResponse{Message: "Property approved successfully"})
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")

	if err := h.service.Reject(r.Context(), propertyID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "property")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, MessageResponse{Message: "Property rejected and deleted"})
}

func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")
	requesterID := middleware.GetUserID(r.Context())

	var req UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	_, err := h.service.Edit(r.Context(), propertyID, requesterID, req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "property")
		case errors.Is(err, ErrNotOwner):
			core.Forbidden(w, "only property owner can update")
		case errors.Is(err, ErrAlreadyApproved):
			core.Forbidden(w, "cannot update approved property")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, MessageResponse{Message: "Property updated successfully"})
}
