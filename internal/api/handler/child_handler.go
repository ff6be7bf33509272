package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mkowalczyk/lullaby/internal/api/validation"
	"github.com/mkowalczyk/lullaby/internal/domain"
	"github.com/mkowalczyk/lullaby/internal/service"
	"github.com/mkowalczyk/lullaby/pkg/problem"
)

// @title Lullaby API
// @version 1.0
// @description API for tracking and analyzing a baby's sleep
// @BasePath /v1

type ChildHandler struct {
	service service.ChildService
}

func NewChildHandler(service service.ChildService) *ChildHandler {
	return &ChildHandler{service: service}
}

// Create handles POST /v1/children
// @Summary Register a child
// @Description Register a new child profile with birth date and timezone
// @Tags children
// @Accept json
// @Produce json
// @Param request body domain.CreateChildRequest true "Child registration request"
// @Success 201 {object} domain.ChildResponse
// @Failure 400 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /children [post]
func (h *ChildHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateChildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	child, err := h.service.Create(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to create child").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(child.ToResponse())
}

// GetByID handles GET /v1/children/{childId}
// @Summary Get child by ID
// @Description Get a child's profile by its UUID
// @Tags children
// @Produce json
// @Param childId path string true "Child ID" format(uuid)
// @Success 200 {object} domain.ChildResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /children/{childId} [get]
func (h *ChildHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	childID, err := uuid.Parse(chi.URLParam(r, "childId"))
	if err != nil {
		problem.BadRequest("Invalid child ID format").Write(w)
		return
	}

	child, err := h.service.GetByID(r.Context(), childID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Child not found").Write(w)
			return
		}
		problem.InternalError("Failed to get child").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(child.ToResponse())
}
