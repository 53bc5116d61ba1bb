package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/smartonix/inventory-backend/internal/domain"
	profilesvc "github.com/smartonix/inventory-backend/internal/service/profile"
)

// profileService defines the minimal interface needed by ProfileHandler.
type profileService interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Update(ctx context.Context, input profilesvc.UpdateProfileInput) (*domain.Profile, error)
}

// ProfileHandler serves company settings endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type updateProfileRequest struct {
	CompanyName              *string `json:"companyName"`
	CompanyAddress           *string `json:"companyAddress"`
	LicenseNumber            *string `json:"licenseNumber"`
	IICRCCertificationNumber *string `json:"iicrcCertificationNumber"`
}

// Get handles GET /v1/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Update handles PUT /v1/profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.Update(r.Context(), profilesvc.UpdateProfileInput{
		CompanyName:              req.CompanyName,
		CompanyAddress:           req.CompanyAddress,
		LicenseNumber:            req.LicenseNumber,
		IICRCCertificationNumber: req.IICRCCertificationNumber,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}
