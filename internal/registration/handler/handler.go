// Package handler exposes the registration validation endpoints.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"regate/internal/organization"
	"regate/internal/registration"
	"regate/internal/transport/http/shared"
	id "regate/pkg/domain"
	dErrors "regate/pkg/domain-errors"
	"regate/pkg/platform/sentinel"
)

// Validator runs one validation pass over a submission.
type Validator interface {
	Validate(ctx context.Context, input registration.Input, org *organization.Organization) (registration.Decision, error)
}

// OrganizationResolver maps the request host to its organization.
type OrganizationResolver interface {
	FindByHost(ctx context.Context, host string) (*organization.Organization, error)
}

type Handler struct {
	logger    *slog.Logger
	validator Validator
	orgs      OrganizationResolver
}

func New(validator Validator, orgs OrganizationResolver, logger *slog.Logger) *Handler {
	return &Handler{
		logger:    logger,
		validator: validator,
		orgs:      orgs,
	}
}

// Register mounts the registration routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/signup", h.handleSignup)
	r.Get("/signup/statuses", h.handleStatuses)
}

// signupRequest is the boundary representation of a submission. Booleans are
// strict JSON booleans; "1" or "yes" are decode errors, not truthy values.
type signupRequest struct {
	Name                 string `json:"name"`
	Nickname             string `json:"nickname"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Newsletter           bool   `json:"newsletter"`
	TOSAgreement         bool   `json:"tos_agreement"`
	CurrentLocale        string `json:"current_locale"`
	Status               string `json:"status"`
	Provenance           string `json:"provenance"`
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	org, ok := h.resolveOrganization(w, r)
	if !ok {
		return
	}

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid signup request body", "error", err.Error())
		shared.WriteError(ctx, w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	// Passwords keep their whitespace; everything else is trimmed at the door.
	sanitize(&req, "Password", "PasswordConfirmation")

	decision, err := h.validator.Validate(ctx, registration.Input{
		Name:                 req.Name,
		Nickname:             req.Nickname,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
		Newsletter:           req.Newsletter,
		TOSAgreement:         req.TOSAgreement,
		CurrentLocale:        req.CurrentLocale,
		Status:               req.Status,
		Provenance:           req.Provenance,
	}, org)
	if err != nil {
		shared.WriteError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if !decision.Valid {
		status = http.StatusUnprocessableEntity
	}
	shared.WriteJSON(ctx, w, status, decision)
}

// handleStatuses returns the selectable status catalog for signup forms.
// Hidden entries stay out of the listing but still validate on submission.
func (h *Handler) handleStatuses(w http.ResponseWriter, r *http.Request) {
	all := id.Statuses()
	visible := make([]id.StatusEntry, 0, len(all))
	for _, entry := range all {
		if !entry.Hidden {
			visible = append(visible, entry)
		}
	}
	shared.WriteJSON(r.Context(), w, http.StatusOK, map[string][]id.StatusEntry{
		"statuses": visible,
	})
}

func (h *Handler) resolveOrganization(w http.ResponseWriter, r *http.Request) (*organization.Organization, bool) {
	ctx := r.Context()
	host := requestHost(r)

	org, err := h.orgs.FindByHost(ctx, host)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			shared.WriteError(ctx, w, dErrors.New(dErrors.CodeNotFound, "unknown organization host"))
			return nil, false
		}
		h.logger.ErrorContext(ctx, "organization lookup failed", "host", host, "error", err.Error())
		shared.WriteError(ctx, w, dErrors.Wrap(err, dErrors.CodeUnavailable, "organization lookup unavailable"))
		return nil, false
	}
	return org, true
}

func requestHost(r *http.Request) string {
	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(host)
}
