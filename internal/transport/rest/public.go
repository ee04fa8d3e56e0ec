package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/cultour-backend/internal/domain"
)

type catalogService interface {
	ListActive(ctx context.Context, kind domain.Kind) ([]*domain.Record, error)
	GetActive(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Record, error)
}

// PublicHandler serves the unauthenticated read API.
type PublicHandler struct {
	catalog catalogService
	log     *slog.Logger
}

// NewPublicHandler creates a PublicHandler.
func NewPublicHandler(catalog catalogService, logger *slog.Logger) *PublicHandler {
	return &PublicHandler{catalog: catalog, log: logger.With("handler", "public")}
}

// List handles GET /api/{kind}.
func (h *PublicHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseKind(r.PathValue("kind"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	recs, err := h.catalog.ListActive(r.Context(), kind)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toRecordResponses(recs))
}

// Get handles GET /api/{kind}/{id}.
func (h *PublicHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind, id, err := parseKindAndID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.catalog.GetActive(r.Context(), kind, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toRecordResponse(rec))
}

// parseKindAndID reads the {kind} and {id} path values. A malformed id
// cannot name an existing record and is reported as not found.
func parseKindAndID(r *http.Request) (domain.Kind, uuid.UUID, error) {
	kind, err := domain.ParseKind(r.PathValue("kind"))
	if err != nil {
		return "", uuid.Nil, err
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return "", uuid.Nil, domain.ErrNotFound
	}
	return kind, id, nil
}
