package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/heartmarshall/cultour-backend/internal/domain"
	"github.com/heartmarshall/cultour-backend/internal/service/record"
)

type recordService interface {
	List(ctx context.Context, kind domain.Kind, limit, offset int) ([]*domain.Record, error)
	Get(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Record, error)
	CreateWithAsset(ctx context.Context, input record.CreateInput) (*domain.Record, error)
	UpdateWithAsset(ctx context.Context, input record.UpdateInput) (*domain.Record, error)
	RemoveAsset(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Record, error)
	DeleteWithAsset(ctx context.Context, kind domain.Kind, id uuid.UUID) error
}

type listInvalidator interface {
	Invalidate(kind domain.Kind)
}

// formOverhead is the allowance for text fields and multipart framing on top
// of the image size limit.
const formOverhead = 64 << 10

// imageField is the multipart field carrying the uploaded image.
const imageField = "image"

var errTooLarge = errors.New("request too large")

// UploadLimits bounds accepted uploads.
type UploadLimits struct {
	MaxBytes     int64
	AllowedTypes []string
}

// AdminHandler serves the authenticated write API. Routes must be wrapped
// in middleware.RequireAdmin.
type AdminHandler struct {
	records recordService
	lists   listInvalidator
	limits  UploadLimits
	log     *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(records recordService, lists listInvalidator, limits UploadLimits, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		records: records,
		lists:   lists,
		limits:  limits,
		log:     logger.With("handler", "admin"),
	}
}

// List handles GET /api/admin/{kind}?limit=&offset=.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseKind(r.PathValue("kind"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit, offset, err := parsePage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	recs, err := h.records.List(r.Context(), kind, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toRecordResponses(recs))
}

// Get handles GET /api/admin/{kind}/{id}. Inactive records are included.
func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind, id, err := parseKindAndID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.records.Get(r.Context(), kind, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toRecordResponse(rec))
}

// Create handles POST /api/admin/{kind} (multipart/form-data).
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseKind(r.PathValue("kind"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	form, file, err := h.readForm(w, r)
	if err != nil {
		h.formError(w, r, err)
		return
	}

	fields, err := createFields(form)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.records.CreateWithAsset(r.Context(), record.CreateInput{
		Kind:   kind,
		Fields: fields,
		File:   file,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.lists.Invalidate(kind)
	writeData(w, http.StatusCreated, toRecordResponse(rec))
}

// Update handles PUT /api/admin/{kind}/{id} (multipart/form-data). Absent
// fields are left unchanged; an empty description or link clears it.
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	kind, id, err := parseKindAndID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	form, file, err := h.readForm(w, r)
	if err != nil {
		h.formError(w, r, err)
		return
	}

	params, err := updateParams(form)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.records.UpdateWithAsset(r.Context(), record.UpdateInput{
		Kind:   kind,
		ID:     id,
		Params: params,
		File:   file,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.lists.Invalidate(kind)
	writeData(w, http.StatusOK, toRecordResponse(rec))
}

// RemoveImage handles DELETE /api/admin/{kind}/{id}/image.
func (h *AdminHandler) RemoveImage(w http.ResponseWriter, r *http.Request) {
	kind, id, err := parseKindAndID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.records.RemoveAsset(r.Context(), kind, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.lists.Invalidate(kind)
	writeData(w, http.StatusOK, toRecordResponse(rec))
}

// Delete handles DELETE /api/admin/{kind}/{id}.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	kind, id, err := parseKindAndID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.records.DeleteWithAsset(r.Context(), kind, id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.lists.Invalidate(kind)
	writeMessage(w, http.StatusOK, "deleted")
}

// ---------------------------------------------------------------------------
// Multipart handling
// ---------------------------------------------------------------------------

// readForm parses a size-limited multipart body and returns its text values
// and the optional image. The image is checked against the allowed types by
// content, not by the client-declared Content-Type.
func (h *AdminHandler) readForm(w http.ResponseWriter, r *http.Request) (*multipart.Form, *record.File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.limits.MaxBytes+formOverhead)

	if err := r.ParseMultipartForm(h.limits.MaxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, errTooLarge
		}
		return nil, nil, domain.NewValidationError("body", "expected multipart/form-data")
	}
	form := r.MultipartForm
	defer form.RemoveAll() //nolint:errcheck

	headers := form.File[imageField]
	if len(headers) == 0 {
		return form, nil, nil
	}
	if len(headers) > 1 {
		return nil, nil, domain.NewValidationError(imageField, "only one file allowed")
	}

	data, err := readLimited(headers[0], h.limits.MaxBytes)
	if err != nil {
		return nil, nil, err
	}

	if len(data) > 0 {
		mt := mimetype.Detect(data)
		if !mimetype.EqualsAny(mt.String(), h.limits.AllowedTypes...) {
			return nil, nil, domain.NewValidationError(imageField, fmt.Sprintf("unsupported file type %s", mt.String()))
		}
	}

	return form, &record.File{Data: data, Name: headers[0].Filename}, nil
}

func readLimited(fh *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	if fh.Size > maxBytes {
		return nil, errTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, errTooLarge
	}
	return data, nil
}

func (h *AdminHandler) formError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %d bytes", h.limits.MaxBytes))
		return
	}
	handleError(h.log, w, r, err)
}

// ---------------------------------------------------------------------------
// Form field decoding
// ---------------------------------------------------------------------------

func formValue(form *multipart.Form, key string) (string, bool) {
	vals, ok := form.Value[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

func createFields(form *multipart.Form) (domain.RecordFields, error) {
	var errs []domain.FieldError

	f := domain.RecordFields{IsActive: true}
	f.Name, _ = formValue(form, "name")
	if v, ok := formValue(form, "description"); ok {
		f.Description = &v
	}
	if v, ok := formValue(form, "link"); ok {
		f.Link = &v
	}
	if v, ok := formValue(form, "display_order"); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "display_order", Message: "must be an integer"})
		}
		f.DisplayOrder = n
	}
	if v, ok := formValue(form, "is_active"); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "is_active", Message: "must be a boolean"})
		}
		f.IsActive = b
	}

	if len(errs) > 0 {
		return f, domain.NewValidationErrors(errs)
	}
	return f, nil
}

func updateParams(form *multipart.Form) (domain.RecordUpdateParams, error) {
	var (
		p    domain.RecordUpdateParams
		errs []domain.FieldError
	)

	if v, ok := formValue(form, "name"); ok {
		p.Name = &v
	}
	if v, ok := formValue(form, "description"); ok {
		p.Description = &v
	}
	if v, ok := formValue(form, "link"); ok {
		p.Link = &v
	}
	if v, ok := formValue(form, "display_order"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "display_order", Message: "must be an integer"})
		} else {
			p.DisplayOrder = &n
		}
	}
	if v, ok := formValue(form, "is_active"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "is_active", Message: "must be a boolean"})
		} else {
			p.IsActive = &b
		}
	}

	if len(errs) > 0 {
		return p, domain.NewValidationErrors(errs)
	}
	return p, nil
}

func parsePage(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()
	var errs []domain.FieldError

	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit < 0 {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be a non-negative integer"})
		}
	}
	if v := q.Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil || offset < 0 {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be a non-negative integer"})
		}
	}

	if len(errs) > 0 {
		return 0, 0, domain.NewValidationErrors(errs)
	}
	return limit, offset, nil
}
