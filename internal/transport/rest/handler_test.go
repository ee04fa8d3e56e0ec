package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/cultour-backend/internal/domain"
)

//go:generate moq -out record_service_mock_test.go -pkg rest . recordService
//go:generate moq -out catalog_service_mock_test.go -pkg rest . catalogService
//go:generate moq -out list_invalidator_mock_test.go -pkg rest . listInvalidator

var errBoom = errors.New("boom")

// pngMagic is enough for content sniffing to classify a file as image/png.
var pngMagic = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

var testLimits = UploadLimits{
	MaxBytes:     1024,
	AllowedTypes: []string{"image/png", "image/jpeg", "image/webp"},
}

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func sampleRecord(kind domain.Kind) *domain.Record {
	return &domain.Record{
		ID:        uuid.New(),
		Kind:      kind,
		Name:      "City Museum",
		IsActive:  true,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Asset:     &domain.AssetRef{StorageKey: "a.png", PublicURL: "/uploads/a.png"},
	}
}

type formFile struct {
	field string
	name  string
	data  []byte
}

// multipartBody encodes fields and files as multipart/form-data.
func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = fw.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

// decodeEnvelope decodes a response body; Data is left as raw JSON.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (envelope, json.RawMessage) {
	t.Helper()
	var raw struct {
		envelope
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	return raw.envelope, raw.Data
}
