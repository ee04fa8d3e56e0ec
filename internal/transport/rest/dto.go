package rest

import (
	"time"

	"github.com/heartmarshall/cultour-backend/internal/domain"
)

type imageResponse struct {
	StorageKey string `json:"storageKey"`
	PublicURL  string `json:"publicUrl"`
}

type recordResponse struct {
	ID           string         `json:"id"`
	Kind         string         `json:"kind"`
	Name         string         `json:"name"`
	Description  *string        `json:"description"`
	Link         *string        `json:"link"`
	DisplayOrder int            `json:"displayOrder"`
	IsActive     bool           `json:"isActive"`
	Image        *imageResponse `json:"image"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func toRecordResponse(rec *domain.Record) recordResponse {
	resp := recordResponse{
		ID:           rec.ID.String(),
		Kind:         rec.Kind.String(),
		Name:         rec.Name,
		Description:  rec.Description,
		Link:         rec.Link,
		DisplayOrder: rec.DisplayOrder,
		IsActive:     rec.IsActive,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
	if rec.Asset != nil {
		resp.Image = &imageResponse{
			StorageKey: rec.Asset.StorageKey,
			PublicURL:  rec.Asset.PublicURL,
		}
	}
	return resp
}

func toRecordResponses(recs []*domain.Record) []recordResponse {
	out := make([]recordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRecordResponse(rec))
	}
	return out
}
