package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssetRef identifies a stored binary asset. StorageKey is generated by the
// asset store at upload time and never changes. PublicURL is derived from the
// key on read and is never persisted.
type AssetRef struct {
	StorageKey string
	PublicURL  string
}

// Record is a content entity that optionally owns one uploaded image.
type Record struct {
	ID           uuid.UUID
	Kind         Kind
	Name         string
	Description  *string
	Link         *string
	DisplayOrder int
	IsActive     bool
	Asset        *AssetRef
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AssetKey returns the storage key of the owned asset, or "" if none.
func (r *Record) AssetKey() string {
	if r == nil || r.Asset == nil {
		return ""
	}
	return r.Asset.StorageKey
}

// RecordFields holds the scalar fields of a new record.
type RecordFields struct {
	Name         string
	Description  *string
	Link         *string
	DisplayOrder int
	IsActive     bool
}

// RecordUpdateParams holds partial update fields. nil means "don't change";
// ptr("") on an optional text field means "clear".
type RecordUpdateParams struct {
	Name         *string
	Description  *string
	Link         *string
	DisplayOrder *int
	IsActive     *bool
}

// IsEmpty reports whether no scalar field is set.
func (p RecordUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Link == nil &&
		p.DisplayOrder == nil && p.IsActive == nil
}

// AssetChange describes what an update does to the asset_key column.
// The zero value leaves the column untouched.
type AssetChange struct {
	Set bool
	Key string // new key when Set; "" clears the column
}

// SetAsset returns an AssetChange pointing the record at key.
func SetAsset(key string) AssetChange { return AssetChange{Set: true, Key: key} }

// ClearAsset returns an AssetChange detaching the current asset.
func ClearAsset() AssetChange { return AssetChange{Set: true} }

// RecordFilter defines listing parameters.
type RecordFilter struct {
	Kind       Kind
	ActiveOnly bool
	Limit      int
	Offset     int
}
