package record

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/cultour-backend/internal/domain"
)

const (
	maxNameLen        = 200
	maxDescriptionLen = 10000
	maxLinkLen        = 500
	maxDisplayOrder   = 1_000_000
)

// CreateInput holds the parameters for creating a record.
type CreateInput struct {
	Kind   domain.Kind
	Fields domain.RecordFields
	File   *File // nil = no image
}

// Validate checks all fields against the kind's allow-list and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		return domain.NewValidationError("kind", "unknown kind")
	}
	rules := i.Kind.Rules()

	errs = append(errs, validateName(i.Fields.Name)...)

	switch {
	case i.Fields.Description == nil || strings.TrimSpace(*i.Fields.Description) == "":
		if rules.RequireDescription {
			errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
		}
	case len(strings.TrimSpace(*i.Fields.Description)) > maxDescriptionLen:
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDescriptionLen)})
	}

	errs = append(errs, validateLink(i.Fields.Link, rules)...)
	errs = append(errs, validateDisplayOrder(i.Fields.DisplayOrder)...)
	errs = append(errs, validateFile(i.File)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// normalized returns the fields with text trimmed and empty optionals set to nil.
func (i CreateInput) normalized() domain.RecordFields {
	f := i.Fields
	f.Name = strings.TrimSpace(f.Name)
	f.Description = trimOrNil(f.Description)
	f.Link = trimOrNil(f.Link)
	return f
}

// UpdateInput holds the parameters for a partial update.
type UpdateInput struct {
	Kind   domain.Kind
	ID     uuid.UUID
	Params domain.RecordUpdateParams
	File   *File // nil = keep the current image
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		return domain.NewValidationError("kind", "unknown kind")
	}
	rules := i.Kind.Rules()

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Params.IsEmpty() && i.File == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field or an image must be provided"})
	}
	if i.Params.Name != nil {
		errs = append(errs, validateName(*i.Params.Name)...)
	}
	if d := i.Params.Description; d != nil {
		trimmed := strings.TrimSpace(*d)
		if trimmed == "" && rules.RequireDescription {
			errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
		}
		if len(trimmed) > maxDescriptionLen {
			errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDescriptionLen)})
		}
	}
	errs = append(errs, validateLink(i.Params.Link, rules)...)
	if i.Params.DisplayOrder != nil {
		errs = append(errs, validateDisplayOrder(*i.Params.DisplayOrder)...)
	}
	errs = append(errs, validateFile(i.File)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// normalized trims text params. ptr("") survives as the "clear" marker.
func (i UpdateInput) normalized() domain.RecordUpdateParams {
	p := i.Params
	if p.Name != nil {
		p.Name = ptr(strings.TrimSpace(*p.Name))
	}
	if p.Description != nil {
		p.Description = ptr(strings.TrimSpace(*p.Description))
	}
	if p.Link != nil {
		p.Link = ptr(strings.TrimSpace(*p.Link))
	}
	return p
}

// ---------------------------------------------------------------------------
// Field validators
// ---------------------------------------------------------------------------

func validateName(name string) []domain.FieldError {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if len(trimmed) > maxNameLen {
		return []domain.FieldError{{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLen)}}
	}
	return nil
}

func validateLink(link *string, rules domain.KindRules) []domain.FieldError {
	if link == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*link)
	if !rules.AllowLink {
		if trimmed == "" {
			return nil
		}
		return []domain.FieldError{{Field: "link", Message: "not supported for this kind"}}
	}
	if trimmed == "" {
		return nil
	}
	if len(trimmed) > maxLinkLen {
		return []domain.FieldError{{Field: "link", Message: fmt.Sprintf("max %d characters", maxLinkLen)}}
	}
	u, err := url.Parse(trimmed)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return []domain.FieldError{{Field: "link", Message: "must be an http(s) URL"}}
	}
	return nil
}

func validateDisplayOrder(order int) []domain.FieldError {
	if order < 0 || order > maxDisplayOrder {
		return []domain.FieldError{{Field: "display_order", Message: fmt.Sprintf("must be between 0 and %d", maxDisplayOrder)}}
	}
	return nil
}

func validateFile(f *File) []domain.FieldError {
	if f != nil && len(f.Data) == 0 {
		return []domain.FieldError{{Field: "image", Message: "file is empty"}}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func ptr[T any](v T) *T { return &v }
