package domain

import "fmt"

// Kind identifies a resource type whose records may own one uploaded image.
type Kind string

const (
	KindInitiative Kind = "initiatives"
	KindStory      Kind = "stories"
	KindPartner    Kind = "partners"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindInitiative, KindStory, KindPartner:
		return true
	}
	return false
}

// AllKinds lists every asset-owning kind.
func AllKinds() []Kind {
	return []Kind{KindInitiative, KindStory, KindPartner}
}

// ParseKind converts a URL path segment into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("kind %q: %w", s, ErrNotFound)
	}
	return k, nil
}

// KindRules is the field allow-list of a Kind.
type KindRules struct {
	RequireDescription bool
	AllowLink          bool
}

// Rules returns the field allow-list for the kind.
func (k Kind) Rules() KindRules {
	switch k {
	case KindStory:
		return KindRules{RequireDescription: true}
	case KindInitiative, KindPartner:
		return KindRules{AllowLink: true}
	}
	return KindRules{}
}

// UserRole represents the authorization level of a caller.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role grants access to the admin API.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
