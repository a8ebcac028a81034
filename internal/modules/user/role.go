package user

import (
	"context"
	"strings"
)

// Role is the closed set of roles an authenticated principal can carry.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleOrganizer Role = "organizer"
	RoleDelegate  Role = "delegate"
	RoleViewer    Role = "viewer"
)

// ParseRole maps a stored role name to a Role. The Spanish names used by
// older rows are accepted; anything unknown becomes RoleViewer.
func ParseRole(name string) Role {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "admin", "administrador":
		return RoleAdmin
	case "organizer", "organizador":
		return RoleOrganizer
	case "delegate", "delegado":
		return RoleDelegate
	default:
		return RoleViewer
	}
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOrganizer, RoleDelegate, RoleViewer:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Principal is the authenticated caller of a request.
type Principal struct {
	ID   uint
	Role Role
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
