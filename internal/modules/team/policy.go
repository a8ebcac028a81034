package team

import "torneos/internal/modules/user"

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Grant int

const (
	Never Grant = iota
	Always
	// IfOrganizer allows the caller only when they organize the team's tournament.
	IfOrganizer
)

// capabilities is the whole authorization table for teams. Roles missing
// from a row fall back to the RoleViewer cell.
var capabilities = map[Action]map[user.Role]Grant{
	ActionCreate: {
		user.RoleAdmin:     Always,
		user.RoleOrganizer: Always,
		user.RoleDelegate:  Always,
		user.RoleViewer:    Never,
	},
	ActionUpdate: {
		user.RoleAdmin:     Always,
		user.RoleOrganizer: IfOrganizer,
		user.RoleDelegate:  Always,
		user.RoleViewer:    IfOrganizer,
	},
	ActionDelete: {
		user.RoleAdmin:     Always,
		user.RoleOrganizer: IfOrganizer,
		user.RoleDelegate:  IfOrganizer,
		user.RoleViewer:    IfOrganizer,
	},
}

func grantFor(action Action, role user.Role) Grant {
	row, ok := capabilities[action]
	if !ok {
		return Never
	}
	if g, ok := row[role]; ok {
		return g
	}
	return row[user.RoleViewer]
}

// Authorize decides whether p may perform action on a team whose tournament
// is organized by organizerID (nil when unknown or not applicable).
func Authorize(action Action, p user.Principal, organizerID *uint) bool {
	switch grantFor(action, p.Role) {
	case Always:
		return true
	case IfOrganizer:
		return organizerID != nil && *organizerID == p.ID
	default:
		return false
	}
}

// RolesFor lists the roles that can ever perform action; used by the route
// level role gate.
func RolesFor(action Action) []user.Role {
	var roles []user.Role
	for _, role := range []user.Role{user.RoleAdmin, user.RoleOrganizer, user.RoleDelegate, user.RoleViewer} {
		if grantFor(action, role) == Always {
			roles = append(roles, role)
		}
	}
	return roles
}
