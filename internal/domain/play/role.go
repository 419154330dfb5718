package play

// Role identifies which player performed a part of a play.
type Role int

const (
	RolePasser Role = iota
	RoleReceiver
	RoleRusher
	RoleFumbler
	RoleKicker
	RoleLateralKickoffReturner
	RoleLateralPuntReturner
	RoleKickoffReturner
	RolePuntReturner

	roleCount
)

var roleColumnPrefixes = [roleCount]string{
	RolePasser:                 "passer",
	RoleReceiver:               "receiver",
	RoleRusher:                 "rusher",
	RoleFumbler:                "fumbled_1",
	RoleKicker:                 "kicker",
	RoleLateralKickoffReturner: "lateral_kickoff_returner",
	RoleLateralPuntReturner:    "lateral_punt_returner",
	RoleKickoffReturner:        "kickoff_returner",
	RolePuntReturner:           "punt_returner",
}

// Roles lists every role column pair a player can be matched against.
var Roles = []Role{
	RolePasser,
	RoleReceiver,
	RoleRusher,
	RoleFumbler,
	RoleKicker,
	RoleLateralKickoffReturner,
	RoleLateralPuntReturner,
	RoleKickoffReturner,
	RolePuntReturner,
}

// ReturnerRoles is the coalesce priority used to resolve who returned a kick.
var ReturnerRoles = []Role{
	RoleLateralKickoffReturner,
	RoleLateralPuntReturner,
	RoleKickoffReturner,
	RolePuntReturner,
}

func (r Role) valid() bool {
	return r >= 0 && r < roleCount
}

func (r Role) String() string {
	if !r.valid() {
		return "unknown"
	}
	return roleColumnPrefixes[r]
}

// IDColumn is the nflverse column holding the role's player id.
func (r Role) IDColumn() string {
	return r.String() + "_player_id"
}

// NameColumn is the nflverse column holding the role's player name.
func (r Role) NameColumn() string {
	return r.String() + "_player_name"
}

// Coalesce returns the first non-null id and the first non-null name across roles,
// resolved independently of each other.
func (r Record) Coalesce(roles []Role) Identity {
	var out Identity
	for _, role := range roles {
		p := r.Player(role)
		if out.ID == "" {
			out.ID = p.ID
		}
		if out.Name == "" {
			out.Name = p.Name
		}
	}
	return out
}
