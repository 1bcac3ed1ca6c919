// Package auth covers who the caller is (principal resolution via JWT)
// and what they may do (the role/action access matrix). Password hashing
// lives here too since it is the other half of credential handling.
package auth

import "github.com/jazelams/soccer-app/model"

// Principal is the resolved identity of an authenticated caller.
type Principal struct {
	UserID   int32
	Username string
	Role     model.Role
	// TeamID is set only for TEAM_REPRESENTATIVE principals.
	TeamID *int32
}

// OwnsTeam reports whether the principal is the representative of the
// given team. Admins and treasurers do not "own" teams; their access
// comes from the matrix, not ownership.
func (p *Principal) OwnsTeam(teamID int32) bool {
	return p.TeamID != nil && *p.TeamID == teamID
}

type Action string

const (
	ActionManageTournament     Action = "manage_tournament"
	ActionManageTeam           Action = "manage_team"
	ActionRecordPayment        Action = "record_payment"
	ActionUpdateMatchdayStatus Action = "update_matchday_status"
	ActionReadOwnStatement     Action = "read_own_statement"
	ActionReadAnyStatement     Action = "read_any_statement"
	ActionListTournaments      Action = "list_tournaments"
)

// Allow is the access matrix. It assumes the principal was already
// authenticated; callers must reject unauthenticated requests before
// asking about authorization. There is deliberately no bypass path:
// every decision comes from this table.
func Allow(role model.Role, action Action, ownsResource bool) bool {
	switch role {
	case model.RoleAdmin:
		return true
	case model.RoleTreasurer:
		return action != ActionManageTournament
	case model.RoleTeamRep:
		switch action {
		case ActionListTournaments:
			return true
		case ActionReadOwnStatement:
			return ownsResource
		}
		return false
	}
	return false
}
