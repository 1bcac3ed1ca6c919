package model

import "fmt"

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleTreasurer Role = "TREASURER"
	RoleTeamRep   Role = "TEAM_REPRESENTATIVE"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleTreasurer, RoleTeamRep:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role: %s", s)
}

type User struct {
	ID           int32
	Username     string
	PasswordHash string
	Role         Role
	// TeamID is only set for TEAM_REPRESENTATIVE users and links them to
	// the single team whose statement they may read.
	TeamID *int32
}
