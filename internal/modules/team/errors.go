package team

import "errors"

var (
	ErrInvalidTeamID      = errors.New("invalid team id")
	ErrTeamNotFound       = errors.New("team not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrTeamNameTaken      = errors.New("team name already exists in tournament")
	ErrTeamAccessDenied   = errors.New("access denied to team")
	ErrTeamInternal       = errors.New("team storage error")
)
