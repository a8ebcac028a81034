package tournament

import "errors"

var ErrTournamentInternal = errors.New("tournament storage error")
