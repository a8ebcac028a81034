package repo

import (
	"context"

	"torneos/internal/modules/user"
	"torneos/internal/modules/user/auth"
)

type AuthDb interface {
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
}

type repo struct {
	db AuthDb
}

func NewRepo(db AuthDb) auth.Repo {
	return &repo{db: db}
}

// GetUserByEmail is never cached so a deactivated account is refused at once.
func (r *repo) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.db.GetUserByEmail(ctx, email)
}
