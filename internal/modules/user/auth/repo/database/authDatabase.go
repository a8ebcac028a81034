package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"torneos/internal/modules/user"
)

type AuthDatabase struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewAuthDatabase(db *gorm.DB, log *slog.Logger) *AuthDatabase {
	return &AuthDatabase{
		db:  db,
		log: log,
	}
}

func (r *AuthDatabase) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	log := r.log.With(slog.String("op", "AuthDatabase.GetUserByEmail"))

	var u user.User
	err := r.db.WithContext(ctx).
		Table("usuarios u").
		Select("u.*, r.nombre AS rol_nombre").
		Joins("INNER JOIN roles r ON u.rol_id = r.id").
		Where("LOWER(u.email) = LOWER(?)", email).
		Take(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		log.Error("failed to get user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", user.ErrInternal, err)
	}
	return &u, nil
}
