package repository

import (
	"context"

	"parkgate/internal/infra/db"
	"parkgate/internal/usecase/commands"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

var _ commands.UserRepository = (*UserRepository)(nil)

const updateLastLoginSQL = `
UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1
`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	if _, err := tx.Exec(ctx, updateLastLoginSQL, id); err != nil {
		return wrapWriteErr("failed to update last login", err)
	}
	return nil
}
