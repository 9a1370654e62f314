package repository

import (
	"context"

	"parkgate/internal/infra"
	"parkgate/internal/infra/db"
	"parkgate/internal/pkg/pgconv"
	"parkgate/internal/usecase/commands"

	"github.com/google/uuid"
)

type SpaceRepository struct{}

func NewSpaceRepository() *SpaceRepository {
	return &SpaceRepository{}
}

var _ commands.SpaceRepository = (*SpaceRepository)(nil)

const findSpaceByIDForUpdateSQL = `
SELECT id, name, occupied FROM parking_spaces WHERE id = $1 FOR UPDATE
`

func (r *SpaceRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*commands.SpaceSnapshot, error) {
	var snapshot commands.SpaceSnapshot
	err := tx.QueryRow(ctx, findSpaceByIDForUpdateSQL, id).Scan(
		&snapshot.ID, &snapshot.Name, &snapshot.Occupied,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "parking space not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find parking space for update", err)
	}
	return &snapshot, nil
}

const setSpaceOccupiedSQL = `
UPDATE parking_spaces SET occupied = $2, updated_at = now() WHERE id = $1
`

func (r *SpaceRepository) SetOccupied(ctx context.Context, tx db.DBTX, id uuid.UUID, occupied bool) error {
	tag, err := tx.Exec(ctx, setSpaceOccupiedSQL, id, occupied)
	if err != nil {
		return wrapWriteErr("failed to update parking space occupancy", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "parking space not found", nil)
	}
	return nil
}
