package readstore

import (
	"context"

	"parkgate/internal/infra"
	"parkgate/internal/infra/db"
	"parkgate/internal/pkg/pgconv"
	"parkgate/internal/usecase/queries"
)

type ContractReadStore struct {
	db db.DBTX
}

func NewContractReadStore(db db.DBTX) *ContractReadStore {
	return &ContractReadStore{db: db}
}

// The latest contract is the one ending furthest in the future; status is
// derived by the caller, never stored.
const findLatestContractByPlateSQL = `
SELECT c.id, c.license_plate, c.parking_space_id, p.name, c.customer_name, c.starts_at, c.ends_at
FROM contracts c
JOIN parking_spaces p ON p.id = c.parking_space_id
WHERE c.license_plate = $1
ORDER BY c.ends_at DESC
LIMIT 1
`

func (r *ContractReadStore) FindLatestByPlate(ctx context.Context, plate string) (*queries.ContractView, error) {
	var view queries.ContractView
	err := r.db.QueryRow(ctx, findLatestContractByPlateSQL, plate).Scan(
		&view.ID, &view.LicensePlate, &view.SpaceID, &view.SpaceName,
		&view.CustomerName, &view.StartsAt, &view.EndsAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "contract not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find contract by plate", err)
	}
	return &view, nil
}
