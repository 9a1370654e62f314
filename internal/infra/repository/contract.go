package repository

import (
	"context"
	"time"

	"parkgate/internal/domain/contract"
	"parkgate/internal/domain/session"
	"parkgate/internal/infra"
	"parkgate/internal/infra/db"
	"parkgate/internal/pkg/pgconv"
	"parkgate/internal/usecase/commands"

	"github.com/google/uuid"
)

type ContractRepository struct {
	db db.DBTX
}

func NewContractRepository(db db.DBTX) *ContractRepository {
	return &ContractRepository{db: db}
}

var _ commands.ContractRepository = (*ContractRepository)(nil)

const findLatestByPlateSQL = `
SELECT id, license_plate, parking_space_id, customer_name, starts_at, ends_at
FROM contracts
WHERE license_plate = $1
ORDER BY ends_at DESC
LIMIT 1
`

func (r *ContractRepository) FindLatestByPlate(ctx context.Context, plate string) (*contract.Contract, error) {
	var (
		id           uuid.UUID
		rawPlate     string
		spaceID      uuid.UUID
		customerName string
		startsAt     time.Time
		endsAt       time.Time
	)
	err := r.db.QueryRow(ctx, findLatestByPlateSQL, plate).Scan(
		&id, &rawPlate, &spaceID, &customerName, &startsAt, &endsAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "contract not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find contract by plate", err)
	}

	plateVO, err := session.NewLicensePlate(rawPlate)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored license plate is invalid", err)
	}
	return contract.ReconstructContract(id, plateVO, spaceID, customerName, startsAt, endsAt), nil
}
