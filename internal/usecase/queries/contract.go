package queries

import (
	"context"

	"parkgate/internal/domain/contract"
	"parkgate/internal/domain/session"
	"parkgate/internal/infra"
	"parkgate/internal/pkg/clock"
	"parkgate/internal/pkg/errs"
)

var ErrContractNotFound = errs.New("contract not found")

type ContractQueries interface {
	GetByPlate(ctx context.Context, rawPlate string) (*ContractView, error)
}

type contractQueriesImpl struct {
	contracts ContractReadStore
	clock     clock.Clock
}

func NewContractQueries(contracts ContractReadStore, clk clock.Clock) ContractQueries {
	return &contractQueriesImpl{contracts: contracts, clock: clk}
}

// GetByPlate returns the plate's most recent contract with its status
// derived from the current time, never from a stored column.
func (q *contractQueriesImpl) GetByPlate(ctx context.Context, rawPlate string) (*ContractView, error) {
	plate, err := session.NewLicensePlate(rawPlate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPlate)
	}

	view, err := q.contracts.FindLatestByPlate(ctx, plate.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}

	view.Status = contract.DeriveStatus(view.EndsAt, q.clock.Now()).String()
	return view, nil
}
