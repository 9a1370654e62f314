package readstore

import (
	"context"
	"time"

	"parkgate/internal/infra"
	"parkgate/internal/infra/db"
	"parkgate/internal/pkg/pgconv"
	"parkgate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SessionReadStore struct {
	db db.DBTX
}

func NewSessionReadStore(db db.DBTX) *SessionReadStore {
	return &SessionReadStore{db: db}
}

const sessionViewColumns = `
	s.id, s.license_plate, s.rental_type, s.parking_space_id, p.name,
	s.check_in_at, s.check_out_at, s.amount_due, s.fee_note, s.paid, s.created_at
`

const findSessionByIDSQL = `
SELECT ` + sessionViewColumns + `
FROM parking_sessions s
JOIN parking_spaces p ON p.id = s.parking_space_id
WHERE s.id = $1
`

func (r *SessionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SessionView, error) {
	row := r.db.QueryRow(ctx, findSessionByIDSQL, id)
	view, err := scanSessionView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "session not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find session by ID", err)
	}
	return view, nil
}

const findOpenSessionByPlateSQL = `
SELECT ` + sessionViewColumns + `
FROM parking_sessions s
JOIN parking_spaces p ON p.id = s.parking_space_id
WHERE s.license_plate = $1 AND s.check_out_at IS NULL
`

func (r *SessionReadStore) FindOpenByPlate(ctx context.Context, plate string) (*queries.SessionView, error) {
	row := r.db.QueryRow(ctx, findOpenSessionByPlateSQL, plate)
	view, err := scanSessionView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "open session not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find open session by plate", err)
	}
	return view, nil
}

// Keyset pagination on (check_in_at, id) descending; the keyword matches
// plate or space name.
const searchLogsSQL = `
SELECT s.id, s.license_plate, s.rental_type, p.name,
       s.check_in_at, s.check_out_at, s.amount_due, s.paid, s.created_at
FROM parking_sessions s
JOIN parking_spaces p ON p.id = s.parking_space_id
WHERE ($1 = '' OR s.license_plate ILIKE '%' || $1 || '%' OR p.name ILIKE '%' || $1 || '%')
  AND ($2::timestamptz IS NULL OR (s.check_in_at, s.id) < ($2, $3))
ORDER BY s.check_in_at DESC, s.id DESC
LIMIT $4
`

func (r *SessionReadStore) SearchLogs(ctx context.Context, keyword string, afterAt *time.Time, afterID *uuid.UUID, limit int32) ([]*queries.LogListItem, error) {
	rows, err := r.db.Query(ctx, searchLogsSQL,
		keyword,
		pgconv.TimePtrToPgtype(afterAt),
		pgconv.UUIDPtrToPgtype(afterID),
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to search session logs", err)
	}
	defer rows.Close()

	items := make([]*queries.LogListItem, 0, limit)
	for rows.Next() {
		var (
			item       queries.LogListItem
			checkOutAt pgtype.Timestamptz
			amountDue  pgtype.Int8
		)
		if err := rows.Scan(
			&item.ID, &item.LicensePlate, &item.RentalType, &item.SpaceName,
			&item.CheckInAt, &checkOutAt, &amountDue, &item.Paid, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan session log row", err)
		}
		item.CheckOutAt = pgconv.TimePtrFromPgtype(checkOutAt)
		item.AmountDue = pgconv.Int64PtrFromPgtype(amountDue)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate session log rows", err)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSessionView(row rowScanner) (*queries.SessionView, error) {
	var (
		view       queries.SessionView
		checkOutAt pgtype.Timestamptz
		amountDue  pgtype.Int8
		feeNote    pgtype.Text
	)
	if err := row.Scan(
		&view.ID, &view.LicensePlate, &view.RentalType, &view.SpaceID, &view.SpaceName,
		&view.CheckInAt, &checkOutAt, &amountDue, &feeNote, &view.Paid, &view.CreatedAt,
	); err != nil {
		return nil, err
	}
	view.CheckOutAt = pgconv.TimePtrFromPgtype(checkOutAt)
	view.AmountDue = pgconv.Int64PtrFromPgtype(amountDue)
	view.FeeNote = pgconv.StringPtrFromPgtype(feeNote)
	return &view, nil
}
