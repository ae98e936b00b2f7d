package pgconv

import (
	"errors"
	"time"

	"campreserve/internal/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}

func Int64PtrFromPgtype(pi pgtype.Int8) *int64 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int64
}

func Int64PtrToPgtype(p *int64) pgtype.Int8 {
	if p == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *p, Valid: true}
}

// DateFromPgtype converts a Postgres date column value to a calendar date.
func DateFromPgtype(pd pgtype.Date) dateutil.Date {
	if !pd.Valid {
		return dateutil.Date{}
	}
	return dateutil.DateOf(pd.Time)
}

func DatePtrFromPgtype(pd pgtype.Date) *dateutil.Date {
	if !pd.Valid {
		return nil
	}
	d := dateutil.DateOf(pd.Time)
	return &d
}

func DateToPgtype(d dateutil.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: true}
}
