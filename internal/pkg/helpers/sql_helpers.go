package helpers

import "database/sql"

// NullInt64 converts an *int64 to sql.NullInt64 for nullable foreign keys.
func NullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

// Int64Ptr converts a sql.NullInt64 back to a pointer.
func Int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
