package ksuid

import (
	"database/sql/driver"
	"fmt"
)

// Value implements driver.Valuer, storing the base62 text form.
func (id ID) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan implements sql.Scanner. It accepts the 27-character text form,
// the 20-byte binary form, and NULL, which scans to Min.
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = Min
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == ByteLength {
			return id.UnmarshalBinary(v)
		}
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("ksuid: cannot scan %T into an id", src)
	}
}
