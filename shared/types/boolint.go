package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// BoolInt is a boolean persisted as a small integer (0/1) in the store and
// always surfaced as a true JSON boolean at the API boundary.
type BoolInt bool

// Scan implements sql.Scanner. It accepts the integer representation the
// store uses as well as native booleans.
func (b *BoolInt) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*b = false
	case bool:
		*b = BoolInt(v)
	case int64:
		*b = v != 0
	case []byte:
		*b = len(v) > 0 && v[0] != '0' && v[0] != 0
	default:
		return fmt.Errorf("cannot scan %T into BoolInt", src)
	}

	return nil
}

// Value implements driver.Valuer, writing the integer representation back.
func (b BoolInt) Value() (driver.Value, error) {
	if b {
		return int64(1), nil
	}

	return int64(0), nil
}

func (b BoolInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b)) //nolint:wrapcheck
}

func (b *BoolInt) UnmarshalJSON(data []byte) error {
	var value bool
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("failed to unmarshal BoolInt: %w", err)
	}

	*b = BoolInt(value)

	return nil
}

func (b BoolInt) Bool() bool {
	return bool(b)
}
