package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// JSONValue stores an arbitrary JSON document as-is.
// It round-trips through the database as text and through the API as raw
// JSON, without imposing any schema on the contents.
type JSONValue json.RawMessage

// Value implements driver.Valuer so the document can be persisted by GORM.
func (j JSONValue) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}

	return string(j), nil
}

// Scan implements sql.Scanner so the document can be loaded by GORM.
func (j *JSONValue) Scan(value any) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
	case string:
		*j = JSONValue(v)
	default:
		return errors.Errorf("unsupported type %T for JSONValue", value)
	}

	return nil
}

// MarshalJSON emits the stored document verbatim, or null when unset.
func (j JSONValue) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}

	return j, nil
}

// UnmarshalJSON stores the incoming document verbatim.
func (j *JSONValue) UnmarshalJSON(data []byte) error {
	if j == nil {
		return errors.New("JSONValue: UnmarshalJSON on nil pointer")
	}

	*j = append((*j)[0:0], data...)

	return nil
}
