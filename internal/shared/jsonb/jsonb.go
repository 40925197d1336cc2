// Package jsonb maps typed Go values onto Postgres jsonb columns.
package jsonb

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type Column[T any] struct {
	Data T
}

func Of[T any](v T) Column[T] {
	return Column[T]{Data: v}
}

func (c Column[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(c.Data)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *Column[T]) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		var zero T
		c.Data = zero
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("jsonb: cannot scan %T", src)
	}
	return json.Unmarshal(raw, &c.Data)
}

func (Column[T]) GormDataType() string {
	return "jsonb"
}

func (c Column[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Data)
}

func (c *Column[T]) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &c.Data)
}
