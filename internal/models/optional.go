package models

import (
	"bytes"
	"encoding/json"
)

// Optional различает три состояния поля в частичном обновлении:
// поле не передано (Set=false), передано как null (Set=true, Valid=false)
// и передано со значением (Set=true, Valid=true).
// UnmarshalJSON вызывается только для присутствующих в JSON ключей,
// поэтому отсутствие ключа оставляет Set=false.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		var zero T
		o.Value = zero
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr возвращает значение как указатель (nil, если поле null или не передано).
func (o Optional[T]) Ptr() *T {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
