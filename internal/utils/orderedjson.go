package utils

import (
	"bytes"
	"encoding/json"
)

// OrderedObject is a JSON object whose keys marshal in insertion order.
// Setting an existing key replaces the value and keeps its position.
type OrderedObject struct {
	keys   []string
	values map[string]any
}

func NewOrderedObject(capacity int) *OrderedObject {
	return &OrderedObject{
		keys:   make([]string, 0, capacity),
		values: make(map[string]any, capacity),
	}
}

func (o *OrderedObject) Set(key string, value any) *OrderedObject {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

func (o *OrderedObject) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *OrderedObject) Keys() []string {
	return o.keys
}

func (o *OrderedObject) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyBytes, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valueBytes, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valueBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
