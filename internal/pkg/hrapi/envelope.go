package hrapi

import (
	"bytes"
	"encoding/json"
)

// Shape tags which payload layout a list response used.
type Shape int

const (
	// ShapeUnknown means the payload was not recognised and was coerced to an empty list.
	ShapeUnknown Shape = iota
	ShapeArray
	ShapeEnvelope
	ShapeUsers
)

func (s Shape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapeEnvelope:
		return "envelope"
	case ShapeUsers:
		return "users"
	default:
		return "unknown"
	}
}

type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalRecords int `json:"totalRecords"`
	Limit        int `json:"limit"`
}

// Page is the decoded result of a list call.
type Page[T any] struct {
	Shape      Shape
	Items      []T
	Pagination *Pagination
}

type envelope struct {
	Success    *bool           `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Users      json.RawMessage `json:"users"`
	Pagination *Pagination     `json:"pagination"`
}

// DecodeList accepts a bare array, {success,data,pagination} or {success,users}.
// Anything else yields ShapeUnknown with an empty list. The only error is an
// envelope that reports success=false.
func DecodeList[T any](raw []byte) (Page[T], error) {
	unknown := Page[T]{Shape: ShapeUnknown, Items: []T{}}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return unknown, nil
	}

	switch trimmed[0] {
	case '[':
		items, ok := decodeItems[T](trimmed)
		if !ok {
			return unknown, nil
		}
		return Page[T]{Shape: ShapeArray, Items: items}, nil

	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return unknown, nil
		}
		if env.Success != nil && !*env.Success {
			msg := env.Message
			if msg == "" {
				msg = "request reported success=false"
			}
			return unknown, &APIError{Message: msg}
		}
		if items, ok := decodeItems[T](env.Data); ok {
			return Page[T]{Shape: ShapeEnvelope, Items: items, Pagination: env.Pagination}, nil
		}
		if items, ok := decodeItems[T](env.Users); ok {
			return Page[T]{Shape: ShapeUsers, Items: items, Pagination: env.Pagination}, nil
		}
	}

	return unknown, nil
}

func decodeItems[T any](raw json.RawMessage) ([]T, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, false
	}
	if items == nil {
		items = []T{}
	}
	return items, true
}

// DecodeOne accepts a bare object or {success,data:{...}}. It returns nil when the
// payload carries no record, e.g. {"success":true,"message":"deleted"}.
func DecodeOne[T any](raw []byte) (*T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err == nil {
		if env.Success != nil && !*env.Success {
			msg := env.Message
			if msg == "" {
				msg = "request reported success=false"
			}
			return nil, &APIError{Message: msg}
		}
		data := bytes.TrimSpace(env.Data)
		if len(data) > 0 && data[0] == '{' {
			var item T
			if err := json.Unmarshal(data, &item); err != nil {
				return nil, nil
			}
			return &item, nil
		}
		if env.Success != nil {
			// Envelope without a record.
			return nil, nil
		}
	}

	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return nil, nil
	}
	return &item, nil
}
