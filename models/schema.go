package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/terraincognita07/cyclecalc/datetime"
)

// field binds one wire name to the struct member that holds it. Every model
// declares its table in a fields method; the codec never inspects struct tags.
type field struct {
	name   string
	decode func(path string, raw json.RawMessage) error
	encode func() (json.RawMessage, error)
}

type record interface {
	fields() []field
}

// recordPtr lets object fields allocate their target before decoding into it.
type recordPtr[T any] interface {
	*T
	record
}

var jsonNull = json.RawMessage("null")

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

func childPath(parent string, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func decodeRecord(path string, raw json.RawMessage, target record) error {
	members := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &members); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return parseErrorAt(path, ErrNotAnObject)
		}
		return parseErrorAt(path, err)
	}
	if members == nil {
		return parseErrorAt(path, ErrNotAnObject)
	}

	for _, member := range target.fields() {
		value, present := members[member.name]
		if !present {
			continue
		}
		if err := member.decode(childPath(path, member.name), value); err != nil {
			return err
		}
	}
	return nil
}

func encodeRecord(source record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for index, member := range source.fields() {
		if index > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(member.name)
		if err != nil {
			return nil, err
		}
		value, err := member.encode()
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", member.name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func intField(name string, target *int) field {
	return field{
		name: name,
		decode: func(path string, raw json.RawMessage) error {
			if isNull(raw) {
				*target = 0
				return nil
			}
			if err := json.Unmarshal(raw, target); err != nil {
				return parseErrorAt(path, err)
			}
			return nil
		},
		encode: func() (json.RawMessage, error) {
			return json.Marshal(*target)
		},
	}
}

func stringField(name string, target *string) field {
	return field{
		name: name,
		decode: func(path string, raw json.RawMessage) error {
			if isNull(raw) {
				*target = ""
				return nil
			}
			if err := json.Unmarshal(raw, target); err != nil {
				return parseErrorAt(path, err)
			}
			return nil
		},
		encode: func() (json.RawMessage, error) {
			return json.Marshal(*target)
		},
	}
}

func dateField(name string, target *datetime.Date) field {
	return field{
		name: name,
		decode: func(path string, raw json.RawMessage) error {
			if err := target.UnmarshalJSON(raw); err != nil {
				return parseErrorAt(path, err)
			}
			return nil
		},
		encode: func() (json.RawMessage, error) {
			return target.MarshalJSON()
		},
	}
}

func looseField(name string, target *LooseValue) field {
	return field{
		name: name,
		decode: func(path string, raw json.RawMessage) error {
			if err := target.UnmarshalJSON(raw); err != nil {
				return parseErrorAt(path, err)
			}
			return nil
		},
		encode: func() (json.RawMessage, error) {
			return target.MarshalJSON()
		},
	}
}

func objectField[T any, P recordPtr[T]](name string, target **T) field {
	return field{
		name: name,
		decode: func(path string, raw json.RawMessage) error {
			if isNull(raw) {
				*target = nil
				return nil
			}
			value := new(T)
			if err := decodeRecord(path, raw, P(value)); err != nil {
				return err
			}
			*target = value
			return nil
		},
		encode: func() (json.RawMessage, error) {
			if *target == nil {
				return jsonNull, nil
			}
			return encodeRecord(P(*target))
		},
	}
}
