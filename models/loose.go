package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// LooseKind tags which shape a LooseValue holds.
type LooseKind uint8

const (
	LooseAbsent LooseKind = iota
	LooseNumber
	LooseText
)

func (kind LooseKind) String() string {
	switch kind {
	case LooseNumber:
		return "number"
	case LooseText:
		return "text"
	default:
		return "absent"
	}
}

// LooseValue holds a field the API sends as null, a number or a string depending
// on the cycle. Numbers keep the literal they were sent with; a number that is not
// a valid JSON literal fails to encode.
type LooseValue struct {
	kind   LooseKind
	number json.Number
	text   string
}

func Absent() LooseValue {
	return LooseValue{}
}

func NumberValue(number json.Number) LooseValue {
	return LooseValue{kind: LooseNumber, number: number}
}

func IntValue(value int64) LooseValue {
	return NumberValue(json.Number(strconv.FormatInt(value, 10)))
}

func TextValue(text string) LooseValue {
	return LooseValue{kind: LooseText, text: text}
}

func (value LooseValue) Kind() LooseKind {
	return value.kind
}

func (value LooseValue) IsAbsent() bool {
	return value.kind == LooseAbsent
}

func (value LooseValue) Number() (json.Number, bool) {
	if value.kind != LooseNumber {
		return "", false
	}
	return value.number, true
}

// Int reports the number as an integer; fractional numbers and other kinds return false.
func (value LooseValue) Int() (int64, bool) {
	if value.kind != LooseNumber {
		return 0, false
	}
	parsed, err := value.number.Int64()
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func (value LooseValue) Float() (float64, bool) {
	if value.kind != LooseNumber {
		return 0, false
	}
	parsed, err := value.number.Float64()
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func (value LooseValue) Text() (string, bool) {
	if value.kind != LooseText {
		return "", false
	}
	return value.text, true
}

func (value LooseValue) String() string {
	switch value.kind {
	case LooseNumber:
		return value.number.String()
	case LooseText:
		return value.text
	default:
		return ""
	}
}

func (value LooseValue) MarshalJSON() ([]byte, error) {
	switch value.kind {
	case LooseNumber:
		if value.number == "" {
			return nil, fmt.Errorf("%w: empty number literal", ErrInvalidLooseValue)
		}
		encoded, err := json.Marshal(value.number)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLooseValue, err)
		}
		return encoded, nil
	case LooseText:
		return json.Marshal(value.text)
	default:
		return jsonNull, nil
	}
}

func (value *LooseValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrInvalidLooseValue
	}

	switch first := trimmed[0]; {
	case bytes.Equal(trimmed, jsonNull):
		*value = Absent()
		return nil
	case first == '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*value = TextValue(text)
		return nil
	case first == '-' || (first >= '0' && first <= '9'):
		var number json.Number
		if err := json.Unmarshal(trimmed, &number); err != nil {
			return err
		}
		*value = NumberValue(number)
		return nil
	default:
		return ErrInvalidLooseValue
	}
}
