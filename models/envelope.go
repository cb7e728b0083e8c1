package models

import (
	"encoding/json"
	"strings"
)

const StatusOK = "ok"

// Envelope is the wrapper the API puts around every payload.
type Envelope struct {
	Status string
	Error  string
	Code   int
	Data   *CycleCalculatorResponse
}

func (envelope *Envelope) fields() []field {
	return []field{
		stringField("status", &envelope.Status),
		nullableStringField("error", &envelope.Error),
		intField("code", &envelope.Code),
		objectField("data", &envelope.Data),
	}
}

func (envelope *Envelope) OK() bool {
	return envelope != nil && strings.EqualFold(envelope.Status, StatusOK)
}

func DecodeEnvelope(data []byte) (*Envelope, error) {
	var envelope Envelope
	if err := decodeRecord("", data, &envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}

func EncodeEnvelope(envelope *Envelope) ([]byte, error) {
	if envelope == nil {
		return jsonNull, nil
	}
	return encodeRecord(envelope)
}

func (envelope Envelope) MarshalJSON() ([]byte, error) {
	return encodeRecord(&envelope)
}

func (envelope *Envelope) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, envelope)
}

// nullableStringField maps null to the empty string and back.
func nullableStringField(name string, target *string) field {
	plain := stringField(name, target)
	return field{
		name:   name,
		decode: plain.decode,
		encode: func() (json.RawMessage, error) {
			if *target == "" {
				return jsonNull, nil
			}
			return plain.encode()
		},
	}
}
