package models

import (
	"bytes"
	"encoding/json"
)

// Decode parses a cycle calculator document. Unknown members are ignored, missing
// or null members leave their field absent, and any malformed value fails the
// whole document with a *ParseError.
func Decode(data []byte) (*CycleCalculatorResponse, error) {
	var response CycleCalculatorResponse
	if err := decodeRecord("", data, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func DecodeString(document string) (*CycleCalculatorResponse, error) {
	return Decode([]byte(document))
}

// Encode writes the document with the same member names Decode reads. Absent
// optional values are written as null.
func Encode(response *CycleCalculatorResponse) ([]byte, error) {
	if response == nil {
		return jsonNull, nil
	}
	return encodeRecord(response)
}

func EncodeIndent(response *CycleCalculatorResponse, prefix string, indent string) ([]byte, error) {
	compact, err := Encode(response)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unmarshalRecord backs the json.Unmarshaler implementations so the models also
// work inside documents decoded by encoding/json. A null leaves the target untouched.
func unmarshalRecord(data []byte, target record) error {
	if isNull(data) {
		return nil
	}
	return decodeRecord("", data, target)
}

func (response CycleCalculatorResponse) MarshalJSON() ([]byte, error) {
	return encodeRecord(&response)
}

func (response *CycleCalculatorResponse) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, response)
}

func (averages Averages) MarshalJSON() ([]byte, error) {
	return encodeRecord(&averages)
}

func (averages *Averages) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, averages)
}

func (status CurrentStatus) MarshalJSON() ([]byte, error) {
	return encodeRecord(&status)
}

func (status *CurrentStatus) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, status)
}

func (cycle Cycle) MarshalJSON() ([]byte, error) {
	return encodeRecord(&cycle)
}

func (cycle *Cycle) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, cycle)
}

func (ovulation CycleOvulation) MarshalJSON() ([]byte, error) {
	return encodeRecord(&ovulation)
}

func (ovulation *CycleOvulation) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, ovulation)
}

func (window FertileWindow) MarshalJSON() ([]byte, error) {
	return encodeRecord(&window)
}

func (window *FertileWindow) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, window)
}

func (phase PmsPhase) MarshalJSON() ([]byte, error) {
	return encodeRecord(&phase)
}

func (phase *PmsPhase) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, phase)
}

func (window CyclePhaseWindow) MarshalJSON() ([]byte, error) {
	return encodeRecord(&window)
}

func (window *CyclePhaseWindow) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, window)
}

func (window OvulationPhaseWindow) MarshalJSON() ([]byte, error) {
	return encodeRecord(&window)
}

func (window *OvulationPhaseWindow) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, window)
}

func (phases CyclePhases) MarshalJSON() ([]byte, error) {
	return encodeRecord(&phases)
}

func (phases *CyclePhases) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, phases)
}
