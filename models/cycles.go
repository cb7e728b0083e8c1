package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Cycles is the calculated cycle sequence in the order the API returned it.
type Cycles []Cycle

// NumbersIncreasing reports whether cycle numbers strictly increase along the sequence.
func (cycles Cycles) NumbersIncreasing() bool {
	for index := 1; index < len(cycles); index++ {
		if cycles[index].CycleNumber <= cycles[index-1].CycleNumber {
			return false
		}
	}
	return true
}

func (cycles Cycles) Find(number int) (*Cycle, bool) {
	for index := range cycles {
		if cycles[index].CycleNumber == number {
			return &cycles[index], true
		}
	}
	return nil, false
}

func cyclesField(name string, target *Cycles) field {
	return field{
		name: name,
		decode: func(path string, raw json.RawMessage) error {
			if isNull(raw) {
				*target = nil
				return nil
			}

			var entries []json.RawMessage
			if err := json.Unmarshal(raw, &entries); err != nil {
				var typeErr *json.UnmarshalTypeError
				if errors.As(err, &typeErr) {
					return parseErrorAt(path, ErrNotAnArray)
				}
				return parseErrorAt(path, err)
			}

			decoded := make(Cycles, len(entries))
			for index, entry := range entries {
				if isNull(entry) {
					continue
				}
				entryPath := fmt.Sprintf("%s[%d]", path, index)
				if err := decodeRecord(entryPath, entry, &decoded[index]); err != nil {
					return err
				}
			}
			*target = decoded
			return nil
		},
		encode: func() (json.RawMessage, error) {
			if *target == nil {
				return jsonNull, nil
			}

			var buf bytes.Buffer
			buf.WriteByte('[')
			for index := range *target {
				if index > 0 {
					buf.WriteByte(',')
				}
				encoded, err := encodeRecord(&(*target)[index])
				if err != nil {
					return nil, err
				}
				buf.Write(encoded)
			}
			buf.WriteByte(']')
			return buf.Bytes(), nil
		},
	}
}
