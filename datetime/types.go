package datetime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

const (
	dateLayout      = "2006-01-02"
	timeOfDayLayout = "15:04:05.999999999Z07:00"
)

// Times of day carry this placeholder calendar date; only the clock is meaningful.
const (
	placeholderYear  = 2020
	placeholderMonth = time.January
	placeholderDay   = 1
)

var jsonNull = []byte("null")

// Date is a calendar date without a clock. The zero value means absent and encodes as null.
type Date struct {
	civil.Date
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Date: civil.Date{Year: year, Month: month, Day: day}}
}

func DateOf(value time.Time) Date {
	return Date{Date: civil.DateOf(value)}
}

// ParseDate accepts yyyy-MM-dd. Values that also carry a clock are run through the
// date-time chain and keep the calendar date they were written with.
func ParseDate(raw string) (Date, error) {
	parsed, err := civil.ParseDate(raw)
	if err == nil {
		return Date{Date: parsed}, nil
	}
	if len(raw) > len(dateLayout) {
		if withClock, chainErr := dateTimeChain.Parse(raw); chainErr == nil {
			return DateOf(withClock), nil
		}
	}
	return Date{}, &ParseError{Kind: "date", Input: raw, Err: ErrInvalidDate}
}

func (date Date) IsZero() bool {
	return date.Date == civil.Date{}
}

func (date Date) String() string {
	if date.IsZero() {
		return ""
	}
	return date.Date.String()
}

func (date Date) MarshalJSON() ([]byte, error) {
	if date.IsZero() {
		return jsonNull, nil
	}
	return json.Marshal(date.Date.String())
}

func (date *Date) UnmarshalJSON(data []byte) error {
	raw, isNull, err := jsonString(data, "date")
	if err != nil {
		return err
	}
	if isNull {
		*date = Date{}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*date = parsed
	return nil
}

// DateTime is an offset-aware instant normalized to UTC.
type DateTime struct {
	time.Time
}

func (value DateTime) MarshalJSON() ([]byte, error) {
	if value.IsZero() {
		return jsonNull, nil
	}
	return json.Marshal(value.UTC().Format(time.RFC3339Nano))
}

func (value *DateTime) UnmarshalJSON(data []byte) error {
	raw, isNull, err := jsonString(data, "date-time")
	if err != nil {
		return err
	}
	if isNull {
		*value = DateTime{}
		return nil
	}
	parsed, err := ParseDateTime(raw)
	if err != nil {
		return err
	}
	*value = parsed
	return nil
}

// TimeOfDay is a clock reading anchored to 2020-01-01 UTC.
type TimeOfDay struct {
	time.Time
}

func (value TimeOfDay) String() string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(timeOfDayLayout)
}

func (value TimeOfDay) MarshalJSON() ([]byte, error) {
	if value.IsZero() {
		return jsonNull, nil
	}
	return json.Marshal(value.String())
}

func (value *TimeOfDay) UnmarshalJSON(data []byte) error {
	raw, isNull, err := jsonString(data, "time of day")
	if err != nil {
		return err
	}
	if isNull {
		*value = TimeOfDay{}
		return nil
	}
	parsed, err := ParseTimeOfDay(raw)
	if err != nil {
		return err
	}
	*value = parsed
	return nil
}

func jsonString(data []byte, kind string) (string, bool, error) {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, jsonNull) {
		return "", true, nil
	}
	var raw string
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return "", false, fmt.Errorf("%s must be a JSON string: %w", kind, err)
	}
	return raw, false, nil
}
