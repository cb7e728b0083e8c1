package datetime

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDateTimeNormalizesEquivalentInputs(t *testing.T) {
	want := time.Date(2020, time.May, 1, 10, 0, 0, 0, time.UTC)

	inputs := []string{
		"2020-05-01T10:00:00Z",
		"2020-05-01T12:00:00+02:00",
		"2020-05-01T10:00:00",
		"2020-05-01T10:00",
		"2020-05-01T10:00:00.000Z",
		"2020-05-01 12:00:00.0+02:00",
		"2020-05-01 12:00:00.0+02",
		"2020-05-01 12:00:00+02:00",
		"2020-05-01 12:00:00+0200",
		"2020-05-01 10:00:00Z",
		"2020-05-01 10:00:00",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := ParseDateTime(input)
			if err != nil {
				t.Fatalf("expected %q to parse, got error: %v", input, err)
			}
			if !got.Equal(want) {
				t.Fatalf("expected %s, got %s", want, got.Time)
			}
			if got.Location() != time.UTC {
				t.Fatalf("expected UTC location, got %s", got.Location())
			}
		})
	}
}

func TestParseDateTimeRejectsUnknownSpellings(t *testing.T) {
	inputs := []string{
		"",
		"yesterday",
		"2020-05-01",
		"01/05/2020 10:00",
		"2020-13-01T10:00:00Z",
		"2020-05-01T10:00:00 UTC",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDateTime(input)
			if err == nil {
				t.Fatalf("expected %q to be rejected", input)
			}
			if !errors.Is(err, ErrUnrecognizedFormat) {
				t.Fatalf("expected ErrUnrecognizedFormat, got %v", err)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if parseErr.Input != input {
				t.Fatalf("expected input %q on error, got %q", input, parseErr.Input)
			}
		})
	}
}

func TestDateTimeChainCandidatesAreIndependent(t *testing.T) {
	tests := []struct {
		layout string
		input  string
	}{
		{layout: "iso-offset-date-time", input: "2020-05-01T10:00:00+01:00"},
		{layout: "iso-local-date-time", input: "2020-05-01T10:00:00"},
		{layout: "iso-instant", input: "2020-05-01T10:00:00Z"},
		{layout: "space-fraction-offset", input: "2020-05-01 10:00:00.5+01:00"},
		{layout: "space-offset", input: "2020-05-01 10:00:00+01:00"},
		{layout: "space-local", input: "2020-05-01 10:00:00"},
	}

	byName := make(map[string]Layout)
	for _, layout := range DateTimeChain().Layouts() {
		byName[layout.Name] = layout
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			layout, ok := byName[tt.layout]
			if !ok {
				t.Fatalf("layout %s not found in chain", tt.layout)
			}
			if _, err := layout.Parse(tt.input); err != nil {
				t.Fatalf("expected %s to accept %q, got %v", tt.layout, tt.input, err)
			}
		})
	}
}

func TestDateTimeChainOrder(t *testing.T) {
	layouts := DateTimeChain().Layouts()
	if len(layouts) == 0 {
		t.Fatal("expected a non-empty chain")
	}
	if layouts[0].Name != "iso-offset-date-time" {
		t.Fatalf("expected ISO date-time first, got %s", layouts[0].Name)
	}
	if last := layouts[len(layouts)-1].Name; last != "space-local" {
		t.Fatalf("expected space-local last, got %s", last)
	}

	layouts[0].Name = "mutated"
	if DateTimeChain().Layouts()[0].Name != "iso-offset-date-time" {
		t.Fatal("expected chain to be immutable through Layouts()")
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{input: "10:00:00", want: time.Date(2020, time.January, 1, 10, 0, 0, 0, time.UTC)},
		{input: "10:00:00Z", want: time.Date(2020, time.January, 1, 10, 0, 0, 0, time.UTC)},
		{input: "10:00", want: time.Date(2020, time.January, 1, 10, 0, 0, 0, time.UTC)},
		{input: "12:30:00+02:00", want: time.Date(2020, time.January, 1, 10, 30, 0, 0, time.UTC)},
		{input: "10:00:00.250", want: time.Date(2020, time.January, 1, 10, 0, 0, 250000000, time.UTC)},
		{input: "02:00:00+05:00", want: time.Date(2020, time.January, 1, 21, 0, 0, 0, time.UTC)},
		{input: "22:00:00-04:00", want: time.Date(2020, time.January, 1, 2, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if err != nil {
				t.Fatalf("expected %q to parse, got error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("expected %s, got %s", tt.want, got.Time)
			}
		})
	}
}

func TestParseTimeOfDayRejectsDates(t *testing.T) {
	for _, input := range []string{"2020-05-01", "25:00:00", "noon"} {
		if _, err := ParseTimeOfDay(input); !errors.Is(err, ErrUnrecognizedFormat) {
			t.Fatalf("expected ErrUnrecognizedFormat for %q, got %v", input, err)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  Date
	}{
		{input: "2024-01-01", want: NewDate(2024, time.January, 1)},
		{input: "2024-02-29", want: NewDate(2024, time.February, 29)},
		{input: "2024-03-05T23:30:00+05:00", want: NewDate(2024, time.March, 5)},
		{input: "2024-03-05 08:00:00", want: NewDate(2024, time.March, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("expected %q to parse, got error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseDateRejectsInvalidCalendarDates(t *testing.T) {
	for _, input := range []string{"2020-13-40", "2023-02-29", "2024-1-1", "", "tomorrow"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDate(input)
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("expected ErrInvalidDate for %q, got %v", input, err)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	var date Date
	if err := json.Unmarshal([]byte(`"2024-01-15"`), &date); err != nil {
		t.Fatalf("unmarshal date: %v", err)
	}
	if date != NewDate(2024, time.January, 15) {
		t.Fatalf("unexpected date: %s", date)
	}

	encoded, err := json.Marshal(date)
	if err != nil {
		t.Fatalf("marshal date: %v", err)
	}
	if string(encoded) != `"2024-01-15"` {
		t.Fatalf("expected \"2024-01-15\", got %s", encoded)
	}

	if err := json.Unmarshal([]byte(`null`), &date); err != nil {
		t.Fatalf("unmarshal null date: %v", err)
	}
	if !date.IsZero() {
		t.Fatalf("expected null to reset date, got %s", date)
	}

	encoded, err = json.Marshal(date)
	if err != nil {
		t.Fatalf("marshal zero date: %v", err)
	}
	if string(encoded) != "null" {
		t.Fatalf("expected null for zero date, got %s", encoded)
	}

	if err := json.Unmarshal([]byte(`20240115`), &date); err == nil {
		t.Fatal("expected numeric date to be rejected")
	}
}

func TestDateTimeJSONRoundTrip(t *testing.T) {
	var value DateTime
	if err := json.Unmarshal([]byte(`"2020-05-01 12:00:00+02:00"`), &value); err != nil {
		t.Fatalf("unmarshal date-time: %v", err)
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal date-time: %v", err)
	}
	if string(encoded) != `"2020-05-01T10:00:00Z"` {
		t.Fatalf("expected ISO instant, got %s", encoded)
	}

	var decoded DateTime
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal encoded date-time: %v", err)
	}
	if !decoded.Equal(value.Time) {
		t.Fatalf("expected %s after round trip, got %s", value.Time, decoded.Time)
	}
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: `"08:15:00-03:00"`, want: `"11:15:00Z"`},
		{input: `"02:00:00+05:00"`, want: `"21:00:00Z"`},
		{input: `"23:30:00-02:00"`, want: `"01:30:00Z"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var value TimeOfDay
			if err := json.Unmarshal([]byte(tt.input), &value); err != nil {
				t.Fatalf("unmarshal time of day: %v", err)
			}

			encoded, err := json.Marshal(value)
			if err != nil {
				t.Fatalf("marshal time of day: %v", err)
			}
			if string(encoded) != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, encoded)
			}

			var decoded TimeOfDay
			if err := json.Unmarshal(encoded, &decoded); err != nil {
				t.Fatalf("unmarshal encoded time of day: %v", err)
			}
			if !decoded.Equal(value.Time) {
				t.Fatalf("expected %s after round trip, got %s", value.Time, decoded.Time)
			}
			if decoded.Year() != 2020 || decoded.YearDay() != 1 {
				t.Fatalf("expected the 2020-01-01 anchor, got %s", decoded.Time)
			}
		})
	}
}
