// Package datetime parses the date and time spellings the cycle calculator API emits.
//
// Date-times and times of day are tried against an ordered chain of layouts; the first
// layout that accepts the input wins and the result is normalized to UTC.
package datetime

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnrecognizedFormat = errors.New("unrecognized date/time format")
	ErrInvalidDate        = errors.New("invalid calendar date")
)

// ParseError reports an input that none of the candidate layouts accepted.
type ParseError struct {
	Kind  string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Kind, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Layout is a single candidate parser. When the layout carries no offset the
// parsed wall clock is placed in Location.
type Layout struct {
	Name     string
	Layout   string
	Location *time.Location
}

func (layout Layout) Parse(raw string) (time.Time, error) {
	location := layout.Location
	if location == nil {
		location = time.UTC
	}
	return time.ParseInLocation(layout.Layout, raw, location)
}

// Chain is an ordered list of candidate layouts. It is never mutated after construction.
type Chain struct {
	kind    string
	layouts []Layout
}

func NewChain(kind string, layouts ...Layout) Chain {
	copied := make([]Layout, len(layouts))
	copy(copied, layouts)
	return Chain{kind: kind, layouts: copied}
}

func (chain Chain) Layouts() []Layout {
	copied := make([]Layout, len(chain.layouts))
	copy(copied, chain.layouts)
	return copied
}

// Parse returns the result of the first layout that accepts raw, keeping the offset
// the input was written in.
func (chain Chain) Parse(raw string) (time.Time, error) {
	for _, layout := range chain.layouts {
		parsed, err := layout.Parse(raw)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, &ParseError{Kind: chain.kind, Input: raw, Err: ErrUnrecognizedFormat}
}

var dateTimeChain = NewChain("date-time",
	Layout{Name: "iso-offset-date-time", Layout: "2006-01-02T15:04:05Z07:00"},
	Layout{Name: "iso-local-date-time", Layout: "2006-01-02T15:04:05"},
	Layout{Name: "iso-local-date-time-minutes", Layout: "2006-01-02T15:04"},
	Layout{Name: "iso-instant", Layout: "2006-01-02T15:04:05Z"},
	Layout{Name: "space-fraction-offset", Layout: "2006-01-02 15:04:05.0Z07:00"},
	Layout{Name: "space-fraction-offset-hours", Layout: "2006-01-02 15:04:05.0Z07"},
	Layout{Name: "space-fraction-offset-compact", Layout: "2006-01-02 15:04:05.0Z0700"},
	Layout{Name: "space-offset", Layout: "2006-01-02 15:04:05Z07:00"},
	Layout{Name: "space-offset-hours", Layout: "2006-01-02 15:04:05Z07"},
	Layout{Name: "space-offset-compact", Layout: "2006-01-02 15:04:05Z0700"},
	Layout{Name: "space-local", Layout: "2006-01-02 15:04:05"},
)

var timeOfDayChain = NewChain("time of day",
	Layout{Name: "iso-offset-time", Layout: "15:04:05Z07:00"},
	Layout{Name: "iso-local-time", Layout: "15:04:05"},
	Layout{Name: "iso-offset-time-minutes", Layout: "15:04Z07:00"},
	Layout{Name: "iso-local-time-minutes", Layout: "15:04"},
)

// DateTimeChain returns the candidate layouts ParseDateTime tries, in order.
func DateTimeChain() Chain {
	return dateTimeChain
}

// TimeOfDayChain returns the candidate layouts ParseTimeOfDay tries, in order.
func TimeOfDayChain() Chain {
	return timeOfDayChain
}

func ParseDateTime(raw string) (DateTime, error) {
	parsed, err := dateTimeChain.Parse(raw)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Time: parsed.UTC()}, nil
}

func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	parsed, err := timeOfDayChain.Parse(raw)
	if err != nil {
		return TimeOfDay{}, err
	}
	// Normalize before anchoring so offsets that cross midnight stay on the placeholder day.
	utc := parsed.UTC()
	anchored := time.Date(
		placeholderYear, placeholderMonth, placeholderDay,
		utc.Hour(), utc.Minute(), utc.Second(), utc.Nanosecond(),
		time.UTC,
	)
	return TimeOfDay{Time: anchored}, nil
}
