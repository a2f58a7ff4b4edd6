package model

import (
	"fmt"
	"time"
)

// EventCategory groups life events on the timeline.
type EventCategory string

const (
	EventHousing   EventCategory = "housing"
	EventContract  EventCategory = "contract"
	EventCareer    EventCategory = "career"
	EventFamily    EventCategory = "family"
	EventEducation EventCategory = "education"
	EventOther     EventCategory = "other"
)

// Valid reports whether the event category is a known value.
func (c EventCategory) Valid() bool {
	switch c {
	case EventHousing, EventContract, EventCareer, EventFamily, EventEducation, EventOther:
		return true
	}
	return false
}

// EventColor is the display color of a life event marker.
type EventColor string

const (
	ColorRed    EventColor = "red"
	ColorOrange EventColor = "orange"
	ColorYellow EventColor = "yellow"
	ColorGreen  EventColor = "green"
	ColorBlue   EventColor = "blue"
	ColorPurple EventColor = "purple"
	ColorPink   EventColor = "pink"
)

// Valid reports whether the color is a known value.
func (c EventColor) Valid() bool {
	switch c {
	case ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPurple, ColorPink:
		return true
	}
	return false
}

// LifeEvent is a dated milestone that coexists with financial entries on
// the timeline. It carries no financial computation, only date filtering.
type LifeEvent struct {
	Date        time.Time
	CreatedAt   time.Time
	ID          string
	Title       string
	Description string
	Category    EventCategory
	Color       EventColor
	IsImportant bool
}

// Validate checks the invariants the entry layer must guarantee before an
// event reaches the store.
func (e *LifeEvent) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidEvent)
	}
	if e.Title == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidEvent)
	}
	if !e.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidEvent, e.Category)
	}
	if !e.Color.Valid() {
		return fmt.Errorf("%w: unknown color %q", ErrInvalidEvent, e.Color)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidEvent)
	}
	return nil
}
