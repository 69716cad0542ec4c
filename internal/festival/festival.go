// Package festival maps a calendar date to the seasonal effect shown over
// the page.
package festival

import (
	"fmt"
	"strings"
	"time"
)

type Kind string

const (
	None      Kind = ""
	Snow      Kind = "snow"
	Fireworks Kind = "fireworks"
	Sakura    Kind = "sakura"
	Leaves    Kind = "leaves"
	Hearts    Kind = "hearts"
	Sparkles  Kind = "sparkles"
)

// Kinds lists every effect kind, None excluded.
var Kinds = []Kind{Snow, Fireworks, Sakura, Leaves, Hearts, Sparkles}

// Festival is the selected effect and its display name.
type Festival struct {
	Kind Kind
	Name string
}

// window is an inclusive month/day range that may wrap the year end.
type window struct {
	fromMonth time.Month
	fromDay   int
	toMonth   time.Month
	toDay     int
}

func (w window) contains(m time.Month, d int) bool {
	v := int(m)*100 + d
	from := int(w.fromMonth)*100 + w.fromDay
	to := int(w.toMonth)*100 + w.toDay
	if from <= to {
		return v >= from && v <= to
	}
	return v >= from || v <= to
}

// Windows do not overlap; Select checks them in order.
var calendar = []struct {
	w window
	f Festival
}{
	{window{time.December, 28, time.January, 3}, Festival{Fireworks, "New Year"}},
	{window{time.February, 10, time.February, 14}, Festival{Hearts, "Valentine's Day"}},
	{window{time.March, 20, time.April, 15}, Festival{Sakura, "Spring"}},
	{window{time.October, 1, time.November, 15}, Festival{Leaves, "Autumn"}},
	{window{time.December, 20, time.December, 26}, Festival{Sparkles, "Christmas"}},
	{window{time.December, 1, time.December, 19}, Festival{Snow, "Winter"}},
	{window{time.December, 27, time.December, 27}, Festival{Snow, "Winter"}},
	{window{time.January, 4, time.February, 9}, Festival{Snow, "Winter"}},
	{window{time.February, 15, time.February, 29}, Festival{Snow, "Winter"}},
}

// Select returns the festival active on the date of t, or a zero Festival.
func Select(t time.Time) Festival {
	m, d := t.Month(), t.Day()
	for _, c := range calendar {
		if c.w.contains(m, d) {
			return c.f
		}
	}
	return Festival{}
}

// Named returns the festival for kind with its usual display name.
func Named(k Kind) Festival {
	for _, c := range calendar {
		if c.f.Kind == k {
			return c.f
		}
	}
	return Festival{}
}

// ParseKind parses an effect kind name. "none" and "" parse to None.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return None, nil
	}
	if s == "spring" {
		return Sakura, nil
	}
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return None, fmt.Errorf("unknown festival kind %q", s)
}
