package tcx

import (
	"fmt"
	"time"
)

// Gap is a detected recording pause: the interval between two consecutive
// trackpoint timestamps whose length exceeds the detection threshold.
type Gap struct {
	Start   time.Time
	End     time.Time
	Seconds float64
}

// DurationString renders the gap length as "XmYs".
func (g Gap) DurationString() string {
	return HumanDuration(g.Seconds)
}

// Result holds the output of a rewrite pass.
type Result struct {
	Content  string
	Duration float64 // new total duration in seconds
	Replaced int     // distinct timestamp strings rewritten
	Skipped  bool    // no timestamps remained; nothing to write
}

// HumanDuration renders a duration in seconds as "XmYs".
func HumanDuration(seconds float64) string {
	m := int(seconds) / 60
	s := int(seconds) % 60
	return fmt.Sprintf("%dm %ds", m, s)
}
