package tcx

import (
	"fmt"
	"regexp"
	"time"
)

// timeLayout is the TCX timestamp lexical form: UTC with millisecond precision.
const timeLayout = "2006-01-02T15:04:05.000Z"

// timePattern matches a <Time> element body. The rewrite works on raw text,
// so this is the only structural assumption made about the document.
var timePattern = regexp.MustCompile(`<Time>([\d\-T:.Z]+)</Time>`)

// parseTime parses a TCX timestamp body, the trailing "Z" meaning UTC.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed timestamp %q: %w", s, err)
	}
	return t, nil
}

// formatTime renders a timestamp back into the TCX lexical form.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// scanTimes returns every <Time> element body in document order, both as the
// exact source string and parsed. A body that does not parse aborts the scan.
func scanTimes(content string) ([]string, []time.Time, error) {
	matches := timePattern.FindAllStringSubmatch(content, -1)
	raw := make([]string, 0, len(matches))
	times := make([]time.Time, 0, len(matches))
	for _, m := range matches {
		t, err := parseTime(m[1])
		if err != nil {
			return nil, nil, err
		}
		raw = append(raw, m[1])
		times = append(times, t)
	}
	return raw, times, nil
}
