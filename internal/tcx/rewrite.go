package tcx

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var totalTimePattern = regexp.MustCompile(`<TotalTimeSeconds>[\d.]+</TotalTimeSeconds>`)

// buildReplacements computes the adjusted lexical form of every timestamp
// in content, shifting each one back by the cumulative duration of the
// gaps already passed. A timestamp has passed a gap once it is at or
// after the gap's end. At most one gap is discharged per timestamp; with
// per-second trackpoint sampling every gap end is itself a trackpoint, so
// each gap is consumed as soon as it is reached.
//
// The result maps original timestamp strings to adjusted ones, with keys
// returned in first-insertion order. Unchanged timestamps get no entry.
func buildReplacements(content string, gaps []Gap) (map[string]string, []string, error) {
	raw, times, err := scanTimes(content)
	if err != nil {
		return nil, nil, err
	}

	replacements := make(map[string]string)
	var order []string
	var offset time.Duration
	cursor := 0

	for i, original := range raw {
		if cursor < len(gaps) && !times[i].Before(gaps[cursor].End) {
			offset += time.Duration(gaps[cursor].Seconds * float64(time.Second))
			cursor++
		}

		adjusted := formatTime(times[i].Add(-offset))
		if adjusted == original {
			continue
		}
		if _, ok := replacements[original]; !ok {
			order = append(order, original)
		}
		replacements[original] = adjusted
	}

	return replacements, order, nil
}

// Rewrite applies the gap-removal substitutions to content and recomputes
// every TotalTimeSeconds field from the adjusted timeline. Substitution is
// literal replacement of the full marked-up token (<Time> element body and
// StartTime attribute value), never a bare numeral match.
//
// When no timestamps remain after substitution the result is marked
// Skipped and carries no content; callers must not write output.
func Rewrite(content string, gaps []Gap) (Result, error) {
	replacements, order, err := buildReplacements(content, gaps)
	if err != nil {
		return Result{}, err
	}

	out := content
	for _, original := range order {
		adjusted := replacements[original]
		out = strings.ReplaceAll(out, "<Time>"+original+"</Time>", "<Time>"+adjusted+"</Time>")
		out = strings.ReplaceAll(out, `StartTime="`+original+`"`, `StartTime="`+adjusted+`"`)
	}

	// Recompute the total duration from the rewritten timeline.
	_, times, err := scanTimes(out)
	if err != nil {
		return Result{}, err
	}
	if len(times) == 0 {
		return Result{Skipped: true}, nil
	}

	duration := times[len(times)-1].Sub(times[0]).Seconds()
	out = totalTimePattern.ReplaceAllString(out,
		"<TotalTimeSeconds>"+formatSeconds(duration)+"</TotalTimeSeconds>")

	return Result{
		Content:  out,
		Duration: duration,
		Replaced: len(order),
	}, nil
}

// formatSeconds renders a fractional second count for a numeric document
// field. Integral values keep one decimal place so the field stays a
// float lexically.
func formatSeconds(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
