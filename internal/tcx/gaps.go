package tcx

// DetectGaps scans content for trackpoint timestamps and returns every
// interval between consecutive samples that is strictly longer than
// threshold seconds. Gaps come out in document order and cannot overlap
// since they are derived from a single ordered pass. A gap exactly equal
// to the threshold is not recorded.
func DetectGaps(content string, threshold float64) ([]Gap, error) {
	_, times, err := scanTimes(content)
	if err != nil {
		return nil, err
	}

	var gaps []Gap
	for i := 1; i < len(times); i++ {
		seconds := times[i].Sub(times[i-1]).Seconds()
		if seconds > threshold {
			gaps = append(gaps, Gap{
				Start:   times[i-1],
				End:     times[i],
				Seconds: seconds,
			})
		}
	}
	return gaps, nil
}
