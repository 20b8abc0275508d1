package lineedit

// Selection is a snapshot of the field's selection range, in runes.
// Start == End is a caret with nothing selected.
type Selection struct {
	Start int
	End   int
}

// Empty reports whether the selection is a bare caret.
func (s Selection) Empty() bool {
	return s.Start == s.End
}

// clamp returns s with both offsets forced into [0, n] and ordered.
// Host selection APIs can report offsets from before the last edit, so
// out-of-range values are pulled back rather than rejected.
func (s Selection) clamp(n int) Selection {
	start := clampInt(s.Start, 0, n)
	end := clampInt(s.End, 0, n)
	if start > end {
		start, end = end, start
	}
	return Selection{Start: start, End: end}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
