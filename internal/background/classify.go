package background

const (
	// MinBrightness is the exclusive lower bound on the mean of R, G and B.
	MinBrightness = 100.0

	// MaxChannelDiff is the exclusive upper bound on the largest pairwise
	// difference between R, G and B.
	MaxChannelDiff = 65
)

// IsBackground reports whether a colour looks like the stone background:
// light (mean channel value strictly above MinBrightness) and close to gray
// (largest pairwise channel difference strictly below MaxChannelDiff).
//
// Alpha is ignored.
func IsBackground(r, g, b uint8) bool {
	brightness := (float64(r) + float64(g) + float64(b)) / 3
	return brightness > MinBrightness && maxChannelDiff(r, g, b) < MaxChannelDiff
}

func maxChannelDiff(r, g, b uint8) int {
	rg := absDiff(r, g)
	gb := absDiff(g, b)
	rb := absDiff(r, b)
	return max(rg, gb, rb)
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
