package nav

// Indicator is the progress view derived from the current index.
type Indicator struct {
	Current int
	Count   int
	// Fill is the progress ratio in [0, 1].
	Fill float64
	Dots []bool
}

// IndicatorFor computes the indicator for current out of count sections.
func IndicatorFor(current int, count int) Indicator {
	indicator := Indicator{Current: current, Count: count}
	if count <= 0 {
		return indicator
	}

	if count > 1 {
		indicator.Fill = float64(current) / float64(count-1)
	}

	indicator.Dots = make([]bool, count)
	if current >= 0 && current < count {
		indicator.Dots[current] = true
	}

	return indicator
}

// Percent is Fill expressed as a whole percentage.
func (i Indicator) Percent() int {
	return int(i.Fill*100 + 0.5)
}
