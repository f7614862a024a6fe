package glide

// Factor returns the fraction of the remaining distance covered by one tick:
// speed*elapsed clamped to [0, 1]. A NaN product is returned as is.
func Factor(elapsed, speed float64) float64 {
	f := speed * elapsed
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Smooth moves from toward to by Factor(elapsed, speed) of the distance
// between them. The result never overshoots to and never moves backward:
// a factor of 0 returns from unchanged and a factor of 1 returns to exactly.
func Smooth(from, to, elapsed, speed float64) float64 {
	f := Factor(elapsed, speed)
	switch f {
	case 0:
		return from
	case 1:
		return to
	}
	v := from + (to-from)*f
	// Rounding in to-from can push v a ulp past to.
	if (from <= to && v > to) || (from > to && v < to) {
		return to
	}
	return v
}
