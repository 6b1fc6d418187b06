package option

// Mean returns the arithmetic mean of xs. The mean of an empty slice is
// undefined, which callers notice as None rather than as NaN or a panic.
func Mean(xs []float64) Option[float64] {
	if len(xs) == 0 {
		return None[float64]()
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return Some(sum / float64(len(xs)))
}

// Variance returns the population variance of xs, i.e. the mean of the
// squared deviations from the mean. Both undefined cases (no mean, no
// deviations) propagate through FlatMap as None.
func Variance(xs []float64) Option[float64] {
	return FlatMap(Mean(xs), func(m float64) Option[float64] {
		devs := make([]float64, len(xs))
		for i, x := range xs {
			devs[i] = (x - m) * (x - m)
		}
		return Mean(devs)
	})
}
