package meshgen

import "gonum.org/v1/gonum/floats"

// LinearSpacing returns n evenly spaced samples over [start, stop]. With
// endpoint true the last sample is stop; with endpoint false the samples
// cover [start, stop) with step (stop-start)/n, matching the half-open
// spacing convention of structured grid axes.
func LinearSpacing(start, stop float64, n int, endpoint bool) []float64 {
	if n < 1 {
		return nil
	}
	samples := make([]float64, n)
	if endpoint {
		if n == 1 {
			samples[0] = start
			return samples
		}
		return floats.Span(samples, start, stop)
	}
	step := (stop - start) / float64(n)
	for i := range samples {
		samples[i] = start + float64(i)*step
	}
	return samples
}
