// Package compare measures how far apart two signals are.
//
// Euclidean and RMSE compare sample by sample; DTW (dynamic time warping)
// tolerates shifts and stretches, which makes it the right tool for
// comparing recipes whose sinusoids or pulses are out of phase:
//
//	opts := compare.DefaultOptions() // unlimited window, no penalty
//	opts.Window = 5                  // Sakoe–Chiba band ±5 samples
//	d, err := compare.DTW(a.Final, b.Final, opts)
package compare
