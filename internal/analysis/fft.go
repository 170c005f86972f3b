// Package analysis provides frequency analysis of population series,
// used to find predator-prey oscillation cycles.
package analysis

import (
	"math"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform of data. Series of
// arbitrary length are zero-padded to the next power of two, so the
// result may be longer than the input.
func FFT(data []float64) []complex128 {
	return fft(Pad(data))
}

func fft(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := fft(even)
	fodd := fft(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// PowerSpectrum returns the magnitude of the first half of the
// transform of data.
func PowerSpectrum(data []float64) []float64 {
	transform := FFT(data)
	ps := make([]float64, len(transform)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(transform[i])
	}
	return ps
}

// Pad extends data with zeros to the next power-of-two length.
func Pad(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)
	return padded
}

// Detrend subtracts the mean so the DC component does not swamp the
// spectrum of a slowly growing population.
func Detrend(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v - mean
	}
	return out
}
