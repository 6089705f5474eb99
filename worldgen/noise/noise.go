// Package noise wraps opensimplex noise with octave summation.
package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Noise is a wrapper for opensimplex.Noise, initialized with
// a given seed, persistence, and number of octaves.
type Noise struct {
	Octaves     int
	Persistence float64
	Amplitudes  []float64
	Seed        int64
	OS          opensimplex.Noise
}

// New returns a new Noise.
func New(octaves int, persistence float64, seed int64) *Noise {
	n := &Noise{
		Octaves:     octaves,
		Persistence: persistence,
		Amplitudes:  make([]float64, octaves),
		Seed:        seed,
		OS:          opensimplex.NewNormalized(seed),
	}

	// Initialize the amplitudes.
	for i := range n.Amplitudes {
		n.Amplitudes[i] = math.Pow(persistence, float64(i))
	}
	return n
}

// Eval2 returns the noise value at the given point in the range [0, 1].
func (n *Noise) Eval2(x, y float64) float64 {
	var sum, sumOfAmplitudes float64
	for octave := 0; octave < n.Octaves; octave++ {
		frequency := 1 << octave
		fFreq := float64(frequency)
		sum += n.Amplitudes[octave] * n.OS.Eval2(x*fFreq, y*fFreq)
		sumOfAmplitudes += n.Amplitudes[octave]
	}
	return sum / sumOfAmplitudes
}

// Eval2Signed returns the noise value at the given point in the range [-1, 1].
func (n *Noise) Eval2Signed(x, y float64) float64 {
	return 2*n.Eval2(x, y) - 1
}

// Eval2Ridged returns ridged noise at the given point in the range [0, 1],
// with sharp crests where the underlying noise crosses its midpoint.
func (n *Noise) Eval2Ridged(x, y float64) float64 {
	return 1 - math.Abs(n.Eval2Signed(x, y))
}

// PlusOneOctave returns a new Noise with one more octave.
func (n *Noise) PlusOneOctave() *Noise {
	return New(n.Octaves+1, n.Persistence, n.Seed)
}
