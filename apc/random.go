package apc

import "math/rand/v2"

// UniformRandom returns a value in [0,1) that depends only on beat and
// channel, so every LED refresh within a beat agrees with the parameters.
func UniformRandom(beat, channel int) float64 {
	r := rand.New(rand.NewPCG(uint64(beat), uint64(channel)^0x9e3779b97f4a7c15))
	return r.Float64()
}
