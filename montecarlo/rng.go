package montecarlo

import "math/rand/v2"

// defaultSeed is the fixed root used when callers pass seed==0.
const defaultSeed uint64 = 1

// rootSeed applies the seed==0 policy.
func rootSeed(seed uint64) uint64 {
	if seed == 0 {
		return defaultSeed
	}
	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the SplitMix64 finalizer, so neighboring stream ids produce
// uncorrelated children.
//
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// trialSource returns the random source of one trial: the call seed picks
// the PCG state, the trial index its increment stream.
func trialSource(callSeed uint64, trial int) rand.Source {
	return rand.NewPCG(callSeed, deriveSeed(callSeed, uint64(trial)))
}
