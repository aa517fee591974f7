// Counter-based random draws for simulation runs.
//
// Goals:
//   - Determinism: same (seed, epoch, run, arc) ⇒ same draw on every platform.
//   - No shared state: workers never synchronize on an RNG.
package spread

// golden is the SplitMix64 increment.
const golden = 0x9e3779b97f4a7c15

// mix mixes a parent value and a stream identifier with the SplitMix64
// finalizer (Vigna 2014).
func mix(parent, stream uint64) uint64 {
	x := parent ^ (stream + golden)
	x += golden
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// runKey derives the per-run key from the base seed, epoch and run index.
func runKey(seed int64, epoch uint64, run int) uint64 {
	return mix(mix(uint64(seed), epoch), uint64(run))
}

// uniform maps (runKey, arc key) to a float in [0,1) with 53 bits of precision.
func uniform(run, arc uint64) float64 {
	return float64(mix(run, arc)>>11) / (1 << 53)
}
