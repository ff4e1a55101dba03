package sandbox

import "sandfall/internal/core"

// ScanOrder calls visit once for every coordinate of a grid of the given
// size, in the order the update rules should run during the given
// generation. Rules mutate the shared next buffer, so the order decides which
// writes later cells observe.
type ScanOrder func(size core.Size, generation uint64, visit func(x, y int))

// ForwardScan walks columns left to right, each column bottom to top.
func ForwardScan(size core.Size, _ uint64, visit func(x, y int)) {
	for x := 0; x < size.W; x++ {
		for y := 0; y < size.H; y++ {
			visit(x, y)
		}
	}
}

// ReverseScan walks columns right to left, each column bottom to top.
func ReverseScan(size core.Size, _ uint64, visit func(x, y int)) {
	for x := size.W - 1; x >= 0; x-- {
		for y := 0; y < size.H; y++ {
			visit(x, y)
		}
	}
}

// AlternatingScan uses ForwardScan on even generations and ReverseScan on odd
// ones, which evens out the left/right drift of fluids.
func AlternatingScan(size core.Size, generation uint64, visit func(x, y int)) {
	if generation%2 == 0 {
		ForwardScan(size, generation, visit)
		return
	}
	ReverseScan(size, generation, visit)
}

func scanOrderFor(p Params) ScanOrder {
	if p.AlternateScan {
		return AlternatingScan
	}
	return ForwardScan
}
