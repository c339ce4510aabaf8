package heightfield

const methodMountain = "Mountain"

// Mountain returns a Generator for a diamond-shaped peak:
// h(x, y) = maxHeight − ManhattanDistance(x, y, c, c) with c = Size/2.
// Heights fall linearly from the centre and go negative towards the corners.
// The result ignores the random source.
func Mountain(maxHeight int) Generator {
	return func(f *Field, _ genConfig) error {
		if err := checkMaxHeight(methodMountain, maxHeight); err != nil {
			return err
		}
		c := Center(f.Size)
		for y := 0; y <= f.Size; y++ {
			for x := 0; x <= f.Size; x++ {
				f.Set(x, y, float64(maxHeight-ManhattanDistance(x, y, c, c)))
			}
		}
		return nil
	}
}
