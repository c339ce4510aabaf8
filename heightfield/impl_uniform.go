package heightfield

const methodUniform = "Uniform"

// Uniform returns a Generator that draws every height independently from the
// integers in [0, maxHeight], ignoring position.
func Uniform(maxHeight int) Generator {
	return func(f *Field, cfg genConfig) error {
		if err := checkMaxHeight(methodUniform, maxHeight); err != nil {
			return err
		}
		for y := 0; y <= f.Size; y++ {
			for x := 0; x <= f.Size; x++ {
				f.Set(x, y, float64(cfg.rng.Intn(maxHeight+1)))
			}
		}
		return nil
	}
}
