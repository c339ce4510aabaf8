package heightfield

// Field is a square height map stored row-major. Heights are in feet and may
// be negative (below sea level).
type Field struct {
	// Size is the last valid index on both axes; the field is Size+1 wide.
	Size int
	data []float64
}

// NewField allocates an all-zero field with last index size.
// A negative size is treated as 0 (a single cell).
func NewField(size int) *Field {
	if size < 0 {
		size = 0
	}
	side := size + 1
	return &Field{Size: size, data: make([]float64, side*side)}
}

// Side returns the number of cells along one axis (Size+1).
func (f *Field) Side() int { return f.Size + 1 }

// LastIndex returns the last valid coordinate on either axis.
func (f *Field) LastIndex() int { return f.Size }

// InBounds reports whether (x, y) addresses a cell of the field.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x <= f.Size && y >= 0 && y <= f.Size
}

// At returns the height at (x, y). Callers must stay in bounds.
func (f *Field) At(x, y int) float64 { return f.data[y*f.Side()+x] }

// Set writes the height at (x, y). Callers must stay in bounds.
func (f *Field) Set(x, y int, h float64) { f.data[y*f.Side()+x] = h }

// Rows copies the field into a fresh [][]float64 indexed [y][x].
// Complexity: O(Side²) time and memory.
func (f *Field) Rows() [][]float64 {
	side := f.Side()
	rows := make([][]float64, side)
	for y := 0; y < side; y++ {
		rows[y] = make([]float64, side)
		copy(rows[y], f.data[y*side:(y+1)*side])
	}
	return rows
}
