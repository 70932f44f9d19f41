package mesh

import "fmt"

// Connectivity is a fixed-stride element-to-element index table, e.g.
// cell-to-node with stride 3 or node-to-cell with stride 6. Entries not
// covered by an element (a boundary node with 4 of 6 possible cells) hold
// MissingValue.
type Connectivity struct {
	rows   int
	stride int
	index  []int
}

// NewConnectivity allocates a rows x stride table filled with MissingValue.
func NewConnectivity(rows, stride int) *Connectivity {
	c := &Connectivity{
		rows:   rows,
		stride: stride,
		index:  make([]int, rows*stride),
	}
	for i := range c.index {
		c.index[i] = MissingValue
	}
	return c
}

// Rows returns the number of elements in the table.
func (c *Connectivity) Rows() int { return c.rows }

// Stride returns the number of index slots per element.
func (c *Connectivity) Stride() int { return c.stride }

// At returns the col-th related index of element row.
func (c *Connectivity) At(row, col int) int {
	return c.index[row*c.stride+col]
}

// Set stores v as the col-th related index of element row.
func (c *Connectivity) Set(row, col, v int) {
	c.index[row*c.stride+col] = v
}

// SetRow replaces all index slots of element row. vals must have exactly
// stride entries.
func (c *Connectivity) SetRow(row int, vals []int) {
	if len(vals) != c.stride {
		panic(fmt.Errorf("connectivity row of stride %d assigned %d values",
			c.stride, len(vals)))
	}
	copy(c.index[row*c.stride:(row+1)*c.stride], vals)
}

// Row returns the index slots of element row. The returned slice aliases
// the table storage.
func (c *Connectivity) Row(row int) []int {
	return c.index[row*c.stride : (row+1)*c.stride]
}
