// Package ring implements a fixed size ring buffer.
package ring

// Ring is a fixed size buffer
type Ring struct {
	Size int
}

// Next returns the index following i
func (r Ring) Next(i int) int {
	return (i + 1) % r.Size
}
