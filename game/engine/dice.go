package engine

import "fmt"

// Dice is a fixed roll sequence consumed cyclically
type Dice struct {
	values []int
	next   int
}

// NewDice validates and stores a roll sequence
func NewDice(values []int) (Dice, error) {
	if len(values) == 0 {
		return Dice{}, ErrNoDice
	}
	for i, v := range values {
		if v <= 0 {
			return Dice{}, fmt.Errorf("%w: value %d at position %d", ErrInvalidDie, v, i+1)
		}
	}
	stored := make([]int, len(values))
	copy(stored, values)
	return Dice{values: stored}, nil
}

// Roll returns the next value and advances the cursor, wrapping at the end
func (d *Dice) Roll() (int, error) {
	if len(d.values) == 0 {
		return 0, ErrNoDice
	}
	v := d.values[d.next]
	d.next = (d.next + 1) % len(d.values)
	return v, nil
}

// Values returns a copy of the sequence
func (d Dice) Values() []int {
	out := make([]int, len(d.values))
	copy(out, d.values)
	return out
}

// Next returns the index of the value the next roll will use
func (d Dice) Next() int { return d.next }

// Len returns the sequence length
func (d Dice) Len() int { return len(d.values) }

// Rewind moves the cursor back to the first value
func (d *Dice) Rewind() { d.next = 0 }
