package engine

import "fmt"

// Board is a width x height grid of cells addressed by 1-based serpentine index
type Board struct {
	width  int
	height int
	cells  []Cell
}

// MaxBoardCells bounds width*height. Rendering walks every cell, and the
// header line pads indexes to three digits, so larger boards are not useful.
const MaxBoardCells = 1 << 16

// NewBoard allocates a board of plain, empty cells
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	// Division keeps the check free of overflow
	if width > MaxBoardCells/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, width, height, MaxBoardCells)
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Type: Normal}
	}

	return &Board{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of cells per row
func (b *Board) Width() int { return b.width }

// Height returns the number of rows
func (b *Board) Height() int { return b.height }

// Size returns the number of cells
func (b *Board) Size() int { return len(b.cells) }

// InRange reports whether index addresses a cell
func (b *Board) InRange(index int) bool {
	return index >= 1 && index <= len(b.cells)
}

// Cell returns a copy of the cell at a 1-based index
func (b *Board) Cell(index int) (Cell, error) {
	if !b.InRange(index) {
		return Cell{}, b.rangeError(index)
	}
	return b.cells[index-1], nil
}

// Cells returns a copy of every cell in index order
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// SetSpecial turns cell from into a snake or ladder leading to cell to.
// Setting from == to clears any previous special.
func (b *Board) SetSpecial(from, to int) error {
	if !b.InRange(from) {
		return b.rangeError(from)
	}
	if !b.InRange(to) {
		return b.rangeError(to)
	}

	offset := to - from
	cell := b.at(from)
	cell.Offset = offset
	cell.Type = CellTypeForOffset(offset)
	return nil
}

// SetPowerup places kind on every listed cell, replacing whatever powerup was there.
// The board is left untouched when any index is out of range.
func (b *Board) SetPowerup(kind PowerupKind, indexes ...int) error {
	if kind != NoPowerup {
		if _, ok := ParsePowerupKind(string(kind)); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPowerup, kind)
		}
	}
	for _, index := range indexes {
		if !b.InRange(index) {
			return b.rangeError(index)
		}
	}
	for _, index := range indexes {
		b.at(index).Powerup = kind
	}
	return nil
}

// Clamp bounds a position to the board
func (b *Board) Clamp(position int) int {
	if position < 1 {
		return 1
	}
	if position > len(b.cells) {
		return len(b.cells)
	}
	return position
}

// RowOf returns the 1-based row, counted from the bottom, holding index
func (b *Board) RowOf(index int) int {
	return (index-1)/b.width + 1
}

// ColumnOf returns the 0-based display column of index, accounting for the
// serpentine layout
func (b *Board) ColumnOf(index int) int {
	offset := (index - 1) % b.width
	if b.RowOf(index)%2 == 0 {
		return b.width - 1 - offset
	}
	return offset
}

// RowIndexes returns the cell indexes of a row in display order, left to right
func (b *Board) RowIndexes(row int) []int {
	base := (row-1)*b.width + 1
	indexes := make([]int, b.width)
	for i := range indexes {
		if row%2 == 0 {
			indexes[i] = base + b.width - 1 - i
		} else {
			indexes[i] = base + i
		}
	}
	return indexes
}

// clearOccupants removes every occupancy mark
func (b *Board) clearOccupants() {
	for i := range b.cells {
		b.cells[i].Occupant = NoPlayer
	}
}

func (b *Board) at(index int) *Cell {
	return &b.cells[index-1]
}

func (b *Board) rangeError(index int) error {
	return fmt.Errorf("%w: %d not in [1, %d]", ErrCellOutOfRange, index, len(b.cells))
}

func (b *Board) clone() *Board {
	cp := *b
	cp.cells = b.Cells()
	return &cp
}
