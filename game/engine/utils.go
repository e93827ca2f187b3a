package engine

// CountCellType counts the cells of a specific type
func CountCellType(cells []Cell, cellType CellType) int {
	count := 0
	for _, cell := range cells {
		if cell.Type == cellType {
			count++
		}
	}
	return count
}

// CountPowerup counts the cells carrying a specific powerup
func CountPowerup(cells []Cell, kind PowerupKind) int {
	count := 0
	for _, cell := range cells {
		if cell.Powerup == kind {
			count++
		}
	}
	return count
}

// OccupiedCells returns the 1-based indexes of occupied cells in ascending order
func OccupiedCells(cells []Cell) []int {
	var occupied []int
	for i, cell := range cells {
		if cell.Occupied() {
			occupied = append(occupied, i+1)
		}
	}
	return occupied
}

// FindSpecialLoops returns, for every snake or ladder whose chain of offsets
// returns to a cell already visited, the index of the cell that starts the
// chain. Powerups are ignored, so a reported chain traps any player without
// Antivenom.
func FindSpecialLoops(b *Board) []int {
	var loops []int
	for start := 1; start <= b.Size(); start++ {
		if b.at(start).Offset == 0 {
			continue
		}

		seen := map[int]bool{start: true}
		current := start
		for {
			offset := b.at(current).Offset
			if offset == 0 {
				break
			}
			current = b.Clamp(current + offset)
			if seen[current] {
				loops = append(loops, start)
				break
			}
			seen[current] = true
		}
	}
	return loops
}
