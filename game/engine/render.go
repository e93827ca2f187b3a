package engine

import (
	"fmt"
	"strings"
)

// RenderBoard draws the board as a serpentine grid, top row first. Every row
// is a line of right-aligned cell numbers followed by a line holding, per cell,
// the occupant, the powerup marker and the snake/ladder marker. The powerup
// marker deliberately comes before the snake/ladder marker.
//
// name maps an occupant handle to its display name; handles it cannot name are
// drawn as empty.
func RenderBoard(b *Board, name func(PlayerID) string) string {
	var sb strings.Builder
	rule := horizontalRule(b.Width())

	sb.WriteString(rule)
	for row := b.Height(); row >= 1; row-- {
		indexes := b.RowIndexes(row)

		for _, index := range indexes {
			fmt.Fprintf(&sb, "|%3d", index)
		}
		sb.WriteString("|\n")

		for _, index := range indexes {
			cell := b.cells[index-1]
			sb.WriteByte('|')
			sb.WriteByte(occupantMarker(cell, name))
			sb.WriteByte(cell.Powerup.Marker())
			sb.WriteByte(cell.Type.Marker())
		}
		sb.WriteString("|\n")

		sb.WriteString(rule)
	}

	return sb.String()
}

func horizontalRule(width int) string {
	return "+" + strings.Repeat("---+", width) + "\n"
}

func occupantMarker(cell Cell, name func(PlayerID) string) byte {
	if !cell.Occupied() || name == nil {
		return ' '
	}
	if n := name(cell.Occupant); n != "" {
		return n[0]
	}
	return ' '
}
