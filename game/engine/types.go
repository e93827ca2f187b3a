package engine

// CellType represents the kind of special effect a cell applies
type CellType string

const (
	Normal CellType = "normal"
	Snake  CellType = "snake"
	Ladder CellType = "ladder"

	// Validation constants
	MaxPlayers        = 26
	FirstPlayerLetter = 'A'
	StartPosition     = 1
)

// PowerupKind identifies a powerup that can sit on a cell or in a player's inventory
type PowerupKind string

const (
	NoPowerup  PowerupKind = ""
	DoubleRoll PowerupKind = "double"
	Antivenom  PowerupKind = "antivenom"
	Escalator  PowerupKind = "escalator"
)

// PowerupKinds lists every real powerup in rendering order
var PowerupKinds = []PowerupKind{DoubleRoll, Antivenom, Escalator}

// ParsePowerupKind maps a command token to a powerup kind
func ParsePowerupKind(name string) (PowerupKind, bool) {
	switch PowerupKind(name) {
	case DoubleRoll, Antivenom, Escalator:
		return PowerupKind(name), true
	}
	return NoPowerup, false
}

// Marker returns the single-character board marker for the powerup
func (k PowerupKind) Marker() byte {
	switch k {
	case DoubleRoll:
		return 'd'
	case Antivenom:
		return 'a'
	case Escalator:
		return 'e'
	}
	return ' '
}

// Marker returns the single-character board marker for the cell type
func (t CellType) Marker() byte {
	switch t {
	case Snake:
		return 'S'
	case Ladder:
		return 'L'
	}
	return ' '
}

// CellTypeForOffset derives the cell type from the sign of a displacement
func CellTypeForOffset(offset int) CellType {
	switch {
	case offset < 0:
		return Snake
	case offset > 0:
		return Ladder
	}
	return Normal
}

// PlayerID is a stable handle into the engine's player arena. The zero value means no player.
type PlayerID int

const NoPlayer PlayerID = 0

// Cell represents a single board cell
type Cell struct {
	Occupant PlayerID    `json:"occupant,omitempty"`
	Type     CellType    `json:"type"`
	Offset   int         `json:"offset,omitempty"`
	Powerup  PowerupKind `json:"powerup,omitempty"`
}

// Occupied reports whether a player stands on the cell
func (c Cell) Occupied() bool {
	return c.Occupant != NoPlayer
}

// Inventory tracks which powerups a player holds. Each kind is held or not held.
type Inventory map[PowerupKind]bool

// Has reports whether the powerup is held
func (inv Inventory) Has(kind PowerupKind) bool {
	return inv[kind]
}

// Grant adds the powerup; granting a held powerup is a no-op
func (inv Inventory) Grant(kind PowerupKind) {
	if kind == NoPowerup {
		return
	}
	inv[kind] = true
}

// Consume removes the powerup and reports whether it was held
func (inv Inventory) Consume(kind PowerupKind) bool {
	if !inv[kind] {
		return false
	}
	delete(inv, kind)
	return true
}

// Held returns the held powerups in rendering order
func (inv Inventory) Held() []PowerupKind {
	var held []PowerupKind
	for _, kind := range PowerupKinds {
		if inv[kind] {
			held = append(held, kind)
		}
	}
	return held
}

// Player represents a single participant
type Player struct {
	ID       PlayerID  `json:"id"`
	Name     string    `json:"name"`
	Position int       `json:"position"` // 0 until first placed
	Powerups Inventory `json:"powerups"`
}

// clone returns a deep copy of the player
func (p *Player) clone() *Player {
	cp := *p
	cp.Powerups = make(Inventory, len(p.Powerups))
	for k, v := range p.Powerups {
		cp.Powerups[k] = v
	}
	return &cp
}

// MoveHistoryEntry represents a single completed roll-and-move
type MoveHistoryEntry struct {
	Player       string `json:"player"`
	Roll         int    `json:"roll"`
	Doubled      bool   `json:"doubled,omitempty"`
	FromPosition int    `json:"from_position"`
	ToPosition   int    `json:"to_position"`
	Timestamp    int64  `json:"timestamp"`
	MoveNumber   int    `json:"move_number"`
}

// PlayerState is a read-only snapshot of a player
type PlayerState struct {
	Name     string        `json:"name"`
	Position int           `json:"position"`
	Powerups []PowerupKind `json:"powerups,omitempty"`
}

// GameState represents a serializable snapshot of a game
type GameState struct {
	Width      int                `json:"width"`
	Height     int                `json:"height"`
	Cells      []Cell             `json:"cells"`
	Players    []PlayerState      `json:"players"`
	Dice       []int              `json:"dice"`
	NextDie    int                `json:"next_die"`
	TotalMoves int                `json:"total_moves"`
	History    []MoveHistoryEntry `json:"move_history"`
}
