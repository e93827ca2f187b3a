package engine

import "testing"

func TestRender_EmptyBoard(t *testing.T) {
	e := newTestEngine(t, 3, 2)

	expected := "" +
		"+---+---+---+\n" +
		"|  6|  5|  4|\n" +
		"|   |   |   |\n" +
		"+---+---+---+\n" +
		"|  1|  2|  3|\n" +
		"|   |   |   |\n" +
		"+---+---+---+\n"

	if got := e.Render(); got != expected {
		t.Errorf("Render mismatch.\nexpected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestRender_Markers(t *testing.T) {
	e := newTestEngine(t, 3, 2)
	e.SetSpecial(2, 5)
	e.SetSpecial(6, 1)
	e.SetPowerup(Escalator, 4)
	e.SetPowerup(Antivenom, 3)
	e.ConfigurePlayers(1)

	expected := "" +
		"+---+---+---+\n" +
		"|  6|  5|  4|\n" +
		"|  S|   | e |\n" +
		"+---+---+---+\n" +
		"|  1|  2|  3|\n" +
		"|A  |  L| a |\n" +
		"+---+---+---+\n"

	if got := e.Render(); got != expected {
		t.Errorf("Render mismatch.\nexpected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestRender_OddRowCountAndCascade(t *testing.T) {
	e := newTestEngine(t, 2, 3)
	e.ConfigurePlayers(2)

	expected := "" +
		"+---+---+\n" +
		"|  5|  6|\n" +
		"|   |   |\n" +
		"+---+---+\n" +
		"|  4|  3|\n" +
		"|   |   |\n" +
		"+---+---+\n" +
		"|  1|  2|\n" +
		"|B  |A  |\n" +
		"+---+---+\n"

	if got := e.Render(); got != expected {
		t.Errorf("Render mismatch.\nexpected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestRender_PlayerOnSpecialCell(t *testing.T) {
	e := newTestEngine(t, 4, 3)
	e.SetSpecial(10, 2)
	e.SetPowerup(Antivenom, 10)
	e.ConfigurePlayers(1)
	e.SetDice([]int{9})
	e.RollAndMove("A")

	expected := "" +
		"+---+---+---+---+\n" +
		"|  9| 10| 11| 12|\n" +
		"|   |AaS|   |   |\n" +
		"+---+---+---+---+\n" +
		"|  8|  7|  6|  5|\n" +
		"|   |   |   |   |\n" +
		"+---+---+---+---+\n" +
		"|  1|  2|  3|  4|\n" +
		"|   |   |   |   |\n" +
		"+---+---+---+---+\n"

	if got := e.Render(); got != expected {
		t.Errorf("Render mismatch.\nexpected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestRender_Deterministic(t *testing.T) {
	build := func() string {
		e := newTestEngine(t, 5, 4)
		e.SetSpecial(17, 3)
		e.SetSpecial(6, 14)
		e.SetPowerup(DoubleRoll, 4, 9)
		e.ConfigurePlayers(3)
		e.SetDice([]int{3, 1, 6})
		for _, name := range []string{"A", "B", "C", "A"} {
			e.RollAndMove(name)
		}
		return e.Render()
	}

	first := build()
	if second := build(); first != second {
		t.Errorf("Expected identical renders, got:\n%s\nand:\n%s", first, second)
	}
}

func TestRenderBoard_UnknownOccupantDrawnEmpty(t *testing.T) {
	b, _ := NewBoard(1, 1)
	b.at(1).Occupant = 7

	expected := "+---+\n|  1|\n|   |\n+---+\n"
	if got := RenderBoard(b, func(PlayerID) string { return "" }); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
