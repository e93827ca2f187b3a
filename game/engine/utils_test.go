package engine

import "testing"

func TestCountHelpers(t *testing.T) {
	b, _ := NewBoard(5, 5)
	b.SetSpecial(20, 3)
	b.SetSpecial(14, 2)
	b.SetSpecial(4, 16)
	b.SetPowerup(Antivenom, 5, 6, 7)
	b.SetPowerup(Escalator, 7)

	cells := b.Cells()
	if n := CountCellType(cells, Snake); n != 2 {
		t.Errorf("Expected 2 snakes, got %d", n)
	}
	if n := CountCellType(cells, Ladder); n != 1 {
		t.Errorf("Expected 1 ladder, got %d", n)
	}
	if n := CountPowerup(cells, Antivenom); n != 2 {
		t.Errorf("Expected 2 antivenom cells, got %d", n)
	}
	if n := CountPowerup(cells, Escalator); n != 1 {
		t.Errorf("Expected 1 escalator cell, got %d", n)
	}
}

func TestFindSpecialLoops(t *testing.T) {
	tests := []struct {
		name     string
		specials [][2]int
		expected []int
	}{
		{"no specials", nil, nil},
		{"chain without loop", [][2]int{{2, 4}, {4, 1}}, nil},
		{"ladder and snake loop", [][2]int{{2, 4}, {4, 2}}, []int{2, 4}},
		{"feeding into loop", [][2]int{{1, 3}, {3, 5}, {5, 3}}, []int{1, 3, 5}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, _ := NewBoard(5, 1)
			for _, s := range test.specials {
				if err := b.SetSpecial(s[0], s[1]); err != nil {
					t.Fatalf("SetSpecial: %v", err)
				}
			}

			got := FindSpecialLoops(b)
			if len(got) != len(test.expected) {
				t.Fatalf("expected %v, got %v", test.expected, got)
			}
			for i := range got {
				if got[i] != test.expected[i] {
					t.Errorf("expected %v, got %v", test.expected, got)
				}
			}
		})
	}
}
