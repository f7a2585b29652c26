package bramble

import "testing"

func childBoxes(sizes ...[2]float64) []*Box {
	boxes := make([]*Box, len(sizes))
	for i, s := range sizes {
		boxes[i] = NewBox("child", Rect{Width: s[0], Height: s[1]})
	}
	return boxes
}

func TestRowAutoSizes(t *testing.T) {
	row := NewRow("row", 5)
	for _, c := range childBoxes([2]float64{10, 10}, [2]float64{20, 30}, [2]float64{30, 20}) {
		if err := row.AddChild(c); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}

	row.RecomputeLayout()

	// Content: 10+20+30 plus two 5px gaps.
	if row.Rect.Width != 70 {
		t.Errorf("row width = %v, want 70", row.Rect.Width)
	}
	if row.Rect.Height != 30 {
		t.Errorf("row height = %v, want 30", row.Rect.Height)
	}
	wantX := []float64{0, 15, 40}
	for i, c := range row.Children() {
		if c.Rect.X != wantX[i] {
			t.Errorf("child[%d].X = %v, want %v", i, c.Rect.X, wantX[i])
		}
		if c.Rect.Y != 0 {
			t.Errorf("child[%d].Y = %v, want 0", i, c.Rect.Y)
		}
	}
}

func TestRowRecomputeIsIdempotent(t *testing.T) {
	row := NewRow("row", 5)
	for _, c := range childBoxes([2]float64{10, 10}, [2]float64{20, 10}) {
		if err := row.AddChild(c); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}

	row.RecomputeLayout()
	first := []Rect{row.Rect, row.ChildAt(0).Rect, row.ChildAt(1).Rect}
	row.RecomputeLayout()
	second := []Rect{row.Rect, row.ChildAt(0).Rect, row.ChildAt(1).Rect}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("rect %d changed across recomputes: %v then %v", i, first[i], second[i])
		}
	}
}

func TestRowSkipsHiddenChildren(t *testing.T) {
	row := NewRow("row", 5)
	kids := childBoxes([2]float64{10, 10}, [2]float64{20, 10}, [2]float64{30, 10})
	for _, c := range kids {
		if err := row.AddChild(c); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}
	kids[1].SetVisible(false)
	hiddenRect := kids[1].Rect

	row.RecomputeLayout()

	// Hidden child keeps its rect and occupies no space.
	if kids[1].Rect != hiddenRect {
		t.Errorf("hidden child rect changed: %v", kids[1].Rect)
	}
	if row.Rect.Width != 45 {
		t.Errorf("row width = %v, want 45", row.Rect.Width)
	}
	if kids[2].Rect.X != 15 {
		t.Errorf("third child X = %v, want 15", kids[2].Rect.X)
	}
}

func TestRowReverse(t *testing.T) {
	row := NewBox("row", Rect{})
	row.SetLayout(&Layout{Kind: LayoutRow, Spacing: 0, Reverse: true})
	kids := childBoxes([2]float64{10, 10}, [2]float64{20, 10})
	for _, c := range kids {
		if err := row.AddChild(c); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}

	row.RecomputeLayout()

	// Reversed: second child first.
	if kids[1].Rect.X != 0 {
		t.Errorf("second child X = %v, want 0", kids[1].Rect.X)
	}
	if kids[0].Rect.X != 20 {
		t.Errorf("first child X = %v, want 20", kids[0].Rect.X)
	}
}

func TestColumnWithPaddingAndStretch(t *testing.T) {
	col := NewBox("col", Rect{})
	col.SetLayout(&Layout{
		Kind:    LayoutColumn,
		Spacing: 4,
		Padding: UniformInsets(3),
		Stretch: true,
	})
	kids := childBoxes([2]float64{10, 10}, [2]float64{25, 20})
	for _, c := range kids {
		if err := col.AddChild(c); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}

	col.RecomputeLayout()

	if col.Rect.Width != 31 || col.Rect.Height != 40 {
		t.Errorf("column size = %vx%v, want 31x40", col.Rect.Width, col.Rect.Height)
	}
	if kids[0].Rect.Y != 3 || kids[1].Rect.Y != 17 {
		t.Errorf("child Y = %v, %v, want 3, 17", kids[0].Rect.Y, kids[1].Rect.Y)
	}
	// Stretch widens both children to the widest.
	if kids[0].Rect.Width != 25 {
		t.Errorf("stretched child width = %v, want 25", kids[0].Rect.Width)
	}
}

func TestFixedSizeAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align Alignment
		wantX []float64
	}{
		{"start", AlignStart, []float64{0, 10}},
		{"end", AlignEnd, []float64{80, 90}},
		{"center", AlignCenter, []float64{40, 50}},
		{"justify", AlignJustify, []float64{0, 90}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := NewBox("row", Rect{Width: 100, Height: 10})
			row.SetLayout(&Layout{Kind: LayoutRow, FixedSize: true, Align: tt.align})
			kids := childBoxes([2]float64{10, 10}, [2]float64{10, 10})
			for _, c := range kids {
				if err := row.AddChild(c); err != nil {
					t.Fatalf("AddChild: %v", err)
				}
			}

			row.RecomputeLayout()

			if row.Rect.Width != 100 {
				t.Fatalf("fixed-size row resized to %v", row.Rect.Width)
			}
			for i, want := range tt.wantX {
				if kids[i].Rect.X != want {
					t.Errorf("child[%d].X = %v, want %v", i, kids[i].Rect.X, want)
				}
			}
		})
	}
}

func TestGridPlacement(t *testing.T) {
	grid := NewGrid("grid", 2, 5)
	kids := childBoxes(
		[2]float64{10, 10}, [2]float64{20, 10},
		[2]float64{10, 30}, [2]float64{20, 30},
		[2]float64{10, 10},
	)
	for _, c := range kids {
		if err := grid.AddChild(c); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}

	grid.RecomputeLayout()

	// Columns are 10 and 20 wide; rows are 10, 30, 10 tall.
	wantPos := [][2]float64{
		{0, 0}, {15, 0},
		{0, 15}, {15, 15},
		{0, 50},
	}
	for i, c := range kids {
		if c.Rect.X != wantPos[i][0] || c.Rect.Y != wantPos[i][1] {
			t.Errorf("child[%d] at (%v, %v), want (%v, %v)",
				i, c.Rect.X, c.Rect.Y, wantPos[i][0], wantPos[i][1])
		}
	}
	if grid.Rect.Width != 35 || grid.Rect.Height != 60 {
		t.Errorf("grid size = %vx%v, want 35x60", grid.Rect.Width, grid.Rect.Height)
	}
}

func TestGridDerivedColumns(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		aspect float64
		want   int
	}{
		{"square nine", 9, 0, 3},
		{"square four", 4, 0, 2},
		{"wide", 8, 2, 4},
		{"single", 1, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Layout{Kind: LayoutGrid, TargetAspect: tt.aspect}
			if got := l.gridColumns(tt.n); got != tt.want {
				t.Errorf("gridColumns(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestNestedGroupsSettleBottomUp(t *testing.T) {
	s := NewScene(800, 600)
	outer := NewColumn("outer", 0)
	inner := NewRow("inner", 5)
	for _, c := range childBoxes([2]float64{10, 10}, [2]float64{20, 10}) {
		if err := inner.AddChild(c); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}
	if err := outer.AddChild(inner); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := s.Root().AddChild(outer); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	s.Step(0)

	// The inner row auto-sizes first, then the outer column wraps it.
	if inner.Rect.Width != 35 {
		t.Errorf("inner width = %v, want 35", inner.Rect.Width)
	}
	if outer.Rect.Width != 35 || outer.Rect.Height != 10 {
		t.Errorf("outer size = %vx%v, want 35x10", outer.Rect.Width, outer.Rect.Height)
	}
}
