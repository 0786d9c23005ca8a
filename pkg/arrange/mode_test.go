package arrange

import "testing"

func TestModeCycleReturnsToStart(t *testing.T) {
	for _, start := range Cycle {
		m := start
		for i := 0; i < 4; i++ {
			m = m.Next()
		}
		if m != start {
			t.Errorf("four cycles from %v ended at %v", start, m)
		}
	}
}

func TestModeNextOrder(t *testing.T) {
	want := map[Mode]Mode{
		ModeStack: ModeSplit,
		ModeSplit: ModeFocus,
		ModeFocus: ModeGrid,
		ModeGrid:  ModeStack,
		ModeFree:  ModeStack,
	}
	for from, to := range want {
		if got := from.Next(); got != to {
			t.Errorf("%v.Next() = %v, want %v", from, got, to)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"stack", ModeStack, false},
		{"GRID", ModeGrid, false},
		{"free", ModeFree, false},
		{"tabs", ModeFree, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestModeText(t *testing.T) {
	var m Mode
	if err := m.UnmarshalText([]byte("focus")); err != nil {
		t.Fatal(err)
	}
	b, _ := m.MarshalText()
	if string(b) != "focus" {
		t.Errorf("MarshalText() = %q", b)
	}
}

func TestModeFlags(t *testing.T) {
	if ModeFree.Managed() {
		t.Error("free should not be managed")
	}
	if !ModeGrid.Managed() {
		t.Error("grid should be managed")
	}
	if ModeGrid.RequiresFocus() || ModeFree.RequiresFocus() {
		t.Error("grid and free should tolerate no focus")
	}
	if !ModeStack.RequiresFocus() {
		t.Error("stack should require focus")
	}
}
