package log

import "testing"

func TestLevelFromInt(t *testing.T) {
	tests := []struct {
		in   int
		want Level
	}{
		{in: -1, want: Off},
		{in: 0, want: Off},
		{in: 1, want: Basic},
		{in: 2, want: Detailed},
		{in: 3, want: Trace},
		{in: 4, want: Wire},
		{in: 9, want: Wire},
	}

	for _, tc := range tests {
		if got := LevelFromInt(tc.in); got != tc.want {
			t.Fatalf("LevelFromInt(%d) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestEnabled(t *testing.T) {
	defer SetLevel(Off)

	SetLevel(Detailed)
	if !Enabled(Basic) || !Enabled(Detailed) {
		t.Fatal("expected Basic and Detailed to be enabled at Detailed")
	}
	if Enabled(Trace) {
		t.Fatal("Trace should not be enabled at Detailed")
	}

	SetLevel(Off)
	if Enabled(Basic) {
		t.Fatal("nothing should be enabled at Off")
	}
}
