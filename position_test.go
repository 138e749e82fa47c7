package lineseek

import "testing"

func TestParsePosition(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Position
	}{
		{"", Start()},
		{"start", Start()},
		{"end", End()},
		{"END", Start()},
		{"0", Line(0)},
		{"1", Line(1)},
		{"42", Line(42)},
		{"-3", Start()},
		{"3.5", Start()},
		{" 3", Start()},
		{"+5", Line(5)},
		{"+0", Line(0)},
		{"++5", Start()},
		{"+", Start()},
		{"+end", Start()},
		{"99999999999999999999999", Line(maxInt)},
		{"+99999999999999999999999", Line(maxInt)},
	} {
		if got := ParsePosition(test.in); got != test.want {
			t.Errorf("ParsePosition(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestParseMaxPosition(t *testing.T) {
	if got := ParseMaxPosition(""); got != nil {
		t.Errorf("ParseMaxPosition(\"\") = %v, want nil", *got)
	}
	if got := ParseMaxPosition("end"); got == nil || *got != End() {
		t.Errorf("ParseMaxPosition(\"end\") = %v, want end", got)
	}
	if got := ParseMaxPosition("bogus"); got == nil || *got != Start() {
		t.Errorf("ParseMaxPosition(\"bogus\") = %v, want start", got)
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{
		"":         Forward,
		"forward":  Forward,
		"backward": Backward,
		"Backward": Forward,
		"back":     Forward,
	} {
		if got := ParseDirection(in); got != want {
			t.Errorf("ParseDirection(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestZeroValues(t *testing.T) {
	var p Position
	if !p.IsStart() {
		t.Errorf("zero Position is %v, want start", p)
	}
	var d Direction
	if d != Forward {
		t.Errorf("zero Direction is %v, want forward", d)
	}
}

func TestPositionResolve(t *testing.T) {
	for _, test := range []struct {
		pos   Position
		first int
		want  int
	}{
		{Start(), 1, 1},
		{Start(), 0, 0},
		{Line(3), 1, 3},
		{End(), 0, 7},
	} {
		if got := test.pos.resolve(test.first, 7); got != test.want {
			t.Errorf("%v.resolve(%d, 7) = %d, want %d", test.pos, test.first, got, test.want)
		}
	}
}
