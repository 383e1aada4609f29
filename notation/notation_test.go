package notation

import (
	"testing"

	"github.com/reversibot/reversibot/reversi"
)

const startpos = "x8/x8/x8/x3,2,1,x3/x3,1,2,x3/x8/x8/x8 1"

func TestParseStart(t *testing.T) {
	b, err := ParseBoard(startpos)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !b.Equal(reversi.New()) {
		t.Fatalf("parsed %q != standard opening", startpos)
	}
	if got := FormatBoard(reversi.New()); got != startpos {
		t.Fatalf("format: got %q want %q", got, startpos)
	}
}

func TestBoardRoundTrip(t *testing.T) {
	cases := []string{
		"x8/x8/x8/x8/x8/x8/x8/x8 2",
		"1,2,1,2,1,2,1,2/x8/x8/x3,2,1,x3/x3,1,2,x3/x8/x8/x7,2 2",
		"1,x6,2/x8/x8/x3,1,1,x3/x3,1,1,x3/x8/x8/2,x6,1 -",
	}
	for i, tc := range cases {
		b, err := ParseBoard(tc)
		if err != nil {
			t.Errorf("%d: parse %q: %v", i, tc, err)
			continue
		}
		if got := FormatBoard(b); got != tc {
			t.Errorf("%d: round trip %q -> %q", i, tc, got)
		}
	}
}

func TestParseBoardErrors(t *testing.T) {
	cases := []string{
		"",
		"x8/x8/x8/x8/x8/x8/x8/x8",
		"x8/x8/x8/x8/x8/x8/x8/x8 3",
		"x8/x8/x8/x8/x8/x8/x8 1",
		"x8/x8/x8/x8/x8/x8/x8/x9 1",
		"x8/x8/x8/x8/x8/x8/x8/x7,3 1",
		"x8/x8/x8/x8/x8/x8/x8/xz 1",
	}
	for i, tc := range cases {
		if _, err := ParseBoard(tc); err == nil {
			t.Errorf("%d: parse %q: expected error", i, tc)
		}
	}
}

func TestMoves(t *testing.T) {
	cases := []struct {
		in  string
		out reversi.Move
	}{
		{"a1", reversi.Move{Row: 0, Col: 0}},
		{"d4", reversi.Move{Row: 3, Col: 3}},
		{"h8", reversi.Move{Row: 7, Col: 7}},
		{"c5", reversi.Move{Row: 4, Col: 2}},
		{"pass", reversi.Pass},
	}
	for _, tc := range cases {
		m, err := ParseMove(tc.in)
		if err != nil {
			t.Errorf("parse %q: %v", tc.in, err)
			continue
		}
		if m != tc.out {
			t.Errorf("parse %q: got %v want %v", tc.in, m, tc.out)
		}
		if f := FormatMove(m); f != tc.in {
			t.Errorf("format %v: got %q want %q", m, f, tc.in)
		}
	}
	for _, bad := range []string{"", "i1", "a9", "a0", "d44", "44"} {
		if _, err := ParseMove(bad); err == nil {
			t.Errorf("parse %q: expected error", bad)
		}
	}
}

func TestParseMoves(t *testing.T) {
	ms, err := ParseMoves(" d3  c5 pass\tf6 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := FormatMoves(ms); got != "d3 c5 pass f6" {
		t.Errorf("round trip: got %q", got)
	}
	if ms, err := ParseMoves(""); err != nil || len(ms) != 0 {
		t.Errorf("empty: %v %v", ms, err)
	}
	if _, err := ParseMoves("d3 z9"); err == nil {
		t.Error("expected error for z9")
	}
}
