package output

import (
	"strings"
	"testing"
)

func TestVisualLen(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain text", "hello", 5},
		{"empty", "", 0},
		{"single sequence", "\x1b[31mred\x1b[0m", 3},
		{"multiple sequences", "\x1b[1m\x1b[34mblue bold\x1b[0m", 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := visualLen(tc.input); got != tc.want {
				t.Errorf("visualLen(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  int // expected visible length of output
	}{
		{"needs padding", "hi", 10, 10},
		{"exact width", "hello", 5, 5},
		{"over width", "toolong", 3, 7}, // no truncation
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pad(tc.input, tc.width)
			if visualLen(got) != tc.want {
				t.Errorf("pad(%q, %d) visible len = %d, want %d", tc.input, tc.width, visualLen(got), tc.want)
			}
		})
	}
}

func TestTable_Render(t *testing.T) {
	// Disable color so we get predictable output.
	SetNoColor(true)

	tbl := NewTable("Repository", "Score")
	tbl.AddRow("octocat/hello", "37")
	tbl.AddRow("octocat/world", "77")

	out := tbl.Render()

	for _, want := range []string{"Repository", "Score", "octocat/hello", "octocat/world", "─"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}

	// Header + separator + 2 data rows = 4 lines.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	tbl := NewTable()
	if out := tbl.Render(); out != "" {
		t.Errorf("expected empty output for empty table, got %q", out)
	}
}

func TestScoreBar_Bounds(t *testing.T) {
	SetNoColor(true)

	for _, score := range []int{0, 37, 100} {
		bar := ScoreBar(score, 10)
		if !strings.Contains(bar, "/100") {
			t.Errorf("score %d: expected score suffix in %q", score, bar)
		}
	}
	if !strings.Contains(ScoreBar(100, 10), strings.Repeat("█", 10)) {
		t.Error("full score should fill the bar")
	}
	if strings.Contains(ScoreBar(0, 10), "█") {
		t.Error("zero score should not fill any cells")
	}
}
