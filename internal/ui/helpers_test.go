package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/hangar/internal/logbook"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"  padded  ", 10, "padded"},
		{"abcdefghij", 6, "abc..."},
		{"abcdef", 2, "ab"},
		{"unlimited", 0, "unlimited"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestPadding(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padLeft("ab", 4); got != "  ab" {
		t.Fatalf("padLeft = %q", got)
	}
	if got := padLeft("abcdef", 4); got != "abcdef" {
		t.Fatalf("padLeft overflow = %q", got)
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := formatMinutes(12.5); got != "12.5 min" {
		t.Fatalf("formatMinutes(12.5) = %q", got)
	}
	if got := formatMinutes(90); got != "1h 30m" {
		t.Fatalf("formatMinutes(90) = %q", got)
	}
}

func TestColumnWidths(t *testing.T) {
	got := columnWidths([]tableColumn{{width: 10}, {}, {}}, 52)
	// 52 - 10 fixed - 2 separators = 40 split over two flexible columns
	if got[0] != 10 || got[1] != 20 || got[2] != 20 {
		t.Fatalf("columnWidths = %v", got)
	}
	narrow := columnWidths([]tableColumn{{width: 10}, {}}, 12)
	if narrow[1] != 8 {
		t.Fatalf("narrow flexible width = %d, want 8", narrow[1])
	}
}

func TestParseFlightInput(t *testing.T) {
	batteries := []logbook.Battery{
		{ID: "b1", Name: "Gaoneng", Number: "B1"},
		{ID: "b2", Name: "Spare", Number: "B2"},
	}

	in, err := parseFlightInput("6,5 b2", batteries)
	if err != nil {
		t.Fatalf("parseFlightInput: %v", err)
	}
	if in.Duration != 6.5 || in.BatteryID != "b2" {
		t.Fatalf("parseFlightInput = %+v", in)
	}

	in, err = parseFlightInput("4 spare", batteries)
	if err != nil || in.BatteryID != "b2" {
		t.Fatalf("battery by name = %+v, %v", in, err)
	}

	in, err = parseFlightInput("7", batteries)
	if err != nil || in.BatteryID != "" || in.Duration != 7 {
		t.Fatalf("no battery = %+v, %v", in, err)
	}

	if _, err := parseFlightInput("  ", batteries); !errors.Is(err, errNoDuration) {
		t.Fatalf("blank input err = %v, want errNoDuration", err)
	}
	if _, err := parseFlightInput("abc", batteries); !errors.Is(err, errNoDuration) {
		t.Fatalf("bad duration err = %v, want errNoDuration", err)
	}
	if _, err := parseFlightInput("5 B9", batteries); err == nil {
		t.Fatalf("unknown battery accepted")
	}
}

func TestNextPreset(t *testing.T) {
	presets := logbook.ThemePresets()
	if got := nextPreset(presets[0].Color); got != presets[1].Color {
		t.Fatalf("nextPreset = %q, want %q", got, presets[1].Color)
	}
	if got := nextPreset(presets[len(presets)-1].Color); got != presets[0].Color {
		t.Fatalf("nextPreset wrap = %q, want %q", got, presets[0].Color)
	}
	if got := nextPreset("#000000"); got != presets[0].Color {
		t.Fatalf("nextPreset unknown = %q, want first preset", got)
	}
}

func TestChipBar(t *testing.T) {
	bar := newChipBar("#192330", 2)
	bar.add("TREX", lipgloss.NewStyle().Bold(true))
	bar.add("", lipgloss.NewStyle())
	bar.add("3 flights", lipgloss.NewStyle())
	bar.addRendered("")

	got := bar.String()
	if len(bar.chips) != 2 {
		t.Fatalf("chips = %d, want 2 (empty segments skipped)", len(bar.chips))
	}
	if w := lipgloss.Width(got); w != len("TREX  3 flights") {
		t.Fatalf("width = %d, want %d", w, len("TREX  3 flights"))
	}
	if !strings.Contains(got, "TREX") || !strings.Contains(got, "3 flights") {
		t.Fatalf("bar = %q, missing a chip", got)
	}
}
