package ui

import "testing"

func TestDarken(t *testing.T) {
	if got := darken("#804020", 0.25); got != "#603018" {
		t.Fatalf("darken = %q, want %q", got, "#603018")
	}
	if got := darken("not-a-color", 0.25); got != "not-a-color" {
		t.Fatalf("darken invalid = %q, want input unchanged", got)
	}
}

func TestWithAccent(t *testing.T) {
	base := GetTheme("Nightfox")

	th := base.WithAccent("#c0501a")
	if th.Accent != "#c0501a" {
		t.Fatalf("Accent = %q, want %q", th.Accent, "#c0501a")
	}
	if th.AccentDark != darken("#c0501a", accentDarken) {
		t.Fatalf("AccentDark = %q, want darkened accent", th.AccentDark)
	}

	if got := base.WithAccent("bogus"); got.Accent != base.Accent {
		t.Fatalf("WithAccent invalid changed accent to %q", got.Accent)
	}
}

func TestGetTheme_Fallback(t *testing.T) {
	if got := GetTheme("missing").Name; got != "Nightfox" {
		t.Fatalf("GetTheme fallback = %q, want Nightfox", got)
	}
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got)
		}
	}
}

func TestValidColor(t *testing.T) {
	for _, c := range []string{"#fff", "#c0501a", " #2A7B50 "} {
		if !validColor(c) {
			t.Fatalf("validColor(%q) = false, want true", c)
		}
	}
	for _, c := range []string{"", "c0501a", "#12345", "red"} {
		if validColor(c) {
			t.Fatalf("validColor(%q) = true, want false", c)
		}
	}
}
