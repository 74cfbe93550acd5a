package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nightfox" || names[1] != "Kanagawa" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox (wraps)", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name); got.Name != name {
			t.Errorf("GetTheme(%q).Name = %q", name, got.Name)
		}
	}

	if got := GetTheme("Unknown"); got.Name != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got.Name)
	}
}

func TestThemes_HaveCompletePalettes(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		fields := map[string]string{
			"Background": th.Background,
			"Text":       th.Text,
			"Muted":      th.Muted,
			"Accent":     th.Accent,
			"Warning":    th.Warning,
			"Danger":     th.Danger,
		}
		for field, value := range fields {
			if value == "" {
				t.Errorf("theme %s: %s color is empty", name, field)
			}
		}
	}
}
