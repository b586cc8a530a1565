package render

import (
	"testing"

	"github.com/sprillex/hahealth/internal/model"
)

func TestResolveThemeExplicitPreferences(t *testing.T) {
	t.Parallel()
	dark := func() bool { return true }
	if got := ResolveTheme(model.ThemeLight, dark); got != model.ThemeLight {
		t.Fatalf("explicit light ignored: %q", got)
	}
	if got := ResolveTheme(model.ThemeDark, func() bool { return false }); got != model.ThemeDark {
		t.Fatalf("explicit dark ignored: %q", got)
	}
}

func TestResolveThemeSystemFollowsPlatform(t *testing.T) {
	t.Parallel()
	if got := ResolveTheme(model.ThemeSystem, func() bool { return true }); got != model.ThemeDark {
		t.Fatalf("system/dark: got %q", got)
	}
	if got := ResolveTheme(model.ThemeSystem, func() bool { return false }); got != model.ThemeLight {
		t.Fatalf("system/light: got %q", got)
	}
	// Unset preference defaults to system behavior.
	if got := ResolveTheme("", func() bool { return true }); got != model.ThemeDark {
		t.Fatalf("default should follow system: got %q", got)
	}
}

func TestSystemPrefersDarkParsesColorFgBg(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	if !SystemPrefersDark() {
		t.Fatal("bg 0 should read as dark")
	}
	t.Setenv("COLORFGBG", "0;15")
	if SystemPrefersDark() {
		t.Fatal("bg 15 should read as light")
	}
	t.Setenv("COLORFGBG", "")
	if SystemPrefersDark() {
		t.Fatal("unset should default to light")
	}
}

func TestValidTheme(t *testing.T) {
	t.Parallel()
	for _, v := range []string{model.ThemeLight, model.ThemeDark, model.ThemeSystem} {
		if !ValidTheme(v) {
			t.Fatalf("%q should be valid", v)
		}
	}
	if ValidTheme("sepia") {
		t.Fatal("unknown theme accepted")
	}
}
