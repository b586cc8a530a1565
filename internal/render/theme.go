package render

import (
	"os"
	"strings"

	"github.com/sprillex/hahealth/internal/model"
)

// ResolveTheme maps the tri-state preference to the concrete palette.
// SYSTEM consults the platform preference via systemDark; the default
// preference is SYSTEM.
func ResolveTheme(pref string, systemDark func() bool) string {
	switch pref {
	case model.ThemeLight:
		return model.ThemeLight
	case model.ThemeDark:
		return model.ThemeDark
	default:
		if systemDark != nil && systemDark() {
			return model.ThemeDark
		}
		return model.ThemeLight
	}
}

// SystemPrefersDark inspects COLORFGBG, the closest terminal counterpart
// to the browser's color-scheme media query. Format is "fg;bg"; a low
// background color number means a dark background.
func SystemPrefersDark() bool {
	v := os.Getenv("COLORFGBG")
	if v == "" {
		return false
	}
	parts := strings.Split(v, ";")
	bg := parts[len(parts)-1]
	switch bg {
	case "0", "1", "2", "3", "4", "5", "6", "8":
		return true
	}
	return false
}

// ValidTheme reports whether pref is one of the accepted preferences.
func ValidTheme(pref string) bool {
	switch pref {
	case model.ThemeLight, model.ThemeDark, model.ThemeSystem:
		return true
	}
	return false
}
