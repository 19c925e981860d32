package comicmeta_test

import (
	"testing"

	"longbox/internal/comicmeta"
)

func TestNormalizeRoleMapsSynonyms(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"writer", comicmeta.RoleWriter},
		{"Scripter", comicmeta.RoleWriter},
		{"PLOT/SCRIPT", comicmeta.RoleWriter},
		{"penciler", comicmeta.RolePenciller},
		{"artist", comicmeta.RolePenciller},
		{"colourist", comicmeta.RoleColorist},
		{"Cover Artist", comicmeta.RoleCover},
		{"editing", comicmeta.RoleEditor},
		{"translator", comicmeta.RoleTranslator},
	}
	for _, tc := range cases {
		if got := comicmeta.NormalizeRole(tc.raw); got != tc.want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeRoleKeepsExtendedRoles(t *testing.T) {
	if got := comicmeta.NormalizeRole("Executive Producer"); got != "Executive Producer" {
		t.Fatalf("extended role changed: %q", got)
	}
	if got := comicmeta.NormalizeRole("assistant editor"); got != "assistant editor" {
		t.Fatalf("extended role changed: %q", got)
	}
}

func TestNormalizeRoleFallsBackToOther(t *testing.T) {
	for _, raw := range []string{"", "   ", "caterer", "best boy"} {
		if got := comicmeta.NormalizeRole(raw); got != comicmeta.RoleOther {
			t.Errorf("NormalizeRole(%q) = %q, want %q", raw, got, comicmeta.RoleOther)
		}
	}
}

func TestSupportsRole(t *testing.T) {
	for _, raw := range []string{"writer", "Artist", "other", "Publisher"} {
		if !comicmeta.SupportsRole(raw) {
			t.Errorf("SupportsRole(%q) = false, want true", raw)
		}
	}
	for _, raw := range []string{"", "caterer"} {
		if comicmeta.SupportsRole(raw) {
			t.Errorf("SupportsRole(%q) = true, want false", raw)
		}
	}
}
