package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/matsen/authorlist/internal/config"
)

// setConfigHome points XDG_CONFIG_HOME at dir for one test. The xdg
// package caches its paths at init, so it is reloaded on change and
// again on cleanup.
func setConfigHome(t *testing.T, dir string) {
	t.Helper()
	orig := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(func() {
		os.Setenv("XDG_CONFIG_HOME", orig)
		xdg.Reload()
	})
}

func TestAltFlagsPaired(t *testing.T) {
	tests := []struct {
		name         string
		authors      string
		affiliations string
		want         bool
	}{
		{"both empty", "", "", true},
		{"both set", "alt.tex", "affil.tex", true},
		{"authors only", "alt.tex", "", false},
		{"affiliations only", "", "affil.tex", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := altFlagsPaired(tt.authors, tt.affiliations); got != tt.want {
				t.Errorf("altFlagsPaired(%q, %q) = %v, want %v", tt.authors, tt.affiliations, got, tt.want)
			}
		})
	}
}

func TestResolveUsersCSV(t *testing.T) {
	setConfigHome(t, t.TempDir())
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	orig := usersCSVFile
	t.Cleanup(func() { usersCSVFile = orig })

	usersCSVFile = "Flag.csv"
	t.Setenv("AUTHORLIST_USERS_CSV", "Env.csv")
	if got := resolveUsersCSV(); got != "Flag.csv" {
		t.Errorf("resolveUsersCSV() = %q, want %q", got, "Flag.csv")
	}

	usersCSVFile = ""
	if got := resolveUsersCSV(); got != "Env.csv" {
		t.Errorf("resolveUsersCSV() = %q, want %q", got, "Env.csv")
	}

	t.Setenv("AUTHORLIST_USERS_CSV", "")
	if got := resolveUsersCSV(); got != defaultUsersCSV {
		t.Errorf("resolveUsersCSV() = %q, want %q", got, defaultUsersCSV)
	}
}

func TestResolveFuzzyThreshold(t *testing.T) {
	configHome := t.TempDir()
	setConfigHome(t, configHome)
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	dir := filepath.Join(configHome, "authorlist")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("fuzzy_threshold: 80\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	orig := fuzzyThreshold
	t.Cleanup(func() { fuzzyThreshold = orig })

	fuzzyThreshold = 90
	t.Setenv("AUTHORLIST_FUZZY_THRESHOLD", "85")
	if got := resolveFuzzyThreshold(); got != 90 {
		t.Errorf("resolveFuzzyThreshold() = %d, want 90", got)
	}

	fuzzyThreshold = 0
	if got := resolveFuzzyThreshold(); got != 85 {
		t.Errorf("resolveFuzzyThreshold() = %d, want 85", got)
	}

	t.Setenv("AUTHORLIST_FUZZY_THRESHOLD", "")
	if got := resolveFuzzyThreshold(); got != 80 {
		t.Errorf("resolveFuzzyThreshold() = %d, want 80", got)
	}
}

func TestResolveFuzzyThreshold_Default(t *testing.T) {
	setConfigHome(t, t.TempDir())
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	orig := fuzzyThreshold
	t.Cleanup(func() { fuzzyThreshold = orig })
	fuzzyThreshold = 0
	t.Setenv("AUTHORLIST_FUZZY_THRESHOLD", "")

	if got := resolveFuzzyThreshold(); got != defaultFuzzyThreshold {
		t.Errorf("resolveFuzzyThreshold() = %d, want %d", got, defaultFuzzyThreshold)
	}
}
