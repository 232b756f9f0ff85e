package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var envKeys = []string{"CATALOG_DIR", "COMPARISONS_DIR", "DATABASE_PATH", "LOG_LEVEL", "SITE_URL", "STRICT_FILTERS"}

// unsetenv removes key for the duration of the test. A variable set to the
// empty string still counts as present for envconfig.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name: "defaults applied",
			env:  map[string]string{},
			want: &Config{
				CatalogDir:     "./content/services",
				ComparisonsDir: "./content/comparisons",
				DatabasePath:   "./data/catalog.db",
				LogLevel:       "info",
				SiteURL:        "https://blum228.github.io/AIhub",
				StrictFilters:  false,
			},
		},
		{
			name: "all values set",
			env: map[string]string{
				"CATALOG_DIR":     "/srv/services",
				"COMPARISONS_DIR": "/srv/comparisons",
				"DATABASE_PATH":   "/tmp/catalog.db",
				"LOG_LEVEL":       "debug",
				"SITE_URL":        "https://hub.example",
				"STRICT_FILTERS":  "true",
			},
			want: &Config{
				CatalogDir:     "/srv/services",
				ComparisonsDir: "/srv/comparisons",
				DatabasePath:   "/tmp/catalog.db",
				LogLevel:       "debug",
				SiteURL:        "https://hub.example",
				StrictFilters:  true,
			},
		},
		{
			name:    "invalid bool",
			env:     map[string]string{"STRICT_FILTERS": "sometimes"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				unsetenv(t, key)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
