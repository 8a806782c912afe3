package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kk-code-lab/rgal/internal/config"
	"github.com/kk-code-lab/rgal/internal/search"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, opts cliOptions)
	}{
		{
			name: "catalog only",
			args: []string{"catalog.json"},
			check: func(t *testing.T, opts cliOptions) {
				if opts.catalogPath != "catalog.json" {
					t.Fatalf("catalogPath = %q", opts.catalogPath)
				}
			},
		},
		{
			name: "stdin with flags",
			args: []string{"--page-size", "24", "--scope=category", "-"},
			check: func(t *testing.T, opts cliOptions) {
				if opts.catalogPath != "-" || opts.pageSize != 24 || opts.scope != "category" {
					t.Fatalf("unexpected options %+v", opts)
				}
			},
		},
		{
			name: "help needs no catalog",
			args: []string{"-h"},
			check: func(t *testing.T, opts cliOptions) {
				if !opts.showHelp {
					t.Fatal("expected help")
				}
			},
		},
		{name: "missing catalog", args: nil, wantErr: true},
		{name: "extra argument", args: []string{"a.json", "b.json"}, wantErr: true},
		{name: "unknown flag", args: []string{"--bogus", "a.json"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, _, err := parseArgs(tt.args, io.Discard)
			if tt.wantErr {
				if !errors.Is(err, errUsage) {
					t.Fatalf("expected usage error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArgs failed: %v", err)
			}
			tt.check(t, opts)
		})
	}
}

func TestApplyFlagsOnlyOverridesChangedFlags(t *testing.T) {
	opts, fs, err := parseArgs([]string{"--theme", "dark", "cat.json"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	base := config.Default()
	base.PageSize = 30
	base.DefaultScope = search.ScopeCategory

	cfg := applyFlags(base, opts, fs)
	if cfg.Theme != "dark" {
		t.Fatalf("expected theme override, got %q", cfg.Theme)
	}
	if cfg.PageSize != 30 || cfg.DefaultScope != search.ScopeCategory {
		t.Fatalf("unset flags must keep config values, got %+v", cfg)
	}
}

func TestLoadConfigRejectsInvalidFlag(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("page_size: 12\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts, fs, err := parseArgs([]string{"--config", cfgPath, "cat.json"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	cfg, err := loadConfig(opts, fs)
	if err != nil || cfg.PageSize != 12 {
		t.Fatalf("loadConfig = %+v, %v", cfg, err)
	}

	opts, fs, _ = parseArgs([]string{"--config", cfgPath, "--scope", "nowhere", "cat.json"}, io.Discard)
	if _, err := loadConfig(opts, fs); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error for bad scope, got %v", err)
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--help"}, &out, io.Discard); err != nil {
		t.Fatalf("run --help failed: %v", err)
	}
	if !strings.Contains(out.String(), "USAGE:") || !strings.Contains(out.String(), "--page-size") {
		t.Fatalf("unexpected help output:\n%s", out.String())
	}

	out.Reset()
	if err := run([]string{"--version"}, &out, io.Discard); err != nil {
		t.Fatalf("run --version failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "rgal ") {
		t.Fatalf("unexpected version output %q", out.String())
	}
}

func TestRunFailsOnBadCatalogBeforeTerminalInit(t *testing.T) {
	dir := t.TempDir()
	catPath := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(catPath, []byte(`[{"group": ""}]`), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("theme: dark\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	err := run([]string{"--config", cfgPath, catPath}, io.Discard, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "no name") {
		t.Fatalf("expected invalid catalog error, got %v", err)
	}
}
