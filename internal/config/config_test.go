package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yourusername/explorer-position/internal/placement"
	"github.com/yourusername/explorer-position/internal/types"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() unexpected error: %v", err)
	}

	opts, err := cfg.PlacementOptions()
	if err != nil {
		t.Fatalf("PlacementOptions() unexpected error: %v", err)
	}
	want := placement.Options{
		PositionUnderCursor: true,
		Margin:              placement.Margin{X: 20, Y: 20},
		UseTaskbarMargin:    true,
		TaskbarMargin:       placement.Margin{X: 120, Y: 20},
	}
	if opts != want {
		t.Errorf("PlacementOptions() = %+v, want %+v", opts, want)
	}

	if cfg.TargetProcess() != "explorer.exe" {
		t.Errorf("TargetProcess() = %q, want %q", cfg.TargetProcess(), "explorer.exe")
	}
	if cfg.TargetClass() != "CabinetWClass" {
		t.Errorf("TargetClass() = %q, want %q", cfg.TargetClass(), "CabinetWClass")
	}
	if !cfg.RequireTitle() {
		t.Error("RequireTitle() = false, want true")
	}
}

func TestEmptyConfigUsesDefaults(t *testing.T) {
	cfg, err := LoadConfigFromBytes([]byte("{}"), "yaml")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() unexpected error: %v", err)
	}

	got, err := cfg.PlacementOptions()
	if err != nil {
		t.Fatalf("PlacementOptions() unexpected error: %v", err)
	}
	want, _ := DefaultConfig().PlacementOptions()
	if got != want {
		t.Errorf("PlacementOptions() = %+v, want %+v", got, want)
	}
	if cfg.LogLevel() != "info" {
		t.Errorf("LogLevel() = %q, want %q", cfg.LogLevel(), "info")
	}
}

func TestLoadConfigFromBytes_YAML(t *testing.T) {
	yamlData := `
settings:
  positionUnderCursor: false
  edgeMargin: 10
  useDifferentMarginInTaskbarArea: false
  taskbarMargin: {x: 200, y: 30}
target:
  process: Explorer.EXE
  class: CabinetWClass
  requireTitle: false
logging:
  level: debug
`
	cfg, err := LoadConfigFromBytes([]byte(yamlData), "yaml")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() unexpected error: %v", err)
	}

	opts, err := cfg.PlacementOptions()
	if err != nil {
		t.Fatalf("PlacementOptions() unexpected error: %v", err)
	}
	want := placement.Options{
		PositionUnderCursor: false,
		Margin:              placement.Margin{X: 10, Y: 10},
		UseTaskbarMargin:    false,
		TaskbarMargin:       placement.Margin{X: 200, Y: 30},
	}
	if opts != want {
		t.Errorf("PlacementOptions() = %+v, want %+v", opts, want)
	}
	if cfg.TargetProcess() != "Explorer.EXE" {
		t.Errorf("TargetProcess() = %q, want %q", cfg.TargetProcess(), "Explorer.EXE")
	}
	if cfg.RequireTitle() {
		t.Error("RequireTitle() = true, want false")
	}
	if cfg.LogLevel() != "debug" {
		t.Errorf("LogLevel() = %q, want %q", cfg.LogLevel(), "debug")
	}
}

func TestLoadConfigFromBytes_JSON(t *testing.T) {
	jsonData := `{
		"settings": {
			"edgeMargin": [30, 40],
			"taskbarMargin": "150px"
		}
	}`
	cfg, err := LoadConfigFromBytes([]byte(jsonData), "json")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() unexpected error: %v", err)
	}

	opts, err := cfg.PlacementOptions()
	if err != nil {
		t.Fatalf("PlacementOptions() unexpected error: %v", err)
	}
	if opts.Margin != (placement.Margin{X: 30, Y: 40}) {
		t.Errorf("Margin = %+v, want {30 40}", opts.Margin)
	}
	if opts.TaskbarMargin != (placement.Margin{X: 150, Y: 150}) {
		t.Errorf("TaskbarMargin = %+v, want {150 150}", opts.TaskbarMargin)
	}
	if !opts.PositionUnderCursor || !opts.UseTaskbarMargin {
		t.Errorf("unset booleans should default to true, got %+v", opts)
	}
}

func TestLoadConfigFromBytes_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{"negative margin", "settings:\n  edgeMargin: -5\n", "yaml"},
		{"negative taskbar margin", "settings:\n  taskbarMargin: [10, -1]\n", "yaml"},
		{"three value margin", "settings:\n  edgeMargin: [1, 2, 3]\n", "yaml"},
		{"unknown margin key", "settings:\n  edgeMargin: {x: 1, z: 2}\n", "yaml"},
		{"fractional margin", `{"settings": {"edgeMargin": 2.5}}`, "json"},
		{"process path", "target:\n  process: C:\\Windows\\explorer.exe\n", "yaml"},
		{"bad log level", "logging:\n  level: loud\n", "yaml"},
		{"malformed yaml", "settings: [", "yaml"},
		{"malformed json", "{", "json"},
		{"unsupported format", "a = 1", "toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfigFromBytes([]byte(tt.data), tt.format); err == nil {
				t.Errorf("LoadConfigFromBytes(%q) expected error, got nil", tt.data)
			}
		})
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(yamlPath, []byte("settings:\n  edgeMargin: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(yamlPath)
	if err != nil {
		t.Fatalf("LoadConfig(%s) unexpected error: %v", yamlPath, err)
	}
	if m, _ := cfg.GetEdgeMargin(); m != (placement.Margin{X: 7, Y: 7}) {
		t.Errorf("GetEdgeMargin() = %+v, want {7 7}", m)
	}

	jsonPath := filepath.Join(dir, "config.json")
	if err := os.WriteFile(jsonPath, []byte(`{"target": {"class": "ExploreWClass"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig(jsonPath)
	if err != nil {
		t.Fatalf("LoadConfig(%s) unexpected error: %v", jsonPath, err)
	}
	if cfg.TargetClass() != "ExploreWClass" {
		t.Errorf("TargetClass() = %q, want %q", cfg.TargetClass(), "ExploreWClass")
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadConfig(missing) expected error, got nil")
	}

	txtPath := filepath.Join(dir, "config.txt")
	if err := os.WriteFile(txtPath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(txtPath); err == nil {
		t.Error("LoadConfig(.txt) expected error, got nil")
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() unexpected error: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() after WriteDefault unexpected error: %v", err)
	}

	got, err := cfg.PlacementOptions()
	if err != nil {
		t.Fatalf("PlacementOptions() unexpected error: %v", err)
	}
	want, _ := DefaultConfig().PlacementOptions()
	if got != want {
		t.Errorf("round-tripped options = %+v, want %+v", got, want)
	}

	if err := WriteDefault(path); err == nil {
		t.Error("WriteDefault() over existing file expected error, got nil")
	}
}

func TestParseMargin(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected placement.Margin
		hasError bool
	}{
		{"int", 20, placement.Margin{X: 20, Y: 20}, false},
		{"float", float64(15), placement.Margin{X: 15, Y: 15}, false},
		{"string", "12", placement.Margin{X: 12, Y: 12}, false},
		{"px string", " 12px ", placement.Margin{X: 12, Y: 12}, false},
		{"array", []interface{}{120, 20}, placement.Margin{X: 120, Y: 20}, false},
		{"json array", []interface{}{float64(120), float64(20)}, placement.Margin{X: 120, Y: 20}, false},
		{"object", map[string]interface{}{"x": 5, "y": 6}, placement.Margin{X: 5, Y: 6}, false},
		{"partial object", map[string]interface{}{"y": 6}, placement.Margin{X: 0, Y: 6}, false},
		{"margin value", placement.Margin{X: 1, Y: 2}, placement.Margin{X: 1, Y: 2}, false},
		{"nil", nil, placement.Margin{}, true},
		{"bool", true, placement.Margin{}, true},
		{"bad string", "wide", placement.Margin{}, true},
		{"one element", []interface{}{1}, placement.Margin{}, true},
		{"bad element", []interface{}{1, "x"}, placement.Margin{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMargin(tt.input)
			if tt.hasError {
				if err == nil {
					t.Errorf("ParseMargin(%v) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseMargin(%v) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.expected {
				t.Errorf("ParseMargin(%v) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		input    string
		expected types.Point
		hasError bool
	}{
		{"960,520", types.Point{X: 960, Y: 520}, false},
		{"-1280, 360", types.Point{X: -1280, Y: 360}, false},
		{"  0,0 ", types.Point{}, false},
		{"960", types.Point{}, true},
		{"a,b", types.Point{}, true},
		{"1,2,3", types.Point{}, true},
		{"99999999999,1", types.Point{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePoint(tt.input)
			if tt.hasError {
				if err == nil {
					t.Errorf("ParsePoint(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("ParsePoint(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.expected {
				t.Errorf("ParsePoint(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	w, h, err := ParseSize("800x600")
	if err != nil || w != 800 || h != 600 {
		t.Errorf("ParseSize(800x600) = (%d, %d, %v), want (800, 600, nil)", w, h, err)
	}
	w, h, err = ParseSize("1024 X 768")
	if err != nil || w != 1024 || h != 768 {
		t.Errorf("ParseSize(1024 X 768) = (%d, %d, %v), want (1024, 768, nil)", w, h, err)
	}
	for _, bad := range []string{"", "800", "-800x600", "800x", "wide"} {
		if _, _, err := ParseSize(bad); err == nil {
			t.Errorf("ParseSize(%q) expected error, got nil", bad)
		}
	}
}

func TestParseRect(t *testing.T) {
	got, err := ParseRect("100, 100, 900, 700")
	if err != nil {
		t.Fatalf("ParseRect() unexpected error: %v", err)
	}
	want := types.Rect{Left: 100, Top: 100, Right: 900, Bottom: 700}
	if got != want {
		t.Errorf("ParseRect() = %v, want %v", got, want)
	}

	for _, bad := range []string{"1,2,3", "900,100,100,700", "100,700,900,100", "a,b,c,d"} {
		if _, err := ParseRect(bad); err == nil {
			t.Errorf("ParseRect(%q) expected error, got nil", bad)
		}
	}
}
