package cmd

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

// Helper function to create a temporary json file
func createTempJSON(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "series.json")
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return file
}

func equalSeries(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			return false
		}
	}
	return true
}

func TestParseFlows(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []float64
	}{
		{"investment series", "-1000,300,420,680", []float64{-1000, 300, 420, 680}},
		{"decimals", "-1000.50,300.25", []float64{-1000.50, 300.25}},
		{"spaces", " -1000 , 300 ", []float64{-1000, 300}},
		{"single flow", "42", []float64{42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlows(tt.input)
			if err != nil {
				t.Fatalf("parseFlows(%q) = %v", tt.input, err)
			}
			if !equalSeries(got, tt.want) {
				t.Errorf("parseFlows(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFlows_Invalid(t *testing.T) {
	for _, input := range []string{"", "1,two,3", "1,,3", "1;2"} {
		if _, err := parseFlows(input); err == nil {
			t.Errorf("parseFlows(%q) = nil error, want an error", input)
		}
	}
}

func TestParseReturns(t *testing.T) {
	got, err := parseReturns("0.02, 0.03,-0.01")
	if err != nil {
		t.Fatalf("parseReturns() = %v", err)
	}
	if want := []float64{0.02, 0.03, -0.01}; !equalSeries(got, want) {
		t.Errorf("parseReturns() = %v, want %v", got, want)
	}

	if _, err := parseReturns("0.02,2%"); err == nil {
		t.Error("parseReturns() on a percent sign = nil error, want an error")
	}
}

func TestLoadSeries(t *testing.T) {
	tests := []struct {
		name    string
		content string
		path    string
		want    []float64
	}{
		{"root array", `[-1000, 300, 420, 680]`, "$", []float64{-1000, 300, 420, 680}},
		{"named array", `{"flows": [-1000, 300, 420, 680]}`, "$.flows", []float64{-1000, 300, 420, 680}},
		{"nested array", `{"projections": {"flows": [1, 2]}}`, "$.projections.flows", []float64{1, 2}},
		{"string elements", `["-1000", "300.5", 420]`, "$", []float64{-1000, 300.5, 420}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := createTempJSON(t, tt.content)
			got, err := loadSeries(file, tt.path)
			if err != nil {
				t.Fatalf("loadSeries(%q) = %v", tt.path, err)
			}
			if !equalSeries(got, tt.want) {
				t.Errorf("loadSeries(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoadSeries_Errors(t *testing.T) {
	if _, err := loadSeries(filepath.Join(t.TempDir(), "missing.json"), "$"); err == nil {
		t.Error("loadSeries() on a missing file = nil error, want an error")
	}

	tests := []struct {
		name    string
		content string
		path    string
	}{
		{"invalid json", `{not json`, "$"},
		{"path misses", `{"flows": [1, 2]}`, "$.returns"},
		{"not an array", `{"flows": 42}`, "$.flows"},
		{"invalid string element", `["1.5", "high"]`, "$"},
		{"object element", `[1, {"v": 2}]`, "$"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := createTempJSON(t, tt.content)
			if _, err := loadSeries(file, tt.path); err == nil {
				t.Errorf("loadSeries(%q) on %s = nil error, want an error", tt.path, tt.content)
			}
		})
	}
}

func TestSeriesFlags(t *testing.T) {
	file := createTempJSON(t, `{"flows": [1, 2, 3]}`)

	t.Run("inline", func(t *testing.T) {
		s := seriesFlags{name: "flows", inline: "4,5"}
		got, err := s.series(parseFlows)
		if err != nil {
			t.Fatalf("series() = %v", err)
		}
		if want := []float64{4, 5}; !equalSeries(got, want) {
			t.Errorf("series() = %v, want %v", got, want)
		}
	})

	t.Run("from file", func(t *testing.T) {
		s := seriesFlags{name: "flows", file: file, path: "$.flows"}
		got, err := s.series(parseFlows)
		if err != nil {
			t.Fatalf("series() = %v", err)
		}
		if want := []float64{1, 2, 3}; !equalSeries(got, want) {
			t.Errorf("series() = %v, want %v", got, want)
		}
	})

	t.Run("exclusive", func(t *testing.T) {
		s := seriesFlags{name: "flows", inline: "4,5", file: file, path: "$"}
		if _, err := s.series(parseFlows); err == nil {
			t.Error("series() with both sources = nil error, want an error")
		}
	})

	t.Run("missing", func(t *testing.T) {
		s := seriesFlags{name: "flows"}
		if _, err := s.series(parseFlows); err == nil {
			t.Error("series() with no source = nil error, want an error")
		}
	})
}
