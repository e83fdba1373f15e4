package hostinfo

import (
	"strings"
	"testing"
)

func TestFormatFeatures(t *testing.T) {
	tests := []struct {
		name     string
		features map[string]bool
		want     string
	}{
		{
			name:     "mixed groups",
			features: map[string]bool{"avx": true, "sse2": false, "fma": true},
			want:     "+avx,+fma,-sse2",
		},
		{
			name:     "all enabled",
			features: map[string]bool{"neon": true, "asimd": true},
			want:     "+asimd,+neon",
		},
		{
			name:     "all disabled",
			features: map[string]bool{"avx512f": false, "avx512vl": false},
			want:     "-avx512f,-avx512vl",
		},
		{
			name:     "single",
			features: map[string]bool{"fma": true},
			want:     "+fma",
		},
		{
			name:     "empty",
			features: map[string]bool{},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFeatures(tt.features); got != tt.want {
				t.Errorf("FormatFeatures(%v) = %q, want %q", tt.features, got, tt.want)
			}
		})
	}
}

func TestFormatFeaturesGrouping(t *testing.T) {
	features := map[string]bool{
		"a": false, "b": true, "c": false, "d": true, "e": true,
	}
	s := FormatFeatures(features)
	if strings.HasPrefix(s, ",") || strings.HasSuffix(s, ",") {
		t.Fatalf("leading or trailing separator in %q", s)
	}

	sawDisabled := false
	for _, tok := range strings.Split(s, ",") {
		switch tok[0] {
		case '+':
			if sawDisabled {
				t.Fatalf("enabled token %q after a disabled token in %q", tok, s)
			}
		case '-':
			sawDisabled = true
		default:
			t.Fatalf("token %q has no sign in %q", tok, s)
		}
	}
}

func TestFeatureStringUsesDetectedSet(t *testing.T) {
	s := FeatureString()
	if s == "" {
		t.Skip("no features detected on this host")
	}
	for _, tok := range strings.Split(s, ",") {
		if !strings.HasPrefix(tok, "+") {
			t.Errorf("detected feature %q is not an enabled token", tok)
		}
		if tok != strings.ToLower(tok) {
			t.Errorf("feature token %q is not lowercase", tok)
		}
	}
}

func TestCPUNameNonEmpty(t *testing.T) {
	if CPUName() == "" {
		t.Error("CPUName returned an empty string")
	}
}

func TestJITNameFixed(t *testing.T) {
	if JITName() != "TemplateJIT" {
		t.Errorf("JITName = %q, want %q", JITName(), "TemplateJIT")
	}
}

func TestCollect(t *testing.T) {
	info := Collect()
	if info.CPU == "" {
		t.Error("snapshot has no CPU name")
	}
	if info.Backend != JITName() {
		t.Errorf("snapshot backend = %q, want %q", info.Backend, JITName())
	}
	if info.Cores < 0 || info.Threads < 0 {
		t.Errorf("negative core counts: %d physical, %d logical", info.Cores, info.Threads)
	}
}
