package hostinfo

import (
	"sort"
	"strings"

	"github.com/klauspost/cpuid/v2"

	"github.com/quill-lang/native-bridge/emit"
)

// CPUName returns the marketing name of the host CPU, falling back to
// the vendor string on platforms that expose no brand.
func CPUName() string {
	if name := strings.TrimSpace(cpuid.CPU.BrandName); name != "" {
		return name
	}
	if vendor := strings.TrimSpace(cpuid.CPU.VendorString); vendor != "" {
		return vendor
	}
	return "unknown"
}

// JITName returns the fixed identifier of the code-generation backend.
func JITName() string {
	return emit.BackendName
}

// Features returns the detected host feature set, keyed by lowercase
// feature name. Detection only reports what the CPU has, so every
// entry is true; disabled entries appear when a caller masks features
// off before formatting.
func Features() map[string]bool {
	set := cpuid.CPU.FeatureSet()
	features := make(map[string]bool, len(set))
	for _, name := range set {
		features[strings.ToLower(name)] = true
	}
	return features
}

// FormatFeatures renders a feature set as a comma-joined token list,
// every enabled feature before every disabled one, sorted within each
// group.
func FormatFeatures(features map[string]bool) string {
	enabled := make([]string, 0, len(features))
	disabled := make([]string, 0)
	for name, on := range features {
		if on {
			enabled = append(enabled, "+"+name)
		} else {
			disabled = append(disabled, "-"+name)
		}
	}
	sort.Strings(enabled)
	sort.Strings(disabled)
	return strings.Join(append(enabled, disabled...), ",")
}

// FeatureString returns the formatted feature string of the host CPU.
func FeatureString() string {
	return FormatFeatures(Features())
}

// Info is a point-in-time snapshot of the host.
type Info struct {
	CPU      string
	Vendor   string
	Cores    int
	Threads  int
	Features map[string]bool
	Backend  string
}

// Collect gathers a host snapshot.
func Collect() Info {
	return Info{
		CPU:      CPUName(),
		Vendor:   strings.TrimSpace(cpuid.CPU.VendorString),
		Cores:    cpuid.CPU.PhysicalCores,
		Threads:  cpuid.CPU.LogicalCores,
		Features: Features(),
		Backend:  JITName(),
	}
}
