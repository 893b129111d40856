package main

import "fmt"

// Target represents an architecture-specific code generation target.
type Target struct {
	Name       string // "AVX2", "Fallback"
	BuildTag   string // "amd64 && goexperiment.simd", or "" for always built
	Arch       string // "amd64", or "" when not tied to an architecture
	VecImport  string // import path providing Float32x8, "" when it is hwy
	VecPackage string // package qualifier for Float32x8 calls
	Detect     string // expression over the hwy dispatch level that selects the target
}

// AVX2Target returns the target configuration for AVX2 (256-bit SIMD).
// Float32x8 maps onto one YMM register.
func AVX2Target() Target {
	return Target{
		Name:       "AVX2",
		BuildTag:   "amd64 && goexperiment.simd",
		Arch:       "amd64",
		VecImport:  "simd/archsimd",
		VecPackage: "archsimd",
		Detect:     "hwy.CurrentLevel().SupportsAVX2()",
	}
}

// FallbackTarget returns the portable target built on hwy.Float32x8.
func FallbackTarget() Target {
	return Target{
		Name:       "Fallback",
		BuildTag:   "", // No build tag - always available
		VecPackage: "hwy",
	}
}

// AvailableTargets returns the names accepted by -targets.
func AvailableTargets() []string {
	return []string{"avx2", "fallback"}
}

// GetTarget returns the target configuration for the given name.
func GetTarget(name string) (Target, error) {
	switch name {
	case "avx2":
		return AVX2Target(), nil
	case "fallback":
		return FallbackTarget(), nil
	default:
		return Target{}, fmt.Errorf("unknown target: %s (valid: avx2, fallback)", name)
	}
}

// Suffix returns the function and file suffix for this target (e.g., "avx2").
func (t Target) Suffix() string {
	switch t.Name {
	case "AVX2":
		return "avx2"
	case "Fallback":
		return "fallback"
	default:
		return ""
	}
}
