package cmd

import (
	"testing"
)

func TestDestName(t *testing.T) {
	tests := []struct {
		name     string
		hostPath string
		override string
		expected string
	}{
		{
			name:     "defaults to basename",
			hostPath: "/build/out/kernel.elf",
			override: "",
			expected: "kernel.elf",
		},
		{
			name:     "explicit name wins",
			hostPath: "/build/out/kernel.elf",
			override: "boot.bin",
			expected: "boot.bin",
		},
		{
			name:     "relative host path",
			hostPath: "notes.txt",
			override: "",
			expected: "notes.txt",
		},
		{
			name:     "nested relative host path",
			hostPath: "assets/fonts/mono.psf",
			override: "",
			expected: "mono.psf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := destName(tt.hostPath, tt.override)
			if result != tt.expected {
				t.Errorf("destName(%q, %q) = %q, expected %q", tt.hostPath, tt.override, result, tt.expected)
			}
		})
	}
}
