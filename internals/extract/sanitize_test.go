package extract

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/minepkg/mcassets/internals/merrors"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no terminator", "assets/minecraft/sounds/a.ogg", "assets/minecraft/sounds/a.ogg"},
		{"terminator", "assets/minecraft/x\x00../../evil", "assets/minecraft/x"},
		{"two terminators", "a/b\x00c\x00d", "a/b"},
		{"leading terminator", "\x00assets/minecraft", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.in)
			if got != tt.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := Sanitize(got); again != got {
				t.Fatalf("Sanitize is not idempotent: %q -> %q", got, again)
			}
			if k := strings.IndexByte(tt.in, 0); k != -1 && len(got) != k {
				t.Fatalf("expected length %d, got %d", k, len(got))
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	dest := filepath.Join("out", "dir")

	tests := []struct {
		name string
		in   string
		want string
		kind merrors.Kind
	}{
		{"nested", "assets/minecraft/a.ogg", filepath.Join(dest, "assets", "minecraft", "a.ogg"), 0},
		{"directory", "assets/minecraft/textures/", filepath.Join(dest, "assets", "minecraft", "textures"), 0},
		{"dot segments stay inside", "assets/minecraft/../minecraft/a", filepath.Join(dest, "assets", "minecraft", "a"), 0},
		{"bare name", "pack.mcmeta", "", merrors.KindMalformedName},
		{"empty", "", "", merrors.KindMalformedName},
		{"traversal", "assets/minecraft/../../../evil", "", merrors.KindMalformedName},
		{"absolute", "/etc/passwd", "", merrors.KindMalformedName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := outputPath(dest, tt.in)
			if tt.kind != 0 {
				if !merrors.IsKind(err, tt.kind) {
					t.Fatalf("expected %v error, got %v (%q)", tt.kind, err, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("outputPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
