package mcroot

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/minepkg/mcassets/internals/merrors"
)

func TestVersions(t *testing.T) {
	root := t.TempDir()

	withJar := []string{"1.8.9", "1.19.2", "1.20.1", "23w13a", "1.20.1-pre1"}
	for _, v := range withJar {
		dir := filepath.Join(root, "versions", v)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, v+".jar"), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	// no jar, only a json (e.g. a fabric profile)
	if err := os.MkdirAll(filepath.Join(root, "versions", "fabric-loader"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := Versions(root)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1.20.1", "1.20.1-pre1", "1.19.2", "1.8.9", "23w13a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Versions() = %v, want %v", got, want)
	}
}

func TestVersionsMissingDir(t *testing.T) {
	_, err := Versions(filepath.Join(t.TempDir(), "nope"))
	if !merrors.IsKind(err, merrors.KindIO) {
		t.Fatalf("expected io error, got %v", err)
	}
}
