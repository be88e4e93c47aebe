package commands

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/minepkg/mcassets/internals/merrors"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"env", merrors.New(merrors.KindEnv, "lookup", "HOME", errors.New("not set")), "environment lookup"},
		{"io wrapped", fmt.Errorf("extract: %w", merrors.New(merrors.KindIO, "open", "/x.jar", os.ErrNotExist)), "i/o"},
		{"format", merrors.New(merrors.KindFormat, "read archive", "/x.jar", errors.New("zip: not a valid zip file")), "archive format"},
		{"malformed", merrors.New(merrors.KindMalformedName, "sanitize", "pack", errors.New("no parent")), "malformed entry name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explained := Explain(tt.err)
			var cliErr *CliError
			if !errors.As(explained, &cliErr) {
				t.Fatalf("expected a CliError, got %T", explained)
			}
			if cliErr.Code != tt.wantCode {
				t.Fatalf("expected code %q, got %q", tt.wantCode, cliErr.Code)
			}
			if cliErr.Help == "" {
				t.Fatalf("expected help text")
			}
			if !merrors.IsKind(explained, merrors.KindOf(tt.err)) {
				t.Fatalf("explained error lost its kind")
			}
			if Explain(explained) != explained {
				t.Fatalf("explaining twice should be a no-op")
			}
		})
	}
}

func TestExplainPassesThrough(t *testing.T) {
	plain := errors.New("something else")
	if Explain(plain) != plain {
		t.Fatalf("plain errors should be returned unchanged")
	}
	if Explain(nil) != nil {
		t.Fatalf("nil should stay nil")
	}
}
