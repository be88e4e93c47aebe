package utils

import (
	"math"
	"testing"
)

func TestHumanInteger(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{4200, "4 K"},
		{3500000, "3 M"},
		{2000000000, "2 B"},
		{-1, "-1"},
		{-4200, "-4 K"},
		{math.MinInt64, "-9223372036 B"},
	}
	for _, tt := range tests {
		if got := HumanInteger(tt.in); got != tt.want {
			t.Fatalf("HumanInteger(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHumanIntegerUnsigned(t *testing.T) {
	if got := HumanInteger(uint8(250)); got != "250" {
		t.Fatalf("got %q", got)
	}
	if got := HumanInteger(uint64(math.MaxUint64)); got != "18446744073 B" {
		t.Fatalf("got %q", got)
	}
}
