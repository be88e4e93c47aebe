package utils

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// HumanInteger returns the number in a human readable format
func HumanInteger[N constraints.Integer](input N) string {
	if input < 0 {
		// -(input+1) does not overflow for the smallest signed value
		return "-" + humanUint64(uint64(-(input+1))+1)
	}
	return humanUint64(uint64(input))
}

func humanUint64(num uint64) string {
	switch {
	case num >= 1000000000:
		return fmt.Sprintf("%d B", num/1000000000)
	case num >= 1000000:
		return fmt.Sprintf("%d M", num/1000000)
	case num >= 1000:
		return fmt.Sprintf("%d K", num/1000)
	}
	return fmt.Sprintf("%d", num)
}
