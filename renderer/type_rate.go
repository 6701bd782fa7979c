package renderer

import "fmt"

// Rate is a fractional rate of return, 0.08 meaning eight percent.
// It renders as a percentage.
type Rate float64

func (r Rate) Equal(s Rate) bool {
	// it has to be compared with some precision
	const precision = 0.000001
	diff := r - s
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (r Rate) String() string {
	return fmt.Sprintf("%.2f%%", 100*float64(r))
}

func (r Rate) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", 100*float64(r))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
