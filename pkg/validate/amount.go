package validate

// MaxAmount caps a single deposit or withdrawal at 10,000,000 minor units.
const MaxAmount int64 = 10_000_000

// IsAmount reports whether a caller-supplied amount is positive and within
// the sane upper bound.
func IsAmount(amount int64) bool {
	return amount > 0 && amount <= MaxAmount
}

// IsAnswer reports whether s is one of the four quiz option tags.
func IsAnswer(s string) bool {
	switch s {
	case "A", "B", "C", "D":
		return true
	}
	return false
}
