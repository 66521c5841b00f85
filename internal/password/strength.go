// Package password scores a candidate password against the signup policy.
package password

import (
	"math"
	"unicode"
)

// MinLength is the minimum password length the policy accepts.
const MinLength = 12

// Check is one boolean rule in the password policy.
type Check struct {
	ID          string
	Description string
	Satisfied   bool
}

// Result is the outcome of evaluating a password. Derived on every keystroke;
// never persisted.
type Result struct {
	Checks    []Check
	Satisfied int
	Percent   int
	Label     string
	Strong    bool
}

// Evaluate scores a password against the six policy checks. Pure and
// deterministic; Strong is true only when every check passes.
func Evaluate(pw string) Result {
	var hasUpper, hasLower, hasDigit, hasSpecial, hasSpace bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			hasSpecial = true
		}
		if unicode.IsSpace(r) {
			hasSpace = true
		}
	}

	checks := []Check{
		{ID: "length", Description: "At least 12 characters", Satisfied: len([]rune(pw)) >= MinLength},
		{ID: "upper", Description: "An uppercase letter", Satisfied: hasUpper},
		{ID: "lower", Description: "A lowercase letter", Satisfied: hasLower},
		{ID: "number", Description: "A number", Satisfied: hasDigit},
		{ID: "special", Description: "A special character", Satisfied: hasSpecial},
		{ID: "space", Description: "No spaces", Satisfied: !hasSpace},
	}

	satisfied := 0
	for _, c := range checks {
		if c.Satisfied {
			satisfied++
		}
	}

	return Result{
		Checks:    checks,
		Satisfied: satisfied,
		Percent:   int(math.Round(float64(satisfied) / float64(len(checks)) * 100)),
		Label:     label(satisfied),
		Strong:    satisfied == len(checks),
	}
}

func label(satisfied int) string {
	switch {
	case satisfied <= 2:
		return "Weak"
	case satisfied <= 4:
		return "Medium"
	case satisfied <= 5:
		return "Almost strong"
	default:
		return "Strong"
	}
}
