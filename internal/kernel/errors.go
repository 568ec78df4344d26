package kernel

import (
	"errors"
	"fmt"

	"github.com/rfielding/pathsem/term"
)

var (
	// ErrEmpty is returned when a rule is given the zero Theorem.
	ErrEmpty = errors.New("empty theorem")
	// ErrMismatch is returned when a premise does not have the shape a rule needs.
	ErrMismatch = errors.New("premise mismatch")
	// ErrOpen is returned when a rule needs a theorem without hypotheses.
	ErrOpen = errors.New("theorem depends on hypotheses")
)

// Require checks that every theorem in ths is valid.
func Require(rule string, ths ...Theorem) error {
	for i, th := range ths {
		if !th.Valid() {
			return fmt.Errorf("%s: premise %d: %w", rule, i+1, ErrEmpty)
		}
	}
	return nil
}

// Reject reports a premise that does not fit rule.
func Reject(rule, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", rule, fmt.Sprintf(format, args...), ErrMismatch)
}

// Expect checks that th concludes want.
func Expect(rule string, th Theorem, want term.Prop) error {
	if !th.Proves(want) {
		return Reject(rule, "have %s, want %s", th.Concl(), term.Normalize(want))
	}
	return nil
}
