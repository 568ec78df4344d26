package kernel

import (
	"fmt"
	"strings"

	"github.com/rfielding/pathsem/term"
)

// As checks that th is valid and concludes a P, and returns the conclusion.
func As[P term.Prop](rule string, th Theorem) (P, error) {
	var zero P
	if err := Require(rule, th); err != nil {
		return zero, err
	}
	p, ok := th.Concl().(P)
	if !ok {
		return zero, Reject(rule, "%s is not %s", th.Concl(), kind(zero))
	}
	return p, nil
}

func kind(p term.Prop) string {
	name := fmt.Sprintf("%T", p)
	return "a " + strings.ToLower(name[strings.LastIndex(name, ".")+1:])
}
