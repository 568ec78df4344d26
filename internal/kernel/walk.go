package kernel

// Walk visits every node of the derivation rooted at t once, premises before
// the theorems that use them. Shared subderivations are visited once.
func Walk(t Theorem, visit func(Theorem)) {
	seen := make(map[*derivation]bool)
	var rec func(Theorem)
	rec = func(th Theorem) {
		if th.d == nil || seen[th.d] {
			return
		}
		seen[th.d] = true
		for _, p := range th.d.premises {
			rec(p)
		}
		visit(th)
	}
	rec(t)
}

// Depth is the length of the longest premise chain below t, counting t.
func Depth(t Theorem) int {
	memo := make(map[*derivation]int)
	var rec func(Theorem) int
	rec = func(th Theorem) int {
		if th.d == nil {
			return 0
		}
		if d, ok := memo[th.d]; ok {
			return d
		}
		best := 0
		for _, p := range th.d.premises {
			best = max(best, rec(p))
		}
		memo[th.d] = best + 1
		return best + 1
	}
	return rec(t)
}
