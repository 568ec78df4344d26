package term

// Children returns the immediate subterms of p in field order.
func Children(p Prop) []Prop {
	switch t := p.(type) {
	case Not:
		return []Prop{t.Arg}
	case And:
		return []Prop{t.Left, t.Right}
	case Or:
		return []Prop{t.Left, t.Right}
	case Imply:
		return []Prop{t.Left, t.Right}
	case Eq:
		return []Prop{t.Left, t.Right}
	case POrd:
		return []Prop{t.Upper, t.Lower}
	case Ty:
		return []Prop{t.Elem, t.Type}
	case App:
		return []Prop{t.Fn, t.Arg}
	case Inv:
		return []Prop{t.Fn}
	case Comp:
		return []Prop{t.Outer, t.Inner}
	case Lam:
		return []Prop{t.Param, t.Body}
	case Subst:
		return []Prop{t.Expr, t.From, t.To}
	case IsConst:
		return []Prop{t.Arg}
	case Tup:
		return []Prop{t.Left, t.Right}
	case Q:
		return []Prop{t.Left, t.Right}
	case Qu:
		return []Prop{t.Arg}
	case Tauto:
		return []Prop{t.Arg}
	default:
		return nil
	}
}

// rebuild returns p with its children replaced by cs, which must have the
// length Children(p) returned.
func rebuild(p Prop, cs []Prop) Prop {
	switch p.(type) {
	case Not:
		return Not{Arg: cs[0]}
	case And:
		return And{Left: cs[0], Right: cs[1]}
	case Or:
		return Or{Left: cs[0], Right: cs[1]}
	case Imply:
		return Imply{Left: cs[0], Right: cs[1]}
	case Eq:
		return Eq{Left: cs[0], Right: cs[1]}
	case POrd:
		return POrd{Upper: cs[0], Lower: cs[1]}
	case Ty:
		return Ty{Elem: cs[0], Type: cs[1]}
	case App:
		return App{Fn: cs[0], Arg: cs[1]}
	case Inv:
		return Inv{Fn: cs[0]}
	case Comp:
		return Comp{Outer: cs[0], Inner: cs[1]}
	case Lam:
		return Lam{Param: cs[0], Body: cs[1]}
	case Subst:
		return Subst{Expr: cs[0], From: cs[1], To: cs[2]}
	case IsConst:
		return IsConst{Arg: cs[0]}
	case Tup:
		return Tup{Left: cs[0], Right: cs[1]}
	case Q:
		return Q{Left: cs[0], Right: cs[1]}
	case Qu:
		return Qu{Arg: cs[0]}
	case Tauto:
		return Tauto{Arg: cs[0]}
	default:
		return p
	}
}

// Normalize rewrites every Imply{a, False} inside p to Not{a}.
func Normalize(p Prop) Prop {
	if p == nil {
		return nil
	}
	cs := Children(p)
	if len(cs) == 0 {
		return p
	}
	out := make([]Prop, len(cs))
	for i, c := range cs {
		out[i] = Normalize(c)
	}
	if _, ok := p.(Imply); ok {
		if _, isFalse := out[1].(False); isFalse {
			return Not{Arg: out[0]}
		}
	}
	return rebuild(p, out)
}

// Equal reports whether a and b are the same proposition up to the
// Not/Imply normalization.
func Equal(a, b Prop) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Normalize(a) == Normalize(b)
}

// Implication splits p into antecedent and consequent. Not{a} counts as
// a => false.
func Implication(p Prop) (ante, cons Prop, ok bool) {
	switch t := p.(type) {
	case Imply:
		return t.Left, t.Right, true
	case Not:
		return t.Arg, False{}, true
	default:
		return nil, nil, false
	}
}

// Operands returns the operands of the binary connectives that carry a
// path semantical order: And, Or, Imply (Not included) and POrd. An Eq
// is the conjunction of its two implications, and those are its operands.
func Operands(p Prop) (left, right Prop, ok bool) {
	switch t := p.(type) {
	case Eq:
		return Normalize(Imply{Left: t.Left, Right: t.Right}), Normalize(Imply{Left: t.Right, Right: t.Left}), true
	case And:
		return t.Left, t.Right, true
	case Or:
		return t.Left, t.Right, true
	case Imply:
		return t.Left, t.Right, true
	case Not:
		return t.Arg, False{}, true
	case POrd:
		return t.Upper, t.Lower, true
	default:
		return nil, nil, false
	}
}

// Contains reports whether sub occurs in p as a proper subterm.
func Contains(p, sub Prop) bool {
	for _, c := range Children(Normalize(p)) {
		if Equal(c, sub) || Contains(c, sub) {
			return true
		}
	}
	return false
}

// Size counts the nodes of p.
func Size(p Prop) int {
	n := 1
	for _, c := range Children(p) {
		n += Size(c)
	}
	return n
}

// Power splits y^x into y and x.
func Power(p Prop) (y, x Prop, ok bool) {
	t, ok := p.(Tauto)
	if !ok {
		return nil, nil, false
	}
	x, y, ok = Implication(t.Arg)
	return y, x, ok
}
