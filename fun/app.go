package fun

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/pathsem"
	"github.com/rfielding/pathsem/prop"
	"github.com/rfielding/pathsem/term"
)

// App2 is f(x)(y).
func App2(f, x, y term.Prop) term.Prop {
	return term.App{Fn: term.App{Fn: f, Arg: x}, Arg: y}
}

// AppIsConst proves is_const(f(x)) from is_const(f) and is_const(x).
func AppIsConst(cf, cx Theorem) (Theorem, error) {
	f, err := constant("app_is_const", cf)
	if err != nil {
		return Theorem{}, err
	}
	x, err := constant("app_is_const", cx)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("app_is_const", term.IsConst{Arg: term.App{Fn: f, Arg: x}}, cf, cx), nil
}

// AppEq is the indiscernibility of identicals: f(x) == f(y) from x == y.
func AppEq(f term.Prop, eq Theorem) (Theorem, error) {
	x, y, err := equation("app_eq", eq)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("app_eq", term.Eq{Left: term.App{Fn: f, Arg: x}, Right: term.App{Fn: f, Arg: y}}, eq), nil
}

// AppMapEq proves f(x) == g(x) from f == g.
func AppMapEq(eq Theorem, x term.Prop) (Theorem, error) {
	f, g, err := equation("app_map_eq", eq)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("app_map_eq", term.Eq{Left: term.App{Fn: f, Arg: x}, Right: term.App{Fn: g, Arg: x}}, eq), nil
}

// AppFunTy proves f(a) : y from f : y^x, a : x and is_const(x).
func AppFunTy(tyF, tyA, cx Theorem) (Theorem, error) {
	f, y, x, err := funTy("app_fun_ty", tyF)
	if err != nil {
		return Theorem{}, err
	}
	return appTy("app_fun_ty", f, x, y, tyF, tyA, cx)
}

// AppLamTy proves f(a) : y from f : (x => y), a : x and is_const(x).
func AppLamTy(tyF, tyA, cx Theorem) (Theorem, error) {
	f, x, y, err := lamTy("app_lam_ty", tyF)
	if err != nil {
		return Theorem{}, err
	}
	return appTy("app_lam_ty", f, x, y, tyF, tyA, cx)
}

func appTy(rule string, f, x, y term.Prop, tyF, tyA, cx Theorem) (Theorem, error) {
	a, err := kernel.As[term.Ty](rule, tyA)
	if err != nil {
		return Theorem{}, err
	}
	if !term.Equal(a.Type, x) {
		return Theorem{}, kernel.Reject(rule, "%s does not take %s", f, tyA.Concl())
	}
	if err := kernel.Require(rule, cx); err != nil {
		return Theorem{}, err
	}
	if err := kernel.Expect(rule, cx, term.IsConst{Arg: x}); err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom(rule, term.Ty{Elem: term.App{Fn: f, Arg: a.Elem}, Type: y}, tyF, tyA, cx), nil
}

// AppDepLamTy types the application of a lambda to c : x by substituting
// c for the bound variable in the result type:
//
//	((\(a : x) = b) : (x => y)) ⋀ (a : x) ⋀ (b : y) ⋀ (c : x)  =>  (\(a : x) = b)(c) : y[a := c]
func AppDepLamTy(tyF, tyA, tyB, tyC Theorem) (Theorem, error) {
	const rule = "app_dep_lam_ty"
	f, x, y, err := lamTy(rule, tyF)
	if err != nil {
		return Theorem{}, err
	}
	a, err := kernel.As[term.Ty](rule, tyA)
	if err != nil {
		return Theorem{}, err
	}
	b, err := kernel.As[term.Ty](rule, tyB)
	if err != nil {
		return Theorem{}, err
	}
	c, err := kernel.As[term.Ty](rule, tyC)
	if err != nil {
		return Theorem{}, err
	}
	want := term.Lam{Param: term.Ty{Elem: a.Elem, Type: x}, Body: b.Elem}
	if !term.Equal(f, want) {
		return Theorem{}, kernel.Reject(rule, "have %s, want %s", f, want)
	}
	if !term.Equal(a.Type, x) || !term.Equal(b.Type, y) || !term.Equal(c.Type, x) {
		return Theorem{}, kernel.Reject(rule, "%s does not fit %s", tyC.Concl(), tyF.Concl())
	}
	return kernel.Axiom(rule, term.Ty{
		Elem: term.App{Fn: f, Arg: c.Elem},
		Type: term.Subst{Expr: y, From: a.Elem, To: c.Elem},
	}, tyF, tyA, tyB, tyC), nil
}

// App2FunTy proves f(a)(b) : z from f : (z^y)^x, a : x, b : y and the
// constancy of x and y.
func App2FunTy(tyF, tyA, tyB, cx, cy Theorem) (Theorem, error) {
	fa, err := AppFunTy(tyF, tyA, cx)
	if err != nil {
		return Theorem{}, err
	}
	return AppFunTy(fa, tyB, cy)
}

// App2LamTy proves f(a)(b) : z from f : (x => (y => z)), a : x, b : y and
// the constancy of x and y.
func App2LamTy(tyF, tyA, tyB, cx, cy Theorem) (Theorem, error) {
	fa, err := AppLamTy(tyF, tyA, cx)
	if err != nil {
		return Theorem{}, err
	}
	return AppLamTy(fa, tyB, cy)
}

// AppLiftTyLam turns an equation into a typed lambda:
//
//	(f(a) == b) ⋀ (a : x) ⋀ (b : y)  =>  (\(a : x) = f(a)) : (x => y)
func AppLiftTyLam(eq, tyA, tyB Theorem) (Theorem, error) {
	const rule = "app_lift_ty_lam"
	l, _, err := equation(rule, eq)
	if err != nil {
		return Theorem{}, err
	}
	a, err := kernel.As[term.Ty](rule, tyA)
	if err != nil {
		return Theorem{}, err
	}
	if app, ok := l.(term.App); !ok || !term.Equal(app.Arg, a.Elem) {
		return Theorem{}, kernel.Reject(rule, "%s is not an application to %s", l, a.Elem)
	}
	tyFA, err := pathsem.TyInLeftArg(tyB, must(prop.EqSym(eq)))
	if err != nil {
		return Theorem{}, err
	}
	return LamTy(tyA, tyFA)
}
