package conform

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type exprValidator struct {
	code string
	prg  *vm.Program
}

// Expr compiles a predicate expression into a validator. The expression
// sees the candidate under the name "value" and must evaluate to a bool;
// a false result or an evaluation error is a reported validation error.
// The value passes through unnormalized.
//
//	v, _ := conform.Expr(`value > 0 && value % 2 == 0`)
func Expr(code string) (Validator, error) {
	prg, err := expr.Compile(code, expr.Env(exprEnv(nil)), expr.AsBool())
	if err != nil {
		return nil, schemaErrf("invalid expression %q: %s", code, err)
	}
	return &exprValidator{code: code, prg: prg}, nil
}

// MustExpr is Expr, panicking on compile errors.
func MustExpr(code string) Validator {
	v, err := Expr(code)
	if err != nil {
		panic(err)
	}
	return v
}

func exprEnv(v any) map[string]any {
	return map[string]any{"value": v}
}

func (e *exprValidator) Validate(v any) (any, error) {
	res, err := expr.Run(e.prg, exprEnv(v))
	if err != nil {
		return nil, reportf("expression %q failed: %s", e.code, err)
	}
	ok, isBool := res.(bool)
	if !isBool || !ok {
		return nil, reportf("expression %q rejected the value", e.code)
	}
	return v, nil
}
