package integrate

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// functions available to integrand expressions in addition to the expr builtins (abs, min, max, ...)
var functions = map[string]interface{}{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"log":   math.Log,
	"log10": math.Log10,
	"log2":  math.Log2,
	"sqrt":  math.Sqrt,
	"pow":   math.Pow,
	"pi":    math.Pi,
	"e":     math.E,
}

func env(x float64) map[string]interface{} {
	m := make(map[string]interface{}, len(functions)+1)
	for k, v := range functions {
		m[k] = v
	}
	m["x"] = x
	return m
}

// Expression is a compiled integrand f(x).  It is safe for concurrent use.
type Expression struct {
	source  string
	program *vm.Program
}

// Compile parses an expression in x such as "x**2" or "sin(x) * exp(-x)".  The expression must
// evaluate to a finite number at mid, which is normally the midpoint of the integration interval.
func Compile(source string, mid float64) (*Expression, error) {
	program, err := expr.Compile(source, expr.Env(env(0.0)), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("invalid expression: %v", err)
	}
	e := &Expression{source: source, program: program}
	v, err := e.Eval(mid)
	if err != nil {
		return nil, fmt.Errorf("expression can not be evaluated: %v", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("expression is not finite at x=%g: %g", mid, v)
	}
	return e, nil
}

// Eval returns f(x)
func (e *Expression) Eval(x float64) (float64, error) {
	out, err := expr.Run(e.program, env(x))
	if err != nil {
		return 0.0, err
	}
	v, ok := out.(float64)
	if !ok {
		return 0.0, fmt.Errorf("expression does not return a number")
	}
	return v, nil
}

// Func adapts the expression to a plain function.  Evaluation errors yield NaN, which propagates into
// any integral that uses it.
func (e *Expression) Func() func(float64) float64 {
	return func(x float64) float64 {
		v, err := e.Eval(x)
		if err != nil {
			return math.NaN()
		}
		return v
	}
}

func (e *Expression) String() string {
	return e.source
}
