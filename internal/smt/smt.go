package smt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Term is a formula (or integer expression) over declared variables, kept in
// its serialized SMT-LIB2 form. Terms are built exclusively through the
// constructors below; variable identity is the caller's responsibility.
type Term string

func sexp(operator string, operands ...Term) Term {
	var builder strings.Builder
	builder.WriteByte('(')
	builder.WriteString(operator)
	for _, operand := range operands {
		builder.WriteByte(' ')
		builder.WriteString(string(operand))
	}
	builder.WriteByte(')')
	return Term(builder.String())
}

func BoolVar(name string) Term { return Term(name) }

func IntVar(name string) Term { return Term(name) }

func Int(value int64) Term {
	if value < 0 {
		return sexp("-", Int(-value))
	}
	return Term(strconv.FormatInt(value, 10))
}

func Not(operand Term) Term { return sexp("not", operand) }

func And(operands ...Term) Term { return sexp("and", operands...) }

func Or(operands ...Term) Term { return sexp("or", operands...) }

func Implies(premise, conclusion Term) Term { return sexp("=>", premise, conclusion) }

func Eq(left, right Term) Term { return sexp("=", left, right) }

func Lt(left, right Term) Term { return sexp("<", left, right) }

func Le(left, right Term) Term { return sexp("<=", left, right) }

func Ge(left, right Term) Term { return sexp(">=", left, right) }

func Add(operands ...Term) Term { return sexp("+", operands...) }

func Mul(operands ...Term) Term { return sexp("*", operands...) }

func Ite(condition, then, otherwise Term) Term { return sexp("ite", condition, then, otherwise) }

func Distinct(operands ...Term) Term { return sexp("distinct", operands...) }

// IntDecl declares a bounded integer variable. Bounds are inclusive and are
// emitted as assertions alongside the declaration.
type IntDecl struct {
	Name  string
	Lower int64
	Upper int64
}

// Instance is a one-shot satisfiability query: every declared variable plus
// the asserted formulas over them.
type Instance struct {
	Booleans   []string
	Integers   []IntDecl
	Assertions []Term
}

// ToSMTLIB serializes the instance into an SMT-LIB2 script, up to but not
// including the (check-sat) command.
func (instance Instance) ToSMTLIB() string {
	var builder strings.Builder
	builder.WriteString("(set-option :produce-models true)\n")
	builder.WriteString("(set-logic QF_LIA)\n")
	for _, name := range instance.Booleans {
		fmt.Fprintf(&builder, "(declare-const %v Bool)\n", name)
	}
	for _, declaration := range instance.Integers {
		fmt.Fprintf(&builder, "(declare-const %v Int)\n", declaration.Name)
		fmt.Fprintf(&builder, "(assert (and (>= %v %v) (<= %v %v)))\n", declaration.Name, declaration.Lower, declaration.Name, declaration.Upper)
	}
	for _, assertion := range instance.Assertions {
		fmt.Fprintf(&builder, "(assert %v)\n", assertion)
	}
	return builder.String()
}

// VariableNames lists every declared variable in declaration order.
func (instance Instance) VariableNames() []string {
	names := make([]string, 0, len(instance.Booleans)+len(instance.Integers))
	names = append(names, instance.Booleans...)
	names = append(names, lo.Map(instance.Integers, func(declaration IntDecl, _ int) string { return declaration.Name })...)
	return names
}
