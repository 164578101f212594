package smt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermConstructors(t *testing.T) {
	assert.Equal(t, Term("3"), Int(3))
	assert.Equal(t, Term("(- 3)"), Int(-3))
	assert.Equal(t, Term("(not a)"), Not(BoolVar("a")))
	assert.Equal(t, Term("(and a b)"), And(BoolVar("a"), BoolVar("b")))
	assert.Equal(t, Term("(or a b c)"), Or(BoolVar("a"), BoolVar("b"), BoolVar("c")))
	assert.Equal(t, Term("(=> a b)"), Implies(BoolVar("a"), BoolVar("b")))
	assert.Equal(t, Term("(= y 3)"), Eq(IntVar("y"), Int(3)))
	assert.Equal(t, Term("(>= y (+ z 1))"), Ge(IntVar("y"), Add(IntVar("z"), Int(1))))
	assert.Equal(t, Term("(< (* 5 y) 48)"), Lt(Mul(Int(5), IntVar("y")), Int(48)))
	assert.Equal(t, Term("(ite a 1 0)"), Ite(BoolVar("a"), Int(1), Int(0)))
	assert.Equal(t, Term("(distinct y z w)"), Distinct(IntVar("y"), IntVar("z"), IntVar("w")))
}

func TestToSMTLIB(t *testing.T) {
	instance := Instance{
		Booleans:   []string{"a"},
		Integers:   []IntDecl{{Name: "y", Lower: 0, Upper: 5}},
		Assertions: []Term{Implies(BoolVar("a"), Eq(IntVar("y"), Int(3)))},
	}

	expected := "(set-option :produce-models true)\n" +
		"(set-logic QF_LIA)\n" +
		"(declare-const a Bool)\n" +
		"(declare-const y Int)\n" +
		"(assert (and (>= y 0) (<= y 5)))\n" +
		"(assert (=> a (= y 3)))\n"

	assert.Equal(t, expected, instance.ToSMTLIB())
}

func TestVariableNames(t *testing.T) {
	instance := Instance{
		Booleans: []string{"a", "b"},
		Integers: []IntDecl{{Name: "y", Lower: 0, Upper: 5}, {Name: "z", Lower: -1, Upper: 1}},
	}

	assert.Equal(t, []string{"a", "b", "y", "z"}, instance.VariableNames())
}
