package types

import (
	"math"

	"github.com/peter-r-g/CodeItOut/internal/tokens"

	"github.com/pkg/errors"
)

// Operator is the closed set of operators a kind may implement
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpEqual
	OpNotEqual
	OpGreater
	OpGreaterEqual
	OpLess
	OpLessEqual
	OpAnd
	OpOr
	OpNot
)

var operatorTokens = map[tokens.TOKEN]Operator{
	tokens.PLUS_TOKEN:          OpAdd,
	tokens.MINUS_TOKEN:         OpSub,
	tokens.MUL_TOKEN:           OpMul,
	tokens.DIV_TOKEN:           OpDiv,
	tokens.MOD_TOKEN:           OpMod,
	tokens.EXP_TOKEN:           OpPow,
	tokens.DOUBLE_EQUAL_TOKEN:  OpEqual,
	tokens.NOT_EQUAL_TOKEN:     OpNotEqual,
	tokens.GREATER_TOKEN:       OpGreater,
	tokens.GREATER_EQUAL_TOKEN: OpGreaterEqual,
	tokens.LESS_TOKEN:          OpLess,
	tokens.LESS_EQUAL_TOKEN:    OpLessEqual,
	tokens.AND_TOKEN:           OpAnd,
	tokens.OR_TOKEN:            OpOr,
	tokens.NOT_TOKEN:           OpNot,
}

var operatorSymbols = map[Operator]string{
	OpAdd:          "+",
	OpSub:          "-",
	OpMul:          "*",
	OpDiv:          "/",
	OpMod:          "%",
	OpPow:          "^",
	OpEqual:        "==",
	OpNotEqual:     "!=",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpAnd:          "&&",
	OpOr:           "||",
	OpNot:          "!",
}

// FromToken maps an operator token to its Operator
func FromToken(kind tokens.TOKEN) (Operator, bool) {
	op, ok := operatorTokens[kind]
	return op, ok
}

func (op Operator) String() string {
	if s, ok := operatorSymbols[op]; ok {
		return s
	}
	return "none"
}

// ResultType is the kind produced by applying op to an operand of kind k
func ResultType(op Operator, k Kind) Kind {
	switch op {
	case OpEqual, OpNotEqual, OpGreater, OpGreaterEqual, OpLess, OpLessEqual, OpNot:
		return Boolean
	}
	return k
}

// ErrOperand is returned when an operator receives a value of the wrong host type
var ErrOperand = errors.New("operand has wrong type")

type BinaryFunc func(left, right any) (any, error)

type UnaryFunc func(operand any) (any, error)

const numberTolerance = 0.001

// Binary returns the implementation of op with a left operand of kind k
func (k Kind) Binary(op Operator) (BinaryFunc, bool) {
	switch k {
	case Boolean:
		return booleanBinary(op)
	case Character:
		return characterBinary(op)
	case Number:
		return numberBinary(op)
	case String:
		return stringBinary(op)
	}
	return nil, false
}

// Unary returns the implementation of the prefix op for kind k
func (k Kind) Unary(op Operator) (UnaryFunc, bool) {
	switch k {
	case Boolean:
		if op == OpNot {
			return func(v any) (any, error) {
				b, err := as[bool](v)
				if err != nil {
					return nil, err
				}
				return !b, nil
			}, true
		}
	case Number:
		switch op {
		case OpAdd:
			return func(v any) (any, error) { return as[float64](v) }, true
		case OpSub:
			return func(v any) (any, error) {
				n, err := as[float64](v)
				if err != nil {
					return nil, err
				}
				return -n, nil
			}, true
		}
	}
	return nil, false
}

// Compare reports whether two raw values of kind k are equal
func (k Kind) Compare(left, right any) bool {
	switch k {
	case Number:
		l, lok := left.(float64)
		r, rok := right.(float64)
		return lok && rok && math.Abs(l-r) < numberTolerance
	default:
		return left == right
	}
}

func as[T any](v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, errors.Wrapf(ErrOperand, "expected %T, got %T", zero, v)
	}
	return t, nil
}

func binary[T any, R any](fn func(l, r T) R) BinaryFunc {
	return func(left, right any) (any, error) {
		l, err := as[T](left)
		if err != nil {
			return nil, err
		}
		r, err := as[T](right)
		if err != nil {
			return nil, err
		}
		return fn(l, r), nil
	}
}

func booleanBinary(op Operator) (BinaryFunc, bool) {
	switch op {
	case OpAnd:
		return binary(func(l, r bool) bool { return l && r }), true
	case OpOr:
		return binary(func(l, r bool) bool { return l || r }), true
	case OpEqual:
		return binary(func(l, r bool) bool { return l == r }), true
	case OpNotEqual:
		return binary(func(l, r bool) bool { return l != r }), true
	}
	return nil, false
}

func characterBinary(op Operator) (BinaryFunc, bool) {
	switch op {
	case OpEqual:
		return binary(func(l, r rune) bool { return l == r }), true
	case OpNotEqual:
		return binary(func(l, r rune) bool { return l != r }), true
	}
	return nil, false
}

func numberBinary(op Operator) (BinaryFunc, bool) {
	switch op {
	case OpAdd:
		return binary(func(l, r float64) float64 { return l + r }), true
	case OpSub:
		return binary(func(l, r float64) float64 { return l - r }), true
	case OpMul:
		return binary(func(l, r float64) float64 { return l * r }), true
	case OpDiv:
		return binary(func(l, r float64) float64 { return l / r }), true
	case OpMod:
		return binary(math.Mod), true
	case OpPow:
		return binary(math.Pow), true
	case OpEqual:
		return binary(func(l, r float64) bool { return math.Abs(l-r) < numberTolerance }), true
	case OpNotEqual:
		return binary(func(l, r float64) bool { return math.Abs(l-r) >= numberTolerance }), true
	case OpGreater:
		return binary(func(l, r float64) bool { return l > r }), true
	case OpGreaterEqual:
		return binary(func(l, r float64) bool { return l >= r }), true
	case OpLess:
		return binary(func(l, r float64) bool { return l < r }), true
	case OpLessEqual:
		return binary(func(l, r float64) bool { return l <= r }), true
	}
	return nil, false
}

func stringBinary(op Operator) (BinaryFunc, bool) {
	switch op {
	case OpAdd:
		return binary(func(l, r string) string { return l + r }), true
	case OpEqual:
		return binary(func(l, r string) bool { return l == r }), true
	case OpNotEqual:
		return binary(func(l, r string) bool { return l != r }), true
	}
	return nil, false
}
