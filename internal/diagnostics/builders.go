package diagnostics

import (
	"fmt"

	"github.com/peter-r-g/CodeItOut/internal/source"
)

// Common diagnostic builders for semantic analysis

// TypeMismatch creates a diagnostic for a value whose type does not fit its position
func TypeMismatch(loc source.Position, expected, got string) *Diagnostic {
	return NewError(fmt.Sprintf("Expected %s, got %s", expected, got)).
		WithCode(ErrTypeMismatch).
		At(loc)
}

// Undefined creates a diagnostic for a name with no visible declaration
func Undefined(loc source.Position, name string) *Diagnostic {
	return NewError(name+" is not defined").
		WithCode(ErrUndefinedSymbol).
		At(loc).
		WithHelp("check if the name is declared before it is used")
}

// Redefined creates a diagnostic for a second declaration in the same scope
func Redefined(loc source.Position, name, scope string) *Diagnostic {
	return NewError(name + " is already defined in " + scope).
		WithCode(ErrRedeclaredSymbol).
		At(loc)
}

func Unreadable(name string) *Diagnostic {
	return NewError(name + " is not readable").WithCode(ErrUnreadable)
}

func Unwritable(name string) *Diagnostic {
	return NewError(name + " is not writable").WithCode(ErrUnwritable)
}

// UnsupportedBinary creates a diagnostic for an operator the left operand's type does not define
func UnsupportedBinary(loc source.Position, op, typeName string) *Diagnostic {
	return NewError(fmt.Sprintf("Binary operator %s not supported for type %q", op, typeName)).
		WithCode(ErrUnsupportedBinary).
		At(loc)
}

func UnsupportedUnary(loc source.Position, op, typeName string) *Diagnostic {
	return NewError(fmt.Sprintf("Unary operator %s not supported for type %q", op, typeName)).
		WithCode(ErrUnsupportedUnary).
		At(loc)
}

// WrongArgumentCount creates a diagnostic for wrong number of arguments
func WrongArgumentCount(loc source.Position, expected, found int) *Diagnostic {
	return NewError(fmt.Sprintf("Expected %d argument(s), got %d", expected, found)).
		WithCode(ErrWrongArgumentCount).
		At(loc)
}

// MissingArgument creates a diagnostic for a parameter with no matching argument
func MissingArgument(loc source.Position, param, method string) *Diagnostic {
	return NewError(fmt.Sprintf("The parameter %q of the %q method was not provided", param, method)).
		WithCode(ErrMissingArgument).
		At(loc)
}

// MissingInitialType creates a diagnostic for a declaration whose type cannot be inferred
func MissingInitialType(loc source.Position) *Diagnostic {
	return NewError("Expected type in initial value").
		WithCode(ErrMissingInitialType).
		At(loc).
		WithHelp("declare the variable with a concrete type or give it an initial value")
}

// MissingReturn creates a diagnostic for a typed method whose body can end
// without a return statement
func MissingReturn(loc source.Position, method, kind string) *Diagnostic {
	return NewError(fmt.Sprintf("The method %q can finish without returning a %s", method, kind)).
		WithCode(ErrMissingReturn).
		At(loc).
		WithHelp("end every path through the body with a return")
}
