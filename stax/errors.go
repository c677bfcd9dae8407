package stax

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a machine fault. Every kind is fatal to the line
// being evaluated; nothing is recovered inside the core.
type ErrorKind string

const (
	ErrStackUnderflow     ErrorKind = "StackUnderflow"
	ErrTypeMismatch       ErrorKind = "TypeMismatch"
	ErrUndefinedOperation ErrorKind = "UndefinedOperation"
	ErrArithmeticFault    ErrorKind = "ArithmeticFault"
	ErrUnterminatedBlock  ErrorKind = "UnterminatedBlock"
	ErrRecursionLimit     ErrorKind = "RecursionLimit"
)

// RuntimeError is the terminal error surface of the machine. Op names the
// operation that faulted and Depth records the stack depth at failure.
type RuntimeError struct {
	Kind    ErrorKind
	Op      string
	Depth   int
	Message string
}

func (re *RuntimeError) Error() string {
	if re.Op == "" {
		return re.Message
	}
	return fmt.Sprintf("%s (in %q, stack depth %d)", re.Message, re.Op, re.Depth)
}

// IsKind reports whether err is a RuntimeError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *RuntimeError
	return errors.As(err, &re) && re.Kind == kind
}

func underflowError(op string, depth int) error {
	return &RuntimeError{
		Kind:    ErrStackUnderflow,
		Op:      op,
		Depth:   depth,
		Message: "stack underflow",
	}
}

func typeMismatchError(op string, want ValueKind, got Value, depth int) error {
	return &RuntimeError{
		Kind:    ErrTypeMismatch,
		Op:      op,
		Depth:   depth,
		Message: fmt.Sprintf("expected %v, got %v %s", want, got.Kind(), got),
	}
}

func undefinedError(name string, depth int) error {
	return &RuntimeError{
		Kind:    ErrUndefinedOperation,
		Op:      name,
		Depth:   depth,
		Message: fmt.Sprintf("%q is not a defined operation", name),
	}
}

func arithmeticError(op string, depth int) error {
	return &RuntimeError{
		Kind:    ErrArithmeticFault,
		Op:      op,
		Depth:   depth,
		Message: "division by zero",
	}
}

func unterminatedBlockError() error {
	return &RuntimeError{
		Kind:    ErrUnterminatedBlock,
		Message: "unterminated block: missing }",
	}
}

func recursionLimitError(limit, depth int) error {
	return &RuntimeError{
		Kind:    ErrRecursionLimit,
		Op:      "if",
		Depth:   depth,
		Message: fmt.Sprintf("recursion depth exceeded (limit %d)", limit),
	}
}
