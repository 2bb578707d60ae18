// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that is not in the current legal move list.
	ErrIllegalMove = errors.New("illegal move")

	// ErrIllegalState indicates an operation that the current state cannot
	// perform, such as undoing with an empty history.
	ErrIllegalState = errors.New("illegal state")

	// ErrContractViolation indicates a programming error by the caller or a
	// corrupted position. It is raised with panic, never returned.
	ErrContractViolation = errors.New("contract violation")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates malformed coordinate notation.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejected move with the position context it was tried in.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The move in coordinate notation, e.g. "e2e4"
	Ply      int    // Number of moves already played (0 if not applicable)
	ToMove   string // Side to move when the move was tried
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.ToMove != "" {
		parts = append(parts, fmt.Sprintf("%s to move", e.ToMove))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ContractError is the panic value used for contract violations. Op names the
// operation that detected the violation and Detail describes it.
type ContractError struct {
	Op     string
	Detail string
}

// Error returns the operation and detail of the violation.
func (e *ContractError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, ErrContractViolation)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Detail, ErrContractViolation)
}

// Unwrap returns ErrContractViolation.
func (e *ContractError) Unwrap() error {
	return ErrContractViolation
}

// Violation panics with a ContractError for op.
func Violation(op, format string, args ...interface{}) {
	panic(&ContractError{Op: op, Detail: fmt.Sprintf(format, args...)})
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
