package service

import "errors"

// Error categories for the core operations. Every failure returned by the
// service wraps exactly one of these, so callers dispatch with errors.Is
// and re-prompt or re-render; none is fatal to the process.
var (
	// ErrValidation marks malformed or out-of-range caller input. The
	// operation had no effect.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound marks a referenced id absent from its collection. The
	// operation had no effect.
	ErrNotFound = errors.New("not found")

	// ErrPrecondition marks an operation that needs a non-empty dependent
	// collection, such as creating a work order with no equipment
	// registered.
	ErrPrecondition = errors.New("precondition failed")

	// ErrConflict marks a request whose terminal condition already holds,
	// such as completing an already completed order. No side effects are
	// duplicated.
	ErrConflict = errors.New("conflict")

	// ErrPersistence marks a mutation that was applied in memory but could
	// not be saved. In-memory and durable state diverge until the next
	// successful save.
	ErrPersistence = errors.New("persistence failure")
)
