package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates an operation was attempted from an entry status that does not permit it.
var ErrInvalidState = errors.New("operation not permitted in current status")

// ErrPeriodClosed indicates the entry date has no OPEN fiscal period covering it at post time.
var ErrPeriodClosed = errors.New("entry date is not within an open fiscal period")

// ErrUnbalancedLine indicates a journal line with both or neither of debit/credit positive.
var ErrUnbalancedLine = errors.New("line must have exactly one of debit or credit")

// ErrUnbalancedEntry indicates total debits do not equal total credits at post time.
var ErrUnbalancedEntry = errors.New("entry debits do not equal credits")

// ErrInvalidRange indicates a fiscal period whose start date is after its end date.
var ErrInvalidRange = errors.New("start date must not be after end date")

// ErrOverlappingPeriod indicates a fiscal period that intersects an existing one.
var ErrOverlappingPeriod = errors.New("fiscal period overlaps with an existing period")
