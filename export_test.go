package pathabs

// This file is part of the package tests (package pathabs) and provides
// helpers that allow tests in the external package to access internal
// package constructs. Helpers are exported so `pathabs_test` can call them
// via the module import path.

// NewNotFoundError constructs a not-found-wrapped error using the package-internal constructor.
func NewNotFoundError(msg string, cause error) error {
	return newNotFoundError(msg, cause)
}

// NewKindMismatchError constructs a kind-mismatch-wrapped error using the package-internal constructor.
func NewKindMismatchError(msg string) error {
	return newKindMismatchError(msg)
}

// NewUnsupportedKindError constructs an unsupported-kind-wrapped error using the package-internal constructor.
func NewUnsupportedKindError(msg string) error {
	return newUnsupportedKindError(msg)
}

// NewIOError constructs an io-wrapped error using the package-internal constructor.
func NewIOError(msg string, cause error) error {
	return newIOError(msg, cause)
}

// NewDecodeError constructs a decode-wrapped error using the package-internal constructor.
func NewDecodeError(msg string, cause error) error {
	return newDecodeError(msg, cause)
}
