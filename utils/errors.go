package utils

import "fmt"

// InvalidArgumentError represents an error indicating that a caller-supplied value is malformed.
type InvalidArgumentError struct {
	Arg    string
	Reason string
}

// Error returns the error message for InvalidArgumentError.
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Arg, e.Reason)
}

// AllocationFailureError represents an error indicating that memory could not be allocated.
type AllocationFailureError struct {
	Size int
	Err  error
}

// Error returns the error message for AllocationFailureError.
func (e AllocationFailureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("allocation of %d bytes failed: %v", e.Size, e.Err)
	}
	return fmt.Sprintf("allocation of %d bytes failed", e.Size)
}

// Unwrap returns the underlying allocator error, if any.
func (e AllocationFailureError) Unwrap() error {
	return e.Err
}

// OutOfBoundsError represents an error indicating that a pixel coordinate lies outside the buffer.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

// Error returns the error message for OutOfBoundsError.
func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("pixel (%d, %d) out of bounds %dx%d", e.X, e.Y, e.Width, e.Height)
}

// DisposedError represents an error indicating that a resource was used after it was released.
type DisposedError struct {
	Object string
}

// Error returns the error message for DisposedError.
func (e DisposedError) Error() string {
	if e.Object == "" {
		return "use after release"
	}
	return e.Object + ": use after release"
}

// NotFoundError represents an error indicating that a registry has no entry for a descriptor.
type NotFoundError struct {
	Descriptor string
}

// Error returns the error message for NotFoundError.
func (e NotFoundError) Error() string {
	return fmt.Sprintf("no identifier registered for %q", e.Descriptor)
}

// SizeMismatchError represents an error indicating that input data does not fit the destination.
type SizeMismatchError struct {
	Got      int
	Capacity int
}

// Error returns the error message for SizeMismatchError.
func (e SizeMismatchError) Error() string {
	return fmt.Sprintf("%d bytes do not fit into %d bytes", e.Got, e.Capacity)
}
