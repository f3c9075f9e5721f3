package core

// Closer releases resources held by a component.
type Closer interface {
	// Close releases the resources.
	Close() error
}

// FuncCloser adapts a plain function to the Closer interface.
type FuncCloser func() error

// Close calls f.
func (f FuncCloser) Close() error {
	return f()
}
