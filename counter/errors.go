package counter

import "fmt"

// StoreReadError wraps a failure to read the counter record.
type StoreReadError struct {
	Err error
}

func (e *StoreReadError) Error() string {
	return fmt.Sprintf("error getting visitor count: %v", e.Err)
}

func (e *StoreReadError) Unwrap() error { return e.Err }

// StoreWriteError wraps a failed atomic increment.
type StoreWriteError struct {
	Err error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("error incrementing visitor count: %v", e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }

// StoreCreateError wraps a failure to seed the initial counter record.
type StoreCreateError struct {
	Err error
}

func (e *StoreCreateError) Error() string {
	return fmt.Sprintf("error creating initial visitor count: %v", e.Err)
}

func (e *StoreCreateError) Unwrap() error { return e.Err }
