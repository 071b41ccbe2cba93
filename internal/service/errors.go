package service

import "fmt"

// LoadError reports that a backing table could not be loaded. The affected
// tier keeps serving its previous snapshot, or nothing at startup.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
