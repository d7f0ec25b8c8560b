package catalog

import (
	"fmt"
	"strings"
)

// InvalidCatalogError lists every problem found while building a catalog.
type InvalidCatalogError struct {
	Problems []string
}

func (e *InvalidCatalogError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("invalid catalog: %s", e.Problems[0])
	}
	return fmt.Sprintf("invalid catalog: %d problems: %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

// LoadError represents a failure to read or decode a catalog file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load catalog %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load catalog %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
