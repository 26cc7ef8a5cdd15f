package level

import (
	"errors"
	"fmt"
)

// LoadErrorKind classifies map loading failures.
type LoadErrorKind int

const (
	// DecodeFailure means the asset could not be opened or decoded.
	DecodeFailure LoadErrorKind = iota + 1
	// EmptyMap means the decoded image has no pixels.
	EmptyMap
)

func (k LoadErrorKind) String() string {
	switch k {
	case DecodeFailure:
		return "decode failure"
	case EmptyMap:
		return "empty map"
	default:
		return "unknown"
	}
}

var (
	// ErrDecodeFailure matches any LoadError of kind DecodeFailure via errors.Is.
	ErrDecodeFailure = errors.New("map decode failure")
	// ErrEmptyMap matches any LoadError of kind EmptyMap via errors.Is.
	ErrEmptyMap = errors.New("map is empty")
)

// LoadError reports why a map asset could not be turned into a grid.
type LoadError struct {
	Kind LoadErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	where := e.Path
	if where == "" {
		where = "<reader>"
	}
	if e.Err != nil {
		return fmt.Sprintf("load map %s: %s: %v", where, e.Kind, e.Err)
	}
	return fmt.Sprintf("load map %s: %s", where, e.Kind)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is lets errors.Is match on the kind sentinels.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrDecodeFailure:
		return e.Kind == DecodeFailure
	case ErrEmptyMap:
		return e.Kind == EmptyMap
	}
	return false
}
