package upset

import "errors"

var (
	// ErrInvalidArgument is returned when a constructor or decoder receives
	// input that cannot form a consistent entity.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAmbiguousQuerySelection is returned when a query is given both a set
	// and raw elements, or neither.
	ErrAmbiguousQuerySelection = errors.New("query must select either a set or elements")

	// ErrInconsistentCombination is returned by Validate when the elements of
	// a combination do not match the semantics of its type.
	ErrInconsistentCombination = errors.New("inconsistent combination elements")

	// ErrUnresolvedSetReference is returned when a reference does not resolve
	// against the chart's set catalog.
	ErrUnresolvedSetReference = errors.New("unresolved set reference")
)
