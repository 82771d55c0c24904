package channels

import "fmt"

// KeyNotFoundError is returned by Get when no cell is registered under the
// requested name.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found in registry", e.Key)
}

// TypeMismatchError is returned when a name is requested, inserted, or
// ensured against a Go type different from the one fixed at first insert.
type TypeMismatchError struct {
	Key      string
	Expected string
	Found    string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch for key %q: expected %s, found %s", e.Key, e.Expected, e.Found)
}

// DuplicateOutputKeyError is returned by the weaver when two nodes in the
// same batch claim the same output channel name.
type DuplicateOutputKeyError struct {
	Key string
}

func (e *DuplicateOutputKeyError) Error() string {
	return fmt.Sprintf("duplicate output key %q in batch", e.Key)
}

// MissingProducerError is returned by the weaver when an input channel has
// no producer in the batch and is not already present in the registry.
type MissingProducerError struct {
	Key string
}

func (e *MissingProducerError) Error() string {
	return fmt.Sprintf("missing producer for key %q", e.Key)
}

// CycleDetectedError is returned by the weaver when the induced graph is not
// acyclic. Indices are positions in the original input slice that were never
// reduced to zero indegree.
type CycleDetectedError struct {
	Indices []int
}

func (e *CycleDetectedError) Error() string {
	return fmt.Sprintf("cycle detected among node indices %v", e.Indices)
}
