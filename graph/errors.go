package graph

import "fmt"

// UnsupportedFeatureError is returned when a caller requests a
// capability (an index kind, removal, clear) that the backing Graph
// does not advertise via Capabilities(). It mirrors the Rust original's
// Error::UnsupportedGraphFeature{feature}.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("graph: unsupported feature: %s", e.Feature)
}

// ErrUnsupportedFeature constructs an *UnsupportedFeatureError for the
// given feature name. Callers compare with errors.As, not equality,
// since the message carries per-call context.
func ErrUnsupportedFeature(feature string) error {
	return &UnsupportedFeatureError{Feature: feature}
}
