package core

// Marshaler encodes a value for persistence.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}
