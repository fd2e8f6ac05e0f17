package layers

import "fmt"

// registry maps layer type names to their constructors. The built-in
// variants are registered at init; external packages may add their own
// variants with Register. The Layer interface itself has no entry.
var registry = map[string]Constructor{}

// Register adds a constructor under a type name. Registering a name twice
// panics: colliding names would make FromTypeName ambiguous, and names are
// expected to be unique by construction.
func Register(name string, c Constructor) {
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("layers: duplicate registration of layer type %q", name))
	}
	registry[name] = c
}

// FromTypeName returns the constructor registered under name. The match is
// exact and case-sensitive.
func FromTypeName(name string) (Constructor, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return c, nil
}

func init() {
	Register("Input", NewInput)
	Register("NoOp", NewNoOp)
	Register("FeedForward", NewFeedForward)
}
