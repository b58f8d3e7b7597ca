package inbuilt

import (
	"iter"

	"github.com/indigo-web/pathway/kv"
)

// State is a read-only set of values attached to a route on registration. The zero value
// is an empty state.
type State struct {
	values *kv.Storage
}

// NewState builds a state from key-value pairs: NewState("root", "./static"). It panics
// if an odd number of arguments is passed.
func NewState(pairs ...string) State {
	if len(pairs)%2 != 0 {
		panic("inbuilt: odd number of state arguments")
	}

	values := kv.NewPrealloc(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		values.Set(pairs[i], pairs[i+1])
	}

	return State{values: values}
}

// StateFrom copies the map into a new state.
func StateFrom(m map[string]string) State {
	return State{values: kv.NewFromMap(m)}
}

func (s State) Get(key string) (value string, found bool) {
	if s.values == nil {
		return "", false
	}

	return s.values.Get(key)
}

// Value returns the value by the key or an empty string if there's none.
func (s State) Value(key string) string {
	value, _ := s.Get(key)
	return value
}

func (s State) Has(key string) bool {
	_, found := s.Get(key)
	return found
}

func (s State) Len() int {
	if s.values == nil {
		return 0
	}

	return s.values.Len()
}

// Pairs iterates over all the state entries.
func (s State) Pairs() iter.Seq2[string, string] {
	if s.values == nil {
		return func(func(string, string) bool) {}
	}

	return s.values.Pairs()
}
