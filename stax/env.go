package stax

import "sort"

// Env is the single variable scope of a machine. Entries are created and
// overwritten by def; there is no deletion.
type Env struct {
	values map[string]Value
}

func newEnv() *Env {
	return &Env{values: make(map[string]Value)}
}

func (e *Env) Get(name string) (Value, bool) {
	val, ok := e.values[name]
	return val, ok
}

func (e *Env) Define(name string, val Value) {
	e.values[name] = val
}

func (e *Env) Len() int { return len(e.values) }

// Names returns all defined names in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of the current bindings.
func (e *Env) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for name, val := range e.values {
		out[name] = val
	}
	return out
}
