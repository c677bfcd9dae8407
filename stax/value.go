package stax

// ValueKind identifies which variant a Value carries.
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindOperator
	KindSymbol
	KindBlock
)

// Value is the single representation for everything the language
// manipulates: integer literals, bare operator words, /-prefixed symbol
// names, and deferred { } blocks. The payload is immutable once built.
type Value struct {
	kind ValueKind
	data any
}

// SymbolPrefix marks a word as a symbol in evaluation position. The prefix
// is stripped before the name is stored in a Value.
const SymbolPrefix = "/"
