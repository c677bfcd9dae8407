package stax

func NewNumber(n int64) Value       { return Value{kind: KindNumber, data: n} }
func NewOperator(name string) Value { return Value{kind: KindOperator, data: name} }
func NewSymbol(name string) Value   { return Value{kind: KindSymbol, data: name} }

// NewBlock wraps an already-parsed token list. The slice is not copied;
// callers hand over ownership.
func NewBlock(tokens []Value) Value { return Value{kind: KindBlock, data: tokens} }
