package stax

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) Number() int64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.data.(int64)
}

// Text returns the word payload of an Operator or the name payload of a
// Symbol (without its / prefix).
func (v Value) Text() string {
	if v.kind != KindOperator && v.kind != KindSymbol {
		return ""
	}
	return v.data.(string)
}

func (v Value) Block() []Value {
	if v.kind != KindBlock {
		return nil
	}
	return v.data.([]Value)
}
