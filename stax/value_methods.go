package stax

import (
	"fmt"
	"strings"
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindOperator:
		return "operator"
	case KindSymbol:
		return "symbol"
	case KindBlock:
		return "block"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// String renders a value in its source spelling: numbers as written,
// operators bare, symbols with their / prefix, blocks braced.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return fmt.Sprintf("%d", v.data.(int64))
	case KindOperator:
		return v.data.(string)
	case KindSymbol:
		return SymbolPrefix + v.data.(string)
	case KindBlock:
		tokens := v.data.([]Value)
		if len(tokens) == 0 {
			return "{ }"
		}
		parts := make([]string, len(tokens))
		for i, tok := range tokens {
			parts[i] = tok.String()
		}
		return fmt.Sprintf("{ %s }", strings.Join(parts, " "))
	default:
		return fmt.Sprintf("<%v>", v.kind)
	}
}

// Equal reports structural equality: same variant and recursively equal
// payloads.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.data.(int64) == other.data.(int64)
	case KindOperator, KindSymbol:
		return v.data.(string) == other.data.(string)
	case KindBlock:
		a, b := v.data.([]Value), other.data.([]Value)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// FormatStack renders the final stack of a line, bottom to top, in the
// debug form printed by the line driver.
func FormatStack(values []Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return fmt.Sprintf("stack: [%s]", strings.Join(parts, ", "))
}
