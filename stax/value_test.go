package stax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueEqualStructural(t *testing.T) {
	nested := NewBlock([]Value{
		NewNumber(1),
		NewBlock([]Value{NewOperator("+"), NewSymbol("x")}),
	})
	same := NewBlock([]Value{
		NewNumber(1),
		NewBlock([]Value{NewOperator("+"), NewSymbol("x")}),
	})
	assert.True(t, nested.Equal(same))

	assert.False(t, NewNumber(1).Equal(NewNumber(2)))
	assert.False(t, NewNumber(1).Equal(NewOperator("1")))
	assert.False(t, NewOperator("x").Equal(NewSymbol("x")))
	assert.False(t, NewBlock(nil).Equal(NewBlock([]Value{NewNumber(1)})))
	assert.True(t, NewBlock(nil).Equal(NewBlock([]Value{})))
}

func TestValueString(t *testing.T) {
	for _, tc := range []struct {
		value Value
		want  string
	}{
		{NewNumber(42), "42"},
		{NewNumber(-7), "-7"},
		{NewOperator("+"), "+"},
		{NewSymbol("x"), "/x"},
		{NewBlock(nil), "{ }"},
		{NewBlock([]Value{NewNumber(3), NewNumber(4)}), "{ 3 4 }"},
		{NewBlock([]Value{NewBlock([]Value{NewNumber(1)}), NewOperator("if")}), "{ { 1 } if }"},
	} {
		assert.Equal(t, tc.want, tc.value.String())
	}
}

func TestValueKindString(t *testing.T) {
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "operator", KindOperator.String())
	assert.Equal(t, "symbol", KindSymbol.String())
	assert.Equal(t, "block", KindBlock.String())
}

func TestFormatStack(t *testing.T) {
	assert.Equal(t, "stack: []", FormatStack(nil))

	values := []Value{
		NewNumber(3),
		NewBlock([]Value{NewNumber(3), NewNumber(4)}),
	}
	assert.Equal(t, "stack: [3, { 3 4 }]", FormatStack(values))
}
