package stax

import "testing"

func FuzzEvalLineDoesNotPanic(f *testing.F) {
	f.Add("")
	f.Add("1 2 +")
	f.Add("{ 1 1 + } { 100 } { -100 } if")
	f.Add("5 /x def x x *")
	f.Add("{ { 1 } { 2 } if }")
	f.Add("{ 1 2")
	f.Add("} } {")
	f.Add("/ / /")
	f.Add("9223372036854775807 1 +")

	f.Fuzz(func(t *testing.T, line string) {
		m := NewMachine(Config{RecursionLimit: 16})
		_, _ = m.EvalLine(line)
	})
}
