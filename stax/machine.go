package stax

// Config controls machine execution bounds.
type Config struct {
	// RecursionLimit bounds how deeply if may nest through condition and
	// branch blocks. Zero means the default.
	RecursionLimit int
}

const defaultRecursionLimit = 64

// Machine bundles exactly one stack and one environment. A machine is not
// safe for concurrent use; hosts wanting parallel evaluation give each
// goroutine its own machine.
type Machine struct {
	stack  []Value
	env    *Env
	config Config
	depth  int
}

// NewMachine constructs a machine with sane defaults.
func NewMachine(cfg Config) *Machine {
	if cfg.RecursionLimit <= 0 {
		cfg.RecursionLimit = defaultRecursionLimit
	}
	return &Machine{env: newEnv(), config: cfg}
}

// EvalLine drives one line of input: { } groups are parsed into block
// values and pushed as data, every other word is evaluated immediately
// against the live stack, so a def affects how later words on the same
// line resolve. The returned slice is a copy of the final stack, bottom
// to top.
func (m *Machine) EvalLine(line string) ([]Value, error) {
	words := splitWords(line)
	for len(words) > 0 {
		word := words[0]
		words = words[1:]

		if word == "" {
			break
		}
		if word == openBrace {
			block, rest, err := parseBlock(words)
			if err != nil {
				return nil, err
			}
			m.push(block)
			words = rest
			continue
		}
		if err := m.Eval(classifyWord(word)); err != nil {
			return nil, err
		}
	}
	return m.Stack(), nil
}

// Eval applies one token's effect: numbers, symbols and blocks push
// unconditionally; operators act immediately.
func (m *Machine) Eval(v Value) error {
	if v.Kind() != KindOperator {
		m.push(v)
		return nil
	}

	name := v.Text()
	switch name {
	case "+":
		return m.binaryNumeric(name, func(left, right int64) (int64, error) {
			return left + right, nil
		})
	case "-":
		return m.binaryNumeric(name, func(left, right int64) (int64, error) {
			return left - right, nil
		})
	case "*":
		return m.binaryNumeric(name, func(left, right int64) (int64, error) {
			return left * right, nil
		})
	case "/":
		return m.binaryNumeric(name, func(left, right int64) (int64, error) {
			if right == 0 {
				return 0, arithmeticError(name, len(m.stack))
			}
			return left / right, nil
		})
	case "if":
		return m.evalIf()
	case "def":
		return m.evalDef()
	default:
		val, ok := m.env.Get(name)
		if !ok {
			return undefinedError(name, len(m.stack))
		}
		m.push(val)
		return nil
	}
}

// binaryNumeric pops the right operand first (it was pushed second), then
// the left, and pushes apply(left, right).
func (m *Machine) binaryNumeric(op string, apply func(left, right int64) (int64, error)) error {
	right, err := m.popNumber(op)
	if err != nil {
		return err
	}
	left, err := m.popNumber(op)
	if err != nil {
		return err
	}
	result, err := apply(left, right)
	if err != nil {
		return err
	}
	m.push(NewNumber(result))
	return nil
}

// evalIf pops false-branch, true-branch and condition blocks, runs the
// condition against the live stack, pops one number as the truth value and
// runs exactly one branch. Stack effects of the condition block beyond the
// popped truth value persist.
func (m *Machine) evalIf() error {
	falseBranch, err := m.popBlock("if")
	if err != nil {
		return err
	}
	trueBranch, err := m.popBlock("if")
	if err != nil {
		return err
	}
	cond, err := m.popBlock("if")
	if err != nil {
		return err
	}

	if m.depth >= m.config.RecursionLimit {
		return recursionLimitError(m.config.RecursionLimit, len(m.stack))
	}
	m.depth++
	defer func() { m.depth-- }()

	if err := m.evalTokens(cond); err != nil {
		return err
	}
	truth, err := m.popNumber("if")
	if err != nil {
		return err
	}
	if truth != 0 {
		return m.evalTokens(trueBranch)
	}
	return m.evalTokens(falseBranch)
}

// evalDef pops the symbol naming the binding from the top of the stack,
// then the bound value beneath it (the call pattern is `5 /x def`), and
// writes the environment entry. Later defs on the same name overwrite.
func (m *Machine) evalDef() error {
	name, err := m.pop("def")
	if err != nil {
		return err
	}
	if name.Kind() != KindSymbol {
		return typeMismatchError("def", KindSymbol, name, len(m.stack))
	}
	val, err := m.pop("def")
	if err != nil {
		return err
	}
	m.env.Define(name.Text(), val)
	return nil
}

func (m *Machine) evalTokens(tokens []Value) error {
	for _, tok := range tokens {
		if err := m.Eval(tok); err != nil {
			return err
		}
	}
	return nil
}

func (m *Machine) push(v Value) {
	m.stack = append(m.stack, v)
}

func (m *Machine) pop(op string) (Value, error) {
	if len(m.stack) == 0 {
		return Value{}, underflowError(op, 0)
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v, nil
}

func (m *Machine) popNumber(op string) (int64, error) {
	v, err := m.pop(op)
	if err != nil {
		return 0, err
	}
	if v.Kind() != KindNumber {
		return 0, typeMismatchError(op, KindNumber, v, len(m.stack))
	}
	return v.Number(), nil
}

func (m *Machine) popBlock(op string) ([]Value, error) {
	v, err := m.pop(op)
	if err != nil {
		return nil, err
	}
	if v.Kind() != KindBlock {
		return nil, typeMismatchError(op, KindBlock, v, len(m.stack))
	}
	return v.Block(), nil
}

// Stack returns a copy of the current stack, bottom to top.
func (m *Machine) Stack() []Value {
	out := make([]Value, len(m.stack))
	copy(out, m.stack)
	return out
}

// Bindings returns a copy of the current environment entries.
func (m *Machine) Bindings() map[string]Value {
	return m.env.Snapshot()
}

// DefinedNames returns all environment names in sorted order.
func (m *Machine) DefinedNames() []string {
	return m.env.Names()
}

// Reset discards the stack and all bindings, keeping the configuration.
func (m *Machine) Reset() {
	m.stack = nil
	m.env = newEnv()
	m.depth = 0
}
