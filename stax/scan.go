package stax

import (
	"strconv"
	"strings"
)

const (
	openBrace  = "{"
	closeBrace = "}"
)

// splitWords cuts a line on the space character only. No normalization and
// no quoting; an empty element ends the word stream at the consumer.
func splitWords(line string) []string {
	return strings.Split(line, " ")
}

// classifyWord maps a top-level word to a value. A word scans as a symbol
// only when the / prefix has a non-empty remainder, so a lone / stays the
// division operator.
func classifyWord(word string) Value {
	if n, err := strconv.ParseInt(word, 10, 64); err == nil {
		return NewNumber(n)
	}
	if len(word) > len(SymbolPrefix) && strings.HasPrefix(word, SymbolPrefix) {
		return NewSymbol(strings.TrimPrefix(word, SymbolPrefix))
	}
	return NewOperator(word)
}

// parseBlock consumes words after an opening { until the matching } and
// returns the block plus the unconsumed remainder. Inside a block only
// numeric literals are distinguished; a /-prefixed word stays an operator
// token. Running out of words before the matching } is fatal.
func parseBlock(words []string) (Value, []string, error) {
	var tokens []Value

	for len(words) > 0 {
		word := words[0]
		words = words[1:]

		if word == "" {
			break
		}
		switch word {
		case openBrace:
			nested, rest, err := parseBlock(words)
			if err != nil {
				return Value{}, nil, err
			}
			tokens = append(tokens, nested)
			words = rest
		case closeBrace:
			return NewBlock(tokens), words, nil
		default:
			if n, err := strconv.ParseInt(word, 10, 64); err == nil {
				tokens = append(tokens, NewNumber(n))
			} else {
				tokens = append(tokens, NewOperator(word))
			}
		}
	}

	return Value{}, nil, unterminatedBlockError()
}

// CheckLine parses every block on the line without evaluating anything,
// reporting unterminated groups.
func CheckLine(line string) error {
	words := splitWords(line)
	for len(words) > 0 {
		word := words[0]
		words = words[1:]

		if word == "" {
			return nil
		}
		if word == openBrace {
			_, rest, err := parseBlock(words)
			if err != nil {
				return err
			}
			words = rest
		}
	}
	return nil
}
