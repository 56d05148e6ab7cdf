package volume

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a token that does not match the adjustment grammar.
// No device interaction happens once any token fails to parse.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q: %s", e.Token, e.Reason)
}

// ParseCommand parses every positional token into an Op, preserving order.
// The first malformed token aborts the whole command.
func ParseCommand(tokens []string) ([]Op, error) {
	ops := make([]Op, 0, len(tokens))
	for _, token := range tokens {
		op, err := ParseToken(token)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// ParseToken parses one adjustment token of the shape [selector][op]value.
// The selector defaults to master and the op defaults to '=', so "50",
// "l40", and "lr" are all valid shorthands.
func ParseToken(token string) (Op, error) {
	if token == "" {
		return Op{}, &ParseError{Token: token, Reason: "empty adjustment"}
	}

	i := strings.IndexAny(token, "+-=")
	if i < 0 {
		return parseShorthand(token)
	}

	target, err := parseSelector(token[:i])
	if err != nil {
		return Op{}, &ParseError{Token: token, Reason: err.Error()}
	}

	var verb Verb
	switch token[i] {
	case '+':
		verb = VerbIncrease
	case '-':
		verb = VerbDecrease
	default:
		verb = VerbSet
	}

	operand, err := parseOperand(token[i+1:])
	if err != nil {
		return Op{}, &ParseError{Token: token, Reason: err.Error()}
	}

	return Op{Target: target, Verb: verb, Operand: operand}, nil
}

// parseShorthand handles tokens with no operation character: an optional
// single selector letter followed by a value, applied as a set.
func parseShorthand(token string) (Op, error) {
	target := Master()
	rest := token
	switch token[0] {
	case 'l', 'L':
		target, rest = Left(), token[1:]
	case 'r', 'R':
		target, rest = Right(), token[1:]
	case 'a', 'A':
		target, rest = All(), token[1:]
	case 'm', 'M':
		target, rest = Master(), token[1:]
	}

	operand, err := parseOperand(rest)
	if err != nil {
		return Op{}, &ParseError{Token: token, Reason: err.Error()}
	}
	return Op{Target: target, Verb: VerbSet, Operand: operand}, nil
}

func parseSelector(s string) (Selector, error) {
	switch strings.ToLower(s) {
	case "", "m":
		return Master(), nil
	case "l":
		return Left(), nil
	case "r":
		return Right(), nil
	case "a":
		return All(), nil
	}

	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return Selector{}, fmt.Errorf("the channel must be 'l', 'r', 'a', 'm', or a channel number, not %q", s)
	}
	return Channel(int(n)), nil
}

func parseOperand(s string) (Operand, error) {
	switch strings.ToLower(s) {
	case "":
		return Operand{}, fmt.Errorf("missing a value")
	case "m":
		return RefOperand(Master()), nil
	case "l":
		return RefOperand(Left()), nil
	case "r":
		return RefOperand(Right()), nil
	}

	if s[0] == 'c' || s[0] == 'C' {
		n, err := strconv.ParseUint(s[1:], 10, 31)
		if err != nil {
			if s[1:] == "" {
				return Operand{}, fmt.Errorf("missing a channel number after %q", s[:1])
			}
			return Operand{}, fmt.Errorf("expected a channel number after %q, got %q", s[:1], s[1:])
		}
		return RefOperand(Channel(int(n))), nil
	}

	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return Operand{}, fmt.Errorf("the value must be a non-negative integer, 'l', 'r', 'm', or 'c<N>', not %q", s)
	}
	return LiteralOperand(float64(n)), nil
}
