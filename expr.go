package crowdfund

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrExpression marks a malformed amount expression. Callers match it with
// errors.Is.
var ErrExpression = errors.New("expression evaluation failed")

// Amount fields in a project file accept either a plain number or an
// addition-only expression like "153 + 123 + 45.67". The grammar is a
// whitelist: digits, decimal points, plus signs, and whitespace. Nothing else
// is ever evaluated.
var (
	validExpression = regexp.MustCompile(`^[\d\s+.]+$`)
	plainNumber     = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// EvalAmount evaluates an amount value from a project file: a numeric value
// is returned as an exact decimal, a string is parsed either as a single
// number or as an addition-only expression and summed. Any malformed input
// fails with an error wrapping ErrExpression; evaluation is stateless and has
// no side effects.
func EvalAmount(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case string:
		return evalExpression(v)
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: unsupported value type %T for amount", ErrExpression, value)
	}
}

func evalExpression(expr string) (decimal.Decimal, error) {
	expr = strings.TrimSpace(expr)

	// A plain number string needs no expression machinery.
	if plainNumber.MatchString(expr) {
		return decimal.NewFromString(expr)
	}

	if !validExpression.MatchString(expr) {
		return decimal.Decimal{}, fmt.Errorf("%w: invalid characters in %q, only numbers, decimal points, plus signs and spaces are allowed", ErrExpression, expr)
	}
	if strings.Contains(expr, "++") || strings.HasPrefix(expr, "+") || strings.HasSuffix(expr, "+") {
		return decimal.Decimal{}, fmt.Errorf("%w: invalid format %q, cannot have consecutive operators or start/end with an operator", ErrExpression, expr)
	}

	total := decimal.Zero
	for _, part := range strings.Split(expr, "+") {
		part = strings.TrimSpace(part)
		// Every addend must be a single well-formed number. An empty addend
		// ("100 + + 50") or a malformed one ("12.3.4", "12 34") is a
		// structural error, not a token to skip.
		if !plainNumber.MatchString(part) {
			return decimal.Decimal{}, fmt.Errorf("%w: invalid expression structure %q", ErrExpression, expr)
		}
		num, err := decimal.NewFromString(part)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: failed to evaluate %q in %q: %v", ErrExpression, part, expr, err)
		}
		total = total.Add(num)
	}
	return total, nil
}
