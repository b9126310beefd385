package cubealg

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Simplify expands any commutator/conjugate expression into a flat simple sequence.
//
// Input that is already a simple sequence is returned with surrounding
// whitespace trimmed and nothing else changed. Anything else is parsed and
// expanded bottom-up, and the result is joined with single spaces.
func Simplify(expr string, opts ...Option) (string, error) {
	cfg := newConfig(opts)

	if IsSimpleSequence(expr) {
		if err := checkSimpleLen(expr, cfg); err != nil {
			return "", err
		}
		out := strings.TrimSpace(expr)
		if !cfg.cancel {
			return out, nil
		}
		seq, err := ParseSequence(out)
		if err != nil {
			return "", err
		}
		return Cancel(seq).String(), nil
	}

	e, err := Parse(expr, opts...)
	if err != nil {
		return "", err
	}

	seq := e.Expand()
	cfg.logger.Debug("expanded expression",
		zap.String("input", expr),
		zap.Int("depth", e.Depth()),
		zap.Int("moves", seq.Len()))

	if cfg.cancel {
		seq = Cancel(seq)
		cfg.logger.Debug("cancelled adjacent moves", zap.Int("moves", seq.Len()))
	}

	return seq.String(), nil
}

// ExpandCommutator expands exactly one commutator "[A, B]" into A B A' B'.
func ExpandCommutator(match string) (string, error) {
	e, err := Parse(match)
	if err != nil {
		return "", err
	}

	c, ok := e.(*Commutator)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a commutator", ErrMalformedExpression, match)
	}
	return c.Expand().String(), nil
}

// ExpandConjugate expands exactly one conjugate "[A: B]" into A B A'.
func ExpandConjugate(match string) (string, error) {
	e, err := Parse(match)
	if err != nil {
		return "", err
	}

	c, ok := e.(*Conjugate)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a conjugate", ErrMalformedExpression, match)
	}
	return c.Expand().String(), nil
}

// SimplifyTrace rewrites expr textually and records every intermediate string.
//
// Each pass replaces the leftmost innermost commutator with its expansion,
// then does the same for the leftmost innermost conjugate of the updated
// string. Passes repeat until the string is a simple sequence, which is the
// last element of the returned slice. The final step equals Simplify(expr)
// up to whitespace.
func SimplifyTrace(expr string, opts ...Option) ([]string, error) {
	cfg := newConfig(opts)

	if IsSimpleSequence(expr) {
		if err := checkSimpleLen(expr, cfg); err != nil {
			return nil, err
		}
		return finishTrace([]string{strings.TrimSpace(expr)}, cfg)
	}

	// Reject malformed input up front so the rewrite loop below cannot stall.
	if _, err := Parse(expr, opts...); err != nil {
		return nil, err
	}

	var steps []string
	cur := expr
	for !IsSimpleSequence(cur) {
		next := cur

		if m, ok := FindCommutator(next); ok {
			exp, err := ExpandCommutator(m)
			if err != nil {
				return nil, err
			}
			cfg.logger.Debug("expanded commutator", zap.String("match", m), zap.String("expansion", exp))
			next = strings.Replace(next, m, " "+exp+" ", 1)
		}

		if m, ok := FindConjugate(next); ok {
			exp, err := ExpandConjugate(m)
			if err != nil {
				return nil, err
			}
			cfg.logger.Debug("expanded conjugate", zap.String("match", m), zap.String("expansion", exp))
			next = strings.Replace(next, m, " "+exp+" ", 1)
		}

		next = normalizeSpace(next)
		if next == normalizeSpace(cur) {
			return nil, &ParseError{Input: expr, Pos: 0, Msg: "no expandable bracket found in " + next, Err: ErrMalformedExpression}
		}

		steps = append(steps, next)
		cur = next
	}

	return finishTrace(steps, cfg)
}

// checkSimpleLen applies the move limit to input that skips the parser.
func checkSimpleLen(expr string, cfg *config) error {
	if n := len(strings.Fields(expr)); n > cfg.maxMoves {
		return &ParseError{
			Input: expr,
			Pos:   0,
			Msg:   fmt.Sprintf("%d moves exceeds the limit of %d", n, cfg.maxMoves),
			Err:   ErrTooLong,
		}
	}
	return nil
}

func finishTrace(steps []string, cfg *config) ([]string, error) {
	if !cfg.cancel {
		return steps, nil
	}

	last := steps[len(steps)-1]
	seq, err := ParseSequence(last)
	if err != nil {
		return nil, err
	}
	if cancelled := Cancel(seq).String(); cancelled != last {
		steps = append(steps, cancelled)
	}
	return steps, nil
}
