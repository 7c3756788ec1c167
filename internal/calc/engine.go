package calc

import (
	"cmp"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"github.com/vipcxj/interval/interval"
)

// Relations lists the relation names accepted by Check.
var Relations = []string{
	"contains", "includes", "included-by", "disjoint", "overlaps",
	"consecutive", "strictly-consecutive", "can-unify", "can-subtract", "equal",
}

// Operations lists the operation names accepted by Calc.
var Operations = []string{"intersect", "unify", "subtract"}

// SetOptions tunes Engine.Set.
type SetOptions struct {
	// Remove is subtracted from the union before anything else.
	Remove     []string
	Complement bool
	// Contains, when set, is a value to look up in the resulting set.
	Contains *string
}

// SetResult is the outcome of Engine.Set.
type SetResult struct {
	// Text renders the whole set, as in {[0, 1], (2, +∞)}.
	Text     string
	Members  []string
	Span     string
	Contains bool
}

type evaluator interface {
	check(a, rel, b string) (bool, error)
	calc(a, op, b string) (string, error)
	relate(a, b string) (*Report, error)
	set(exprs []string, o SetOptions) (*SetResult, error)
}

// Engine evaluates interval expressions written as text, reading bounds as
// values of one ValueType.
type Engine struct {
	Type ValueType
	ev   evaluator
}

// New returns an Engine for values of type t. A nil log discards everything.
func New(t ValueType, log logrus.FieldLogger) (*Engine, error) {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	log = log.WithField("type", t.String())
	var ev evaluator
	switch t {
	case ValueTypeInt:
		ev = &typed[int]{value: parseInt, log: log}
	case ValueTypeFloat:
		ev = &typed[float64]{value: parseFloat, log: log}
	case ValueTypeText:
		ev = &typed[string]{value: parseString, log: log}
	case ValueTypeDuration:
		ev = &typed[time.Duration]{value: parseDuration, log: log}
	default:
		return nil, errors.Newf("unsupported value type %v, expected one of %s", t, strings.Join(ValueTypeStrings(), ", "))
	}
	return &Engine{Type: t, ev: ev}, nil
}

// Check reports whether rel holds between a and b. For "contains" b is a
// single value rather than an interval.
func (e *Engine) Check(a, rel, b string) (bool, error) {
	return e.ev.check(a, rel, b)
}

// Calc applies op to a and b and renders the result. An exact result that is
// not a single interval fails with interval.ErrUnrepresentable.
func (e *Engine) Calc(a, op, b string) (string, error) {
	return e.ev.calc(a, op, b)
}

// Relate describes every relation between a and b.
func (e *Engine) Relate(a, b string) (*Report, error) {
	return e.ev.relate(a, b)
}

// Set builds the union of exprs and applies o to it.
func (e *Engine) Set(exprs []string, o SetOptions) (*SetResult, error) {
	return e.ev.set(exprs, o)
}

type typed[T cmp.Ordered] struct {
	value func(string) (T, error)
	log   logrus.FieldLogger
}

func (t *typed[T]) parse(expr string) (interval.Interval[T], error) {
	iv, err := interval.Parse(expr, t.value)
	if err != nil {
		return iv, errors.Wrapf(err, "invalid interval %q", expr)
	}
	return iv, nil
}

func (t *typed[T]) parsePair(a, b string) (x, y interval.Interval[T], err error) {
	if x, err = t.parse(a); err != nil {
		return
	}
	y, err = t.parse(b)
	return
}

func predicate[T cmp.Ordered](rel string) func(a, b interval.Interval[T]) bool {
	switch rel {
	case "includes":
		return interval.Interval[T].Includes
	case "included-by":
		return func(a, b interval.Interval[T]) bool { return b.Includes(a) }
	case "disjoint":
		return interval.Interval[T].IsDisjointFrom
	case "overlaps":
		return interval.Interval[T].Overlaps
	case "consecutive":
		return interval.Interval[T].IsConsecutiveTo
	case "strictly-consecutive":
		return interval.Interval[T].IsStrictlyConsecutiveTo
	case "can-unify":
		return interval.Interval[T].CanUnify
	case "can-subtract":
		return interval.Interval[T].CanSubtract
	case "equal":
		return interval.Interval[T].Equal
	}
	return nil
}

func (t *typed[T]) check(a, rel, b string) (bool, error) {
	if rel == "contains" {
		x, err := t.parse(a)
		if err != nil {
			return false, err
		}
		v, err := t.value(strings.TrimSpace(b))
		if err != nil {
			return false, errors.Wrap(err, "contains needs a single value")
		}
		res := x.Contains(v)
		t.log.WithFields(logrus.Fields{"op": rel, "a": x.String(), "b": b, "result": res}).Debug("check")
		return res, nil
	}

	pred := predicate[T](rel)
	if pred == nil {
		return false, errors.Newf("unknown relation %q, expected one of %s", rel, strings.Join(Relations, ", "))
	}
	x, y, err := t.parsePair(a, b)
	if err != nil {
		return false, err
	}
	res := pred(x, y)
	t.log.WithFields(logrus.Fields{"op": rel, "a": x.String(), "b": y.String(), "result": res}).Debug("check")
	return res, nil
}

func (t *typed[T]) calc(a, op, b string) (string, error) {
	var apply func(x, y interval.Interval[T]) (interval.Interval[T], error)
	switch op {
	case "intersect":
		apply = func(x, y interval.Interval[T]) (interval.Interval[T], error) { return x.Intersect(y), nil }
	case "unify":
		apply = interval.Interval[T].Unify
	case "subtract":
		apply = interval.Interval[T].Subtract
	default:
		return "", errors.Newf("unknown operation %q, expected one of %s", op, strings.Join(Operations, ", "))
	}
	x, y, err := t.parsePair(a, b)
	if err != nil {
		return "", err
	}
	r, err := apply(x, y)
	log := t.log.WithFields(logrus.Fields{"op": op, "a": x.String(), "b": y.String()})
	if err != nil {
		log.WithError(err).Debug("calc")
		return "", err
	}
	log.WithField("result", r.String()).Debug("calc")
	return r.String(), nil
}

func (t *typed[T]) relate(a, b string) (*Report, error) {
	x, y, err := t.parsePair(a, b)
	if err != nil {
		return nil, err
	}
	r := &Report{
		A:                   x.String(),
		B:                   y.String(),
		Relation:            interval.Relate(x, y).String(),
		Includes:            x.Includes(y),
		IncludedBy:          y.Includes(x),
		Disjoint:            x.IsDisjointFrom(y),
		Overlaps:            x.Overlaps(y),
		Consecutive:         x.IsConsecutiveTo(y),
		StrictlyConsecutive: x.IsStrictlyConsecutiveTo(y),
		CanUnify:            x.CanUnify(y),
		CanSubtract:         x.CanSubtract(y),
		Intersection:        x.Intersect(y).String(),
	}
	if u, err := x.Unify(y); err == nil {
		r.Union = u.String()
	}
	if d, err := x.Subtract(y); err == nil {
		r.Difference = d.String()
	}
	t.log.WithFields(logrus.Fields{"a": r.A, "b": r.B, "result": r.Relation}).Debug("relate")
	return r, nil
}

func (t *typed[T]) set(exprs []string, o SetOptions) (*SetResult, error) {
	var s interval.Set[T]
	for _, expr := range exprs {
		iv, err := t.parse(expr)
		if err != nil {
			return nil, err
		}
		s = s.Add(iv)
	}
	for _, expr := range o.Remove {
		iv, err := t.parse(expr)
		if err != nil {
			return nil, err
		}
		s = s.Remove(iv)
	}
	if o.Complement {
		s = s.Complement()
	}

	res := &SetResult{Text: s.String(), Span: s.Span().String()}
	for _, iv := range s.Intervals() {
		res.Members = append(res.Members, iv.String())
	}
	if o.Contains != nil {
		v, err := t.value(strings.TrimSpace(*o.Contains))
		if err != nil {
			return nil, err
		}
		res.Contains = s.Contains(v)
	}
	t.log.WithFields(logrus.Fields{"op": "set", "inputs": len(exprs), "result": res.Text}).Debug("set")
	return res, nil
}
