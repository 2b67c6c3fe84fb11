package kind

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotBoolean indicates a rule produced a non-boolean result when a
// match decision was required.
var ErrNotBoolean = errors.New("kind: rule must evaluate to a boolean")

// Selector matches kinds against a rule expression evaluated by a
// pluggable engine. Rules see the variables id, hierarchy, path and depth
// alongside now, args and metadata. The default engine is expr-lang.
type Selector[T any] struct {
	rule string
	cfg  selectorConfig
}

// NewSelector constructs a selector for rule.
func NewSelector[T any](rule string, opts ...Option) *Selector[T] {
	return &Selector[T]{
		rule: rule,
		cfg:  applySelectorOptions(opts),
	}
}

// WithEvaluator configures the engine used by a selector.
func WithEvaluator(e Evaluator) Option {
	return func(cfg *selectorConfig) {
		cfg.evaluator = e
	}
}

// Rule returns the rule expression the selector evaluates.
func (s *Selector[T]) Rule() string {
	return s.rule
}

// Match evaluates the rule against k and coerces the result to a boolean.
func (s *Selector[T]) Match(k Kind[T]) (bool, error) {
	return s.MatchWith(RuleContext{}, k)
}

// MatchWith evaluates the rule against k with caller-supplied args and
// metadata. The kind binding in ctx is always replaced by k's.
func (s *Selector[T]) MatchWith(ctx RuleContext, k Kind[T]) (bool, error) {
	ctx.Kind = Binding(k)
	result, err := s.evaluate(ctx)
	if err != nil {
		return false, err
	}
	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("%w: got %T", ErrNotBoolean, result)
	}
	return matched, nil
}

// Select returns the kinds matching the rule, preserving input order.
func (s *Selector[T]) Select(kinds []Kind[T]) ([]Kind[T], error) {
	matched := make([]Kind[T], 0, len(kinds))
	for _, k := range kinds {
		ok, err := s.Match(k)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, k)
		}
	}
	return matched, nil
}

// First returns the first kind matching the rule, reporting false when no
// kind matches.
func (s *Selector[T]) First(kinds []Kind[T]) (Kind[T], bool, error) {
	for _, k := range kinds {
		ok, err := s.Match(k)
		if err != nil {
			return Kind[T]{}, false, err
		}
		if ok {
			return k, true, nil
		}
	}
	return Kind[T]{}, false, nil
}

func (s *Selector[T]) evaluate(ctx RuleContext) (any, error) {
	if s.rule == "" {
		return nil, fmt.Errorf("kind: rule must not be empty")
	}
	evaluator := s.resolveEvaluator()
	ctx = ctx.withDefaultNow().withDefaultMaps()
	engine := evaluatorEngineName(evaluator)
	start := time.Now()
	value, evalErr := evaluator.Evaluate(ctx, s.rule)
	duration := time.Since(start)
	evalErr = wrapRuleError("", s.rule, ctx.kindLabel(), evalErr)
	s.ruleLogger().LogRule(RuleLogEvent{
		Engine:   engine,
		Rule:     s.rule,
		Kind:     ctx.kindLabel(),
		Duration: duration,
		Err:      evalErr,
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return value, nil
}

func (s *Selector[T]) resolveEvaluator() Evaluator {
	if s.cfg.evaluator != nil {
		return s.cfg.evaluator
	}
	var exprOpts []ExprEvaluatorOption
	if cache := s.cfg.programCache; cache != nil {
		exprOpts = append(exprOpts, ExprWithProgramCache(cache))
	}
	if registry := s.cfg.functions; registry != nil {
		exprOpts = append(exprOpts, ExprWithFunctionRegistry(registry))
	}
	return NewExprEvaluator(exprOpts...)
}

func (s *Selector[T]) ruleLogger() RuleLogger {
	if s.cfg.logger != nil {
		return s.cfg.logger
	}
	return noopRuleLogger{}
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*kind.exprEvaluator":
		return "expr"
	case "*kind.celEvaluator":
		return "cel"
	case "*kind.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}
