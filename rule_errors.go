package kind

import (
	"errors"
	"fmt"
	"strings"
)

// RuleError captures evaluator metadata alongside the originating error.
type RuleError struct {
	Engine string
	Rule   string
	Kind   string
	Err    error
}

func (e *RuleError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("kind: %s evaluator %s kind=%s: %v", e.Engine, describeRule(e.Rule), e.Kind, e.Err)
}

func (e *RuleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func describeRule(rule string) string {
	if rule == "" {
		return "rule=<empty>"
	}
	return fmt.Sprintf("rule=%q", rule)
}

func wrapEvaluatorError(engine string, err error) error {
	if err == nil {
		return nil
	}

	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		return err
	}

	if strings.HasPrefix(err.Error(), "kind:") {
		return err
	}
	return fmt.Errorf("kind: %s evaluator: %w", engine, err)
}

func wrapRuleError(engine, rule, kindLabel string, err error) error {
	if err == nil {
		return nil
	}

	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		if ruleErr.Engine == "" {
			ruleErr.Engine = engine
		}
		if ruleErr.Rule == "" {
			ruleErr.Rule = rule
		}
		if ruleErr.Kind == "" {
			ruleErr.Kind = kindLabel
		}
		return ruleErr
	}

	return &RuleError{
		Engine: engine,
		Rule:   rule,
		Kind:   kindLabel,
		Err:    err,
	}
}
