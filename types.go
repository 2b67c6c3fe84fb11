package kind

import "time"

// KindBinding is the flattened view of a kind exposed to rule expressions.
type KindBinding struct {
	ID        string
	Hierarchy []string
	Path      string
}

// Binding builds the rule binding for k using the default separator.
func Binding[T any](k Kind[T]) KindBinding {
	return KindBinding{
		ID:        k.ID(),
		Hierarchy: k.Hierarchy(),
		Path:      k.String(),
	}
}

func (b KindBinding) isZero() bool {
	return b.ID == "" && len(b.Hierarchy) == 0 && b.Path == ""
}

func (b KindBinding) depth() int {
	return len(b.Hierarchy)
}

// RuleContext carries inputs needed when evaluating a rule expression.
type RuleContext struct {
	Kind     KindBinding
	Now      *time.Time
	Args     map[string]any
	Metadata map[string]any
}

func (ctx RuleContext) withDefaultNow() RuleContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx RuleContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx RuleContext) withDefaultMaps() RuleContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

func (ctx RuleContext) kindLabel() string {
	if ctx.Kind.Path != "" {
		return ctx.Kind.Path
	}
	if ctx.Kind.ID != "" {
		return ctx.Kind.ID
	}
	return "unknown"
}

// binding flattens the kind view into the variables rules evaluate over.
func (ctx RuleContext) binding() map[string]any {
	if ctx.Kind.isZero() {
		return map[string]any{}
	}
	return map[string]any{
		"id":        ctx.Kind.ID,
		"hierarchy": ctx.Kind.Hierarchy,
		"path":      ctx.Kind.Path,
		"depth":     ctx.Kind.depth(),
	}
}

// Evaluator executes rule expressions against a rule context.
type Evaluator interface {
	Evaluate(ctx RuleContext, rule string) (any, error)
	Compile(rule string, opts ...CompileOption) (CompiledRule, error)
}

// CompiledRule represents a reusable rule program.
type CompiledRule interface {
	Evaluate(ctx RuleContext) (any, error)
}

// CompileOption configures evaluator compile behaviour.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}

type compileOptionFunc func(*compileConfig)

func (f compileOptionFunc) applyCompileOption(cfg *compileConfig) {
	if f != nil {
		f(cfg)
	}
}

// Option configures a Selector.
type Option func(*selectorConfig)

type selectorConfig struct {
	evaluator    Evaluator
	programCache ProgramCache
	functions    *FunctionRegistry
	logger       RuleLogger
}

func applySelectorOptions(opts []Option) selectorConfig {
	cfg := selectorConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
