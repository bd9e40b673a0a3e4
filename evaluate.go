package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoEvaluator reports that no expression engine could be constructed.
var ErrNoEvaluator = errors.New("config: evaluator not configured")

// Evaluate runs expr against a snapshot of the current attribute values.
// Callers use this to drive build and test decisions, e.g.
// `enable_smp && test_mode == "cesm"`. The expr engine is the default; a
// different engine can be installed with WithEvaluator.
func (r *Registry) Evaluate(expr string) (any, error) {
	return r.EvaluateWith(QueryContext{}, expr)
}

// EvaluateWith runs expr using ctx, falling back to the registry snapshot
// when ctx.Snapshot is nil.
func (r *Registry) EvaluateWith(ctx QueryContext, expr string) (any, error) {
	if expr == "" {
		return nil, fmt.Errorf("config: expression must not be empty")
	}
	evaluator, err := r.resolveEvaluator()
	if err != nil {
		return nil, err
	}
	if ctx.Snapshot == nil {
		ctx.Snapshot = r.Snapshot()
	}
	ctx = ctx.withDefaults()
	engine := evaluatorEngineName(evaluator)
	start := time.Now()
	value, evalErr := evaluator.Evaluate(ctx, expr)
	duration := time.Since(start)
	evalErr = wrapEvaluationError(engine, expr, evalErr)
	r.logger.Debug().
		Str("engine", engine).
		Str("expr", expr).
		Dur("duration", duration).
		Err(evalErr).
		Msg("evaluated expression")
	if evalErr != nil {
		return nil, evalErr
	}
	return value, nil
}

func (r *Registry) resolveEvaluator() (Evaluator, error) {
	if r.evaluator != nil {
		return r.evaluator, nil
	}
	var exprOpts []ExprEvaluatorOption
	if r.cache != nil {
		exprOpts = append(exprOpts, ExprWithProgramCache(r.cache))
	}
	if r.functions != nil {
		exprOpts = append(exprOpts, ExprWithFunctionRegistry(r.functions))
	}
	evaluator := NewExprEvaluator(exprOpts...)
	if evaluator == nil {
		return nil, ErrNoEvaluator
	}
	r.evaluator = evaluator
	return evaluator, nil
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*config.exprEvaluator":
		return "expr"
	case "*config.celEvaluator":
		return "cel"
	case "*config.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}
