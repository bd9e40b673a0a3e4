package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAttributeNotFound is the sentinel matched by errors.Is for lookups of
// names that were never registered by a default or an override.
var ErrAttributeNotFound = errors.New("config: attribute not found")

// AttributeNotFoundError reports a query for an unregistered attribute name.
type AttributeNotFoundError struct {
	Name string
}

func (e *AttributeNotFoundError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("config: attribute %q not found", e.Name)
}

func (e *AttributeNotFoundError) Unwrap() error {
	return ErrAttributeNotFound
}

// KindError reports a typed accessor applied to a value of another shape.
type KindError struct {
	Name string
	Want Kind
	Got  Kind
}

func (e *KindError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("config: attribute %q holds %s, not %s", e.Name, e.Got, e.Want)
}

// LoadConsistencyError reports a harvested symbol that could not be read
// back after being defined. It is fatal: the loader logs it and terminates
// the process rather than returning it.
type LoadConsistencyError struct {
	File   string
	Symbol string
}

func (e *LoadConsistencyError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("config: symbol %q missing after definition in %s", e.Symbol, e.File)
}

// EvaluationError captures evaluator metadata alongside the originating error.
type EvaluationError struct {
	Engine string
	Expr   string
	Err    error
}

func (e *EvaluationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("config: %s evaluator %s: %v", e.Engine, describeExpression(e.Expr), e.Err)
}

func (e *EvaluationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func describeExpression(expr string) string {
	if expr == "" {
		return "expr=<empty>"
	}
	return fmt.Sprintf("expr=%q", expr)
}

func wrapEvaluatorError(engine string, err error) error {
	if err == nil {
		return nil
	}

	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		return err
	}

	if strings.HasPrefix(err.Error(), "config:") {
		return err
	}
	return fmt.Errorf("config: %s evaluator: %w", engine, err)
}

func wrapEvaluationError(engine, expr string, err error) error {
	if err == nil {
		return nil
	}

	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		if evalErr.Engine == "" {
			evalErr.Engine = engine
		}
		if evalErr.Expr == "" {
			evalErr.Expr = expr
		}
		return evalErr
	}

	return &EvaluationError{
		Engine: engine,
		Expr:   expr,
		Err:    err,
	}
}
