package topology

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
)

// conditionEvaluator compiles and runs CONDITIONAL compatibility entries'
// condition_fn expressions. Adapted from the teacher's ConditionEvaluator:
// kept is the compiled-program cache (the registry is a shared, read-only
// singleton so compiling each condition string once is worth it); dropped
// is the per-execution result cache, since a condition's inputs (edge
// types, join parameters) vary per call and caching on them buys nothing.
type conditionEvaluator struct {
	mu    sync.RWMutex
	cache map[string]*exprvm.Program
}

func newConditionEvaluator() *conditionEvaluator {
	return &conditionEvaluator{cache: make(map[string]*exprvm.Program)}
}

// Evaluate runs condition against variables. Per the registry's contract, a
// condition must be pure and deterministic and must error — not return
// false — when variables are structurally invalid; a non-bool result or a
// compile/eval failure is surfaced as an error rather than coerced.
func (ce *conditionEvaluator) Evaluate(condition string, variables map[string]any) (bool, error) {
	if condition == "" {
		return false, fmt.Errorf("condition expression is empty")
	}

	program, err := ce.compiled(condition)
	if err != nil {
		return false, fmt.Errorf("compiling condition %q: %w", condition, err)
	}

	result, err := expr.Run(program, variables)
	if err != nil {
		return false, fmt.Errorf("evaluating condition %q: %w", condition, err)
	}

	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("condition %q returned %T, want bool", condition, result)
	}
	return b, nil
}

func (ce *conditionEvaluator) compiled(condition string) (*exprvm.Program, error) {
	ce.mu.RLock()
	program, ok := ce.cache[condition]
	ce.mu.RUnlock()
	if ok {
		return program, nil
	}

	program, err := expr.Compile(condition, expr.Env(map[string]any{}), expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, err
	}

	ce.mu.Lock()
	ce.cache[condition] = program
	ce.mu.Unlock()
	return program, nil
}
