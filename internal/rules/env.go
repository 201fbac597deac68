package rules

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

// Registry manages the CEL environment and caches compiled relic conditions.
type Registry struct {
	env *cel.Env

	mu       sync.RWMutex
	programs map[string]cel.Program
}

// NewRegistry initializes the CEL environment with the variables a trigger condition can read.
func NewRegistry() (*Registry, error) {
	env, err := cel.NewEnv(
		cel.Variable("player", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("n", cel.IntType),
	)
	if err != nil {
		return nil, err
	}
	return &Registry{env: env, programs: make(map[string]cel.Program)}, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns a process-wide registry, built on first use.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = NewRegistry()
	})
	return defaultRegistry, defaultErr
}

// Compile checks an expression and caches its program.
func (r *Registry) Compile(expression string) (cel.Program, error) {
	r.mu.RLock()
	prog, ok := r.programs[expression]
	r.mu.RUnlock()
	if ok {
		return prog, nil
	}

	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, fmt.Errorf("failed to compile condition %q: %w", expression, iss.Err())
	}
	prog, err := r.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to build program for %q: %w", expression, err)
	}

	r.mu.Lock()
	r.programs[expression] = prog
	r.mu.Unlock()
	return prog, nil
}

// Eval executes a CEL expression against the provided context.
func (r *Registry) Eval(expression string, context map[string]any) (any, error) {
	prog, err := r.Compile(expression)
	if err != nil {
		return nil, err
	}
	out, _, err := prog.Eval(context)
	if err != nil {
		return nil, err
	}
	return out.Value(), nil
}

// Check evaluates a boolean expression. A non-boolean result is an error.
func (r *Registry) Check(expression string, context map[string]any) (bool, error) {
	out, err := r.Eval(expression, context)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("condition %q returned %T, expected bool", expression, out)
	}
	return b, nil
}
