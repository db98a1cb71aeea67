// File: env.go
// Title: Variable Environment
// Description: Name to value bindings shared by every statement of a run.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package env holds the variable bindings of a running turtle program.
package env

import (
	"fmt"
	"sort"
)

// UnboundVariableError is returned when a name is read before it is bound
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Name)
}

// Env maps variable names to values. It is not safe for concurrent use;
// a run shares one Env by reference.
type Env struct {
	vars map[string]float64
}

// New creates an environment seeded with initial, which is copied
func New(initial map[string]float64) *Env {
	vars := make(map[string]float64, len(initial))
	for k, v := range initial {
		vars[k] = v
	}
	return &Env{vars: vars}
}

// Get returns the value bound to name
func (e *Env) Get(name string) (float64, error) {
	v, ok := e.vars[name]
	if !ok {
		return 0, &UnboundVariableError{Name: name}
	}
	return v, nil
}

// Put creates or overwrites the binding of name
func (e *Env) Put(name string, value float64) {
	e.vars[name] = value
}

// Has reports whether name is bound
func (e *Env) Has(name string) bool {
	_, ok := e.vars[name]
	return ok
}

// Len returns the number of bindings
func (e *Env) Len() int {
	return len(e.vars)
}

// Names returns the bound names in sorted order
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for k := range e.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of all bindings
func (e *Env) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(e.vars))
	for k, v := range e.vars {
		out[k] = v
	}
	return out
}
