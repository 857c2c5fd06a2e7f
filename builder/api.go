// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// api.go - public entry point and the Constructor contract.

package builder

import (
	"fmt"

	"github.com/katalvlaran/navgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
func BuildGraph(gopts []core.GraphOption[string], bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts ids 0..n-1 through cfg.idFn, drawing heuristics if configured.
func addVertices(g *core.Graph[string], cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		if err := addVertex(g, cfg, method, cfg.idFn(i)); err != nil {
			return err
		}
	}

	return nil
}

func addVertex(g *core.Graph[string], cfg builderConfig, method, id string) error {
	g.AddVertexID(id)
	if cfg.heuristicFn == nil {
		return nil
	}
	if err := g.SetHeuristic(id, cfg.heuristicFn(cfg.rng)); err != nil {
		return fmt.Errorf("%s: SetHeuristic(%s): %w", method, id, err)
	}

	return nil
}

// addEdge draws a weight and adds u→v; both also adds v→u with the same weight.
func addEdge(g *core.Graph[string], cfg builderConfig, method, u, v string, both bool) error {
	w := cfg.weightFn(cfg.rng)
	add := g.AddEdge
	if both {
		add = g.AddEdgeBoth
	}
	if err := add(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
