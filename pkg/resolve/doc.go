// Package resolve decides which configuration governs each checked target.
//
// A Run owns the pieces of one resolution session: a memoizing registry of
// per-directory configuration sources, the lazily-computed base (fallback)
// configuration, and the command-line overrides. For every target the Run
// picks a single winning rc file — the nearest one enclosing the target,
// subject to a boundary policy — or falls back to the base configuration,
// then layers the overrides on top, option by option.
//
// Precedence, highest first:
//
//  1. Command-line overrides
//  2. The nearest enclosing rc file (when local search is enabled)
//  3. The base configuration found from the working directory
//  4. Built-in defaults
//
// Levels never merge with each other below the override layer: a deeper rc
// file wholly replaces a shallower one. The registry parses each directory's
// rc file at most once per Run and hands every consumer the same *Source, so
// reuse is observable with Source.Same.
package resolve
