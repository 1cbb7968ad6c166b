// Package scicalc is the computational core of a scientific calculator.
//
// It provides:
//   - A safe expression evaluator (recursive descent, no dynamic code)
//   - Numeric calculus: Simpson integration, central differences, Σ and Π
//   - Equation solvers: quadratic, cubic, 2×2 and 3×3 linear systems
//   - Combinatorics, base conversion, angle and coordinate helpers
//   - Display formatting with an engineering notation mode
//   - A JSON tool interface for HTTP and agent backends
//
// All functions are pure and safe for concurrent use. Angle mode and
// memory are held by the caller (see internal/session), never by the
// package.
package scicalc
