// Package hof is the root of a small toolkit for higher-order functions in Go.
//
// The repository is organized as:
//
//   - hof: generic factories (GreaterThan, MultiplyBy), predicates and
//     sequence helpers (Filter, Reject, Map, Reduce), control-flow helpers
//     (DoWhen) and a named Registry
//   - zoo: the animals domain (IsDog, Dogs, OtherAnimals) plus a YAML loader
//   - config: environment defaults for the CLI
//   - cmd/hof: a CLI replaying every example
//   - examples/basics: a runnable walkthrough using plain function values
//
// Import
//
//	"github.com/sghaida/hof/hof"
package hof
