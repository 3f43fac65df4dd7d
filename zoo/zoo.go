// Package zoo is the animals domain used to show predicate extraction:
// small reusable checks (IsDog) passed to hof.Filter and hof.Reject.
package zoo

import (
	"github.com/sghaida/hof/hof"
)

// Well-known species names.
const (
	SpeciesDog = "dog"
	SpeciesCat = "cat"
)

// Animal is a named member of a species.
type Animal struct {
	Name    string `yaml:"name"`
	Species string `yaml:"species"`
}

// IsDog reports whether a is a dog. The comparison is exact and case-sensitive.
func IsDog(a Animal) bool {
	return a.Species == SpeciesDog
}

// IsCat reports whether a is a cat.
func IsCat(a Animal) bool {
	return a.Species == SpeciesCat
}

// IsSpecies returns a predicate matching animals of the given species.
func IsSpecies(species string) hof.Pred[Animal] {
	return func(a Animal) bool { return a.Species == species }
}

// Dogs returns every dog in animals, in order.
func Dogs(animals []Animal) []Animal {
	return hof.Filter(animals, IsDog)
}

// OtherAnimals returns every animal that is not a dog, in order.
func OtherAnimals(animals []Animal) []Animal {
	return hof.Reject(animals, IsDog)
}

// Species returns the distinct species in animals in first-seen order.
func Species(animals []Animal) []string {
	seen := make(map[string]struct{}, len(animals))
	return hof.Reduce(animals, []string{}, func(acc []string, a Animal) []string {
		if _, ok := seen[a.Species]; ok {
			return acc
		}
		seen[a.Species] = struct{}{}
		return append(acc, a.Species)
	})
}

// SpeciesRegistry returns a registry with "dog" and "cat" plus an
// "is-<species>" predicate for every species present in animals.
func SpeciesRegistry(animals []Animal) *hof.Registry[Animal] {
	r := hof.NewRegistry[Animal]().
		ProvidePred(SpeciesDog, IsDog).
		ProvidePred(SpeciesCat, IsCat)
	for _, s := range Species(animals) {
		r.ProvidePred("is-"+s, IsSpecies(s))
	}
	return r
}
