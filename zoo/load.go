package zoo

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrMissingSpecies is returned by Load when an entry has no species.
var ErrMissingSpecies = errors.New("zoo: animal has no species")

type document struct {
	Animals []Animal `yaml:"animals"`
}

// Load decodes a YAML stream of documents of the form
//
//	animals:
//	  - name: Rex
//	    species: dog
//
// Animals from every document (separated by ---) are concatenated in order.
// An empty stream yields an empty, non-nil slice.
func Load(r io.Reader) ([]Animal, error) {
	dec := yaml.NewDecoder(r)
	animals := []Animal{}
	for n := 0; ; n++ {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("zoo: decode document %d: %w", n, err)
		}
		animals = append(animals, doc.Animals...)
	}
	for i, a := range animals {
		if a.Species == "" {
			return nil, fmt.Errorf("%w (index %d, name %q)", ErrMissingSpecies, i, a.Name)
		}
	}
	return animals, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) ([]Animal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("zoo: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
