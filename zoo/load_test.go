package zoo_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sghaida/hof/zoo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadFile_Fixture verifies the testdata document decodes in order.
func TestLoadFile_Fixture(t *testing.T) {
	t.Parallel()

	got, err := zoo.LoadFile(filepath.Join("testdata", "animals.yaml"))
	require.NoError(t, err)

	if diff := cmp.Diff(fixture(), got); diff != "" {
		t.Errorf("LoadFile mismatch (-want +got):\n%s", diff)
	}
}

// TestLoad_Empty verifies an empty document yields an empty, non-nil slice.
func TestLoad_Empty(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "animals: []\n", "other: 1\n"} {
		got, err := zoo.Load(strings.NewReader(in))
		require.NoError(t, err, "input %q", in)
		require.NotNil(t, got)
		assert.Empty(t, got)
	}
}

// TestLoad_MissingSpecies verifies entries without a species are rejected with their index.
func TestLoad_MissingSpecies(t *testing.T) {
	t.Parallel()

	in := "animals:\n  - name: Rex\n    species: dog\n  - name: Ghost\n"
	_, err := zoo.Load(strings.NewReader(in))
	require.Error(t, err)
	assert.True(t, errors.Is(err, zoo.ErrMissingSpecies))
	assert.Contains(t, err.Error(), "index 1")
	assert.Contains(t, err.Error(), `"Ghost"`)
}

// TestLoad_MultipleDocuments verifies every document in the stream contributes, in order.
func TestLoad_MultipleDocuments(t *testing.T) {
	t.Parallel()

	in := `animals:
  - name: Rex
    species: dog
---
animals:
  - name: Tom
    species: cat
---
animals:
  - name: Ghost
`
	_, err := zoo.Load(strings.NewReader(in))
	require.ErrorIs(t, err, zoo.ErrMissingSpecies)
	assert.Contains(t, err.Error(), "index 2")

	got, err := zoo.Load(strings.NewReader("animals:\n  - {name: Rex, species: dog}\n---\nanimals:\n  - {name: Tom, species: cat}\n"))
	require.NoError(t, err)
	want := []zoo.Animal{{Name: "Rex", Species: "dog"}, {Name: "Tom", Species: "cat"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

// TestLoad_InvalidYAML verifies decode failures are wrapped.
func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := zoo.Load(strings.NewReader("animals: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zoo: decode")
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := zoo.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zoo: open")
}
