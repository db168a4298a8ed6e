package main

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindGoldenPackages(t *testing.T) {
	fsys := fstest.MapFS{
		"go.mod":                                    {},
		"upset/testdata/chart.golden.json":          {},
		"upset/testdata/other.golden.json":          {},
		"chartfile/testdata/chart.yaml":             {},
		"cmd/upset/commands/testdata/x.golden.json": {},
		"_examples/foo/testdata/a.golden.json":      {},
		".git/testdata/b.golden.json":               {},
		"set/set.go":                                {},
	}

	pkgs, err := findGoldenPackages(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"cmd/upset/commands", "upset"}, pkgs)
}
