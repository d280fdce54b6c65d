package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, source string) *Inventory {
	t.Helper()
	p := NewTreeSitterParser()
	t.Cleanup(func() { _ = p.Close() })

	inv, err := p.Parse(context.Background(), "test.py", []byte(source))
	require.NoError(t, err)
	return inv
}

func TestParse_FunctionsAndClasses(t *testing.T) {
	inv := parseSource(t, `
def top_level():
    pass

class Widget:
    def method(self):
        def closure():
            pass
        return closure

class Other:
    pass
`)

	assert.Equal(t, []string{"top_level", "method", "closure"}, inv.Functions)
	assert.Equal(t, []string{"Widget", "Other"}, inv.Classes)
}

func TestParse_ImportStatements(t *testing.T) {
	inv := parseSource(t, `
import os
import json, hashlib
import numpy as np
import a.b.c
`)

	assert.Equal(t, []string{"os", "json", "hashlib", "numpy", "a.b.c"}, inv.Imports)
}

func TestParse_FromImports(t *testing.T) {
	inv := parseSource(t, `
from os import path
from collections import OrderedDict, defaultdict
from numpy import array as arr
`)

	assert.Equal(t, []string{
		"os.path",
		"collections.OrderedDict",
		"collections.defaultdict",
		"numpy.array",
	}, inv.Imports)
}

func TestParse_RelativeFromImports(t *testing.T) {
	inv := parseSource(t, `
from . import b
from .sibling import helper
from ..pkg import thing
`)

	assert.Equal(t, []string{".b", ".sibling.helper", "..pkg.thing"}, inv.Imports)
}

func TestParse_WildcardImport(t *testing.T) {
	inv := parseSource(t, "from os.path import *\n")

	assert.Equal(t, []string{"os.path.*"}, inv.Imports)
}

func TestParse_LOCAndSource(t *testing.T) {
	source := "import os\n\nx = 1\n"
	inv := parseSource(t, source)

	assert.Equal(t, "test.py", inv.Path)
	assert.Equal(t, 4, inv.LOC)
	assert.Equal(t, source, inv.Source)
}

func TestParse_EmptyFile(t *testing.T) {
	inv := parseSource(t, "")

	assert.Equal(t, 0, inv.LOC)
	assert.Empty(t, inv.Functions)
	assert.Empty(t, inv.Classes)
	assert.Empty(t, inv.Imports)
}

func TestParse_SyntaxErrorIsUnparseable(t *testing.T) {
	p := NewTreeSitterParser()
	t.Cleanup(func() { _ = p.Close() })

	_, err := p.Parse(context.Background(), "bad.py", []byte("def broken(:\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnparseable))
}

func TestParse_InvalidUTF8IsUnreadable(t *testing.T) {
	p := NewTreeSitterParser()
	t.Cleanup(func() { _ = p.Close() })

	_, err := p.Parse(context.Background(), "bin.py", []byte{0xff, 0xfe, 0x00})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadable))
}
