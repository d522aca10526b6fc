package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/sarthakjha889/go-prefix-trie/server"
)

func vocabFile(t *testing.T, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), args, strings.NewReader(""), &out))
	return out.String()
}

func TestRunQueries(t *testing.T) {
	path := vocabFile(t, "orca", "Orco", "oro", "orwelliano", "book")

	assert.Equal(t, "ORCO\ttrue\nbooks\tfalse\n", runCLI(t, "-vocab", path, "exact", "ORCO", "books"))
	assert.Equal(t, "or\torca orco oro orwelliano\n", runCLI(t, "-vocab", path, "complete", "or"))
	assert.Equal(t, "booklet\taccepted\tbook\t0.57\n", runCLI(t, "-vocab", path, "-ratio", "0.3", "approx", "booklet"))
	assert.Equal(t, "booklet\trejected\t\t0.57\n", runCLI(t, "-vocab", path, "approx", "booklet"))
	assert.Equal(t, "the book of orcas\tbook\n", runCLI(t, "-vocab", path, "extract", "the book of orcas"))
}

func TestRunErrors(t *testing.T) {
	path := vocabFile(t, "book")
	var out bytes.Buffer

	assert.Error(t, run(context.Background(), []string{"-vocab", path, "explode", "x"}, nil, &out))
	assert.Error(t, run(context.Background(), []string{"-vocab", path, "exact"}, nil, &out))
	assert.Error(t, run(context.Background(), []string{"-vocab", path, "-ratio", "3", "approx", "x"}, nil, &out))
	assert.Error(t, run(context.Background(), []string{"-vocab", filepath.Join(t.TempDir(), "nope"), "exact", "x"}, nil, &out))
}

func TestRunServe(t *testing.T) {
	path := vocabFile(t, "book")

	var in, out bytes.Buffer
	require.NoError(t, msgpack.NewEncoder(&in).Encode(server.Request{ID: "1", Op: "exact", Word: "Book"}))
	require.NoError(t, run(context.Background(), []string{"-vocab", path, "-serve"}, &in, &out))

	dec := msgpack.NewDecoder(&out)
	var ready, resp server.Response
	require.NoError(t, dec.Decode(&ready))
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "ready", ready.Status)
	assert.Equal(t, "1", resp.ID)
	assert.True(t, resp.Found)
}
