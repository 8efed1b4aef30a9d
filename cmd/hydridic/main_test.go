// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waterXYZ = "3\nwater\nO 0 0 0\nH 0.958 0 0\nH -0.240 0.927 0\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer
	o, err := parseFlags([]string{"-config", "c.yaml", "-json", "-v", "in.xyz"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, cliOptions{configPath: "c.yaml", json: true, verbose: true, input: "in.xyz"}, o)

	_, err = parseFlags(nil, &stderr)
	require.ErrorIs(t, err, errUsage)
	_, err = parseFlags([]string{"a.xyz", "b.xyz"}, &stderr)
	require.ErrorIs(t, err, errUsage)
	_, err = parseFlags([]string{"-nope", "a.xyz"}, &stderr)
	require.Error(t, err)
}

func TestRunSummary(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{writeFile(t, "water.xyz", waterXYZ)}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "water: 3 atoms, 2 elements, 2 bonds, 1 fragments, 6 objects\n", stdout.String())
	assert.Contains(t, stderr.String(), "structure imported")
}

func TestRunJSONWithConfig(t *testing.T) {
	xyz := writeFile(t, "water.xyz", waterXYZ)
	cfg := writeFile(t, "hydridic.yaml", "collection: solvent\nskin: 0\nstyle:\n  vertices: 8\n")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-json", "-config", cfg, xyz}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var out struct {
		Report struct {
			Collection string `json:"collection"`
			Bonds      int    `json:"bonds"`
		} `json:"report"`
		Commands []struct {
			Op string `json:"op"`
		} `json:"commands"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "solvent", out.Report.Collection)
	assert.Equal(t, 2, out.Report.Bonds)
	require.NotEmpty(t, out.Commands)
	assert.Equal(t, "link_collection", out.Commands[0].Op)
}

func TestRunFailures(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), nil, &stdout, &stderr))
	assert.Equal(t, 0, run(context.Background(), []string{"-h"}, &stdout, &stderr))
	assert.Equal(t, 1, run(context.Background(), []string{filepath.Join(t.TempDir(), "missing.xyz")}, &stdout, &stderr))

	bad := writeFile(t, "bad.yaml", "skin: -1\n")
	xyz := writeFile(t, "water.xyz", waterXYZ)
	assert.Equal(t, 1, run(context.Background(), []string{"-config", bad, xyz}, &stdout, &stderr))

	conic := writeFile(t, "conic.yaml", "style: {name: conic}\n")
	assert.Equal(t, 1, run(context.Background(), []string{"-config", conic, xyz}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "not supported")
	assert.Empty(t, stdout.String())
}
