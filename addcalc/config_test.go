package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestParseYAMLConfig(t *testing.T) {
	t.Parallel()

	got := map[string]string{}
	set := func(name, value string) error {
		got[name] = value
		return nil
	}

	err := parseYAMLConfig(strings.NewReader("color: never\ncomma: true\nprompt: '>> '\n"), set)
	assert.NilError(t, err)
	assert.DeepEqual(t, got, map[string]string{"color": "never", "comma": "true", "prompt": ">> "})

	assert.NilError(t, parseYAMLConfig(strings.NewReader(""), set))

	err = parseYAMLConfig(strings.NewReader("color:\n  name: red\n"), set)
	assert.ErrorContains(t, err, "nested values are not supported")
}

func TestRealMain_configFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "addcalc.yaml")
	assert.NilError(t, os.WriteFile(path, []byte("color: never\ncomma: true\n"), 0o600))

	var stdout, stderr bytes.Buffer
	err := realMain(context.Background(), strings.NewReader(""), &stdout, &stderr,
		[]string{"addcalc", "-config", path, "expr", "1000000+2000000"})
	assert.NilError(t, err, stderr.String())
	assert.Equal(t, stdout.String(), "Result: 3,000,000\n")
}
