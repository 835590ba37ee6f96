package main

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureDirCreatesMissing(t *testing.T) {
	dir := path.Join(t.TempDir(), "uploads")

	ensureDir(dir)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())

	//second call on an existing directory is a no-op
	ensureDir(dir)
	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestEnsureDirMissingParent(t *testing.T) {
	dir := path.Join(t.TempDir(), "missing-parent", "uploads")

	ensureDir(dir)

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}
