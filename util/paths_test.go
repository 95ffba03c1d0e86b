// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noteprogram/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "log"), "relative")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/data", "/var/log"), "absolute")
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "./x/../log"), "clean")
}

func TestIsPlainFileName(t *testing.T) {
	assert.True(t, util.IsPlainFileName("notes"), "plain")
	assert.True(t, util.IsPlainFileName("note-ledger.log"), "plain with dot")
	assert.False(t, util.IsPlainFileName(""), "empty")
	assert.False(t, util.IsPlainFileName("data/notes"), "relative path")
	assert.False(t, util.IsPlainFileName("/notes"), "absolute path")
}

func TestEnsureDirectory(t *testing.T) {
	base, err := ioutil.TempDir("", "paths")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(base)

	d, err := util.EnsureDirectory(base, "a/b")
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, filepath.Join(base, "a", "b"), d, "wrong directory")
	assert.True(t, util.EnsureFileExists(d), "directory not created")

	// existing directory is not an error
	_, err = util.EnsureDirectory(base, "a/b")
	assert.Nil(t, err, "wrong error on second call")
}
