// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// IsPlainFileName - true if the name has no directory part
func IsPlainFileName(name string) bool {
	if "" == name {
		return false
	}
	switch filepath.Dir(name) {
	case "", ".":
		return filepath.Base(name) == name
	default:
		return false
	}
}

// EnsureDirectory - make the path absolute and create the directory
// if it does not already exist
func EnsureDirectory(directory string, dirPath string) (string, error) {
	dirPath = EnsureAbsolute(directory, dirPath)
	if err := os.MkdirAll(dirPath, 0700); nil != err {
		return "", err
	}
	return dirPath, nil
}
