// Copyright 2019 The Hugo Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hugofs provides the file systems used by the build.
package hugofs

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/sunwei/siteconf/config"
	"github.com/sunwei/siteconf/log"
)

// Os points to the (real) Os filesystem.
var Os = &afero.OsFs{}

// Defaults for the directory settings, relative to the working dir.
const (
	DefaultContentDir = "content"
	DefaultPublishDir = "public"
)

// Fs holds the core filesystems used by the build.
type Fs struct {
	// Source is the source file system.
	// Note that this will always be a "plain" Afero filesystem:
	// * afero.OsFs when running in production
	// * afero.MemMapFs for many of the tests.
	Source afero.Fs

	// PublishDir is where the rendered site is written.
	// It's mounted inside publishDir (default /public).
	PublishDir afero.Fs

	// WorkingDirReadOnly is a read-only file system
	// restricted to the project working dir.
	WorkingDirReadOnly afero.Fs
}

// NewDefault creates a new Fs with the OS file system
// as source and destination file systems.
func NewDefault(cfg config.Provider) *Fs {
	return newFs(Os, Os, cfg)
}

// NewFrom creates a new Fs based on the provided Afero Fs
// as source and destination file systems.
// Useful for testing.
func NewFrom(fs afero.Fs, cfg config.Provider) *Fs {
	return newFs(fs, fs, cfg)
}

func newFs(source, destination afero.Fs, cfg config.Provider) *Fs {
	cfg.SetDefaults(map[string]any{
		"publishDir": DefaultPublishDir,
		"contentDir": DefaultContentDir,
	})
	workingDir := cfg.GetString("workingDir")
	publishDir := cfg.GetString("publishDir")

	absPublishDir := AbsPathify(workingDir, publishDir)

	// Make sure we always have the /public folder ready to use.
	if err := source.MkdirAll(absPublishDir, 0777); err != nil && !os.IsExist(err) {
		panic(err)
	}
	log.Process("newFs", "create /public folder")

	log.Process("newFs", "new base path fs &BasePathFs{}")
	pubFs := afero.NewBasePathFs(destination, absPublishDir)

	return &Fs{
		Source:             source,
		PublishDir:         pubFs,
		WorkingDirReadOnly: getWorkingDirFsReadOnly(source, workingDir),
	}
}

// AbsPathify creates an absolute path if given a relative path. If already
// absolute, the path is just cleaned.
func AbsPathify(workingDir, inPath string) string {
	if filepath.IsAbs(inPath) {
		return filepath.Clean(inPath)
	}
	return filepath.Join(workingDir, inPath)
}

func getWorkingDirFsReadOnly(base afero.Fs, workingDir string) afero.Fs {
	if workingDir == "" {
		return afero.NewReadOnlyFs(base)
	}
	return afero.NewBasePathFs(afero.NewReadOnlyFs(base), workingDir)
}
