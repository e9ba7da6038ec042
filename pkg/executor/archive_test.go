// Copyright (c) 2023, Luke Chambers.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package executor

import (
	"archive/tar"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type archiveEntry struct {
	name string
	body string
	mode int64
	dir  bool
}

func writeArchive(t *testing.T, path string, entries []archiveEntry) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	tw := tar.NewWriter(zw)

	for _, e := range entries {
		hdr := &tar.Header{Name: e.name, Mode: e.mode}
		if e.dir {
			hdr.Typeflag = tar.TypeDir
		} else {
			hdr.Typeflag = tar.TypeReg
			hdr.Size = int64(len(e.body))
		}
		require.NoError(t, tw.WriteHeader(hdr))
		if !e.dir {
			_, err := tw.Write([]byte(e.body))
			require.NoError(t, err)
		}
	}

	require.NoError(t, tw.Close())
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "compilers.tar.gz")
	writeArchive(t, archive, []archiveEntry{
		{name: "v0-8-0", body: "binary-1", mode: 0o755},
		{name: "nested", mode: 0o755, dir: true},
		{name: "nested/v0-7-0", body: "binary-2", mode: 0o644},
	})

	dest := filepath.Join(dir, "out")
	require.NoError(t, Extract(t.Context(), archive, dest))

	data, err := os.ReadFile(filepath.Join(dest, "v0-8-0"))
	require.NoError(t, err)
	assert.Equal(t, "binary-1", string(data))

	info, err := os.Stat(filepath.Join(dest, "v0-8-0"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	data, err = os.ReadFile(filepath.Join(dest, "nested", "v0-7-0"))
	require.NoError(t, err)
	assert.Equal(t, "binary-2", string(data))
}

func TestExtractRejectsEscapingEntries(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "evil.tar.gz")
	writeArchive(t, archive, []archiveEntry{
		{name: "../evil", body: "nope", mode: 0o644},
	})

	err := Extract(t.Context(), archive, filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes the destination directory")
}

func TestExtractRejectsSpecialEntries(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "links.tar.gz")

	f, err := os.Create(archive)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	tw := tar.NewWriter(zw)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "link",
		Typeflag: tar.TypeSymlink,
		Linkname: "/etc/passwd",
	}))
	require.NoError(t, tw.Close())
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	err = Extract(t.Context(), archive, filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestExtractMissingArchive(t *testing.T) {
	err := Extract(t.Context(), filepath.Join(t.TempDir(), "missing.tar.gz"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open the archive")
}
