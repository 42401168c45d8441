package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aweris/mygit"
)

// run executes the CLI with args in dir and returns stdout.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "init")
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	require.Equal(t, "Initialized empty Git repository in "+want+"\n", out)

	head, err := os.ReadFile(filepath.Join(dir, ".git", "HEAD"))
	require.NoError(t, err)
	require.Equal(t, "ref: refs/heads/main\n", string(head))

	_, err = run(t, dir, "init")
	require.ErrorIs(t, err, mygit.ErrRootExists)
}

func TestInit_Path(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "init", "project")
	require.NoError(t, err)
	require.DirExists(t, filepath.Join(dir, "project", ".git", "objects"))
}

func TestHashObject(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(file, []byte("Hello, World!"), 0o644))

	out, err := run(t, dir, "hash-object", file)
	require.NoError(t, err)
	require.Equal(t, "b45ef6fec89518d314f546fd6c3025367b721684\n", out)

	out, err = run(t, dir, "hash-object", "--cid", file)
	require.NoError(t, err)
	require.Equal(t, "baf4bcfful33p5sevddjrj5kg7vwdajjwpnzbnba\n", out)

	// Writing needs a repository.
	_, err = run(t, dir, "hash-object", "-w", file)
	require.ErrorIs(t, err, mygit.ErrRootNotFound)

	_, err = run(t, dir, "hash-object", "-t", "tag", file)
	require.ErrorContains(t, err, "invalid object type")
}

func TestHashObjectWriteThenCatFile(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "init")
	require.NoError(t, err)

	sub := filepath.Join(dir, "src", "pkg")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	a := filepath.Join(sub, "a.txt")
	b := filepath.Join(sub, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("Hello, World!"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("second"), 0o644))

	out, err := run(t, sub, "hash-object", "-w", "-t", "commit", a, b)
	require.NoError(t, err)
	lines := strings.Fields(out)
	require.Len(t, lines, 2)
	require.Equal(t, mygit.HashObject(mygit.KindCommit, []byte("Hello, World!")).String(), lines[0])
	require.Equal(t, mygit.HashObject(mygit.KindCommit, []byte("second")).String(), lines[1])

	out, err = run(t, dir, "cat-file", "-p", lines[0])
	require.NoError(t, err)
	require.Equal(t, "Hello, World!", out)

	out, err = run(t, sub, "cat-file", "-t", lines[0])
	require.NoError(t, err)
	require.Equal(t, "commit\n", out)

	out, err = run(t, dir, "cat-file", "-s", lines[1])
	require.NoError(t, err)
	require.Equal(t, "6\n", out)

	cid, err := mygit.Digest(lines[1]).CIDString("base58btc")
	require.NoError(t, err)
	out, err = run(t, dir, "cat-file", "-p", cid)
	require.NoError(t, err)
	require.Equal(t, "second", out)
}

func TestCatFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "cat-file", "-p", strings.Repeat("a", 40))
	require.ErrorIs(t, err, mygit.ErrRootNotFound)

	_, err = run(t, dir, "init")
	require.NoError(t, err)

	_, err = run(t, dir, "cat-file", "-p", strings.Repeat("a", 40))
	require.ErrorIs(t, err, mygit.ErrObjectNotFound)

	_, err = run(t, dir, "cat-file", "-p", "zzz")
	require.ErrorIs(t, err, mygit.ErrInvalidDigest)

	_, err = run(t, dir, "cat-file", strings.Repeat("a", 40))
	require.Error(t, err, "one of -p, -t, -s is required")

	_, err = run(t, dir, "cat-file", "-p", "-t", strings.Repeat("a", 40))
	require.Error(t, err)
}
