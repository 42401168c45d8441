package mygit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// RootDirName is the name of the metadata directory inside a work tree.
const RootDirName = ".git"

const (
	defaultHead        = "ref: refs/heads/main\n"
	defaultDescription = "Unnamed repository; edit this file to name the repository.\n"
)

// CreateRoot creates a metadata root at location/.git and returns its path.
// An empty location means the working directory. Missing parents of
// location are created.
//
// The .git directory itself is created with a single mkdir, so an existing
// repository is never merged into or overwritten: the call fails with
// ErrRootExists instead. A failure after that point leaves a partial root
// behind which callers should not reuse.
func CreateRoot(location string) (string, error) {
	if location == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("init: %w", err)
		}
		location = wd
	}

	if err := os.MkdirAll(location, 0o755); err != nil {
		return "", fmt.Errorf("init: mkdir %s: %w", location, err)
	}

	root := filepath.Join(location, RootDirName)
	if err := os.Mkdir(root, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w at %s", ErrRootExists, location)
		}
		return "", fmt.Errorf("init: mkdir %s: %w", root, err)
	}

	dirs := []string{
		filepath.Join(root, "objects"),
		filepath.Join(root, "refs", "heads"),
		filepath.Join(root, "refs", "tags"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return "", fmt.Errorf("init: mkdir %s: %w", d, err)
		}
	}

	files := []struct {
		name, content string
	}{
		{"HEAD", defaultHead},
		{"description", defaultDescription},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(root, f.name), []byte(f.content), 0o644); err != nil {
			return "", fmt.Errorf("init: write %s: %w", f.name, err)
		}
	}

	return root, nil
}

// LocateRoot looks for a .git directory in start and then in each of its
// ancestors, nearest first. An empty start means the working directory.
// The returned path is absolute. Finding nothing is not an error: ok is
// false and err is nil.
func LocateRoot(start string) (root string, ok bool, err error) {
	if start == "" {
		start = "."
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("locate root: %w", err)
	}

	for dir := abs; ; {
		candidate := filepath.Join(dir, RootDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
