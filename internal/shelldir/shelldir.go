// Package shelldir locates descript.txt files in a ghost or shell tree.
package shelldir

import (
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/ukatools/descript"
)

// FileName is the name of the shell descriptor file. Matching is
// case-insensitive, as on the Windows hosts shells are made for.
const FileName = "descript.txt"

// Entry is one descriptor file found by Find.
type Entry struct {
	Dir  string // directory holding the file, slash-separated
	Path string // full path of the file
}

// Name returns the base name of the shell directory.
func (e Entry) Name() string {
	return path.Base(e.Dir)
}

// Find returns the descriptor files reachable from root: root itself,
// every root/shell/<name>/ (a ghost tree) and every root/<name>/ (a shell
// collection). Results are sorted by path and never repeat.
func Find(fs billy.Filesystem, root string) ([]Entry, error) {
	seen := map[string]bool{}
	var found []Entry

	add := func(dir string) error {
		p, ok, err := lookup(fs, dir)
		if err != nil || !ok || seen[p] {
			return err
		}
		seen[p] = true
		found = append(found, Entry{Dir: dir, Path: p})
		return nil
	}

	if err := add(root); err != nil {
		return nil, err
	}
	for _, parent := range []string{path.Join(root, "shell"), root} {
		dirs, err := subdirs(fs, parent)
		if err != nil {
			return nil, err
		}
		for _, dir := range dirs {
			if err := add(dir); err != nil {
				return nil, err
			}
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })
	return found, nil
}

// Load reads and parses the descriptor file of e with p.
func Load(fs billy.Filesystem, e Entry, p *descript.Parser) (*descript.Document, error) {
	b, err := util.ReadFile(fs, e.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", e.Path, err)
	}
	doc, err := p.ParseBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Path, err)
	}
	return doc, nil
}

// lookup returns the path of the descriptor file directly inside dir.
func lookup(fs billy.Filesystem, dir string) (string, bool, error) {
	infos, err := fs.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read dir %s: %w", dir, err)
	}
	for _, fi := range infos {
		if !fi.IsDir() && strings.EqualFold(fi.Name(), FileName) {
			return path.Join(dir, fi.Name()), true, nil
		}
	}
	return "", false, nil
}

func subdirs(fs billy.Filesystem, dir string) ([]string, error) {
	infos, err := fs.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var dirs []string
	for _, fi := range infos {
		if fi.IsDir() {
			dirs = append(dirs, path.Join(dir, fi.Name()))
		}
	}
	return dirs, nil
}
