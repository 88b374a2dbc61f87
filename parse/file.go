// Package parse is the external-collaborator layer around toml: it owns
// opening files and handing the library a clean byte source, so the
// library itself never touches the filesystem.
package parse

import (
	"fmt"
	"os"

	"github.com/dzjyyds666/gotoml/parse/toml"
	"github.com/dzjyyds666/gotoml/pkg"
)

// File opens path and parses it as a TOML document, returning the root
// Table. It fails if the file does not exist or cannot be opened; parse
// errors are returned as-is from toml.Parse.
func File(path string) (*toml.Table, error) {
	exist, err := pkg.CheckFileExist(path)
	if err != nil {
		return nil, fmt.Errorf("check file exist: %w", err)
	}
	if !exist {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	return toml.Parse(f)
}
