package build

import (
	"io/fs"
	"os"
	"path/filepath"
)

// RecordFilename is the exact name a resume data file must have to be
// discovered.
const RecordFilename = "resume.json"

// Discover walks root recursively and returns the path of every file named
// exactly RecordFilename, in lexical walk order so builds are
// deterministic. A missing or unreadable root fails with a discovery
// error; an unreadable subdirectory inside the tree is also fatal, since
// silently skipping it would hide records.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, NewError(KindDiscovery, "source root is not readable: "+root, err)
	}
	if !info.IsDir() {
		return nil, NewError(KindDiscovery, "source root is not a directory: "+root, nil)
	}

	var records []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if d.Name() == RecordFilename {
			records = append(records, path)
		}
		return nil
	})
	if err != nil {
		return nil, NewError(KindDiscovery, "source tree walk failed", err)
	}
	return records, nil
}
