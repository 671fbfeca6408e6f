package contactsheet

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/contactsheet/internal/fsys"
)

// ResultName is the file written into every directory that has images.
const ResultName = "Result.tiff"

// imageExtensions is the qualifying-image allow-list, lowercased with the
// leading dot.
var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// IsQualifying reports whether a file name has an allowed image extension.
// The comparison is case-insensitive.
func IsQualifying(name string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// DirectoryNode is the result of listing one directory.
type DirectoryNode struct {
	// Path is the directory path inside the run's filesystem.
	Path string

	// Depth is 0 for the root.
	Depth int

	// Images holds qualifying files sorted by name.
	Images []string

	// Children holds subdirectories sorted by name.
	Children []string
}

// scanDir lists dir once and classifies its entries. A symlink counts as an
// image when it resolves to a regular file with a qualifying name; linked
// directories are never descended into. Broken links, special files and
// non-image files are ignored.
func scanDir(fs *fsys.FS, dir string, depth int) (*DirectoryNode, error) {
	infos, err := fs.ReadDir(dir)
	if err != nil {
		return nil, classify("scan", KindFilesystem, dir, err)
	}

	node := &DirectoryNode{Path: dir, Depth: depth}
	for _, fi := range infos {
		path := fs.Join(dir, fi.Name())
		switch {
		case fi.IsDir():
			node.Children = append(node.Children, path)
		case !IsQualifying(fi.Name()):
		case fi.Mode().IsRegular():
			node.Images = append(node.Images, path)
		case fi.Mode()&os.ModeSymlink != 0:
			if target, err := fs.Stat(path); err == nil && target.Mode().IsRegular() {
				node.Images = append(node.Images, path)
			}
		}
	}

	Logger().Debug("scan",
		"dir", dir,
		"depth", depth,
		"images", len(node.Images),
		"children", len(node.Children))
	return node, nil
}
