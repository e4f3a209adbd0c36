// Package sitepath computes the relative paths a static site needs: the path
// from a page back to a shared asset, and the file a page-relative link denotes.
package sitepath

import (
	"path"
	"path/filepath"
	"strings"
)

// RelativeAssetPath returns the path from documentPath's directory to assetSubPath
// under projectRoot. The result always uses forward slashes because it is
// embedded in markup.
//
// A document living directly in projectRoot gets the bare asset sub-path.
func RelativeAssetPath(documentPath, projectRoot, assetSubPath string) (string, error) {
	asset := path.Clean(strings.TrimPrefix(filepath.ToSlash(assetSubPath), "/"))

	rel, err := filepath.Rel(filepath.Dir(documentPath), projectRoot)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return asset, nil
	}
	return path.Join(filepath.ToSlash(rel), asset), nil
}

// ResolveLocalTarget returns the cleaned filesystem path a local link denotes.
// Root-relative links ("/about.html") resolve against projectRoot, everything
// else against the document's directory. The returned path may not exist.
func ResolveLocalTarget(documentPath, link, projectRoot string) string {
	native := filepath.FromSlash(link)
	if strings.HasPrefix(link, "/") {
		return filepath.Join(projectRoot, strings.TrimLeft(native, string(filepath.Separator)))
	}
	return filepath.Join(filepath.Dir(documentPath), native)
}

// Depth reports how many directories separate documentPath from projectRoot.
// Documents outside the root report -1.
func Depth(documentPath, projectRoot string) int {
	rel, err := filepath.Rel(projectRoot, filepath.Dir(documentPath))
	if err != nil {
		return -1
	}
	rel = filepath.ToSlash(rel)
	switch {
	case rel == ".":
		return 0
	case rel == ".." || strings.HasPrefix(rel, "../"):
		return -1
	}
	return strings.Count(rel, "/") + 1
}
