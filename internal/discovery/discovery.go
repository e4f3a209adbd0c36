// Package discovery enumerates the documents of a static site project.
package discovery

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"git.home.luguber.info/inful/sitekeeper/internal/config"
	"git.home.luguber.info/inful/sitekeeper/internal/foundation/errors"
	"git.home.luguber.info/inful/sitekeeper/internal/gitrepo"
	"git.home.luguber.info/inful/sitekeeper/internal/logfields"
)

// Document is a page under the project root.
type Document struct {
	// Path is the absolute filesystem path.
	Path string
	// RelPath is the slash-separated path relative to the project root.
	RelPath string
}

// Discover walks site.Root and returns every document with site.Extension in
// lexical order. Hidden directories and files are skipped, as are paths
// matching one of site.Excludes.
func Discover(ctx context.Context, site config.Site) ([]Document, error) {
	info, err := os.Stat(site.Root)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryNotFound, "project root does not exist").
			Fatal().
			WithContext("root", site.Root).
			Build()
	}
	if !info.IsDir() {
		return nil, errors.NotFoundError("project root is not a directory").WithContext("root", site.Root).Build()
	}

	var tracked map[string]struct{}
	if site.TrackedOnly {
		tracked, err = trackedFiles(site.Root)
		if err != nil {
			return nil, err
		}
	}

	var docs []Document
	err = filepath.WalkDir(site.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		// Skip hidden directories and files
		if path != site.Root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(site.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if rel != "." && excluded(site.Excludes, rel) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), site.Extension) {
			return nil
		}

		if tracked != nil {
			if _, ok := tracked[path]; !ok {
				slog.Debug("Skipping untracked document", logfields.Document(rel))
				return nil
			}
		}

		docs = append(docs, Document{Path: path, RelPath: rel})
		return nil
	})
	if err != nil {
		if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.WrapError(err, errors.CategoryRuntime, "document discovery interrupted").Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to walk project root").
			Fatal().
			WithContext("root", site.Root).
			Build()
	}

	slog.Debug("Discovered documents", logfields.Root(site.Root), logfields.Count(len(docs)))
	return docs, nil
}

func excluded(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func trackedFiles(root string) (map[string]struct{}, error) {
	repo, err := gitrepo.Open(root)
	if stderrors.Is(err, gitrepo.ErrNotRepository) {
		return nil, errors.WrapError(err, errors.CategoryConfig, "--tracked-only requires the project to be inside a git repository").
			Fatal().
			UserAction().
			WithContext("root", root).
			Build()
	}
	if err != nil {
		return nil, err
	}
	return repo.TrackedFiles()
}
