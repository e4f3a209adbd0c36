// Package gitrepo answers the two questions sitekeeper asks of the git
// repository enclosing a project: which files are tracked, and whether the
// worktree has uncommitted changes that a rewrite would mix with.
package gitrepo

import (
	stderrors "errors"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/sitekeeper/internal/foundation/errors"
)

// ErrNotRepository is returned by Open when no repository encloses the path.
var ErrNotRepository = stderrors.New("not inside a git repository")

// Repo is an opened repository together with its worktree root.
type Repo struct {
	repo *git.Repository
	root string
}

// Open finds the repository containing path, walking up parent directories.
func Open(path string) (*Repo, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if stderrors.Is(err, git.ErrRepositoryNotExists) {
		return nil, ErrNotRepository
	}
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryGit, "failed to open git repository").
			WithContext("path", path).
			Build()
	}

	w, err := repo.Worktree()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryGit, "failed to get git worktree").Build()
	}

	root, err := filepath.Abs(w.Filesystem.Root())
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve worktree root").Build()
	}
	return &Repo{repo: repo, root: root}, nil
}

// Root returns the absolute worktree root.
func (r *Repo) Root() string {
	return r.root
}

// TrackedFiles returns the absolute paths of every file in the git index.
func (r *Repo) TrackedFiles() (map[string]struct{}, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryGit, "failed to read git index").Build()
	}

	tracked := make(map[string]struct{}, len(idx.Entries))
	for _, entry := range idx.Entries {
		// Index paths are repository-relative and always use forward slashes.
		tracked[filepath.Join(r.root, filepath.FromSlash(entry.Name))] = struct{}{}
	}
	return tracked, nil
}

// DirtyFiles lists tracked files with staged or unstaged modifications, relative
// to the worktree root. Untracked files are ignored.
func (r *Repo) DirtyFiles() ([]string, error) {
	w, err := r.repo.Worktree()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryGit, "failed to get git worktree").Build()
	}

	status, err := w.Status()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryGit, "failed to get git status").Build()
	}

	var dirty []string
	for file, st := range status {
		if st.Staging == git.Untracked && st.Worktree == git.Untracked {
			continue
		}
		if st.Staging != git.Unmodified || st.Worktree != git.Unmodified {
			dirty = append(dirty, filepath.FromSlash(file))
		}
	}
	sort.Strings(dirty)
	return dirty, nil
}

// RequireClean returns a git error listing the dirty files, if any.
func (r *Repo) RequireClean() error {
	dirty, err := r.DirtyFiles()
	if err != nil {
		return err
	}
	if len(dirty) == 0 {
		return nil
	}
	return errors.GitError("worktree has uncommitted changes; commit or stash them first").
		UserAction().
		WithContext("root", r.root).
		WithContext("dirty", strings.Join(dirty, ", ")).
		Build()
}
