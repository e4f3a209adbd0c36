// Package config holds the invocation-time settings of the sitekeeper commands.
// Values come from command-line flags only; there is no configuration file.
package config

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"git.home.luguber.info/inful/sitekeeper/internal/foundation/errors"
)

// Defaults used when a flag is left empty.
const (
	DefaultExtension = ".html"
	DefaultAssetPath = "assets/logo.jpg"
	DefaultFormat    = FormatText
)

// Report formats understood by the verify command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var extensionPattern = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)

// Site describes which documents of a project a command operates on.
type Site struct {
	// Root is the project root. Relative values are made absolute by Normalize.
	Root string
	// Extension selects documents by file suffix (".html").
	Extension string
	// Excludes are doublestar globs matched against root-relative slash paths.
	Excludes []string
	// TrackedOnly restricts documents to files tracked by the enclosing git repository.
	TrackedOnly bool
}

// Normalize fills defaults and resolves Root to an absolute, clean path.
func (s *Site) Normalize() error {
	if strings.TrimSpace(s.Root) == "" {
		s.Root = "."
	}
	abs, err := filepath.Abs(s.Root)
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "failed to resolve project root").
			WithContext("root", s.Root).
			Fatal().
			Build()
	}
	s.Root = abs

	if s.Extension == "" {
		s.Extension = DefaultExtension
	}
	if !strings.HasPrefix(s.Extension, ".") {
		s.Extension = "." + s.Extension
	}
	return nil
}

// Validate checks the site settings.
func (s *Site) Validate() error {
	err := validation.ValidateStruct(s,
		validation.Field(&s.Root, validation.Required),
		validation.Field(&s.Extension, validation.Required, validation.Match(extensionPattern)),
		validation.Field(&s.Excludes, validation.Each(validation.By(validGlob))),
	)
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid site settings").Fatal().UserAction().Build()
	}
	return nil
}

func validGlob(value any) error {
	pattern, _ := value.(string)
	if !doublestar.ValidatePattern(pattern) {
		return validation.NewError("validation_glob_invalid", "must be a valid glob pattern")
	}
	return nil
}

// Footer configures the footer updater.
type Footer struct {
	Site
	// AssetPath is the root-relative path of the logo the footer references.
	AssetPath string
	// DryRun computes outcomes without writing documents.
	DryRun bool
	// RequireClean refuses to run when the git worktree has uncommitted changes.
	RequireClean bool
}

// Normalize applies site defaults and the default asset path.
func (f *Footer) Normalize() error {
	if err := f.Site.Normalize(); err != nil {
		return err
	}
	if f.AssetPath == "" {
		f.AssetPath = DefaultAssetPath
	}
	f.AssetPath = strings.TrimPrefix(filepath.ToSlash(f.AssetPath), "/")
	return nil
}

// Validate checks the footer settings.
func (f *Footer) Validate() error {
	if err := f.Site.Validate(); err != nil {
		return err
	}
	err := validation.ValidateStruct(f,
		validation.Field(&f.AssetPath, validation.Required, validation.By(relativeSlashPath)),
	)
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid footer settings").Fatal().UserAction().Build()
	}
	return nil
}

func relativeSlashPath(value any) error {
	p, _ := value.(string)
	if strings.HasPrefix(p, "../") || p == ".." {
		return validation.NewError("validation_path_escapes_root", "must stay inside the project root")
	}
	return nil
}

// Verify configures the link verifier.
type Verify struct {
	Site
	// Format selects the report format (text, json, yaml).
	Format string
}

// Normalize applies site defaults and the default report format.
func (v *Verify) Normalize() error {
	if err := v.Site.Normalize(); err != nil {
		return err
	}
	if v.Format == "" {
		v.Format = DefaultFormat
	}
	v.Format = strings.ToLower(v.Format)
	return nil
}

// Validate checks the verify settings.
func (v *Verify) Validate() error {
	if err := v.Site.Validate(); err != nil {
		return err
	}
	err := validation.ValidateStruct(v,
		validation.Field(&v.Format, validation.Required, validation.In(FormatText, FormatJSON, FormatYAML)),
	)
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid verify settings").Fatal().UserAction().Build()
	}
	return nil
}
