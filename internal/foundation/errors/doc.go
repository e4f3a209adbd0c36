// Package errors provides the classified error primitives used across sitekeeper.
//
// Every failure the footer updater or the link verifier surfaces is a
// ClassifiedError: a category (filesystem, git, config, ...), a severity that
// decides whether the batch continues, and structured context such as the
// document path. The CLI adapter turns them into log lines and exit codes.
//
// Example usage:
//
//	err := errors.WrapError(readErr, errors.CategoryFileSystem, "failed to read document").
//		WithContext("path", doc.Path).
//		Build()
package errors
