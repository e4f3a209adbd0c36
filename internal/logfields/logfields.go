package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID    = "run_id"
	KeyCommand  = "command"
	KeyRoot     = "root"
	KeyDocument = "document"
	KeyDepth    = "depth"
	KeyOutcome  = "outcome"
	KeyPattern  = "pattern"
	KeyLink     = "link"
	KeyKind     = "kind"
	KeyTarget   = "target"
	KeyCount    = "count"
	KeyPath     = "path"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr      { return slog.String(KeyRunID, id) }
func Command(name string) slog.Attr  { return slog.String(KeyCommand, name) }
func Root(p string) slog.Attr        { return slog.String(KeyRoot, p) }
func Document(p string) slog.Attr    { return slog.String(KeyDocument, p) }
func Depth(n int) slog.Attr          { return slog.Int(KeyDepth, n) }
func Outcome(o string) slog.Attr     { return slog.String(KeyOutcome, o) }
func Pattern(name string) slog.Attr  { return slog.String(KeyPattern, name) }
func Link(raw string) slog.Attr      { return slog.String(KeyLink, raw) }
func Kind(k string) slog.Attr        { return slog.String(KeyKind, k) }
func Target(p string) slog.Attr      { return slog.String(KeyTarget, p) }
func Count(n int) slog.Attr          { return slog.Int(KeyCount, n) }
func Path(p string) slog.Attr        { return slog.String(KeyPath, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
