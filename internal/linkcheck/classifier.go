package linkcheck

import (
	"strings"

	"git.home.luguber.info/inful/sitekeeper/internal/sitepath"
)

// Kind partitions links by how they are verified.
type Kind int

const (
	// KindExternal links use a scheme outside the site and are never resolved.
	KindExternal Kind = iota
	// KindFragment links point into the document that contains them.
	KindFragment
	// KindLocal links resolve to a path under the project and are checked on disk.
	KindLocal
)

func (k Kind) String() string {
	switch k {
	case KindExternal:
		return "external"
	case KindFragment:
		return "fragment"
	case KindLocal:
		return "local"
	default:
		return "unknown"
	}
}

// ExternalPrefixes lists the link prefixes treated as external. Protocol-relative
// links and other schemes are not listed and resolve as local paths.
var ExternalPrefixes = []string{"http://", "https://", "mailto:", "tel:", "javascript:"}

// ClassifiedLink is a raw link together with its kind and, for local and
// fragment links, the absolute path it binds to.
type ClassifiedLink struct {
	Raw    string
	Kind   Kind
	Target string
}

// Classify determines the kind of raw as found in documentPath. It performs no I/O.
func Classify(documentPath, raw, projectRoot string) ClassifiedLink {
	link := stripFragment(raw)
	if link == "" {
		return ClassifiedLink{Raw: raw, Kind: KindFragment, Target: documentPath}
	}
	if isExternal(raw) {
		return ClassifiedLink{Raw: raw, Kind: KindExternal}
	}
	return ClassifiedLink{
		Raw:    raw,
		Kind:   KindLocal,
		Target: sitepath.ResolveLocalTarget(documentPath, link, projectRoot),
	}
}

func isExternal(link string) bool {
	for _, prefix := range ExternalPrefixes {
		if strings.HasPrefix(link, prefix) {
			return true
		}
	}
	return false
}

func stripFragment(link string) string {
	before, _, _ := strings.Cut(link, "#")
	return before
}
