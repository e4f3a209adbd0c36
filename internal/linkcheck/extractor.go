// Package linkcheck verifies that local links between the pages of a static
// site point at files that exist.
//
// Links are found by scanning markup for href attributes, classified without
// touching the filesystem, and only local links are checked for existence.
package linkcheck

import (
	"iter"
	"regexp"

	"golang.org/x/net/html"
)

var hrefPattern = regexp.MustCompile(`(?i)href\s*=\s*["']([^"']+)["']`)

// ExtractLinks yields every href value in content in order of appearance,
// duplicates included, with character references decoded.
func ExtractLinks(content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, m := range hrefPattern.FindAllStringSubmatchIndex(content, -1) {
			if !yield(html.UnescapeString(content[m[2]:m[3]])) {
				return
			}
		}
	}
}

// CollectLinks returns all links of content as a slice.
func CollectLinks(content string) []string {
	var links []string
	for link := range ExtractLinks(content) {
		links = append(links, link)
	}
	return links
}
