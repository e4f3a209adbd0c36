package footer

import "regexp"

// Pattern recognizes one historical footer shape. Each expression spans from
// its opening anchor to the first "</footer>" after it, across lines.
type Pattern struct {
	Name string
	re   *regexp.Regexp
}

// Find returns the byte span of the first match in content, or nil.
func (p Pattern) Find(content string) []int {
	return p.re.FindStringIndex(content)
}

// DefaultPatterns lists the recognized footer shapes in priority order. The
// first pattern that matches decides which block is replaced.
var DefaultPatterns = []Pattern{
	{Name: "class-footer", re: regexp.MustCompile(`(?s)<footer class="footer">.*?</footer>`)},
	{Name: "tailwind-footer", re: regexp.MustCompile(`(?s)<!-- Footer -->\s*<footer class="bg-gray-900 text-white py-16">.*?</footer>`)},
	{Name: "any-footer", re: regexp.MustCompile(`(?s)<footer[^>]*>.*?</footer>`)},
}
