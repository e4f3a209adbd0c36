package linkcheck

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitekeeper/internal/config"
)

// Formatter writes a verification result.
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// NewFormatter returns the formatter for format, defaulting to text.
func NewFormatter(format string) Formatter {
	switch format {
	case config.FormatJSON:
		return JSONFormatter{}
	case config.FormatYAML:
		return YAMLFormatter{}
	default:
		return TextFormatter{}
	}
}

// TextFormatter writes a human-readable report.
type TextFormatter struct{}

// Format writes per-document counts followed by a summary and the details of
// every broken link.
func (TextFormatter) Format(w io.Writer, result *Result) error {
	p := &printer{w: w}
	rule := strings.Repeat("=", 80)

	p.printf("Verifying links in: %s\n", result.Root)
	p.println(rule)
	p.printf("Found %d documents to analyze\n\n", len(result.Documents))

	for _, doc := range result.Documents {
		p.printf("Analyzing: %s\n", doc.Document)
		p.printf("  - Local links: %d\n", doc.Local)
		p.printf("  - Fragment links: %d\n", doc.Fragment)
		p.printf("  - External links: %d\n", doc.External)
		if doc.Broken > 0 {
			p.printf("  - BROKEN links: %d\n", doc.Broken)
			for _, b := range result.BrokenIn(doc.Document) {
				p.printf("    * BROKEN: %s\n", b.Link)
			}
		}
		p.println()
	}

	p.println(rule)
	p.println("VERIFICATION SUMMARY")
	p.println(rule)
	p.printf("Total documents analyzed: %d\n", len(result.Documents))
	p.printf("Total links verified: %d\n", result.TotalLinks)
	p.printf("External links (skipped): %d\n", result.External)
	p.printf("Fragment links (skipped): %d\n", result.Fragment)
	p.printf("Local links verified: %d\n", result.Local)
	p.printf("Broken links found: %d\n", len(result.Broken))
	if len(result.Unreadable) > 0 {
		p.printf("Unreadable documents: %d\n", len(result.Unreadable))
		for _, u := range result.Unreadable {
			p.printf("  ✗ %s: %s\n", u.Document, u.Error)
		}
	}
	p.println()

	if result.Passed() {
		p.println("✅ No broken links found")
		return p.err
	}

	p.println("BROKEN LINKS DETAILS:")
	p.println(strings.Repeat("-", 40))
	for _, b := range result.Broken {
		p.printf("File: %s\n", b.Document)
		p.printf("Link: %s\n", b.Link)
		p.printf("Target: %s\n", b.Target)
		p.printf("Expected path: %s\n\n", b.AbsoluteTarget)
	}
	return p.err
}

// printer remembers the first write error so the report reads top to bottom.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer) println(args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintln(p.w, args...)
	}
}

// JSONFormatter writes the result as indented JSON.
type JSONFormatter struct{}

type report struct {
	Passed     bool              `json:"passed" yaml:"passed"`
	Root       string            `json:"root" yaml:"root"`
	TotalLinks int               `json:"total_links" yaml:"total_links"`
	External   int               `json:"external" yaml:"external"`
	Fragment   int               `json:"fragment" yaml:"fragment"`
	Local      int               `json:"local" yaml:"local"`
	Documents  []DocumentSummary `json:"documents" yaml:"documents"`
	Broken     []Broken          `json:"broken" yaml:"broken"`
	Unreadable []Unreadable      `json:"unreadable,omitempty" yaml:"unreadable,omitempty"`
}

func newReport(r *Result) report {
	broken := r.Broken
	if broken == nil {
		broken = []Broken{}
	}
	return report{
		Passed:     r.Passed(),
		Root:       r.Root,
		TotalLinks: r.TotalLinks,
		External:   r.External,
		Fragment:   r.Fragment,
		Local:      r.Local,
		Documents:  r.Documents,
		Broken:     broken,
		Unreadable: r.Unreadable,
	}
}

// Format implements Formatter.
func (JSONFormatter) Format(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newReport(result))
}

// YAMLFormatter writes the result as YAML.
type YAMLFormatter struct{}

// Format implements Formatter.
func (YAMLFormatter) Format(w io.Writer, result *Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newReport(result)); err != nil {
		return err
	}
	return encoder.Close()
}
