package linkcheck

// Broken is a local link whose target does not exist.
type Broken struct {
	Document       string `json:"document" yaml:"document"`
	Link           string `json:"link" yaml:"link"`
	Target         string `json:"target" yaml:"target"`
	AbsoluteTarget string `json:"absolute_target" yaml:"absolute_target"`
}

// DocumentSummary holds the link counts of one document.
type DocumentSummary struct {
	Document string `json:"document" yaml:"document"`
	Links    int    `json:"links" yaml:"links"`
	External int    `json:"external" yaml:"external"`
	Fragment int    `json:"fragment" yaml:"fragment"`
	Local    int    `json:"local" yaml:"local"`
	Broken   int    `json:"broken" yaml:"broken"`
}

// Unreadable is a document that could not be read and was skipped.
type Unreadable struct {
	Document string `json:"document" yaml:"document"`
	Error    string `json:"error" yaml:"error"`
}

// Result is the outcome of verifying a whole project.
type Result struct {
	Root       string
	Documents  []DocumentSummary
	TotalLinks int
	External   int
	Fragment   int
	Local      int
	Broken     []Broken
	Unreadable []Unreadable
}

// Passed reports whether no broken link was found.
func (r *Result) Passed() bool {
	return len(r.Broken) == 0
}

// BrokenIn returns the broken links found in document, in discovery order.
func (r *Result) BrokenIn(document string) []Broken {
	var out []Broken
	for _, b := range r.Broken {
		if b.Document == document {
			out = append(out, b)
		}
	}
	return out
}

func (r *Result) addSummary(s DocumentSummary) {
	r.Documents = append(r.Documents, s)
	r.TotalLinks += s.Links
	r.External += s.External
	r.Fragment += s.Fragment
	r.Local += s.Local
}
