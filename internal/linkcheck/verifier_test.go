package linkcheck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitekeeper/internal/config"
	"git.home.luguber.info/inful/sitekeeper/internal/foundation/errors"
	"git.home.luguber.info/inful/sitekeeper/internal/metrics"
)

type countingRecorder struct {
	metrics.NoopRecorder
	kinds   map[string]int
	broken  int
	docErrs int
}

func (r *countingRecorder) IncLinkKind(kind string) {
	if r.kinds == nil {
		r.kinds = map[string]int{}
	}
	r.kinds[kind]++
}

func (r *countingRecorder) IncBrokenLink() { r.broken++ }

func (r *countingRecorder) IncDocumentError(string) { r.docErrs++ }

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func verifyConfig(root string) config.Verify {
	return config.Verify{
		Site:   config.Site{Root: root, Extension: ".html"},
		Format: config.FormatText,
	}
}

func TestVerifyProject_ReportsMissingTarget(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.html", `<a href="missing.html">gone</a>`)

	result, err := NewVerifier(verifyConfig(root)).VerifyProject(context.Background())
	require.NoError(t, err)

	assert.False(t, result.Passed())
	require.Len(t, result.Broken, 1)
	assert.Equal(t, Broken{
		Document:       "a.html",
		Link:           "missing.html",
		Target:         "missing.html",
		AbsoluteTarget: filepath.Join(root, "missing.html"),
	}, result.Broken[0])
}

func TestVerifyProject_ExistingTargetPasses(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.html", `<a href="existing.html">here</a>`)
	writeFile(t, root, "existing.html", `<p>hi</p>`)

	result, err := NewVerifier(verifyConfig(root)).VerifyProject(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Passed())
	assert.Empty(t, result.Broken)
	assert.Equal(t, 1, result.Local)
}

func TestVerifyProject_FullEnumeration(t *testing.T) {
	root := t.TempDir()
	const n = 7
	for i := range n {
		writeFile(t, root, fmt.Sprintf("section%d/page.html", i), fmt.Sprintf(`<a href="../nope%d.html">x</a>`, i))
	}

	result, err := NewVerifier(verifyConfig(root)).VerifyProject(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.Documents, n)
	assert.Len(t, result.Broken, n)
	for i := range n {
		assert.Equal(t, fmt.Sprintf("nope%d.html", i), result.Broken[i].Target)
	}
}

func TestVerifyProject_CountsAndPartition(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "assets/logo.jpg", "jpg")
	writeFile(t, root, "about/index.html", "")
	writeFile(t, root, "services/visa/index.html", `
<link href="/assets/logo.jpg">
<a href="../../about/">About</a>
<a href="#apply">Apply</a>
<a href="https://www.cicnews.com/">News</a>
<a href="mailto:intl@example.com">Mail</a>
<a href="../missing.html#x">Missing</a>
<a href="../missing.html#x">Missing again</a>
`)
	rec := &countingRecorder{}

	result, err := NewVerifier(verifyConfig(root)).WithRecorder(rec).VerifyProject(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, result.TotalLinks)
	assert.Equal(t, 2, result.External)
	assert.Equal(t, 1, result.Fragment)
	assert.Equal(t, 4, result.Local)
	assert.Equal(t, result.TotalLinks, result.External+result.Fragment+result.Local)

	require.Len(t, result.Broken, 2, "duplicates are reported once per occurrence")
	assert.Equal(t, "services/missing.html", result.Broken[0].Target)
	assert.Equal(t, "../missing.html#x", result.Broken[0].Link)

	assert.Equal(t, map[string]int{"external": 2, "fragment": 1, "local": 4}, rec.kinds)
	assert.Equal(t, 2, rec.broken)

	var visa DocumentSummary
	for _, d := range result.Documents {
		if d.Document == "services/visa/index.html" {
			visa = d
		}
	}
	assert.Equal(t, 2, visa.Broken)
	assert.Len(t, result.BrokenIn("services/visa/index.html"), 2)
	assert.Empty(t, result.BrokenIn("about/index.html"))
}

func TestVerifyProject_UnreadableDocumentContinues(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "bad.html", "<a href=\"x.html\">\xff</a>")
	writeFile(t, root, "good.html", `<a href="missing.html">m</a>`)
	rec := &countingRecorder{}

	result, err := NewVerifier(verifyConfig(root)).WithRecorder(rec).VerifyProject(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Unreadable, 1)
	assert.Equal(t, "bad.html", result.Unreadable[0].Document)
	assert.Contains(t, result.Unreadable[0].Error, "UTF-8")
	assert.Len(t, result.Documents, 2)
	require.Len(t, result.Broken, 1)
	assert.Equal(t, "good.html", result.Broken[0].Document)
	assert.Equal(t, 1, rec.docErrs)
}

func TestVerifyProject_MissingRoot(t *testing.T) {
	_, err := NewVerifier(verifyConfig(filepath.Join(t.TempDir(), "nope"))).VerifyProject(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))
}

func TestVerifyProject_Canceled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.html", `<a href="b.html">b</a>`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewVerifier(verifyConfig(root)).VerifyProject(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
