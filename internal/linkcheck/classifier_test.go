package linkcheck

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "srv", "site")
	doc := filepath.Join(root, "services", "index.html")

	tests := []struct {
		raw        string
		wantKind   Kind
		wantTarget string
	}{
		{"https://example.com", KindExternal, ""},
		{"http://example.com/page#x", KindExternal, ""},
		{"mailto:info@example.com", KindExternal, ""},
		{"tel:+6385566248", KindExternal, ""},
		{"javascript:void(0)", KindExternal, ""},
		{"#section2", KindFragment, doc},
		{"#", KindFragment, doc},
		{"", KindFragment, doc},
		{"../about.html", KindLocal, filepath.Join(root, "about.html")},
		{"canada.html#visa", KindLocal, filepath.Join(root, "services", "canada.html")},
		{"/assets/logo.jpg", KindLocal, filepath.Join(root, "assets", "logo.jpg")},
		{"./", KindLocal, filepath.Join(root, "services")},
		{"page.html?lang=en", KindLocal, filepath.Join(root, "services", "page.html?lang=en")},
		{"//cdn.example.com/lib.js", KindLocal, filepath.Join(root, "cdn.example.com", "lib.js")},
		{"ftp://files.example.com/a", KindLocal, filepath.Join(root, "services", "ftp:", "files.example.com", "a")},
		{"HTTPS://EXAMPLE.COM", KindLocal, filepath.Join(root, "services", "HTTPS:", "EXAMPLE.COM")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Classify(doc, tt.raw, root)
			assert.Equal(t, tt.raw, got.Raw)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantTarget, got.Target)
		})
	}
}

func TestClassify_RootRelativeIgnoresDepth(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "assets", "logo.jpg")

	for _, doc := range []string{
		filepath.Join(root, "index.html"),
		filepath.Join(root, "a", "index.html"),
		filepath.Join(root, "a", "b", "c", "index.html"),
	} {
		got := Classify(doc, "/assets/logo.jpg", root)
		assert.Equal(t, KindLocal, got.Kind)
		assert.Equal(t, want, got.Target, doc)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "external", KindExternal.String())
	assert.Equal(t, "fragment", KindFragment.String())
	assert.Equal(t, "local", KindLocal.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
