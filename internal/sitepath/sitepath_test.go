package sitepath

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeAssetPath(t *testing.T) {
	root := filepath.FromSlash("/srv/site")

	tests := []struct {
		name     string
		document string
		want     string
	}{
		{"root document", "/srv/site/index.html", "assets/logo.jpg"},
		{"one level deep", "/srv/site/services/visa.html", "../assets/logo.jpg"},
		{"two levels deep", "/srv/site/services/canada/work.html", "../../assets/logo.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RelativeAssetPath(filepath.FromSlash(tt.document), root, "assets/logo.jpg")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, `\`)
		})
	}
}

func TestRelativeAssetPath_NormalizesAssetSubPath(t *testing.T) {
	root := filepath.FromSlash("/srv/site")

	got, err := RelativeAssetPath(filepath.FromSlash("/srv/site/index.html"), root, "./assets/logo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "assets/logo.jpg", got)

	got, err = RelativeAssetPath(filepath.FromSlash("/srv/site/a/index.html"), root, "/assets/logo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "../assets/logo.jpg", got)
}

func TestRelativeAssetPath_MixedAbsoluteAndRelative(t *testing.T) {
	_, err := RelativeAssetPath("relative/index.html", filepath.FromSlash("/srv/site"), "assets/logo.jpg")
	assert.Error(t, err)
}

func TestResolveLocalTarget(t *testing.T) {
	root := filepath.FromSlash("/srv/site")
	doc := filepath.FromSlash("/srv/site/blog/2024/post.html")

	tests := []struct {
		name string
		link string
		want string
	}{
		{"sibling", "other.html", "/srv/site/blog/2024/other.html"},
		{"dot segment", "./other.html", "/srv/site/blog/2024/other.html"},
		{"parent traversal", "../../about.html", "/srv/site/about.html"},
		{"root relative", "/assets/logo.jpg", "/srv/site/assets/logo.jpg"},
		{"root relative with double slash", "//assets/logo.jpg", "/srv/site/assets/logo.jpg"},
		{"root itself", "/", "/srv/site"},
		{"escapes root", "../../../../etc/passwd", "/etc/passwd"},
		{"directory", "images/", "/srv/site/blog/2024/images"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), ResolveLocalTarget(doc, tt.link, root))
		})
	}
}

func TestResolveLocalTarget_RootRelativeIgnoresDepth(t *testing.T) {
	root := filepath.FromSlash("/srv/site")
	want := filepath.FromSlash("/srv/site/assets/logo.jpg")

	for _, doc := range []string{"/srv/site/index.html", "/srv/site/a/b.html", "/srv/site/a/b/c/d.html"} {
		assert.Equal(t, want, ResolveLocalTarget(filepath.FromSlash(doc), "/assets/logo.jpg", root), doc)
	}
}

func TestDepth(t *testing.T) {
	root := filepath.FromSlash("/srv/site")

	assert.Equal(t, 0, Depth(filepath.FromSlash("/srv/site/index.html"), root))
	assert.Equal(t, 1, Depth(filepath.FromSlash("/srv/site/a/index.html"), root))
	assert.Equal(t, 3, Depth(filepath.FromSlash("/srv/site/a/b/c/index.html"), root))
	assert.Equal(t, -1, Depth(filepath.FromSlash("/srv/other/index.html"), root))
}
