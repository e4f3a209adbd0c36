package footer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitekeeper/internal/config"
	"git.home.luguber.info/inful/sitekeeper/internal/discovery"
)

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("skipping permission-dependent test when running as root")
	}
}

// writeDoc creates rel under root with content and returns it as a Document.
func writeDoc(t *testing.T, root, rel, content string) discovery.Document {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return discovery.Document{Path: path, RelPath: rel}
}

func readDoc(t *testing.T, doc discovery.Document) string {
	t.Helper()
	data, err := os.ReadFile(doc.Path)
	require.NoError(t, err)
	return string(data)
}

func footerConfig(root string) config.Footer {
	return config.Footer{
		Site:      config.Site{Root: root, Extension: ".html"},
		AssetPath: config.DefaultAssetPath,
	}
}

const classFooterPage = `<!DOCTYPE html>
<html>
<body>
    <main>Visa services</main>
    <footer class="footer">
        <p>Old footer</p>
    </footer>
    <script src="script.js"></script>
</body>
</html>
`

const tailwindFooterPage = `<html>
<body>
    <!-- Footer -->
    <footer class="bg-gray-900 text-white py-16">
        <div class="container mx-auto">
            <p>&copy; 2024</p>
        </div>
    </footer>
</body>
</html>
`
