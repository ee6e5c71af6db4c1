package catalog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/parser"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func heringPage(title, body string) string {
	return "<html><head><title>" + title + "</title></head><body>\n" + body + "\n</body></html>"
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// heringSource returns a bracketed-format source over a fresh directory.
func heringSource(t *testing.T, cached bool) Source {
	t.Helper()
	f, err := parser.ForFormat(parser.FormatBracketed)
	require.NoError(t, err)
	return Source{
		ID:         "hering",
		Dir:        t.TempDir(),
		FormatName: parser.FormatBracketed,
		Format:     f,
		Cached:     cached,
	}
}
