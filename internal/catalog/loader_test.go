package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/parser"
)

func TestLoader_LoadInFilenameOrder(t *testing.T) {
	src := heringSource(t, false)
	writeFile(t, src.Dir, "b-bryonia.htm", heringPage("Bryonia. Guiding Symptoms",
		"MIND. [1]\nIrritable.\nHEAD. [2]\nBursting pain."))
	writeFile(t, src.Dir, "a-aconite.HTML", heringPage("Aconite. Guiding Symptoms",
		"MIND. [1]\nFear of death."))
	writeFile(t, src.Dir, "notes.txt", "MIND. [1]\nignored")
	require.NoError(t, os.Mkdir(filepath.Join(src.Dir, "nested.htm"), 0o755))

	corpus, err := NewLoader(2, discardLogger()).Load(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, "hering", corpus.Source)
	require.Len(t, corpus.Remedies, 2)
	assert.Equal(t, "Aconite.", corpus.Remedies[0].Name)
	assert.Equal(t, "Bryonia.", corpus.Remedies[1].Name)
	assert.Equal(t, 3, corpus.SectionCount())

	mind := corpus.Remedy("Aconite.").Sections[0]
	assert.Equal(t, "MIND", mind.Heading)
	assert.Equal(t, "MIND. [1] Fear of death.", mind.Content)
}

func TestLoader_SameRemedyAcrossFilesMerges(t *testing.T) {
	src := heringSource(t, false)
	writeFile(t, src.Dir, "1.htm", heringPage("Sulphur. Part one", "SKIN. [1]\nItching."))
	writeFile(t, src.Dir, "2.htm", heringPage("Sulphur. Part two", "SKIN. [1]\nBurning."))

	corpus, err := NewLoader(4, discardLogger()).Load(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, corpus.Remedies, 1)
	assert.Len(t, corpus.Remedies[0].Sections, 2)
}

func TestLoader_EmptyDirectory(t *testing.T) {
	corpus, err := NewLoader(1, discardLogger()).Load(context.Background(), heringSource(t, false))
	require.NoError(t, err)
	assert.Empty(t, corpus.Remedies)
}

func TestLoader_MissingDirectory(t *testing.T) {
	src := heringSource(t, false)
	src.Dir = filepath.Join(src.Dir, "absent")

	_, err := NewLoader(1, discardLogger()).Load(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read source dir")
}

func TestLoader_DecodeFailureFailsLoad(t *testing.T) {
	f, err := parser.ForFormat(parser.FormatDashedHeader)
	require.NoError(t, err)
	src := Source{ID: "boericke", Dir: t.TempDir(), FormatName: parser.FormatDashedHeader, Format: f}
	writeFile(t, src.Dir, "broken.docx", "not a zip archive")

	_, err = NewLoader(2, discardLogger()).Load(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
	assert.Contains(t, err.Error(), "broken.docx")
}

func TestLoader_CancelledContext(t *testing.T) {
	src := heringSource(t, false)
	writeFile(t, src.Dir, "a.htm", heringPage("Aconite.", "MIND. [1]\nFear."))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLoader(1, discardLogger()).Load(ctx, src)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewLoader_MinimumOneWorker(t *testing.T) {
	assert.Equal(t, 1, NewLoader(0, discardLogger()).workers)
	assert.Equal(t, 1, NewLoader(-3, discardLogger()).workers)
}
