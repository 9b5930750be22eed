package upload

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hawkerhero/internal/errors"
)

// 1x1 transparent PNG
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(FieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	_, fh, err := req.FormFile(FieldName)
	require.NoError(t, err)
	return fh
}

func TestStore_SaveImage(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(filepath.Join(dir, "images"))
	require.NoError(t, err)

	name, err := store.Save(fileHeader(t, "../../Chicken Rice!.PNG", tinyPNG))

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "-chicken-rice.png"), name)
	assert.NotContains(t, name, "/")
	stored, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, tinyPNG, stored)
}

func TestStore_RejectsNonImage(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(fileHeader(t, "evil.png", []byte("<?php echo 'hi'; ?>")))

	ve, ok := errors.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, FieldName, ve.Field)
	entries, _ := os.ReadDir(store.Dir())
	assert.Empty(t, entries)
}

func TestStore_WriteFailureLeavesNoFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	src := io.MultiReader(bytes.NewReader(tinyPNG[:16]), iotest.ErrReader(assert.AnError))
	err = store.write("half.png", src)

	assert.ErrorIs(t, err, assert.AnError)
	entries, _ := os.ReadDir(store.Dir())
	assert.Empty(t, entries)
}

func TestStore_Remove(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	name, err := store.Save(fileHeader(t, "laksa.png", tinyPNG))
	require.NoError(t, err)

	require.NoError(t, store.Remove(name))
	_, err = os.Stat(filepath.Join(store.Dir(), name))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Remove(name))
	assert.NoError(t, store.Remove(""))
	assert.NoError(t, store.Remove("../outside.png"))
	assert.NoError(t, (*Store)(nil).Remove("x.png"))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "image", slug("....png"))
	assert.Equal(t, "nasi-lemak", slug("Nasi  Lemak.jpeg"))
}
