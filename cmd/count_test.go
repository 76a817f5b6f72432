package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stock-counter/feature/counting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSession(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sessao.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"123":{"quantidade":2},"456":{"quantidade":-1},"123":{"quantidade":3}}`), 0o644))

		session, err := readSession(path, nil)
		require.NoError(t, err)
		assert.Equal(t, counting.Session{
			{Barcode: "123", Quantity: 2},
			{Barcode: "456", Quantity: -1},
			{Barcode: "123", Quantity: 3},
		}, session)
	})

	t.Run("Stdin", func(t *testing.T) {
		session, err := readSession("-", strings.NewReader(`{"789":{"quantidade":1}}`))
		require.NoError(t, err)
		assert.Len(t, session, 1)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := readSession(filepath.Join(t.TempDir(), "nope.json"), nil)
		assert.Error(t, err)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := readSession("-", strings.NewReader(`[1,2]`))
		assert.ErrorIs(t, err, counting.ErrInvalidSession)
	})
}

func TestConfirmAction(t *testing.T) {
	defer func() { yesConfirm = false }()

	var out bytes.Buffer
	assert.True(t, confirmAction(&out, strings.NewReader("yes\n"), "apply"))
	assert.Contains(t, out.String(), "Type 'yes' to apply")

	assert.False(t, confirmAction(&out, strings.NewReader("no\n"), "apply"))
	assert.False(t, confirmAction(&out, strings.NewReader(""), "apply"))
	assert.True(t, confirmAction(&out, strings.NewReader("yes"), "apply"))

	yesConfirm = true
	assert.True(t, confirmAction(&out, strings.NewReader(""), "apply"))
}
