package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	client "github.com/donaldgifford/tablewatch/cmd/twctl/cmd"
)

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "twctl")
	require.NoError(t, generate(client.Root(), dir))

	for _, name := range []string{"twctl.md", "twctl_watches_create.md", "twctl_restaurants_import.md"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "twctl.md"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Auto generated by spf13/cobra")
}
