package categorymap

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	m := New(map[string]string{"auto": "Viaggio in auto", "PAPPA": "Pappa e allattamento"})

	assert.Equal(t, "Viaggio in auto", m.Resolve("Auto"))
	assert.Equal(t, "Pappa e allattamento", m.Resolve("pappa"))
	assert.Equal(t, "GIOCHI", m.Resolve("giochi"))
	assert.Equal(t, "", m.Resolve(""))
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"config/categories.yaml": {Data: []byte("categories:\n  auto: Viaggio in auto\n  BAGNO: Bagnetto\n")},
		"config/broken.yaml":     {Data: []byte("categories: [nope")},
	}

	m, err := Load(fsys, "config/categories.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Viaggio in auto", m.Resolve("AUTO"))
	assert.Equal(t, "Bagnetto", m.Resolve("bagno"))

	_, err = Load(fsys, "config/broken.yaml")
	assert.Error(t, err)

	_, err = Load(fsys, "config/missing.yaml")
	assert.Error(t, err)
}

func TestLoadFileWithoutPath(t *testing.T) {
	m, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, "AUTO", m.Resolve("auto"))
}
