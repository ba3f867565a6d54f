package runtime

import (
	"testing"
	"testing/fstest"
	"wordmole/errors"

	"github.com/stretchr/testify/require"
)

func TestCensoredLoader_LoadAll(t *testing.T) {
	req := require.New(t)
	loader := NewCensoredLoader(fstest.MapFS{
		"words/en.txt":       {Data: []byte("badger\r\nsnake\n\n  mushroom  \n")},
		"words/fr.txt":       {Data: []byte("blaireau\nsnake\n")},
		"words/readme.md":    {Data: []byte("not a dictionary")},
		"words/nested/x.txt": {Data: []byte("ignored")},
	})

	data, err := loader.LoadAll("words")

	req.NoError(err)
	req.ElementsMatch([]string{"badger", "snake", "mushroom", "blaireau"}, data.Words)
	req.ElementsMatch([]string{"en", "fr"}, data.Languages)
}

func TestCensoredLoader_Empty_Dictionaries(t *testing.T) {
	req := require.New(t)
	loader := NewCensoredLoader(fstest.MapFS{
		"words/en.txt": {Data: []byte("\n  \n")},
	})

	_, err := loader.LoadAll("words")

	req.ErrorIs(err, errors.ErrEmptyWords)
}

func TestCensoredLoader_Embedded_Dictionaries(t *testing.T) {
	req := require.New(t)

	data, err := DefaultCensoredLoader().LoadAll("censored")

	req.NoError(err)
	req.Contains(data.Words, "badger")
	req.Contains(data.Languages, "en")
}
