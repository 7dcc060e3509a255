package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishCatalogHasTenEntries(t *testing.T) {
	require.Len(t, Wishes, 10)
}

func TestRandomWishDrawsFromCatalog(t *testing.T) {
	inCatalog := make(map[string]bool, len(Wishes))
	for _, w := range Wishes {
		inCatalog[w] = true
	}

	for i := 0; i < 50; i++ {
		assert.True(t, inCatalog[RandomWish()])
	}
}

func TestAnotherSongExcludesCurrent(t *testing.T) {
	require.Greater(t, len(Songs), 1)

	current := Songs[0]
	for i := 0; i < 100; i++ {
		next := AnotherSong(current)
		assert.NotEqual(t, current.URL, next.URL)
	}
}

func TestAnotherSongSingleEntryCatalog(t *testing.T) {
	saved := Songs
	defer func() { Songs = saved }()
	Songs = []Song{{Title: "Only One", URL: "/audio/only.mp3"}}

	next := AnotherSong(Songs[0])
	assert.Equal(t, Songs[0], next, "a single-song catalog has nothing else to offer")
}
