package card

import "math/rand"

// DefaultMessage is the greeting shown when a shared link carries no
// message parameter.
const DefaultMessage = "Hope your day is filled with joy, laughter, and lots of cake! 🎂✨"

// Wishes is the fixed greeting catalog backing the "randomize message"
// action. Loaded once at init, never mutated.
var Wishes = []string{
	DefaultMessage,
	"Wishing you a day as sweet as birthday cake! 🍰",
	"Another year of amazing you — happy birthday! 🎈",
	"May all your birthday wishes come true! ✨",
	"Cheers to you and the year ahead! 🥳",
	"Sending you the biggest birthday hugs! ❤️",
	"Eat cake, laugh lots, and celebrate big today! 🎂",
	"You deserve all the confetti today! 🎊",
	"Make a wish — this year it's coming true! 🌟",
	"Happiest of birthdays to the happiest of people! 🎁",
}

// Song is one entry of the fixed background-music catalog.
type Song struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

var Songs = []Song{
	{Title: "Happy Birthday (Piano)", URL: "/audio/happy-birthday-piano.mp3"},
	{Title: "Birthday Bossa", URL: "/audio/birthday-bossa.mp3"},
	{Title: "Party Horns & Sparkles", URL: "/audio/party-horns.mp3"},
}

// RandomWish draws uniformly from the greeting catalog.
func RandomWish() string {
	return Wishes[rand.Intn(len(Wishes))]
}

// RandomSong draws uniformly from the song catalog.
func RandomSong() Song {
	return Songs[rand.Intn(len(Songs))]
}

// AnotherSong picks a song different from the current one. With more than
// one song in the catalog the current song is excluded before sampling, so
// an immediate repeat is impossible; with a single-song catalog the current
// song is returned unchanged.
func AnotherSong(current Song) Song {
	candidates := make([]Song, 0, len(Songs))
	for _, s := range Songs {
		if s.URL != current.URL {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return current
	}
	return candidates[rand.Intn(len(candidates))]
}
