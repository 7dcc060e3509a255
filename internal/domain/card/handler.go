package card

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greetingcard/internal/pkg/response"
)

// Handler exposes the link codec and the fixed catalogs over plain HTTP for
// clients that do not hold a session socket.
type Handler struct {
	codec    Codec
	linkBase string
}

func NewHandler(codec Codec, linkBase string) *Handler {
	return &Handler{codec: codec, linkBase: linkBase}
}

// GetCard decodes the request's query parameters into card content plus the
// render mode. No parameters at all means the authoring form.
func (h *Handler) GetCard(c *gin.Context) {
	q := c.Request.URL.Query()
	mode := "authoring"
	if IsViewMode(q) {
		mode = "view"
	}
	content := Decode(q)
	response.OK(c, http.StatusOK, gin.H{
		"mode":    mode,
		"name":    content.Name,
		"message": content.Message,
		"image":   content.Image,
	})
}

// MakeLink encodes posted card content into a shareable URL.
func (h *Handler) MakeLink(c *gin.Context) {
	var content Content
	if err := c.ShouldBindJSON(&content); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid card content")
		return
	}

	link, err := h.codec.ShareURL(h.linkBase, content)
	if err != nil {
		// ErrLocalOnlyImage is the only encode failure
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	response.OK(c, http.StatusOK, gin.H{"url": link})
}

// RandomWish draws one greeting from the catalog.
func (h *Handler) RandomWish(c *gin.Context) {
	response.OK(c, http.StatusOK, gin.H{"message": RandomWish()})
}

// ListSongs returns the full song catalog.
func (h *Handler) ListSongs(c *gin.Context) {
	response.OK(c, http.StatusOK, gin.H{"songs": Songs})
}

// AnotherSong returns a song different from ?current=<url> whenever the
// catalog allows it.
func (h *Handler) AnotherSong(c *gin.Context) {
	song := AnotherSong(Song{URL: c.Query("current")})
	response.OK(c, http.StatusOK, song)
}
