package card

import "github.com/gin-gonic/gin"

// RegisterRoutes registers card routes under the /api group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, session *SessionHandler) {
	r.GET("/card", h.GetCard)
	r.POST("/card/link", h.MakeLink)
	r.GET("/card/session", session.Handle)

	r.GET("/wishes/random", h.RandomWish)
	r.GET("/songs", h.ListSongs)
	r.GET("/songs/another", h.AnotherSong)
}
