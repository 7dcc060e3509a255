package card

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // allow all origins (configure in prod)
}

// Action is a client -> server message on the card session socket.
type Action struct {
	Type    string  `json:"type"`
	Content Content `json:"content"`
	Reason  string  `json:"reason,omitempty"`
}

const (
	ActionOpen           = "open"
	ActionWish           = "wish"
	ActionTogglePlay     = "toggle_play"
	ActionAnotherSong    = "another_song"
	ActionMakeLink       = "make_link"
	ActionBack           = "back"
	ActionPlaybackFailed = "playback_failed"
)

// Event is a server -> client message.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

const (
	EventState        = "state"
	EventConfetti     = "confetti"
	EventConfettiDone = "confetti_done"
	EventSong         = "song"
	EventLink         = "link"
	EventNotice       = "notice"
	EventError        = "error"
)

// Snapshot is the wire form of the session state.
type Snapshot struct {
	Content      Content `json:"content"`
	IsViewMode   bool    `json:"is_view_mode"`
	IsCardOpened bool    `json:"is_card_opened"`
	Wished       bool    `json:"wished"`
	IsPlaying    bool    `json:"is_playing"`
	CurrentSong  *Song   `json:"current_song,omitempty"`
	ShareLink    string  `json:"share_link,omitempty"`
}

func snapshot(st *State) Snapshot {
	s := Snapshot{
		Content:      st.Content,
		IsViewMode:   st.IsViewMode,
		IsCardOpened: st.IsCardOpened,
		Wished:       st.Wished,
		IsPlaying:    st.IsPlaying,
		ShareLink:    st.ShareLink,
	}
	if st.CurrentSong.URL != "" {
		song := st.CurrentSong
		s.CurrentSong = &song
	}
	return s
}

// SessionHandler runs one card session per WebSocket connection.
//
// Endpoint: GET /api/card/session?name=…&message=…&image=…
//
// The query parameters are the shared link's parameters; they decide the
// initial mode exactly like a page load would. Every action is processed on
// the connection's single read loop, so the state needs no locking, and a
// running celebration blocks further actions until its deadline passes.
type SessionHandler struct {
	codec    Codec
	linkBase string
	duration time.Duration // celebration length
}

func NewSessionHandler(codec Codec, linkBase string) *SessionHandler {
	return &SessionHandler{codec: codec, linkBase: linkBase, duration: CelebrationDuration}
}

func (h *SessionHandler) Handle(c *gin.Context) {
	st := NewState(c.Request.URL.Query())

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("card session upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	h.send(conn, Event{Type: EventState, Payload: snapshot(st)})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
				websocket.CloseAbnormalClosure) {
				log.Printf("card session read error: %v", err)
			}
			return
		}

		var act Action
		if err := json.Unmarshal(raw, &act); err != nil {
			h.send(conn, Event{Type: EventError, Payload: "malformed action"})
			continue
		}

		h.apply(conn, st, act)
	}
}

func (h *SessionHandler) apply(conn *websocket.Conn, st *State, act Action) {
	switch act.Type {
	case ActionOpen:
		if st.Open() {
			h.send(conn, Event{Type: EventSong, Payload: st.CurrentSong})
			h.celebrate(conn)
		}
		h.send(conn, Event{Type: EventState, Payload: snapshot(st)})

	case ActionWish:
		// one-shot: a second wish neither restarts the confetti nor
		// replays audio
		if st.MakeWish() {
			h.celebrate(conn)
		}
		h.send(conn, Event{Type: EventState, Payload: snapshot(st)})

	case ActionTogglePlay:
		st.TogglePlay()
		h.send(conn, Event{Type: EventState, Payload: snapshot(st)})

	case ActionAnotherSong:
		song := st.AnotherSong()
		h.send(conn, Event{Type: EventSong, Payload: song})
		h.send(conn, Event{Type: EventState, Payload: snapshot(st)})

	case ActionMakeLink:
		link, err := h.codec.ShareURL(h.linkBase, act.Content)
		if err != nil {
			h.send(conn, Event{Type: EventError, Payload: err.Error()})
			return
		}
		st.Content = act.Content
		st.ShareLink = link
		h.send(conn, Event{Type: EventLink, Payload: link})
		h.send(conn, Event{Type: EventState, Payload: snapshot(st)})

	case ActionBack:
		st.ReturnToAuthoring()
		h.send(conn, Event{Type: EventState, Payload: snapshot(st)})

	case ActionPlaybackFailed:
		// autoplay was blocked on the client; surface a notice instead of
		// pretending the music is running
		st.IsPlaying = false
		h.send(conn, Event{Type: EventNotice, Payload: "playback could not start: " + act.Reason})
		h.send(conn, Event{Type: EventState, Payload: snapshot(st)})

	default:
		h.send(conn, Event{Type: EventError, Payload: "unknown action: " + act.Type})
	}
}

func (h *SessionHandler) celebrate(conn *websocket.Conn) {
	Celebrate(h.duration, func(bursts []Burst) {
		h.send(conn, Event{Type: EventConfetti, Payload: bursts})
	})
	h.send(conn, Event{Type: EventConfettiDone})
}

func (h *SessionHandler) send(conn *websocket.Conn, ev Event) {
	if err := conn.WriteJSON(ev); err != nil {
		log.Printf("card session write error: %v", err)
	}
}
