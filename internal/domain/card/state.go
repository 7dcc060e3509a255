package card

import "net/url"

// State is the per-session card state: the content being authored or viewed
// plus the UI-mode flags driving which view renders. One State exists per
// connected session and is only ever touched from that session's event loop.
type State struct {
	Content      Content
	IsViewMode   bool // rendering a received card vs. authoring one
	IsCardOpened bool // envelope reveal step passed
	Wished       bool // one-shot celebration guard
	IsPlaying    bool
	CurrentSong  Song
	ShareLink    string
}

// NewState performs the initial-mode dispatch, done once at first render:
// any shareable key present in the query means a received card (closed
// envelope), none means the authoring form.
func NewState(q url.Values) *State {
	st := &State{Content: Decode(q)}
	if IsViewMode(q) {
		st.IsViewMode = true
		st.IsCardOpened = false
	} else {
		st.IsViewMode = false
		st.IsCardOpened = true
	}
	return st
}

// Open reveals the card behind the envelope. Returns true only on the actual
// transition; the caller then starts the celebration and audio playback
// unconditionally (this is independent of the wished flag).
func (st *State) Open() bool {
	if !st.IsViewMode || st.IsCardOpened {
		return false
	}
	st.IsCardOpened = true
	st.CurrentSong = RandomSong()
	st.IsPlaying = true
	return true
}

// MakeWish flips the one-shot wished flag. A second call is a no-op and must
// not restart the celebration, so it returns false.
func (st *State) MakeWish() bool {
	if st.Wished {
		return false
	}
	st.Wished = true
	return true
}

// TogglePlay flips audio transport state and returns the new value.
func (st *State) TogglePlay() bool {
	st.IsPlaying = !st.IsPlaying
	return st.IsPlaying
}

// AnotherSong switches to a different catalog entry, never repeating the
// current one while the catalog has more than one song.
func (st *State) AnotherSong() Song {
	if st.CurrentSong.URL == "" {
		st.CurrentSong = RandomSong()
	} else {
		st.CurrentSong = AnotherSong(st.CurrentSong)
	}
	return st.CurrentSong
}

// ReturnToAuthoring leaves view mode: audio stops, the generated link is
// cleared and the client drops the view-mode query parameters from the
// address. IsCardOpened is reset to true; it gates nothing while authoring.
func (st *State) ReturnToAuthoring() {
	st.IsViewMode = false
	st.IsCardOpened = true
	st.IsPlaying = false
	st.ShareLink = ""
}
