package card

import (
	"errors"
	"net/url"
	"strings"
)

// DefaultImage is the built-in card artwork. It is never encoded into a
// shared link; its absence from a link decodes back to it.
const DefaultImage = "/images/birthday-cake.png"

var ErrLocalOnlyImage = errors.New("cannot share a local-only image")

// SharePolicy selects how the codec treats local-only image references.
type SharePolicy int

const (
	// ShareUploadedOnly refuses to encode data:/blob: references: they only
	// exist inside the sender's browser and would produce a broken link.
	// This is the policy for deployments backed by the upload endpoint.
	ShareUploadedOnly SharePolicy = iota
	// ShareAnyImage encodes whatever reference the card holds. Intended for
	// a no-backend deployment where local file reads are the only image
	// source.
	ShareAnyImage
)

// Content is the shareable part of a card: a rendered card is fully
// reconstructible from these three fields alone.
type Content struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Image   string `json:"image"`
}

// Codec converts card content to and from shareable-link query parameters.
type Codec struct {
	Policy SharePolicy
}

// Encode builds the query parameters of a shareable link: name and message
// only when non-empty, image only when it differs from the built-in default.
func (cd Codec) Encode(c Content) (url.Values, error) {
	if cd.Policy == ShareUploadedOnly && isLocalOnly(c.Image) {
		return nil, ErrLocalOnlyImage
	}

	q := url.Values{}
	if c.Name != "" {
		q.Set("name", c.Name)
	}
	if c.Message != "" {
		q.Set("message", c.Message)
	}
	if c.Image != "" && c.Image != DefaultImage {
		q.Set("image", c.Image)
	}
	return q, nil
}

// ShareURL renders the full shareable link for the given base path.
func (cd Codec) ShareURL(base string, c Content) (string, error) {
	q, err := cd.Encode(c)
	if err != nil {
		return "", err
	}
	if len(q) == 0 {
		return base, nil
	}
	return base + "?" + q.Encode(), nil
}

// Decode is the inverse parse. Missing keys fall back to defaults; a key
// that is present with an empty value stays empty.
func Decode(q url.Values) Content {
	c := Content{
		Name:    q.Get("name"),
		Message: q.Get("message"),
		Image:   q.Get("image"),
	}
	if !q.Has("message") {
		c.Message = DefaultMessage
	}
	if !q.Has("image") {
		c.Image = DefaultImage
	}
	return c
}

// IsViewMode reports whether the query addresses a received card rather than
// the authoring form. The sole dispatch rule is key presence: any of the
// three shareable keys, even with an empty value, selects view mode.
func IsViewMode(q url.Values) bool {
	return q.Has("name") || q.Has("message") || q.Has("image")
}

func isLocalOnly(ref string) bool {
	return strings.HasPrefix(ref, "data:") || strings.HasPrefix(ref, "blob:")
}
