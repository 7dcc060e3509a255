package card

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeOmitsDefaults(t *testing.T) {
	codec := Codec{Policy: ShareUploadedOnly}

	q, err := codec.Encode(Content{
		Name:    "Alia",
		Message: "Happy birthday!",
		Image:   DefaultImage,
	})
	require.NoError(t, err)

	assert.Equal(t, "Alia", q.Get("name"))
	assert.Equal(t, "Happy birthday!", q.Get("message"))
	assert.False(t, q.Has("image"), "default image must not be encoded")
}

func TestEncodeOmitsEmptyFields(t *testing.T) {
	codec := Codec{}

	q, err := codec.Encode(Content{Image: "/uploads/abc.png"})
	require.NoError(t, err)

	assert.False(t, q.Has("name"))
	assert.False(t, q.Has("message"))
	assert.Equal(t, "/uploads/abc.png", q.Get("image"))
}

func TestRoundTripRestoresDefaultImage(t *testing.T) {
	codec := Codec{}
	content := Content{Name: "Dana", Message: "Make a wish!", Image: DefaultImage}

	q, err := codec.Encode(content)
	require.NoError(t, err)

	decoded := Decode(q)
	assert.Equal(t, content, decoded, "re-decoding without the image key yields the default image again")
}

func TestEncodeRefusesLocalOnlyImage(t *testing.T) {
	codec := Codec{Policy: ShareUploadedOnly}

	_, err := codec.Encode(Content{Image: "data:image/png;base64,iVBOR"})
	assert.ErrorIs(t, err, ErrLocalOnlyImage)

	_, err = codec.Encode(Content{Image: "blob:http://localhost/123"})
	assert.ErrorIs(t, err, ErrLocalOnlyImage)
}

func TestShareAnyImagePolicyAllowsLocalRefs(t *testing.T) {
	codec := Codec{Policy: ShareAnyImage}

	link, err := codec.ShareURL("/", Content{Image: "data:image/png;base64,iVBOR"})
	require.NoError(t, err)
	assert.Contains(t, link, "image=")
}

func TestDecodeDefaults(t *testing.T) {
	c := Decode(url.Values{})
	assert.Empty(t, c.Name)
	assert.Equal(t, DefaultMessage, c.Message)
	assert.Equal(t, DefaultImage, c.Image)
}

func TestDecodePresentButEmptyStaysEmpty(t *testing.T) {
	q, err := url.ParseQuery("message=&image=")
	require.NoError(t, err)

	c := Decode(q)
	assert.Empty(t, c.Message, "present-but-empty message must not fall back to the default")
	assert.Empty(t, c.Image, "present-but-empty image must not fall back to the default")
}

func TestIsViewModeKeyPresenceDispatch(t *testing.T) {
	cases := []struct {
		rawQuery string
		view     bool
	}{
		{"", false},
		{"name=Dana", true},
		{"message=hi", true},
		{"image=/uploads/a.png", true},
		{"name=", true}, // empty value still counts: the key was included
		{"message=", true},
		{"image=", true},
		{"name=Dana&message=hi&image=/uploads/a.png", true},
		{"other=param", false},
	}

	for _, tc := range cases {
		q, err := url.ParseQuery(tc.rawQuery)
		require.NoError(t, err)
		assert.Equal(t, tc.view, IsViewMode(q), "query %q", tc.rawQuery)
	}
}

func TestShareURL(t *testing.T) {
	codec := Codec{}

	link, err := codec.ShareURL("/", Content{Name: "Dana"})
	require.NoError(t, err)
	assert.Equal(t, "/?name=Dana", link)

	link, err = codec.ShareURL("/", Content{Image: DefaultImage})
	require.NoError(t, err)
	assert.Equal(t, "/", link, "a fully-default card encodes to the bare base path")
}
