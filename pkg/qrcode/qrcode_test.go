package qrcode

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDataURI_ProducesScaledPNG(t *testing.T) {
	uri, err := EncodeDataURI("eyJhbW91bnQiOjUwMH0=", 256)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, DataURIPrefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, DataURIPrefix))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestEncodePNG_DefaultSize(t *testing.T) {
	raw, err := EncodePNG("hello", 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
}

func TestEncodePNG_Errors(t *testing.T) {
	_, err := EncodePNG("", 100)
	assert.Error(t, err)

	// smaller than the symbol itself
	_, err = EncodeDataURI(strings.Repeat("x", 200), 10)
	assert.Error(t, err)
}
