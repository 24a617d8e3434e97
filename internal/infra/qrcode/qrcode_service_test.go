package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestQRCodeService_GeneratePNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	data, err := svc.GeneratePNG("https://herenow.test/listings/abc", 128)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, pngMagic))

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestQRCodeService_DefaultSize(t *testing.T) {
	svc := NewQRCodeService(64, "M")

	data, err := svc.GeneratePNG("https://herenow.test/listings/abc", 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestQRCodeService_RecoveryLevels(t *testing.T) {
	for _, level := range []string{"L", "low", "M", "medium", "Q", "high", "H", "highest", "bogus"} {
		svc := NewQRCodeService(128, level)

		data, err := svc.GeneratePNG("content", 0)
		require.NoError(t, err, "level %s", level)
		assert.NotEmpty(t, data)
	}
}

func TestQRCodeService_EmptyContentFails(t *testing.T) {
	svc := NewQRCodeService(128, "M")

	data, err := svc.GeneratePNG("", 0)

	assert.Nil(t, data)
	assert.Error(t, err)
}
