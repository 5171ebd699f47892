package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()

	require.GreaterOrEqual(t, len(data), 4)
	// PNG magic number
	assert.Equal(t, byte(0x89), data[0])
	assert.Equal(t, byte(0x50), data[1])
	assert.Equal(t, byte(0x4E), data[2])
	assert.Equal(t, byte(0x47), data[3])
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateLinkQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateLinkQR("https://blog.naver.com/example/223456789")
	require.NoError(t, err)
	assertPNG(t, qrBytes)
}

func TestQRCodeService_GenerateLinkQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateLinkQR("https://example.tistory.com/12")
			require.NoError(t, err)
			assertPNG(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateLinkQR_RejectsNonHTTP(t *testing.T) {
	service := NewQRCodeService(256, "M")

	for _, link := range []string{"", "/relative/path", "javascript:alert(1)", "ftp://example.com/x"} {
		_, err := service.GenerateLinkQR(link)
		assert.Error(t, err, link)
	}
}
