package qrcode

import (
	"net/url"

	"blogpilot/config"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// New builds the QR code service from configuration
func New(cfg *config.Config) service.QRCodeService {
	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateLinkQR renders a PNG QR code for an absolute http(s) link
func (s *qrcodeService) GenerateLinkQR(link string) ([]byte, error) {
	u, err := url.Parse(link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse link")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.Errorf("QR link must be an absolute http(s) URL: %q", link)
	}

	qrCode, err := qrcode.New(u.String(), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
