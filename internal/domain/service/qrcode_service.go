package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateLinkQR renders a PNG QR code encoding the given URL
	GenerateLinkQR(link string) ([]byte, error)
}
