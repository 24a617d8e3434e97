package service

// QRCodeService renders share links as QR code images.
type QRCodeService interface {
	// GeneratePNG encodes content as a QR code PNG of the given pixel size.
	GeneratePNG(content string, size int) ([]byte, error)
}
