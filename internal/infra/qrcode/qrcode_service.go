// Package qrcode renders listing share links as QR codes.
package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"herenow/internal/domain/service"
)

type qrcodeService struct {
	defaultSize          int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(defaultSize int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L", "low":
		level = qrcode.Low
	case "M", "medium":
		level = qrcode.Medium
	case "Q", "high":
		level = qrcode.High
	case "H", "highest":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		defaultSize:          defaultSize,
		errorCorrectionLevel: level,
	}
}

// GeneratePNG encodes content as a QR code PNG of the given pixel size.
func (s *qrcodeService) GeneratePNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = s.defaultSize
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
