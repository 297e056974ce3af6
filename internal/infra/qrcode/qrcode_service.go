package qrcode

import (
	"net/url"

	"devicequote/internal/domain/service"
	"devicequote/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateResumeQR encodes an absolute resume link as a PNG image.
func (s *qrcodeService) GenerateResumeQR(resumeURL string) ([]byte, error) {
	parsed, err := url.Parse(resumeURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse resume URL")
	}
	if !parsed.IsAbs() {
		return nil, errors.Errorf("resume URL must be absolute: %s", resumeURL)
	}

	qrCode, err := qrcode.New(parsed.String(), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
