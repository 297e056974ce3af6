package service

// QRCodeService renders resume links as QR codes.
type QRCodeService interface {
	// GenerateResumeQR encodes the resume URL of a recovery token as PNG.
	GenerateResumeQR(resumeURL string) ([]byte, error)
}
