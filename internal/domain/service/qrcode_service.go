package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateProfileQR generates a QR code PNG for sharing a profile
	GenerateProfileQR(userID string) ([]byte, error)

	// ParseProfileQR parses QR code data and returns the shared user ID
	ParseProfileQR(qrData string) (string, error)
}
