package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateReceiptQR generates a PNG QR code for the receipt with the given reference
	GenerateReceiptQR(reference string) ([]byte, error)
}
