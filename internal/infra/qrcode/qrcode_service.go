package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"checkout/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const receiptType = "receipt"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Reference string `json:"reference"`
	Type      string `json:"type"`
	URL       string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance. When baseURL is set the code also
// carries a link to the receipt.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
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
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateReceiptQR generates a PNG QR code for the receipt with the given reference
func (s *qrcodeService) GenerateReceiptQR(reference string) ([]byte, error) {
	if reference == "" {
		return nil, fmt.Errorf("receipt reference is empty")
	}

	data := QRCodeData{
		Reference: reference,
		Type:      receiptType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/receipts/" + reference
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
