// Package qrcode provides payment QR code generation.
package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"mealkit/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// PaymentQRData represents the QR code data structure scanned by the mobile app.
type PaymentQRData struct {
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
	PayURL  string  `json:"pay_url"`
	Type    string  `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
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

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimSuffix(baseURL, "/"),
	}
}

// GeneratePaymentQR generates a PNG QR code encoding the payment link of an order
func (s *qrcodeService) GeneratePaymentQR(orderID string, amount float64) ([]byte, error) {
	// Create QR code data
	data := PaymentQRData{
		OrderID: orderID,
		Amount:  amount,
		PayURL:  fmt.Sprintf("%s/api/orders/%s/pay", s.baseURL, orderID),
		Type:    "payment",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
