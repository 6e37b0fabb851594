package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GeneratePaymentQR generates a PNG QR code encoding the payment link of an order
	GeneratePaymentQR(orderID string, amount float64) ([]byte, error)
}
