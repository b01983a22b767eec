package qrcode

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// UPIURI builds the upi://pay collect string scanned at checkout. Amounts are
// whole rupees.
func UPIURI(upiID string, amount int, service string) string {
	return fmt.Sprintf("upi://pay?pa=%s&am=%d&cu=INR&tn=OTTTrusted_%s", upiID, amount, service)
}

// GenerateUPIQRCode renders the payment QR as a 256px PNG.
func GenerateUPIQRCode(upiID string, amount int, service string) ([]byte, error) {
	return qrcode.Encode(UPIURI(upiID, amount, service), qrcode.Medium, 256)
}

// WriteUPIQRCode writes the payment QR to a PNG file.
func WriteUPIQRCode(upiID string, amount int, service string, file string) error {
	return qrcode.WriteFile(UPIURI(upiID, amount, service), qrcode.Medium, 256, file)
}
