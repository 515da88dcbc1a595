package receipt

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"github.com/skip2/go-qrcode"
)

// DefaultSize is the edge length in pixels of rendered receipt codes
const DefaultSize = 256

// QRRenderer renders receipt payloads as PNG QR codes
type QRRenderer struct {
	level qrcode.RecoveryLevel
}

// NewQRRenderer creates a renderer with medium error recovery
func NewQRRenderer() core.ReceiptRenderer {
	return &QRRenderer{level: qrcode.Medium}
}

// RenderPNG encodes content as a size x size PNG
func (r *QRRenderer) RenderPNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("empty QR payload")
	}
	if size <= 0 {
		size = DefaultSize
	}

	qr, err := qrcode.New(content, r.level)
	if err != nil {
		return nil, fmt.Errorf("encode QR payload: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(size)); err != nil {
		return nil, fmt.Errorf("encode QR image: %w", err)
	}
	return buf.Bytes(), nil
}

// Payload is the text encoded in a receipt QR code: id|amount|method
func Payload(record *entity.TransactionRecord) string {
	return strings.Join([]string{
		record.TransactionID,
		record.FormattedAmount(),
		string(record.Method),
	}, "|")
}
