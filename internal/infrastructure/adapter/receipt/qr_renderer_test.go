package receipt

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRRenderer_RenderPNG(t *testing.T) {
	renderer := NewQRRenderer()

	data, err := renderer.RenderPNG("TXN20240615093005DEADBEEF|500.00|UPI", 200)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestQRRenderer_DefaultSize(t *testing.T) {
	data, err := NewQRRenderer().RenderPNG("payload", 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
}

func TestQRRenderer_EmptyPayload(t *testing.T) {
	_, err := NewQRRenderer().RenderPNG("", 100)

	assert.Error(t, err)
}

func TestPayload(t *testing.T) {
	record := &entity.TransactionRecord{
		TransactionID: "TXN20240615093005DEADBEEF",
		Method:        entity.MethodNetBanking,
		Amount:        decimal.NewFromInt(500),
	}

	assert.Equal(t, "TXN20240615093005DEADBEEF|500.00|Net Banking", Payload(record))
}
