package core

// ReceiptRenderer renders a scannable image of a receipt payload
type ReceiptRenderer interface {
	// RenderPNG encodes content as a PNG image of the given size in pixels
	RenderPNG(content string, size int) ([]byte, error)
}
