package storage

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	MaxProofBytes = 10 << 20
	// 40 megapixels: acima disso a decodificação em RGBA passa de 160 MB.
	MaxProofPixels = 40_000_000
	maxWidth      = 1600
	webpQuality   = 80
)

var (
	ErrUnsupportedType = errors.New("storage: tipo de arquivo não suportado")
	ErrImageTooLarge   = errors.New("storage: imagem excede o limite de pixels")
)

// Normalized é o arquivo pronto para upload.
type Normalized struct {
	Body        []byte
	ContentType string
	Ext         string
}

// NormalizeProof converte fotos de comprovante (jpeg, png, webp) para webp,
// reduzindo a largura máxima. PDFs passam sem alteração.
func NormalizeProof(data []byte) (*Normalized, error) {
	if len(data) == 0 {
		return nil, ErrUnsupportedType
	}
	if len(data) > MaxProofBytes {
		return nil, errors.New("storage: arquivo excede o limite")
	}

	switch http.DetectContentType(data) {
	case "application/pdf":
		return &Normalized{Body: data, ContentType: "application/pdf", Ext: "pdf"}, nil
	case "image/jpeg", "image/png", "image/webp":
	default:
		return nil, ErrUnsupportedType
	}

	// o cabeçalho declara as dimensões; confere antes de alocar
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ErrUnsupportedType
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxProofPixels {
		return nil, ErrImageTooLarge
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrUnsupportedType
	}

	img := downscale(src, maxWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}

	return &Normalized{Body: buf.Bytes(), ContentType: "image/webp", Ext: "webp"}, nil
}

func downscale(src image.Image, width int) image.Image {
	b := src.Bounds()
	if b.Dx() <= width {
		return src
	}

	height := b.Dy() * width / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
