package service

import (
	"net/url"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(address string) ([]byte, error)
}

// MapLinkQRGenerator encodes a map search link for a delivery address.
type MapLinkQRGenerator struct {
	BaseURL string
}

func (g MapLinkQRGenerator) Link(address string) string {
	base := g.BaseURL
	if base == "" {
		base = "https://yandex.ru/maps/"
	}
	return base + "?text=" + url.QueryEscape(address)
}

func (g MapLinkQRGenerator) Generate(address string) ([]byte, error) {
	return qrcode.Encode(g.Link(address), qrcode.Medium, 256)
}
