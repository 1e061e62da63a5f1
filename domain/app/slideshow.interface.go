package app

import (
	"context"
	"encoding/base64"
	"fmt"
)

type DeckView struct {
	CustomerName string
	BusinessName string
	LogoURL      string
	Slides       []Slide
}

type SlideImage struct {
	Name string `json:"name"`
	Data []byte `json:"-"`
}

func (this SlideImage) DataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(this.Data)
}

// SlideImageName is the download name of the slide at index.
func SlideImageName(customerName string, index int) string {
	return fmt.Sprintf("%s-slide-%d.png", customerName, index+1)
}

type SlideRenderer interface {
	RenderDeck(view *DeckView) (string, error)
	RenderSlide(view *DeckView, index int) (string, error)
}

type Rasterizer interface {
	Rasterize(ctx context.Context, html string) ([]byte, error)
}

type SlideExporter interface {
	ExportCurrent(ctx context.Context, view *DeckView, index int) (*SlideImage, error)
	ExportAll(ctx context.Context, view *DeckView) ([]SlideImage, error)
}
