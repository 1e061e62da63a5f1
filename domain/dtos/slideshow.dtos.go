package dtos

import "github.com/init-pkg/wrapped-reports/domain/app"

type SlideDeckRequest struct {
	CustomerName string      `json:"customerName" validate:"required"`
	BusinessName string      `json:"businessName"`
	LogoUrl      string      `json:"logoUrl" validate:"omitempty,url"`
	Slides       []app.Slide `json:"slides" validate:"required,min=1"`
}

func (this *SlideDeckRequest) ToView() *app.DeckView {
	return &app.DeckView{
		CustomerName: this.CustomerName,
		BusinessName: this.BusinessName,
		LogoURL:      this.LogoUrl,
		Slides:       this.Slides,
	}
}

// ExportSlidesRequest exports the slide at Index, or all slides when Index is absent.
type ExportSlidesRequest struct {
	SlideDeckRequest
	Index *int `json:"index" validate:"omitempty,min=0"`
}

type ExportedImage struct {
	Name    string `json:"name"`
	DataUri string `json:"dataUri"`
}

type ExportSlidesResponse struct {
	Images []ExportedImage `json:"images"`
}

func NewExportSlidesResponse(images []app.SlideImage) ExportSlidesResponse {
	var out = ExportSlidesResponse{Images: make([]ExportedImage, len(images))}
	for i, img := range images {
		out.Images[i] = ExportedImage{Name: img.Name, DataUri: img.DataURI()}
	}
	return out
}
