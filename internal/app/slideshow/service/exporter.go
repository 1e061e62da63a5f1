package slideshow_service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/errs"
	"github.com/init-pkg/wrapped-reports/internal/app/slideshow/deck"
	"github.com/init-pkg/wrapped-reports/internal/config"
)

type SlideExporter struct {
	renderer app.SlideRenderer
	raster   app.Rasterizer
	log      *slog.Logger
	settle   time.Duration
}

var _ app.SlideExporter = &SlideExporter{}

func NewExporter(cfg *config.Config, renderer app.SlideRenderer, raster app.Rasterizer, log *slog.Logger) *SlideExporter {
	return &SlideExporter{
		renderer: renderer,
		raster:   raster,
		log:      log,
		settle:   cfg.Clients.Browser.SettleDelay,
	}
}

// ExportCurrent rasterizes the slide at index to PNG.
func (this *SlideExporter) ExportCurrent(ctx context.Context, view *app.DeckView, index int) (*app.SlideImage, error) {
	doc, err := this.renderer.RenderSlide(view, index)
	if err != nil {
		return nil, err
	}

	data, err := this.raster.Rasterize(ctx, doc)
	if err != nil {
		return nil, errs.Wrap(err, &errs.Opts{
			Kind:    errs.KindUpstream,
			Message: "Failed to download slide",
		})
	}

	return &app.SlideImage{Name: app.SlideImageName(view.CustomerName, index), Data: data}, nil
}

// ExportAll walks the deck from the first slide, letting each one settle
// before it is captured. Slides are exported one at a time.
func (this *SlideExporter) ExportAll(ctx context.Context, view *app.DeckView) ([]app.SlideImage, error) {
	var images = make([]app.SlideImage, 0, len(view.Slides))
	if len(view.Slides) == 0 {
		return images, nil
	}

	for d := deck.New(len(view.Slides)); ; d = d.Next() {
		if err := this.wait(ctx); err != nil {
			return images, err
		}

		img, err := this.ExportCurrent(ctx, view, d.Index())
		if err != nil {
			this.log.Warn("slide export failed", "customer", view.CustomerName, "slide", d.Index()+1, "error", err)
			return images, err
		}
		images = append(images, *img)

		if d.IsLast() {
			break
		}
	}

	this.log.Info("slides exported", "customer", view.CustomerName, "count", len(images))
	return images, nil
}

func (this *SlideExporter) wait(ctx context.Context) error {
	if this.settle <= 0 {
		return ctx.Err()
	}

	var t = time.NewTimer(this.settle)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("export cancelled: %w", ctx.Err())
	case <-t.C:
		return nil
	}
}
