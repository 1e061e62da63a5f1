package browser_client

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/internal/config"
	"go.uber.org/fx"
)

// SurfaceSelector is the element captured from a rendered slide document.
const SurfaceSelector = "#slide"

// BrowserClient rasterizes slide documents with a headless Chromium.
// The browser is started on first use, or attached to ControlUrl when set.
type BrowserClient struct {
	cfg config.Browser
	log *slog.Logger

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
}

var _ app.Rasterizer = &BrowserClient{}

func New(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) *BrowserClient {
	var b = &BrowserClient{cfg: cfg.Clients.Browser, log: log}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return b.Close()
		},
	})
	return b
}

func (this *BrowserClient) Rasterize(ctx context.Context, html string) ([]byte, error) {
	browser, err := this.connect()
	if err != nil {
		return nil, err
	}

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             this.cfg.Width,
		Height:            this.cfg.Height,
		DeviceScaleFactor: this.cfg.Scale,
	})
	if err != nil {
		return nil, fmt.Errorf("set viewport: %w", err)
	}

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	el, err := page.Element(SurfaceSelector)
	if err != nil {
		return nil, fmt.Errorf("find slide surface: %w", err)
	}

	png, err := el.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	return png, nil
}

func (this *BrowserClient) connect() (*rod.Browser, error) {
	this.mu.Lock()
	defer this.mu.Unlock()

	if this.browser != nil {
		return this.browser, nil
	}

	var controlURL = this.cfg.ControlUrl
	if controlURL == "" {
		var l = launcher.New().Headless(this.cfg.Headless)
		if this.cfg.Bin != "" {
			l = l.Bin(this.cfg.Bin)
		}

		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch browser: %w", err)
		}
		this.launcher = l
		controlURL = u
	}

	var browser = rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	this.log.Info("browser connected", "control_url", controlURL)
	this.browser = browser
	return browser, nil
}

func (this *BrowserClient) Close() error {
	this.mu.Lock()
	defer this.mu.Unlock()

	var err error
	if this.browser != nil {
		err = this.browser.Close()
		this.browser = nil
	}
	if this.launcher != nil {
		this.launcher.Cleanup()
		this.launcher = nil
	}
	return err
}
