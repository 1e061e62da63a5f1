package website_client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/internal/config"
	"golang.org/x/net/html"
)

const maxBodyBytes = 4 << 20

// WebsiteClient pulls a short plain-text summary of a business website.
type WebsiteClient struct {
	client    *http.Client
	userAgent string
	maxChars  int
	log       *slog.Logger
}

var _ app.WebsiteFetcher = &WebsiteClient{}

func New(cfg *config.Config, log *slog.Logger) *WebsiteClient {
	var c = cfg.Clients.Website

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &WebsiteClient{
		client:    &http.Client{Timeout: timeout},
		userAgent: c.UserAgent,
		maxChars:  c.MaxChars,
		log:       log,
	}
}

// Fetch never fails: any error yields "".
func (this *WebsiteClient) Fetch(ctx context.Context, url string) string {
	if url == "" {
		return ""
	}

	text, err := this.fetch(ctx, url)
	if err != nil {
		this.log.Warn("website fetch failed", "url", url, "error", err)
		return ""
	}
	return text
}

func (this *WebsiteClient) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", this.userAgent)

	res, err := this.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("website returned status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}

	return Truncate(ExtractText(string(body)), this.maxChars), nil
}

// ExtractText drops script and style blocks, turns every tag into a space
// and collapses whitespace.
func ExtractText(doc string) string {
	var (
		z    = html.NewTokenizer(strings.NewReader(doc))
		sb   strings.Builder
		skip = 0
	)

	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.StartTagToken:
			name, _ := z.TagName()
			if isRawTextTag(name) {
				skip++
			}
			sb.WriteByte(' ')
		case html.EndTagToken:
			name, _ := z.TagName()
			if isRawTextTag(name) && skip > 0 {
				skip--
			}
			sb.WriteByte(' ')
		case html.SelfClosingTagToken, html.CommentToken, html.DoctypeToken:
			sb.WriteByte(' ')
		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
			}
		}
	}
}

func isRawTextTag(name []byte) bool {
	var n = string(name)
	return n == "script" || n == "style"
}

// Truncate cuts s to at most n characters. n <= 0 disables the cap.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	var runes = []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n]))
}
