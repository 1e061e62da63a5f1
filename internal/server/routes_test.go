package server_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	bulk_http_handler "github.com/init-pkg/wrapped-reports/internal/app/bulk/transports/http"
	ingest_http_handler "github.com/init-pkg/wrapped-reports/internal/app/ingest/transports/http"
	mapping_http_handler "github.com/init-pkg/wrapped-reports/internal/app/mapping/transports/http"
	report_http_handler "github.com/init-pkg/wrapped-reports/internal/app/report/transports/http"
	slideshow_http_handler "github.com/init-pkg/wrapped-reports/internal/app/slideshow/transports/http"
	theme_http_handler "github.com/init-pkg/wrapped-reports/internal/app/theme/transports/http"
	"github.com/init-pkg/wrapped-reports/internal/config"
	"github.com/init-pkg/wrapped-reports/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pathParam = regexp.MustCompile(`:([A-Za-z]+)`)

func TestDocsCoverRoutes(t *testing.T) {
	api := server.New(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ingest_http_handler.New(nil, nil).Register(api)
	mapping_http_handler.New(nil).Register(api)
	report_http_handler.New(nil).Register(api)
	theme_http_handler.New(nil).Register(api)
	slideshow_http_handler.New(nil, nil).Register(api)
	bulk_http_handler.New(nil).Register(api)

	docs := fiber.New()
	server.RegisterDocs(docs)
	res, err := docs.Test(httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	require.NoError(t, err)
	defer res.Body.Close()

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&doc))

	documented := 0
	for _, ops := range doc.Paths {
		documented += len(ops)
	}

	routes := 0
	for _, r := range api.GetRoutes(true) {
		if r.Method != fiber.MethodGet && r.Method != fiber.MethodPost {
			continue
		}
		routes++

		p := pathParam.ReplaceAllString(r.Path, "{$1}")
		if len(p) > 1 {
			p = strings.TrimSuffix(p, "/")
		}
		if assert.Contains(t, doc.Paths, p) {
			assert.Contains(t, doc.Paths[p], strings.ToLower(r.Method), p)
		}
	}
	assert.Equal(t, documented, routes)
}
