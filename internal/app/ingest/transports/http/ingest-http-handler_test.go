package ingest_http_handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/dtos"
	ingest_service "github.com/init-pkg/wrapped-reports/internal/app/ingest/service"
	mapping_service "github.com/init-pkg/wrapped-reports/internal/app/mapping/service"
	"github.com/init-pkg/wrapped-reports/internal/config"
	"github.com/init-pkg/wrapped-reports/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := server.New(&config.Config{}, log)
	New(ingest_service.New(log), mapping_service.New(nil, log)).Register(a)
	return a
}

func upload(t *testing.T, a *fiber.App, filename string, data []byte) *http.Response {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/ingest", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	res, err := a.Test(req)
	require.NoError(t, err)
	return res
}

func TestUploadCSV(t *testing.T) {
	res := upload(t, newTestApp(), "customers.csv", []byte("Customer Name,Email,Last Visit Date\nAnn,ann@x.io,2024-11-02\n"))
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var out dtos.IngestResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))

	assert.Equal(t, []string{"Customer Name", "Email", "Last Visit Date"}, out.Columns)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "Ann", out.Rows[0]["Customer Name"])
	assert.Equal(t, []app.ColumnMapping{
		{OriginalName: "Customer Name", MappedTo: app.MappedToName},
		{OriginalName: "Email", MappedTo: app.MappedToEmail},
		{OriginalName: "Last Visit Date", MappedTo: app.MappedToTransaction, SubType: app.SubTypeDate},
	}, out.Mappings)
}

func TestUploadRejectsUnsupportedFile(t *testing.T) {
	res := upload(t, newTestApp(), "notes.txt", []byte("hello"))
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestUploadRequiresFile(t *testing.T) {
	res := upload(t, newTestApp(), "", nil)
	defer res.Body.Close()

	var out server.ErrorResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, out.Details, "file field is required")
}
