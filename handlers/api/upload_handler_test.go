package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"panel.naal.org.tr/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploadService struct {
	pdfLink   string
	imageLink string
	pdfErr    error
	imageErr  error
}

func (f *fakeUploadService) UploadPdf(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if f.pdfErr != nil {
		return "", f.pdfErr
	}
	return f.pdfLink, nil
}

func (f *fakeUploadService) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if f.imageErr != nil {
		return "", f.imageErr
	}
	return f.imageLink, nil
}

var _ services.IUploadService = (*fakeUploadService)(nil)

func newUploadApp(svc services.IUploadService) *fiber.App {
	app := fiber.New()
	handler := NewUploadHandlerWithService(svc)
	app.Post("/api/upload", handler.UploadPdf)
	app.Post("/api/upload-image", handler.UploadImage)
	return app
}

func multipartRequest(t *testing.T, url, field, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &parsed))
	return parsed
}

func TestUploadPdfEndpoint(t *testing.T) {
	app := newUploadApp(&fakeUploadService{pdfLink: "https://files.catbox.moe/abc.pdf"})

	req := multipartRequest(t, "/api/upload", "file", "a.pdf", "application/pdf", []byte("%PDF"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://files.catbox.moe/abc.pdf", decodeJSON(t, resp)["url"])
}

func TestUploadPdfEndpointMissingFile(t *testing.T) {
	app := newUploadApp(&fakeUploadService{})

	req, err := http.NewRequest(http.MethodPost, "/api/upload", nil)
	require.NoError(t, err)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, decodeJSON(t, resp)["error"])
}

func TestUploadPdfEndpointValidationError(t *testing.T) {
	app := newUploadApp(&fakeUploadService{pdfErr: services.ErrUploadNotPdf})

	req := multipartRequest(t, "/api/upload", "file", "a.png", "image/png", []byte("png"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, services.ErrUploadNotPdf.Error(), decodeJSON(t, resp)["error"])
}

func TestUploadPdfEndpointUpstreamError(t *testing.T) {
	app := newUploadApp(&fakeUploadService{pdfErr: services.ErrUploadFailed})

	req := multipartRequest(t, "/api/upload", "file", "a.pdf", "application/pdf", []byte("%PDF"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, decodeJSON(t, resp)["error"])
}

func TestUploadImageEndpoint(t *testing.T) {
	app := newUploadApp(&fakeUploadService{imageLink: "https://i.ibb.co/x/logo.png"})

	req := multipartRequest(t, "/api/upload-image", "image", "logo.png", "image/png", []byte("png"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	parsed := decodeJSON(t, resp)
	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, "https://i.ibb.co/x/logo.png", parsed["url"])
}

func TestUploadImageEndpointNoAPIKey(t *testing.T) {
	app := newUploadApp(&fakeUploadService{imageErr: services.ErrUploadNoAPIKey})

	req := multipartRequest(t, "/api/upload-image", "image", "logo.png", "image/png", []byte("png"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	parsed := decodeJSON(t, resp)
	assert.Equal(t, false, parsed["success"])
	assert.NotEmpty(t, parsed["error"])
}
