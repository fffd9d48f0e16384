package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader gerçek bir multipart form üzerinden FileHeader üretir.
func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func newTestUploadService(catboxURL, imgbbURL string) *UploadService {
	return &UploadService{
		client:         &http.Client{Timeout: 5 * time.Second},
		catboxURL:      catboxURL,
		catboxUserHash: "hash123",
		imgbbURL:       imgbbURL,
		imgbbAPIKey:    "key123",
	}
}

func TestUploadPdfSuccess(t *testing.T) {
	var gotReqtype, gotUserhash, gotFilename string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotReqtype = r.FormValue("reqtype")
		gotUserhash = r.FormValue("userhash")
		if files := r.MultipartForm.File["fileToUpload"]; len(files) == 1 {
			gotFilename = files[0].Filename
		}
		_, _ = w.Write([]byte("https://files.catbox.moe/abc123.pdf"))
	}))
	defer server.Close()

	svc := newTestUploadService(server.URL, "")
	file := makeFileHeader(t, "sertifika.pdf", "application/pdf", []byte("%PDF-1.4 icerik"))

	link, err := svc.UploadPdf(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, "https://files.catbox.moe/abc123.pdf", link)
	assert.Equal(t, "fileupload", gotReqtype)
	assert.Equal(t, "hash123", gotUserhash)
	assert.Equal(t, "sertifika.pdf", gotFilename)
}

func TestUploadPdfRejectsBeforeNetwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("tür/boyut kontrolü ağa çıkmadan yapılmalı")
	}))
	defer server.Close()

	svc := newTestUploadService(server.URL, "")

	_, err := svc.UploadPdf(context.Background(), makeFileHeader(t, "resim.png", "image/png", []byte("png")))
	assert.ErrorIs(t, err, ErrUploadNotPdf)

	big := makeFileHeader(t, "buyuk.pdf", "application/pdf", []byte("x"))
	big.Size = MaxPdfUploadSize + 1
	_, err = svc.UploadPdf(context.Background(), big)
	assert.ErrorIs(t, err, ErrUploadPdfTooLarge)

	_, err = svc.UploadPdf(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUploadFileRequired)
}

func TestUploadPdfUpstreamErrorCarriesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPreconditionFailed)
		_, _ = w.Write([]byte("File too large"))
	}))
	defer server.Close()

	svc := newTestUploadService(server.URL, "")
	_, err := svc.UploadPdf(context.Background(), makeFileHeader(t, "a.pdf", "application/pdf", []byte("%PDF")))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.Contains(t, err.Error(), "File too large")
}

func TestUploadPdfRejectsUnexpectedLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("https://kotu.example/abc.pdf"))
	}))
	defer server.Close()

	svc := newTestUploadService(server.URL, "")
	_, err := svc.UploadPdf(context.Background(), makeFileHeader(t, "a.pdf", "application/pdf", []byte("%PDF")))
	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestUploadImageSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key123", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"url":"https://i.ibb.co/xyz/logo.png"}}`))
	}))
	defer server.Close()

	svc := newTestUploadService("", server.URL)
	link, err := svc.UploadImage(context.Background(), makeFileHeader(t, "logo.png", "image/png", []byte("png")))

	require.NoError(t, err)
	assert.Equal(t, "https://i.ibb.co/xyz/logo.png", link)
}

func TestUploadImageRejectsBeforeNetwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("tür/boyut kontrolü ağa çıkmadan yapılmalı")
	}))
	defer server.Close()

	svc := newTestUploadService("", server.URL)

	_, err := svc.UploadImage(context.Background(), makeFileHeader(t, "a.pdf", "application/pdf", []byte("%PDF")))
	assert.ErrorIs(t, err, ErrUploadNotImage)

	big := makeFileHeader(t, "b.png", "image/png", []byte("x"))
	big.Size = MaxImageUploadSize + 1
	_, err = svc.UploadImage(context.Background(), big)
	assert.ErrorIs(t, err, ErrUploadImageTooLarge)
}

func TestUploadImageUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":{"message":"Invalid API key"}}`))
	}))
	defer server.Close()

	svc := newTestUploadService("", server.URL)
	_, err := svc.UploadImage(context.Background(), makeFileHeader(t, "logo.png", "image/png", []byte("png")))
	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestUploadImageWithoutAPIKey(t *testing.T) {
	svc := &UploadService{client: http.DefaultClient}
	_, err := svc.UploadImage(context.Background(), makeFileHeader(t, "logo.png", "image/png", []byte("png")))
	assert.ErrorIs(t, err, ErrUploadNoAPIKey)
}
