package testutil

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// FormFile is a file part of a multipart test request
type FormFile struct {
	Field    string
	FileName string
	Content  []byte
}

// NewMultipartRequest builds a multipart/form-data request with the given values and files
func NewMultipartRequest(t *testing.T, method, target string, values map[string]string, files ...FormFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for k, v := range values {
		require.NoError(t, writer.WriteField(k, v))
	}

	for _, f := range files {
		part, err := writer.CreateFormFile(f.Field, f.FileName)
		require.NoError(t, err)

		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// NewFileHeader parses content into a *multipart.FileHeader as a server would receive it
func NewFileHeader(t *testing.T, field, fileName string, content []byte) *multipart.FileHeader {
	t.Helper()

	req := NewMultipartRequest(t, http.MethodPost, "/", nil, FormFile{Field: field, FileName: fileName, Content: content})
	require.NoError(t, req.ParseMultipartForm(32<<20))

	headers := req.MultipartForm.File[field]
	require.Len(t, headers, 1)
	return headers[0]
}
