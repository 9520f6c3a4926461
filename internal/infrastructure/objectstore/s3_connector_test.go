//go:build unit
// +build unit

package objectstore

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConnector(t *testing.T, endpoint string) *S3Connector {
	t.Helper()

	settings := &config.ObjectStorageSettings{
		Provider:      config.S3StorageProvider,
		Endpoint:      endpoint,
		Region:        "ap-southeast-1",
		Bucket:        TestBucket,
		AccessKey:     "test-access",
		SecretKey:     "test-secret",
		UsePathStyle:  true,
		CDNBaseURL:    "https://cdn.example.com/",
		PresignExpiry: 15 * time.Minute,
	}

	connector, err := newS3Connector(context.Background(), settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return connector
}

func TestS3Connector_PublicURL(t *testing.T) {
	connector := newTestConnector(t, "http://127.0.0.1:9000")

	assert.Equal(t, "https://cdn.example.com/media/2026/01/a.png", connector.PublicURL("media/2026/01/a.png"))
	assert.Equal(t, "https://cdn.example.com/media/a.png", connector.PublicURL("/media/a.png"))
}

func TestS3Connector_PresignUploadPart(t *testing.T) {
	connector := newTestConnector(t, "http://127.0.0.1:9000")

	raw, err := connector.PresignUploadPart(context.Background(), "media/2026/01/video.mp4", "upload-1", 3)
	require.NoError(t, err)

	presigned, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/"+TestBucket+"/media/2026/01/video.mp4", presigned.Path)
	assert.Equal(t, "3", presigned.Query().Get("partNumber"))
	assert.Equal(t, "upload-1", presigned.Query().Get("uploadId"))
	assert.Equal(t, "900", presigned.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, presigned.Query().Get("X-Amz-Signature"))
}

func TestS3Connector_HeadObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/missing.png") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", "2048")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	connector := newTestConnector(t, server.URL)

	info, err := connector.HeadObject(context.Background(), "media/present.png")
	require.NoError(t, err)
	assert.Equal(t, int64(2048), info.Size)
	assert.Equal(t, "image/png", info.ContentType)

	_, err = connector.HeadObject(context.Background(), "media/missing.png")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestS3Connector_ListPartsFollowsPagination(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/xml")

		marker := r.URL.Query().Get("part-number-marker")
		if marker == "" {
			fmt.Fprint(w, `<ListPartsResult><Bucket>campaign-test</Bucket><Key>k</Key><UploadId>u</UploadId>
<IsTruncated>true</IsTruncated><NextPartNumberMarker>1</NextPartNumberMarker>
<Part><PartNumber>1</PartNumber><ETag>"etag-1"</ETag><Size>5242880</Size></Part></ListPartsResult>`)
			return
		}
		fmt.Fprint(w, `<ListPartsResult><Bucket>campaign-test</Bucket><Key>k</Key><UploadId>u</UploadId>
<IsTruncated>false</IsTruncated>
<Part><PartNumber>2</PartNumber><ETag>"etag-2"</ETag><Size>100</Size></Part></ListPartsResult>`)
	}))
	defer server.Close()

	connector := newTestConnector(t, server.URL)

	parts, err := connector.ListParts(context.Background(), "k", "u")
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, int32(1), parts[0].PartNumber)
	assert.Equal(t, `"etag-1"`, parts[0].ETag)
	assert.Equal(t, int64(5242880), parts[0].Size)
	assert.Equal(t, int32(2), parts[1].PartNumber)
	assert.Equal(t, 2, calls)
}
