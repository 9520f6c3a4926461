//go:build unit
// +build unit

package app

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/media"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/chunkstore"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mib = int64(1) << 20

type uploadFixture struct {
	service *uploadService
	store   *memObjectStore
	chunks  *chunkstore.Tracker
	repo    *memMediaRepo
}

func newUploadFixture(t *testing.T) *uploadFixture {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	store := newMemObjectStore()
	chunks := chunkstore.NewTracker(chunkstore.DefaultTTL, log)
	repo := newMemMediaRepo()

	svc, err := NewUploadService(store, chunks, repo, &config.UploadSettings{
		ChunkTTL:           chunkstore.DefaultTTL,
		SweepInterval:      time.Minute,
		MaxChunkSize:       8 * mib,
		PartSize:           5 * mib,
		PresignConcurrency: 4,
	}, log)
	require.NoError(t, err)

	return &uploadFixture{service: svc.(*uploadService), store: store, chunks: chunks, repo: repo}
}

func TestPartSize(t *testing.T) {
	tests := []struct {
		name       string
		size       int64
		configured int64
		want       int64
	}{
		{"small file uses configured size", 1 * mib, 10 * mib, 10 * mib},
		{"configured below minimum", 50 * mib, 1 * mib, 5 * mib},
		{"exactly max parts", 5 * mib * 10000, 5 * mib, 5 * mib},
		{"huge file grows to whole MiB", 200 << 30, 10 * mib, 21 * mib},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := partSize(tt.size, tt.configured)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, (tt.size+got-1)/got, int64(media.MaxParts))
			assert.Zero(t, got%mib)
		})
	}
}

func TestSortParts(t *testing.T) {
	t.Run("sorts out of order parts", func(t *testing.T) {
		parts := []media.Part{{PartNumber: 3, ETag: "c"}, {PartNumber: 1, ETag: "a"}, {PartNumber: 2, ETag: "b"}}

		sorted, err := sortParts(parts)
		require.NoError(t, err)
		assert.Equal(t, []int32{1, 2, 3}, []int32{sorted[0].PartNumber, sorted[1].PartNumber, sorted[2].PartNumber})
		assert.Equal(t, int32(3), parts[0].PartNumber, "input is left untouched")
	})

	rejected := map[string][]media.Part{
		"empty":        nil,
		"gap":          {{PartNumber: 1, ETag: "a"}, {PartNumber: 3, ETag: "c"}},
		"not from one": {{PartNumber: 2, ETag: "b"}},
		"duplicate":    {{PartNumber: 1, ETag: "a"}, {PartNumber: 1, ETag: "a"}, {PartNumber: 2, ETag: "b"}},
		"missing etag": {{PartNumber: 1, ETag: " "}},
	}
	for name, parts := range rejected {
		t.Run(name, func(t *testing.T) {
			_, err := sortParts(parts)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestObjectKey(t *testing.T) {
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

	key := objectKey(media.PurposeVolunteerPhoto, now, ".png")
	assert.Regexp(t, regexp.MustCompile(`^volunteer-photo/2026/03/[0-9a-f-]{36}\.png$`), key)
	assert.NotEqual(t, key, objectKey(media.PurposeVolunteerPhoto, now, ".png"))
}

func TestKeyExtension(t *testing.T) {
	assert.Equal(t, ".mp4", keyExtension(nil, "Rally Clip.MP4"))
	assert.Equal(t, "", keyExtension(nil, "evil.p$p"))
	assert.Equal(t, "", keyExtension(nil, "noext"))
	assert.Equal(t, "", keyExtension(nil, "archive.verylongextension"))
}

func TestUploadService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a sniffed image", func(t *testing.T) {
		f := newUploadFixture(t)
		header := testutil.NewFileHeader(t, "file", "me.jpg", testutil.PNGBytes)

		asset, err := f.service.Upload(ctx, media.PurposeVolunteerPhoto, header, nil)
		require.NoError(t, err)

		assert.Equal(t, "image/png", asset.ContentType)
		assert.Regexp(t, `^volunteer-photo/\d{4}/\d{2}/.+\.png$`, asset.Key)
		assert.Equal(t, "https://cdn.example.com/"+asset.Key, asset.URL)
		assert.Equal(t, "me.jpg", asset.FileName)
		assert.Equal(t, int64(len(testutil.PNGBytes)), asset.Size)

		obj, ok := f.store.object(asset.Key)
		require.True(t, ok)
		assert.Equal(t, testutil.PNGBytes, obj.data)

		stored, err := f.repo.GetByID(ctx, asset.ID)
		require.NoError(t, err)
		assert.Equal(t, asset.Key, stored.Key)
	})

	t.Run("rejects a type the purpose does not allow", func(t *testing.T) {
		f := newUploadFixture(t)
		header := testutil.NewFileHeader(t, "file", "photo.png", testutil.TextBytes)

		_, err := f.service.Upload(ctx, media.PurposeVolunteerPhoto, header, nil)
		assert.ErrorIs(t, err, apperr.ErrValidation)
		assert.Empty(t, f.store.objects)
	})

	t.Run("rejects an oversized file", func(t *testing.T) {
		f := newUploadFixture(t)
		header := testutil.NewFileHeader(t, "file", "big.png", testutil.PNGBytes)
		header.Size = 6 * mib

		_, err := f.service.Upload(ctx, media.PurposeVolunteerPhoto, header, nil)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("unknown purpose", func(t *testing.T) {
		f := newUploadFixture(t)
		header := testutil.NewFileHeader(t, "file", "me.png", testutil.PNGBytes)

		_, err := f.service.Upload(ctx, "avatars", header, nil)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("removes the object when the record fails", func(t *testing.T) {
		f := newUploadFixture(t)
		f.repo.err = errors.New("db down")
		header := testutil.NewFileHeader(t, "file", "me.png", testutil.PNGBytes)

		_, err := f.service.Upload(ctx, media.PurposeVolunteerPhoto, header, nil)
		require.Error(t, err)
		assert.Empty(t, f.store.objects)
	})
}

func TestUploadService_UploadChunk(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture(t)

	payload := append(append([]byte{}, testutil.PDFBytes...), bytes.Repeat([]byte("x"), 20)...)
	pieces := [][]byte{payload[:10], payload[10:25], payload[25:]}
	chunk := func(i int) *media.ChunkUpload {
		return &media.ChunkUpload{
			UploadID:    "abc123",
			ChunkIndex:  i,
			TotalChunks: len(pieces),
			FileName:    "report.pdf",
			ContentType: "application/pdf",
			Data:        pieces[i],
		}
	}

	for _, i := range []int{2, 0} {
		result, err := f.service.UploadChunk(ctx, media.PurposeComplaintAttachment, chunk(i))
		require.NoError(t, err)
		assert.False(t, result.Progress.Complete)
		assert.Nil(t, result.Asset)
	}

	progress, err := f.service.ChunkStatus(ctx, media.PurposeComplaintAttachment, "abc123")
	require.NoError(t, err)
	assert.Equal(t, 2, progress.Received)
	assert.Equal(t, 3, progress.Total)

	_, err = f.service.ChunkStatus(ctx, media.PurposeVolunteerPhoto, "abc123")
	assert.ErrorIs(t, err, apperr.ErrNotFound, "uploads are scoped to their purpose")

	result, err := f.service.UploadChunk(ctx, media.PurposeComplaintAttachment, chunk(1))
	require.NoError(t, err)
	require.NotNil(t, result.Asset)
	assert.True(t, result.Progress.Complete)
	assert.Equal(t, "application/pdf", result.Asset.ContentType)

	obj, ok := f.store.object(result.Asset.Key)
	require.True(t, ok)
	assert.Equal(t, payload, obj.data)
	assert.Equal(t, 0, f.chunks.Len())
}

func TestUploadService_AbortChunks(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture(t)

	_, err := f.service.UploadChunk(ctx, media.PurposeSOSAudio, &media.ChunkUpload{
		UploadID: "sos-1", ChunkIndex: 0, TotalChunks: 2, FileName: "sos.webm", Data: []byte("abc"),
	})
	require.NoError(t, err)

	require.NoError(t, f.service.AbortChunks(ctx, media.PurposeSOSAudio, "sos-1"))
	_, err = f.service.ChunkStatus(ctx, media.PurposeSOSAudio, "sos-1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUploadService_Multipart(t *testing.T) {
	ctx := context.Background()

	t.Run("init presigns every part", func(t *testing.T) {
		f := newUploadFixture(t)

		session, err := f.service.InitMultipart(ctx, media.PurposeTestimonialVideo, &media.MultipartInit{
			FileName: "speech.mp4", ContentType: "video/mp4", Size: 12 * mib,
		})
		require.NoError(t, err)

		assert.Equal(t, 5*mib, session.PartSize)
		require.Len(t, session.Parts, 3)
		for i, part := range session.Parts {
			assert.Equal(t, int32(i+1), part.PartNumber)
			assert.Contains(t, part.URL, session.UploadID)
		}
		assert.Regexp(t, `^testimonial-video/.+\.mp4$`, session.Key)
	})

	t.Run("init aborts when presigning fails", func(t *testing.T) {
		f := newUploadFixture(t)
		f.store.failPresign = 2

		_, err := f.service.InitMultipart(ctx, media.PurposeTestimonialVideo, &media.MultipartInit{
			FileName: "speech.mp4", ContentType: "video/mp4", Size: 12 * mib,
		})
		require.Error(t, err)
		assert.Len(t, f.store.aborted, 1)
	})

	t.Run("init rejects a disallowed type", func(t *testing.T) {
		f := newUploadFixture(t)

		_, err := f.service.InitMultipart(ctx, media.PurposeTestimonialVideo, &media.MultipartInit{
			FileName: "speech.pdf", ContentType: "application/pdf", Size: mib,
		})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("complete lists, sorts and records", func(t *testing.T) {
		f := newUploadFixture(t)
		session, err := f.service.InitMultipart(ctx, media.PurposeTestimonialVideo, &media.MultipartInit{
			FileName: "speech.mp4", ContentType: "video/mp4", Size: 12 * mib,
		})
		require.NoError(t, err)

		f.store.uploadPart(session.UploadID, 3, []byte("three"))
		f.store.uploadPart(session.UploadID, 1, []byte("one-"))
		f.store.uploadPart(session.UploadID, 2, []byte("two-"))

		asset, err := f.service.CompleteMultipart(ctx, media.PurposeTestimonialVideo, &media.CompleteRequest{
			Key: session.Key, UploadID: session.UploadID, FileName: "speech.mp4",
		}, nil)
		require.NoError(t, err)

		assert.Equal(t, session.Key, asset.Key)
		assert.Equal(t, "video/mp4", asset.ContentType)
		obj, ok := f.store.object(session.Key)
		require.True(t, ok)
		assert.Equal(t, "one-two-three", string(obj.data))
	})

	t.Run("complete rejects a gap", func(t *testing.T) {
		f := newUploadFixture(t)
		session, err := f.service.InitMultipart(ctx, media.PurposeTestimonialVideo, &media.MultipartInit{
			FileName: "speech.mp4", ContentType: "video/mp4", Size: 12 * mib,
		})
		require.NoError(t, err)

		p1 := f.store.uploadPart(session.UploadID, 1, []byte("one"))
		p3 := f.store.uploadPart(session.UploadID, 3, []byte("three"))

		_, err = f.service.CompleteMultipart(ctx, media.PurposeTestimonialVideo, &media.CompleteRequest{
			Key: session.Key, UploadID: session.UploadID, Parts: []media.Part{p3, p1},
		}, nil)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("keys of another purpose are refused", func(t *testing.T) {
		f := newUploadFixture(t)

		err := f.service.AbortMultipart(ctx, media.PurposeTestimonialVideo, &media.MultipartRef{
			Key: "media/2026/01/x.mp4", UploadID: "upload-1",
		})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestMediaService_DeleteByID(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture(t)
	header := testutil.NewFileHeader(t, "file", "me.png", testutil.PNGBytes)

	asset, err := f.service.Upload(ctx, media.PurposeMedia, header, nil)
	require.NoError(t, err)

	svc, err := NewMediaService(f.repo, f.store, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByID(ctx, asset.ID))
	_, ok := f.store.object(asset.Key)
	assert.False(t, ok)
	_, err = svc.GetByID(ctx, asset.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
