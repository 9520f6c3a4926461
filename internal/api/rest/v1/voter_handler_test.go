//go:build unit
// +build unit

package v1

import (
	"io"
	"net/http"
	"testing"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/voters"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVoterHandler_Search(t *testing.T) {
	t.Run("by name and ward", func(t *testing.T) {
		mockService := new(MockVoterService)
		handler := NewVoterHandler(mockService)

		mockService.On("Search", mock.Anything, &voters.SearchQuery{Name: "rahim", Ward: "5"}).
			Return([]*voters.Voter{{ID: "v1", VoterNumber: "1234567890", NameEn: "Abdur Rahim", Ward: "5"}}, nil)

		c, w := newTestContext(newJSONRequest(t, http.MethodGet, "/voters/search?name=rahim&ward=5", nil))
		handler.Search(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		assert.Nil(t, env.Pagination)
		var got []voters.Voter
		decodeData(t, env, &got)
		assert.Len(t, got, 1)
	})

	t.Run("no criteria", func(t *testing.T) {
		mockService := new(MockVoterService)
		handler := NewVoterHandler(mockService)
		mockService.On("Search", mock.Anything, mock.Anything).Return(nil, apperr.Validation("voter_number or name is required"))

		c, w := newTestContext(newJSONRequest(t, http.MethodGet, "/voters/search", nil))
		handler.Search(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "voter_number or name is required", decodeEnvelope(t, w).Error)
	})
}

func TestVoterHandler_Import(t *testing.T) {
	t.Run("csv upload", func(t *testing.T) {
		mockService := new(MockVoterService)
		handler := NewVoterHandler(mockService)

		csv := "voter_number,name_en,ward\n1234567890,Abdur Rahim,5\n"
		mockService.On("Import", mock.Anything, mock.MatchedBy(func(r io.Reader) bool { return r != nil })).Return(&voters.ImportResult{Imported: 1}, nil)

		req := testutil.NewMultipartRequest(t, http.MethodPost, "/admin/voters/import", nil,
			testutil.FormFile{Field: "file", FileName: "roll.csv", Content: []byte(csv)})
		c, w := newTestContext(req)
		handler.Import(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var result voters.ImportResult
		decodeData(t, decodeEnvelope(t, w), &result)
		assert.Equal(t, 1, result.Imported)
	})

	t.Run("missing file", func(t *testing.T) {
		mockService := new(MockVoterService)
		handler := NewVoterHandler(mockService)

		req := testutil.NewMultipartRequest(t, http.MethodPost, "/admin/voters/import", map[string]string{"x": "y"})
		c, w := newTestContext(req)
		handler.Import(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Import", mock.Anything, mock.Anything)
	})
}
