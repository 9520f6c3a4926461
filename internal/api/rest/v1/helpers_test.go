//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/users"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success    bool             `json:"success"`
	Data       json.RawMessage  `json:"data"`
	Error      string           `json:"error"`
	Pagination *pagination.Meta `json:"pagination"`
}

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newTestContext(req *http.Request, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params
	return c, w
}

func withUser(c *gin.Context, user *users.User) {
	c.Set(userContextKey, user)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, env envelope, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

var (
	adminUser     = &users.User{ID: "2b0c1c41-5d0a-4c5e-9f57-7d3b0c8e1a10", Email: "admin@example.com", Name: "Admin", Role: users.RoleAdmin, IsActive: true}
	editorUser    = &users.User{ID: "8f3e4c1a-9b7d-4e2f-a1c3-5d6e7f8a9b0c", Email: "editor@example.com", Name: "Editor", Role: users.RoleEditor, IsActive: true}
	moderatorUser = &users.User{ID: "c4d5e6f7-a8b9-4c0d-9e1f-2a3b4c5d6e7f", Email: "mod@example.com", Name: "Moderator", Role: users.RoleModerator, IsActive: true}
)
