// Package testutil builds gin contexts for handler tests without a router.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/constants"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(method, path string, body io.Reader, contentType string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, body)
	if contentType != "" {
		c.Request.Header.Set("Content-Type", contentType)
	}
	return c, w
}

// NewTestContext encodes body as JSON when it is non-nil.
func NewTestContext(method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	if body == nil {
		return newContext(method, path, nil, "")
	}
	raw, _ := json.Marshal(body)
	return newContext(method, path, bytes.NewReader(raw), "application/json")
}

type MultipartFile struct {
	Field    string
	Name     string
	Contents []byte
}

// NewMultipartContext mimics a listing form post with text fields and images.
func NewMultipartContext(method, path string, fields map[string]string, files []MultipartFile) (*gin.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = form.WriteField(k, v)
	}
	for _, f := range files {
		part, _ := form.CreateFormFile(f.Field, f.Name)
		_, _ = part.Write(f.Contents)
	}
	_ = form.Close()
	return newContext(method, path, &buf, form.FormDataContentType())
}

// SetAuthContext stores what the auth middleware would have attached.
func SetAuthContext(c *gin.Context, userID uint, role authorization.UserRole) {
	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyUserRole, role)
}

func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

func SetQueryParams(c *gin.Context, params map[string]string) {
	q := make(url.Values, len(params))
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

func ParseResponse(w *httptest.ResponseRecorder, target any) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// APIResponse decodes the response envelope, leaving data raw so each test
// can decode it into the DTO it expects.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type ListData struct {
	Items      json.RawMessage `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}
