package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"pandoro-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
	API    *gin.RouterGroup
	UserID uuid.UUID
}

// SetupHTTPTest initializes Gin for testing. Routes registered on API see UserID as the
// authenticated user.
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	userID := uuid.New()

	api := router.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Set(logger.UserIDKey, userID)
		c.Next()
	})

	return &HTTPTestSuite{
		Router: router,
		API:    api,
		UserID: userID,
	}
}

// Envelope mirrors the body of every API response, keeping data raw
type Envelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
}

// MakeRequest creates and executes an HTTP request for testing
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reqBody io.Reader

	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)

	return recorder
}

// MakeMultipartRequest uploads content as the given form file field
func (suite *HTTPTestSuite) MakeMultipartRequest(method, url, field, filename string, content []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, _ := writer.CreateFormFile(field, filename)
	_, _ = part.Write(content)
	_ = writer.Close()

	req := httptest.NewRequest(method, url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)

	return recorder
}

// ParseEnvelope asserts the status and decodes the envelope. The data is decoded into
// target when target is not nil.
func ParseEnvelope(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) Envelope {
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	var envelope Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, expectedStatus, envelope.StatusCode)
	assert.Equal(t, expectedStatus < http.StatusBadRequest, envelope.Success)

	if target != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, target))
	}
	return envelope
}

// AssertErrorResponse asserts a failure envelope with a specific message
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	envelope := ParseEnvelope(t, recorder, expectedStatus, nil)
	if expectedMessage != "" {
		assert.Contains(t, envelope.Error, expectedMessage)
	}
}
