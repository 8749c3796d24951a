package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// TestServer представляет тестовый HTTP сервер
type TestServer struct {
	Router *gin.Engine
}

// NewTestServer создает новый тестовый сервер
func NewTestServer() *TestServer {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return &TestServer{
		Router: router,
	}
}

// MakeRequest выполняет HTTP запрос к тестовому серверу
func (s *TestServer) MakeRequest(
	t *testing.T,
	method, path string,
	body interface{},
	headers map[string]string,
) *httptest.ResponseRecorder {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to marshal request body")
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, path, bodyReader)
	require.NoError(t, err, "Failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	return w
}

// MakeImportRequest выполняет multipart-запрос импорта: файл предложения
// плюс поле mode. Основной способ дёргать хендлер импорта в тестах.
func (s *TestServer) MakeImportRequest(
	t *testing.T,
	path, fileName string,
	fileContent []byte,
	mode string,
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err, "Failed to create form file")
	_, err = part.Write(fileContent)
	require.NoError(t, err, "Failed to write file content")

	require.NoError(t, writer.WriteField("mode", mode))
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, path, &buf)
	require.NoError(t, err, "Failed to create request")
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	return w
}

// ParseResponseBody парсит JSON ответ в структуру
func ParseResponseBody(t *testing.T, body *bytes.Buffer, target interface{}) {
	t.Helper()

	err := json.Unmarshal(body.Bytes(), target)
	require.NoError(t, err, "Failed to parse response body")
}

// AssertResponse проверяет код статуса и парсит тело ответа
func AssertResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, "Unexpected status code")

	if target != nil && w.Body.Len() > 0 {
		ParseResponseBody(t, w.Body, target)
	}
}

// AssertErrorResponse проверяет ответ с ошибкой
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, "Unexpected status code")

	var response map[string]interface{}
	ParseResponseBody(t, w.Body, &response)

	if expectedMessage != "" {
		errVal, ok := response["error"].(string)
		require.True(t, ok, "Expected 'error' field to be a string, got: %T", response["error"])
		require.Contains(t, errVal, expectedMessage)
	}
}

// MakeGetRequest выполняет GET запрос
func (s *TestServer) MakeGetRequest(t *testing.T, path string, headers map[string]string) *httptest.ResponseRecorder {
	return s.MakeRequest(t, http.MethodGet, path, nil, headers)
}

// WithServiceToken добавляет Bearer-токен воркера в заголовки
func WithServiceToken(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

// CreateTestContext создает тестовый Gin контекст
func CreateTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}
