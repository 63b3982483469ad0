package test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"cleanblog/internal/config"
	handlers "cleanblog/internal/handler"
	"cleanblog/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	handlers *handlers.Handlers
	renderer *fakeRenderer
	posts    *MockPostService
	contacts *MockContactService
	repo     *MockPostRepository
	store    sessions.Store
}

func createTestHandlers(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		AdminUsername: "admin",
		AdminPassword: "secret",
		LimitOfPosts:  2,
		MaxUploadSize: 10 << 20,
	}

	store := sessions.NewCookieStore([]byte("test-session-secret"))

	renderer := &fakeRenderer{}
	posts := new(MockPostService)
	contacts := new(MockContactService)
	repo := new(MockPostRepository)

	h := &handlers.Handlers{
		PostService:    posts,
		PostRepo:       repo,
		ContactService: contacts,
		AuthService:    service.NewAuthService(cfg, store),
		Cfg:            cfg,
		Renderer:       renderer,
		Store:          store,
		Validate:       validator.New(),
	}

	return &testEnv{
		handlers: h,
		renderer: renderer,
		posts:    posts,
		contacts: contacts,
		repo:     repo,
		store:    store,
	}
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// multipartRequest builds a multipart POST. An empty fileName omits the file
// part entirely.
func multipartRequest(t *testing.T, target string, fields map[string]string, fileName string) *http.Request {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if fileName != "" {
		part, err := writer.CreateFormFile("image_url", fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// copyCookies carries the session cookies from a completed response into the
// next request, the way a browser would.
func copyCookies(req *http.Request, rec *httptest.ResponseRecorder) {
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
}

func pageData(t *testing.T, renderer *fakeRenderer) handlers.PageData {
	t.Helper()

	data, ok := renderer.lastData().(handlers.PageData)
	require.True(t, ok, "renderer received %T, want handlers.PageData", renderer.lastData())
	return data
}
