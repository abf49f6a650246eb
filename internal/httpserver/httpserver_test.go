package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardware-inventory/config"
	"hardware-inventory/config/database"
	"hardware-inventory/internal/image"
	"hardware-inventory/internal/image/repository/local"
	"hardware-inventory/internal/middleware"
	"hardware-inventory/pkg/log"
)

const password = "s3cret"

var pngBytes = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}, make([]byte, 32)...)

func newServer(t *testing.T) http.Handler {
	t.Helper()
	return newServerWithAdmin(t, config.AdminConfig{Password: password, RateLimitPerMin: 600})
}

func newServerWithAdmin(t *testing.T, admin config.AdminConfig) http.Handler {
	t.Helper()
	dir := t.TempDir()
	db, err := database.Connect(context.Background(), config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(dir, "inventory.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := log.NewNop()
	images := &config.LocalStorageConfig{Root: filepath.Join(dir, "images"), PublicPrefix: "/images"}
	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		DB:          db,
		Admin:       admin,
		ImageRepo:   local.New(images.Root, images.PublicPrefix, l),
		ImageConfig: image.Config{StagingDir: filepath.Join(dir, "staging")},
		LocalImages: images,
	})
	require.NoError(t, err)

	h, err := srv.Handler()
	require.NoError(t, err)
	return h
}

type envelope struct {
	Data   json.RawMessage     `json:"data"`
	Errors map[string][]string `json:"errors"`
}

func send(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func form(t *testing.T, target string, fields map[string]string, file []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		part, err := mw.CreateFormFile("image", "upload.png")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(middleware.PasswordHeader, password)
	return req
}

func TestSystemRoutes(t *testing.T) {
	h := newServer(t)
	for _, path := range []string{"/health", "/ready", "/live"} {
		w, _ := send(t, h, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestNewValidation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 8080, Mode: "test"})
	assert.Error(t, err)
}

// Fans with one 120mm fan, then a cascade delete.
func TestInventoryFlow(t *testing.T) {
	h := newServer(t)

	w, env := send(t, h, form(t, "/hardware_types", map[string]string{"name": "Fans", "description": "Cooling fans"}, pngBytes))
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Category struct {
			ID    string `json:"id"`
			Image struct {
				URL string `json:"url"`
			} `json:"image"`
		} `json:"hardware_type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	catID := created.Category.ID

	// The stored image is served statically.
	w, _ = send(t, h, httptest.NewRequest(http.MethodGet, created.Category.Image.URL, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = send(t, h, form(t, "/hardware_types/"+catID+"/hardware", map[string]string{
		"name": "120mm Fan", "description": "Quiet case fan", "price": "12.5", "number_in_stock": "10",
	}, pngBytes))
	require.Equal(t, http.StatusCreated, w.Code)

	w, env = send(t, h, httptest.NewRequest(http.MethodGet, "/hardware_types/"+catID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Items []struct {
			Name  string `json:"name"`
			Price string `json:"price"`
		} `json:"hardware"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "12.50", detail.Items[0].Price)

	del := httptest.NewRequest(http.MethodDelete, "/hardware_types/"+catID, nil)
	del.Header.Set(middleware.PasswordHeader, password)
	w, env = send(t, h, del)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"purged_items":1,"cleanup_failures":0}`, string(env.Data))

	w, _ = send(t, h, httptest.NewRequest(http.MethodGet, "/hardware_types/"+catID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = send(t, h, httptest.NewRequest(http.MethodGet, created.Category.Image.URL, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = send(t, h, httptest.NewRequest(http.MethodGet, "/hardware/options", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRejectsNonImage(t *testing.T) {
	h := newServer(t)

	w, env := send(t, h, form(t, "/hardware_types", map[string]string{"name": "Fans", "description": "Cooling fans"}, []byte("just text")))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"file must be an image"}, env.Errors["image"])

	w, env = send(t, h, httptest.NewRequest(http.MethodGet, "/hardware_types", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"fields":["name","description","image"],"hardware_types":[]}`, string(env.Data))
}

func TestRecoveryWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(HTTPServer{l: log.NewNop()}.recovery())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")
}

func TestRejectsSVG(t *testing.T) {
	h := newServer(t)
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)

	w, env := send(t, h, form(t, "/hardware_types", map[string]string{"name": "Fans", "description": "Cooling fans"}, svg))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"file must be an image"}, env.Errors["image"])
}

func TestRequestBodyLimit(t *testing.T) {
	h := newServer(t)
	fields := map[string]string{"name": "Fans", "description": "Cooling fans"}

	t.Run("Image just over the size limit gets a field error", func(t *testing.T) {
		big := append(append([]byte{}, pngBytes...), make([]byte, 1_200_000)...)
		w, env := send(t, h, form(t, "/hardware_types", fields, big))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, []string{"file must be smaller than 1 MB"}, env.Errors["image"])
	})

	t.Run("Body far over the limit is refused", func(t *testing.T) {
		huge := append(append([]byte{}, pngBytes...), make([]byte, 4<<20)...)
		w, _ := send(t, h, form(t, "/hardware_types", fields, huge))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("Refused before the password is checked", func(t *testing.T) {
		huge := append(append([]byte{}, pngBytes...), make([]byte, 4<<20)...)
		req := form(t, "/hardware_types", fields, huge)
		req.Header.Del(middleware.PasswordHeader)
		w, _ := send(t, h, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestAdminRateLimitUsesSocketAddress(t *testing.T) {
	h := newServerWithAdmin(t, config.AdminConfig{Password: password, RateLimitPerMin: 10})

	codes := map[int]int{}
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodDelete, "/hardware_types/missing", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		req.Header.Set(middleware.PasswordHeader, "guess")
		w, _ := send(t, h, req)
		codes[w.Code]++
	}

	assert.Equal(t, 1, codes[http.StatusUnauthorized])
	assert.Equal(t, 19, codes[http.StatusTooManyRequests])
}
