package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardware-inventory/config"
	"hardware-inventory/internal/image"
	"hardware-inventory/internal/image/repository/local"
	imageUC "hardware-inventory/internal/image/usecase"
	"hardware-inventory/internal/item"
	"hardware-inventory/internal/middleware"
	"hardware-inventory/internal/model"
	"hardware-inventory/pkg/log"
)

const password = "s3cret"

type fakeUseCase struct {
	createIn   item.CreateItemInput
	createErr  error
	updateIn   item.UpdateItemInput
	listIn     item.ListByCategoryInput
	optionsErr error
	detailErr  error
	deleteErr  error
}

func (f *fakeUseCase) Create(ctx context.Context, in item.CreateItemInput) (item.CreateItemOutput, error) {
	f.createIn = in
	if f.createErr != nil {
		return item.CreateItemOutput{}, f.createErr
	}
	return item.CreateItemOutput{Item: model.Item{ID: "i1", CategoryID: in.CategoryID, Name: in.Name, Price: in.Price}}, nil
}

func (f *fakeUseCase) ListByCategory(ctx context.Context, in item.ListByCategoryInput) (item.ListByCategoryOutput, error) {
	f.listIn = in
	return item.ListByCategoryOutput{Category: model.Category{ID: in.CategoryID, Name: "Fans"}, Limit: in.Limit}, nil
}

func (f *fakeUseCase) Detail(ctx context.Context, id string) (item.DetailItemOutput, error) {
	if f.detailErr != nil {
		return item.DetailItemOutput{}, f.detailErr
	}
	return item.DetailItemOutput{Item: model.Item{ID: id, Name: "120mm Fan", Price: decimal.RequireFromString("12.5")}}, nil
}

func (f *fakeUseCase) Update(ctx context.Context, in item.UpdateItemInput) (item.UpdateItemOutput, error) {
	f.updateIn = in
	return item.UpdateItemOutput{Item: model.Item{ID: in.ID}}, nil
}

func (f *fakeUseCase) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

func (f *fakeUseCase) Options(ctx context.Context) (item.OptionsOutput, error) {
	if f.optionsErr != nil {
		return item.OptionsOutput{}, f.optionsErr
	}
	return item.OptionsOutput{Categories: []model.Category{{ID: "c1", Name: "Fans"}}}, nil
}

type body struct {
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

type env struct {
	r       *gin.Engine
	staging string
}

func setup(t *testing.T, uc item.UseCase) env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(model.FieldName)
	}

	l := log.NewNop()
	dir := t.TempDir()
	staging := filepath.Join(dir, "staging")
	img := imageUC.New(local.New(filepath.Join(dir, "images"), "/images", l), l, image.Config{StagingDir: staging})
	mw := middleware.New(l, config.AdminConfig{Password: password, RateLimitPerMin: 600})

	r := gin.New()
	RegisterRoutes(r.Group(""), New(l, uc, img), mw)
	return env{r: r, staging: staging}
}

func formRequest(t *testing.T, method, target string, fields map[string]string, file []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		part, err := w.CreateFormFile("image", "fan.png")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func (e env) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, body) {
	t.Helper()
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	var b body
	if w.Code != http.StatusFound {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b), w.Body.String())
	}
	return w, b
}

func (e env) stagedCount(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir(e.staging)
	if os.IsNotExist(err) {
		return 0
	}
	require.NoError(t, err)
	return len(entries)
}

func fanForm() map[string]string {
	return map[string]string{
		"password":        password,
		"category_id":     "c1",
		"name":            "120mm Fan",
		"description":     "Quiet case fan",
		"price":           "12.5",
		"number_in_stock": "10",
	}
}

func TestCreate(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		uc := &fakeUseCase{}
		e := setup(t, uc)

		w, b := e.do(t, formRequest(t, http.MethodPost, "/hardware", fanForm(), []byte("png")))

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "c1", uc.createIn.CategoryID)
		assert.True(t, uc.createIn.Price.Equal(decimal.RequireFromString("12.5")))
		assert.Equal(t, 10, uc.createIn.NumberInStock)
		assert.NotNil(t, uc.createIn.Image)

		var data itemBody
		require.NoError(t, json.Unmarshal(b.Data, &data))
		assert.Equal(t, "12.50", data.Item.Price)
		assert.Equal(t, "/hardware/i1", data.Item.URL)
	})

	t.Run("Nested route takes category from path", func(t *testing.T) {
		uc := &fakeUseCase{}
		e := setup(t, uc)
		form := fanForm()
		delete(form, "category_id")

		w, _ := e.do(t, formRequest(t, http.MethodPost, "/hardware_types/c9/hardware", form, nil))

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "c9", uc.createIn.CategoryID)
	})

	t.Run("Bad price echoes submitted values", func(t *testing.T) {
		e := setup(t, &fakeUseCase{})
		form := fanForm()
		form["price"] = "cheap"

		w, b := e.do(t, formRequest(t, http.MethodPost, "/hardware", form, nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, []string{"must be a number"}, b.Errors["price"])
		var data map[string]string
		require.NoError(t, json.Unmarshal(b.Data, &data))
		assert.Equal(t, "cheap", data["price"])
		assert.Equal(t, "120mm Fan", data["name"])
	})

	t.Run("Fractional stock releases staged image", func(t *testing.T) {
		e := setup(t, &fakeUseCase{})
		form := fanForm()
		form["number_in_stock"] = "2.5"

		w, b := e.do(t, formRequest(t, http.MethodPost, "/hardware", form, []byte("png")))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, []string{"must be a whole number"}, b.Errors["number_in_stock"])
		assert.Zero(t, e.stagedCount(t))
	})

	t.Run("Unknown category", func(t *testing.T) {
		e := setup(t, &fakeUseCase{createErr: model.FieldErrors{"category_id": {item.ErrCategoryNotFound.Error()}}})

		w, b := e.do(t, formRequest(t, http.MethodPost, "/hardware", fanForm(), nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, []string{"no such category"}, b.Errors["category_id"])
	})
}

func TestUpdate(t *testing.T) {
	uc := &fakeUseCase{}
	e := setup(t, uc)

	w, _ := e.do(t, formRequest(t, http.MethodPut, "/hardware/i1", map[string]string{
		"password":     password,
		"price":        "9.99",
		"remove_image": "true",
	}, nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "i1", uc.updateIn.ID)
	require.NotNil(t, uc.updateIn.Price)
	assert.Equal(t, "9.99", uc.updateIn.Price.String())
	assert.Nil(t, uc.updateIn.NumberInStock)
	assert.True(t, uc.updateIn.RemoveImage)
}

func TestReads(t *testing.T) {
	t.Run("Index redirects", func(t *testing.T) {
		e := setup(t, &fakeUseCase{})
		w, _ := e.do(t, httptest.NewRequest(http.MethodGet, "/hardware", nil))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/hardware_types", w.Header().Get("Location"))
	})

	t.Run("Options", func(t *testing.T) {
		e := setup(t, &fakeUseCase{})
		w, b := e.do(t, httptest.NewRequest(http.MethodGet, "/hardware/options", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"hardware_types":[{"id":"c1","name":"Fans","url":"/hardware_types/c1"}]}`, string(b.Data))
	})

	t.Run("Options without categories", func(t *testing.T) {
		e := setup(t, &fakeUseCase{optionsErr: item.ErrNoCategories})
		w, b := e.do(t, httptest.NewRequest(http.MethodGet, "/hardware/options", nil))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "create a hardware type first", b.Message)
	})

	t.Run("List by category clamps limit", func(t *testing.T) {
		uc := &fakeUseCase{}
		e := setup(t, uc)
		w, _ := e.do(t, httptest.NewRequest(http.MethodGet, "/hardware_types/c1/hardware?limit=0&offset=-3", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, item.ListByCategoryInput{CategoryID: "c1", Limit: defaultLimit}, uc.listIn)
	})

	t.Run("Detail not found", func(t *testing.T) {
		e := setup(t, &fakeUseCase{detailErr: item.ErrItemNotFound})
		w, _ := e.do(t, httptest.NewRequest(http.MethodGet, "/hardware/i404", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDelete(t *testing.T) {
	e := setup(t, &fakeUseCase{})

	req := httptest.NewRequest(http.MethodDelete, "/hardware/i1", nil)
	w, _ := e.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/hardware/i1", nil)
	req.Header.Set(middleware.PasswordHeader, password)
	w, _ = e.do(t, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
