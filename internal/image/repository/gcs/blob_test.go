package gcs_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	repo "hardware-inventory/internal/image/repository"
	gcsrepo "hardware-inventory/internal/image/repository/gcs"
	"hardware-inventory/internal/model"
	"hardware-inventory/pkg/gcs"
	"hardware-inventory/pkg/log"
)

type mockObjectStore struct {
	objects   map[string]string
	uploadErr error
	deleteErr error
	listErr   error
}

func newMockObjectStore() *mockObjectStore {
	return &mockObjectStore{objects: map[string]string{}}
}

func (m *mockObjectStore) Upload(ctx context.Context, req gcs.UploadRequest) (gcs.Object, error) {
	if m.uploadErr != nil {
		return gcs.Object{}, m.uploadErr
	}
	body, _ := io.ReadAll(req.Body)
	m.objects[req.Name] = string(body)
	return gcs.Object{Name: req.Name, URL: "https://cdn.test/" + req.Name, Size: int64(len(body))}, nil
}

func (m *mockObjectStore) Delete(ctx context.Context, name string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.objects[name]; !ok {
		return gcs.ErrObjectNotFound
	}
	delete(m.objects, name)
	return nil
}

func (m *mockObjectStore) List(ctx context.Context, prefix string) ([]gcs.Object, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []gcs.Object
	for name := range m.objects {
		if strings.HasPrefix(name, prefix) {
			out = append(out, gcs.Object{Name: name, URL: "https://cdn.test/" + name, Updated: time.Now()})
		}
	}
	return out, nil
}

func TestGCSRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Put returns remote reference", func(t *testing.T) {
		store := newMockObjectStore()
		r := gcsrepo.New(store, log.NewNop())

		ref, err := r.Put(ctx, repo.PutOptions{
			Kind:        model.ImageKindItem,
			Name:        "a.png",
			ContentType: "image/png",
			Body:        strings.NewReader("png"),
		})
		if err != nil {
			t.Fatalf("Put: %v", err)
		}
		if ref.Scheme != model.ImageSchemeRemote || ref.Key != "hardware/a.png" || ref.URL != "https://cdn.test/hardware/a.png" {
			t.Errorf("unexpected ref %+v", ref)
		}
		if store.objects["hardware/a.png"] != "png" {
			t.Errorf("object not uploaded")
		}
	})

	t.Run("Put failure", func(t *testing.T) {
		store := newMockObjectStore()
		store.uploadErr = errors.New("503")
		r := gcsrepo.New(store, log.NewNop())

		_, err := r.Put(ctx, repo.PutOptions{Kind: model.ImageKindItem, Name: "a.png", Body: strings.NewReader("x")})
		if !errors.Is(err, repo.ErrFailedToPut) {
			t.Errorf("expected ErrFailedToPut, got %v", err)
		}
	})

	t.Run("Delete maps not found", func(t *testing.T) {
		store := newMockObjectStore()
		r := gcsrepo.New(store, log.NewNop())
		ref, _ := r.Put(ctx, repo.PutOptions{Kind: model.ImageKindCategory, Name: "b.png", Body: strings.NewReader("x")})

		if err := r.Delete(ctx, ref); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if err := r.Delete(ctx, ref); !errors.Is(err, repo.ErrBlobNotFound) {
			t.Errorf("expected ErrBlobNotFound, got %v", err)
		}
		if err := r.Delete(ctx, model.LocalImage(model.ImageKindCategory, "b.png", "/images")); !errors.Is(err, repo.ErrSchemeMismatch) {
			t.Errorf("expected ErrSchemeMismatch, got %v", err)
		}
	})

	t.Run("Delete failure", func(t *testing.T) {
		store := newMockObjectStore()
		store.deleteErr = errors.New("boom")
		r := gcsrepo.New(store, log.NewNop())

		err := r.Delete(ctx, model.RemoteImage(model.ImageKindItem, "u", "hardware/x.png"))
		if !errors.Is(err, repo.ErrFailedToDelete) {
			t.Errorf("expected ErrFailedToDelete, got %v", err)
		}
	})

	t.Run("List by kind", func(t *testing.T) {
		store := newMockObjectStore()
		r := gcsrepo.New(store, log.NewNop())
		r.Put(ctx, repo.PutOptions{Kind: model.ImageKindItem, Name: "a.png", Body: strings.NewReader("x")})
		r.Put(ctx, repo.PutOptions{Kind: model.ImageKindCategory, Name: "b.png", Body: strings.NewReader("x")})

		blobs, err := r.List(ctx, model.ImageKindItem)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(blobs) != 1 || blobs[0].Ref.Key != "hardware/a.png" {
			t.Errorf("unexpected blobs %+v", blobs)
		}

		store.listErr = errors.New("boom")
		if _, err := r.List(ctx, model.ImageKindItem); !errors.Is(err, repo.ErrFailedToList) {
			t.Errorf("expected ErrFailedToList, got %v", err)
		}
	})
}
