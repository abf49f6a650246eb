package sqlstore_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"hardware-inventory/config"
	"hardware-inventory/config/database"
	repo "hardware-inventory/internal/item/repository"
	"hardware-inventory/internal/item/repository/sqlstore"
	"hardware-inventory/internal/model"
	"hardware-inventory/pkg/log"
	"hardware-inventory/pkg/sqldb"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Connect(context.Background(), config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "inventory.db"),
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func seedCategory(t *testing.T, db *sql.DB, id string) {
	t.Helper()
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO categories (id, name, description, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		id, "Cat "+id, "desc", now, now)
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
}

func newItem(categoryID, name string, image model.ImageRef) repo.CreateItemOptions {
	return repo.CreateItemOptions{
		CategoryID:    categoryID,
		Name:          name,
		Description:   "desc of " + name,
		Price:         decimal.RequireFromString("12.5"),
		NumberInStock: 10,
		Image:         image,
	}
}

func TestItemRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create and get", func(t *testing.T) {
		db := openDB(t)
		r := sqlstore.New(db, log.NewNop())
		seedCategory(t, db, "fans")

		img := model.LocalImage(model.ImageKindItem, "a.png", "/images")
		created, err := r.CreateItem(ctx, newItem("fans", "120mm Fan", img))
		if err != nil {
			t.Fatalf("CreateItem: %v", err)
		}

		got, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: created.ID})
		if err != nil {
			t.Fatalf("GetOneItem: %v", err)
		}
		if got.Name != "120mm Fan" || !got.Price.Equal(decimal.RequireFromString("12.5")) || got.NumberInStock != 10 {
			t.Errorf("unexpected item %+v", got)
		}
		if !got.Image.Same(img) || got.Image.URL != "/images/hardware/a.png" {
			t.Errorf("unexpected image %+v", got.Image)
		}
		if got.CreatedAt.IsZero() {
			t.Errorf("expected created_at")
		}
	})

	t.Run("Get missing returns zero value", func(t *testing.T) {
		r := sqlstore.New(openDB(t), log.NewNop())
		got, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: "nope"})
		if err != nil || got.ID != "" {
			t.Errorf("expected zero item and nil error, got %+v %v", got, err)
		}
	})

	t.Run("Missing category fails the foreign key", func(t *testing.T) {
		r := sqlstore.New(openDB(t), log.NewNop())
		_, err := r.CreateItem(ctx, newItem("ghost", "Orphan", model.NoImage()))
		if !errors.Is(err, repo.ErrCategoryMissing) {
			t.Errorf("expected ErrCategoryMissing, got %v", err)
		}
	})

	t.Run("Invariants are enforced", func(t *testing.T) {
		db := openDB(t)
		r := sqlstore.New(db, log.NewNop())
		seedCategory(t, db, "fans")

		opt := newItem("fans", "Fan", model.NoImage())
		opt.Price = decimal.NewFromInt(-1)
		if _, err := r.CreateItem(ctx, opt); !errors.Is(err, repo.ErrInvalidRecord) {
			t.Errorf("expected ErrInvalidRecord, got %v", err)
		}
	})

	t.Run("List pages in insertion order", func(t *testing.T) {
		db := openDB(t)
		r := sqlstore.New(db, log.NewNop())
		seedCategory(t, db, "fans")
		seedCategory(t, db, "psu")
		for _, n := range []string{"a", "b", "c", "d"} {
			if _, err := r.CreateItem(ctx, newItem("fans", n, model.NoImage())); err != nil {
				t.Fatalf("CreateItem: %v", err)
			}
		}
		r.CreateItem(ctx, newItem("psu", "other", model.NoImage()))

		items, total, err := r.ListItems(ctx, repo.ListItemsOptions{CategoryID: "fans", Limit: 2, Offset: 1})
		if err != nil {
			t.Fatalf("ListItems: %v", err)
		}
		if total != 4 {
			t.Errorf("expected total 4, got %d", total)
		}
		if len(items) != 2 || items[0].Name != "b" || items[1].Name != "c" {
			t.Errorf("unexpected page %+v", items)
		}
	})

	t.Run("Update", func(t *testing.T) {
		db := openDB(t)
		r := sqlstore.New(db, log.NewNop())
		seedCategory(t, db, "fans")
		created, _ := r.CreateItem(ctx, newItem("fans", "Fan", model.NoImage()))

		updated, err := r.UpdateItem(ctx, repo.UpdateItemOptions{
			ID:            created.ID,
			CategoryID:    "fans",
			Name:          "Quiet Fan",
			Description:   "quieter",
			Price:         decimal.RequireFromString("15"),
			NumberInStock: 3,
			Image:         model.RemoteImage(model.ImageKindItem, "https://cdn/x.png", "hardware/x.png"),
		})
		if err != nil {
			t.Fatalf("UpdateItem: %v", err)
		}
		if updated.Name != "Quiet Fan" || updated.NumberInStock != 3 || updated.Image.Scheme != model.ImageSchemeRemote {
			t.Errorf("unexpected update %+v", updated)
		}

		missing, err := r.UpdateItem(ctx, repo.UpdateItemOptions{ID: "nope", CategoryID: "fans", Name: "x", Description: "y"})
		if err != nil || missing.ID != "" {
			t.Errorf("expected zero item for missing id, got %+v %v", missing, err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := openDB(t)
		r := sqlstore.New(db, log.NewNop())
		seedCategory(t, db, "fans")
		created, _ := r.CreateItem(ctx, newItem("fans", "Fan", model.LocalImage(model.ImageKindItem, "f.png", "/images")))

		deleted, err := r.DeleteItem(ctx, created.ID)
		if err != nil || deleted.ID != created.ID || deleted.Image.Key != "f.png" {
			t.Fatalf("unexpected delete result %+v %v", deleted, err)
		}
		again, err := r.DeleteItem(ctx, created.ID)
		if err != nil || again.ID != "" {
			t.Errorf("expected zero item on second delete, got %+v %v", again, err)
		}
	})

	t.Run("Delete by category returns refs", func(t *testing.T) {
		db := openDB(t)
		r := sqlstore.New(db, log.NewNop())
		seedCategory(t, db, "fans")
		seedCategory(t, db, "psu")
		r.CreateItem(ctx, newItem("fans", "a", model.LocalImage(model.ImageKindItem, "a.png", "/images")))
		r.CreateItem(ctx, newItem("fans", "b", model.NoImage()))
		r.CreateItem(ctx, newItem("fans", "c", model.RemoteImage(model.ImageKindItem, "https://cdn/c.png", "hardware/c.png")))
		r.CreateItem(ctx, newItem("psu", "keep", model.LocalImage(model.ImageKindItem, "k.png", "/images")))

		var (
			count int
			refs  []model.ImageRef
		)
		err := sqldb.RunInTransaction(ctx, db, func(ctx context.Context) error {
			var err error
			count, refs, err = r.DeleteItemsByCategory(ctx, "fans")
			return err
		})
		if err != nil {
			t.Fatalf("DeleteItemsByCategory: %v", err)
		}
		if count != 3 || len(refs) != 2 {
			t.Errorf("expected 3 removed and 2 refs, got %d %v", count, refs)
		}

		_, total, _ := r.ListItems(ctx, repo.ListItemsOptions{CategoryID: "fans"})
		if total != 0 {
			t.Errorf("expected no items left in fans, got %d", total)
		}
		all, _ := r.ListImageRefs(ctx)
		if len(all) != 1 || all[0].Key != "k.png" {
			t.Errorf("unexpected remaining refs %v", all)
		}
	})
}
