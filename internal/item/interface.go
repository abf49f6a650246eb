package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	ListByCategory(ctx context.Context, input ListByCategoryInput) (ListByCategoryOutput, error)
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	Delete(ctx context.Context, id string) error
	// Options returns the categories a new item can be filed under.
	Options(ctx context.Context) (OptionsOutput, error)
}
