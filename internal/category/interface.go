package category

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListCategoriesInput) (ListCategoriesOutput, error)
	Detail(ctx context.Context, input DetailCategoryInput) (DetailCategoryOutput, error)
	Create(ctx context.Context, input CreateCategoryInput) (CreateCategoryOutput, error)
	Update(ctx context.Context, input UpdateCategoryInput) (UpdateCategoryOutput, error)
	// Delete removes a category together with all of its items as one unit, then their images.
	Delete(ctx context.Context, id string) (DeleteCategoryOutput, error)
}
