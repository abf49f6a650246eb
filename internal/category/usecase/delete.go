package usecase

import (
	"context"
	"errors"
	"fmt"

	"hardware-inventory/internal/category"
	"hardware-inventory/internal/model"
)

// cascade is the state of one Delete run. It is never shared between runs.
type cascade struct {
	id     string
	state  category.DeleteState
	purged int
	refs   []model.ImageRef
}

func (c *cascade) advance(uc *implUseCase, ctx context.Context, next category.DeleteState) {
	uc.l.Debugf(ctx, "uc.Delete %s: %s -> %s", c.id, c.state, next)
	c.state = next
}

// Delete removes a Category and every Item filed under it in one transaction.
// Images are discarded only once the transaction has committed. A discard failure is
// counted in the output and left for the orphan sweep.
func (uc *implUseCase) Delete(ctx context.Context, id string) (category.DeleteCategoryOutput, error) {
	run := &cascade{id: id, state: category.DeleteStatePending}

	txCtx, cancel := context.WithTimeout(ctx, uc.txTimeout)
	defer cancel()

	err := uc.tx.RunInTransaction(txCtx, func(ctx context.Context) error {
		n, refs, err := uc.itemRepo.DeleteItemsByCategory(ctx, id)
		if err != nil {
			return fmt.Errorf("delete items: %w", err)
		}
		run.purged = n
		run.refs = refs
		run.advance(uc, ctx, category.DeleteStateItemsPurged)

		deleted, err := uc.repo.DeleteCategory(ctx, id)
		if err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		if deleted.ID == "" {
			return category.ErrCategoryNotFound
		}
		run.refs = append(run.refs, deleted.Image)
		return nil
	})
	if err != nil {
		run.advance(uc, ctx, category.DeleteStateAborted)
		if errors.Is(err, category.ErrCategoryNotFound) {
			return category.DeleteCategoryOutput{State: run.state}, err
		}
		uc.l.Errorf(ctx, "uc.Delete RunInTransaction: %v", err)
		return category.DeleteCategoryOutput{State: run.state}, fmt.Errorf("%w: %v", category.ErrDeleteAborted, err)
	}
	run.advance(uc, ctx, category.DeleteStateCommitted)

	failures := 0
	for _, ref := range run.refs {
		if err := uc.img.Discard(ctx, ref); err != nil {
			failures++
			uc.l.Warnf(ctx, "uc.Delete Discard %s: %v", ref, err)
		}
	}
	if failures > 0 {
		uc.l.Warnf(ctx, "uc.Delete %s: %d image(s) left for the sweeper", id, failures)
	}

	return category.DeleteCategoryOutput{
		State:           run.state,
		PurgedItems:     run.purged,
		CleanupFailures: failures,
	}, nil
}
