package usecase

import (
	"context"

	"hardware-inventory/internal/model"
	"hardware-inventory/internal/sweeper"
)

// Sweep discards every stored image older than the grace period that no category or item
// references, then purges stale staged uploads. Individual discard failures are counted, not returned.
func (uc *implUseCase) Sweep(ctx context.Context) (sweeper.SweepOutput, error) {
	var out sweeper.SweepOutput

	referenced, err := uc.referenced(ctx)
	if err != nil {
		return out, err
	}

	cutoff := uc.now().Add(-uc.grace)
	for _, kind := range []model.ImageKind{model.ImageKindCategory, model.ImageKindItem} {
		blobs, err := uc.img.ListBlobs(ctx, kind)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Sweep ListBlobs %s: %v", kind, err)
			return out, err
		}

		for _, b := range blobs {
			out.Scanned++
			if referenced[b.Ref.BlobID()] || b.ModTime.After(cutoff) {
				continue
			}
			out.Orphans++
			if err := uc.img.Discard(ctx, b.Ref); err != nil {
				out.Failed++
				uc.l.Warnf(ctx, "uc.Sweep Discard %s: %v", b.Ref, err)
				continue
			}
			out.Removed++
		}
	}

	purged, err := uc.img.PurgeStaged(ctx, cutoff)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Sweep PurgeStaged: %v", err)
		return out, err
	}
	out.StagedPurged = purged

	uc.l.Infof(ctx, "uc.Sweep: scanned=%d orphans=%d removed=%d failed=%d staged=%d",
		out.Scanned, out.Orphans, out.Removed, out.Failed, out.StagedPurged)
	return out, nil
}

// referenced collects the blob id of every image a record points at.
func (uc *implUseCase) referenced(ctx context.Context) (map[string]bool, error) {
	catRefs, err := uc.catRepo.ListImageRefs(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Sweep catRepo.ListImageRefs: %v", err)
		return nil, err
	}
	itemRefs, err := uc.itemRepo.ListImageRefs(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Sweep itemRepo.ListImageRefs: %v", err)
		return nil, err
	}

	ids := make(map[string]bool, len(catRefs)+len(itemRefs))
	for _, refs := range [][]model.ImageRef{catRefs, itemRefs} {
		for _, r := range refs {
			if !r.IsZero() {
				ids[r.BlobID()] = true
			}
		}
	}
	return ids, nil
}
