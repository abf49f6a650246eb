package sweeper

import "context"

// UseCase removes stored images that no record references and stale staged uploads.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Sweep(ctx context.Context) (SweepOutput, error)
}
