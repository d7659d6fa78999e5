package stores

import (
	"context"
	"errors"
	"io/fs"

	"github.com/reusee/duet/docs"
	"github.com/reusee/duet/kernels"
	"github.com/reusee/duet/logs"
	"github.com/reusee/duet/syncs"
)

type SaveResult struct {
	KernelChanged bool
	// ReloadErr is set when the kernel changed but rebinding failed.
	// The commit stands regardless: persistence is guaranteed once
	// validation passes, the behavior swap is best-effort.
	ReloadErr error
}

// Save validates content, commits it durably, and rebinds the live
// instance when the kernel region changed relative to the durable
// predecessor.
type Save func(ctx context.Context, content string) (SaveResult, error)

// Reload reads the persisted document and rebinds the live instance to
// its kernel region.
type Reload func(ctx context.Context) error

func (Module) SaveReload(
	validate kernels.Validate,
	read ReadDocument,
	write WriteDocument,
	rebind kernels.Rebind,
	newSpan logs.NewSpan,
	logger logs.Logger,
) (Save, Reload) {

	// persistence and reload must never interleave
	sem := syncs.NewSemaphore(1)

	reloadPersisted := func(ctx context.Context) error {
		content, err := read()
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		return rebind(ctx, docs.KernelOf(content))
	}

	save := Save(func(ctx context.Context, content string) (ret SaveResult, err error) {
		sem.Acquire()
		defer sem.Release()
		ctx, _ = newSpan(ctx, "")

		if err := validate(content); err != nil {
			return ret, logs.WrapSpan(ctx, err)
		}

		// the durable predecessor, not the in-memory session, decides
		// whether a reload is due
		predecessor, err := read()
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return ret, logs.WrapSpan(ctx, err)
			}
			predecessor = ""
		}

		if err := write(content); err != nil {
			return ret, logs.WrapSpan(ctx, err)
		}

		ret.KernelChanged = docs.KernelOf(predecessor) != docs.KernelOf(content)
		if ret.KernelChanged {
			ret.ReloadErr = reloadPersisted(ctx)
			if ret.ReloadErr != nil {
				logger.ErrorContext(ctx, "reload after save",
					"error", ret.ReloadErr,
				)
			}
		}

		return ret, nil
	})

	reload := Reload(func(ctx context.Context) error {
		sem.Acquire()
		defer sem.Release()
		ctx, _ = newSpan(ctx, "")
		return reloadPersisted(ctx)
	})

	return save, reload
}
