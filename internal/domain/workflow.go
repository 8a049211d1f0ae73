package domain

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/problemify/internal/adapter"
	"github.com/mouse-blink/problemify/internal/controller"
	m "github.com/mouse-blink/problemify/internal/model"
)

// ConvertArgs parameterizes an in-place conversion run.
type ConvertArgs struct {
	Mode m.Mode
	Root m.Path
	// Threads bounds concurrent per-file processing. Zero or negative
	// means sequential.
	Threads int
}

// EstimateArgs parameterizes a read-only dry run.
type EstimateArgs struct {
	Mode m.Mode
	Root m.Path
}

// Workflow defines the interface for course tree conversion operations.
type Workflow interface {
	// Convert transforms the tree under Root in place into the Mode variant.
	Convert(args ConvertArgs) error
	// Estimate reports what Convert would remove, without touching the tree.
	Estimate(args EstimateArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
}

// NewWorkflow creates a Workflow instance with the provided adapters.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, ui controller.UI) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
	}
}

// Convert resolves the root, announces the run, then processes every
// candidate file. Files are independent, so processing fans out across an
// errgroup; the first failure cancels the remainder and surfaces as the run
// error. Files already processed stay converted — there is no rollback.
func (w *workflow) Convert(args ConvertArgs) error {
	root, err := w.fsAdapter.AbsPath(args.Root)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}

	w.ui.DisplayRunHeader(args.Mode, root)

	paths, err := w.discover(root)
	if err != nil {
		return err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	var g errgroup.Group

	g.SetLimit(threads)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			return w.processFile(path, args.Mode)
		})
	}

	return g.Wait()
}

// processFile applies the whole-file directive short-circuit, then region
// stripping. Exactly one filesystem mutation happens per file: a delete or a
// full-content rewrite.
func (w *workflow) processFile(path m.Path, mode m.Mode) error {
	content, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if doomedBy(content, mode) {
		if err := w.fsAdapter.Remove(path); err != nil {
			return fmt.Errorf("delete %s: %w", path, err)
		}

		return nil
	}

	info, err := w.fsAdapter.FileInfo(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	stripped := StripRegions(content, mode)

	if err := w.fsAdapter.WriteFile(path, stripped, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// Estimate walks the same candidate set as Convert and hands the per-file
// marker census to the UI. Nothing is written or deleted.
func (w *workflow) Estimate(args EstimateArgs) error {
	root, err := w.fsAdapter.AbsPath(args.Root)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}

	paths, err := w.discover(root)
	if err != nil {
		return w.ui.DisplayEstimation(args.Mode, nil, err)
	}

	stats := make([]m.FileStat, 0, len(paths))

	for _, path := range paths {
		content, err := w.fsAdapter.ReadFile(path)
		if err != nil {
			return w.ui.DisplayEstimation(args.Mode, nil, fmt.Errorf("read %s: %w", path, err))
		}

		stats = append(stats, m.FileStat{
			Path:    path,
			Regions: CountRegions(content, args.Mode),
			Doomed:  doomedBy(content, args.Mode),
		})
	}

	return w.ui.DisplayEstimation(args.Mode, stats, nil)
}
