package director

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ivlev/pcrcam/internal/pcr"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ExportAll dumps every registered camera object into dir, one file per
// object, with at most workers dumps in flight. The model must not be
// modified while it runs. It returns the written paths in registration
// order. Names that map to the same file name get a numeric suffix.
func ExportAll(ctx context.Context, model *pcr.PCR, dir string, layout pcr.Layout, workers int) ([]string, error) {
	names := model.Data.Objects.Names()
	paths := make([]string, len(names))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	taken := make(map[string]bool)
	for i, name := range names {
		file := uniqueName(OutputName(name), taken)
		taken[file] = true
		paths[i] = filepath.Join(dir, file)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := model.DumpLayout(name, paths[i], layout); err != nil {
				return err
			}
			log.WithFields(log.Fields{"object": name, "path": paths[i]}).Debug("camera exported")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// uniqueName returns file, or the first free file_N.json when file is taken.
func uniqueName(file string, taken map[string]bool) string {
	if !taken[file] {
		return file
	}
	base := strings.TrimSuffix(file, ".json")
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d.json", base, n)
		if !taken[candidate] {
			return candidate
		}
	}
}
