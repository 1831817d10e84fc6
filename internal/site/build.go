package site

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/config"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/parse"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/render"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/resolve"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/storage"
)

// Builder turns a configured source tree into a set of reference pages.
type Builder struct {
	Config *config.Config
	Store  *storage.SQLiteStore
	// Workers bounds parallel page rendering; zero means one per CPU
	// as decided by errgroup's default.
	Workers int
}

// parsedFile is one documentable source file after the parse pass.
type parsedFile struct {
	Path string
	Hash string
	Unit *model.DeclarationUnit
}

// Build runs the full two-pass site build: parse everything to assemble
// the name-to-location map, then render every page in parallel. Parallel
// rendering is safe because units are immutable after resolution and
// reference each other only by name.
func (b *Builder) Build(ctx context.Context) (int, error) {
	files, err := b.parseAll()
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(b.Config.Site.OutputDir, 0o755); err != nil {
		return 0, err
	}

	locations := locationMap(files)

	var mu sync.Mutex
	records := make([]storage.PageRecord, 0, len(files))

	g, ctx := errgroup.WithContext(ctx)
	if b.Workers > 0 {
		g.SetLimit(b.Workers)
	}
	for _, f := range files {
		f := f
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			r := render.New(render.Options{Locations: locations})
			outPath := filepath.Join(b.Config.Site.OutputDir, pageFile(f.Unit.Name))
			if err := os.WriteFile(outPath, []byte(r.Page(f.Unit)), 0o644); err != nil {
				return err
			}
			mu.Lock()
			records = append(records, storage.PageRecord{
				Name:       f.Unit.Name,
				Kind:       string(f.Unit.Kind),
				SourcePath: f.Path,
				SourceHash: f.Hash,
				Synopsis:   f.Unit.Synopsis,
				OutputPath: outPath,
				RenderedAt: time.Now().UTC(),
			})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	if err := b.writeIndex(files); err != nil {
		return 0, err
	}
	if b.Store != nil {
		if err := b.Store.SavePages(ctx, records); err != nil {
			return 0, err
		}
	}
	return len(files), nil
}

// parseAll discovers and parses every source file under the configured
// roots. Files without a declaration are skipped, not fatal.
func (b *Builder) parseAll() ([]parsedFile, error) {
	disc := NewDiscoverer(b.Config.Project.Exclude...)
	var paths []string
	for _, root := range b.Config.Project.Roots {
		if err := disc.Scan(root, func(p string) { paths = append(paths, p) }); err != nil {
			return nil, err
		}
	}

	var out []parsedFile
	for _, p := range paths {
		f, err := parseFile(p)
		if errors.Is(err, model.ErrNoDeclarationFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Unit.Name < out[j].Unit.Name })
	return out, nil
}

func parseFile(path string) (parsedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return parsedFile{}, err
	}
	unit, err := parse.ParseSource(string(data))
	if err != nil {
		return parsedFile{}, err
	}
	resolve.Apply(unit)
	sum := sha256.Sum256(data)
	return parsedFile{Path: path, Hash: hex.EncodeToString(sum[:]), Unit: unit}, nil
}

func locationMap(files []parsedFile) map[string]string {
	locations := make(map[string]string, len(files))
	for _, f := range files {
		locations[f.Unit.Name] = pageFile(f.Unit.Name)
	}
	return locations
}

func pageFile(name string) string {
	return name + ".html"
}
