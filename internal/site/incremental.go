package site

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/gitdiff"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/render"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/storage"
)

// UpdateResult summarizes one incremental pass.
type UpdateResult struct {
	Rendered int
	Removed  int
	Skipped  int
}

// Update re-renders only the pages whose sources changed since baseRef,
// comparing content hashes against the cache so touched-but-identical
// files are skipped. The cache is required here; a full Build seeds it.
func (b *Builder) Update(ctx context.Context, baseRef string) (UpdateResult, error) {
	var res UpdateResult
	if b.Store == nil {
		return res, fmt.Errorf("incremental update requires a cache database")
	}

	changes, err := gitdiff.ChangedFiles(baseRef)
	if err != nil {
		return res, err
	}

	cached, err := b.Store.LoadPages(ctx)
	if err != nil {
		return res, err
	}
	bySource := map[string][]storage.PageRecord{}
	for _, rec := range cached {
		bySource[rec.SourcePath] = append(bySource[rec.SourcePath], rec)
	}

	// The location map covers every known unit: cached pages plus the
	// changed files parsed fresh below.
	locations := make(map[string]string, len(cached))
	for name := range cached {
		locations[name] = pageFile(name)
	}

	var stale []parsedFile
	for _, ch := range changes {
		if !strings.HasSuffix(ch.Path, ".m") {
			continue
		}
		if ch.Deleted {
			for _, rec := range bySource[ch.Path] {
				_ = os.Remove(rec.OutputPath)
				delete(locations, rec.Name)
				res.Removed++
			}
			if err := b.Store.DeleteBySource(ctx, ch.Path); err != nil {
				return res, err
			}
			continue
		}

		data, err := os.ReadFile(ch.Path)
		if err != nil {
			return res, err
		}
		sum := sha256.Sum256(data)
		hash := hex.EncodeToString(sum[:])
		if recs := bySource[ch.Path]; len(recs) > 0 && recs[0].SourceHash == hash {
			res.Skipped++
			continue
		}

		f, err := parseFile(ch.Path)
		if errors.Is(err, model.ErrNoDeclarationFound) {
			res.Skipped++
			continue
		}
		if err != nil {
			return res, err
		}
		locations[f.Unit.Name] = pageFile(f.Unit.Name)
		stale = append(stale, f)
	}

	records := make([]storage.PageRecord, 0, len(stale))
	for _, f := range stale {
		r := render.New(render.Options{Locations: locations})
		outPath := filepath.Join(b.Config.Site.OutputDir, pageFile(f.Unit.Name))
		if err := os.WriteFile(outPath, []byte(r.Page(f.Unit)), 0o644); err != nil {
			return res, err
		}
		records = append(records, storage.PageRecord{
			Name:       f.Unit.Name,
			Kind:       string(f.Unit.Kind),
			SourcePath: f.Path,
			SourceHash: f.Hash,
			Synopsis:   f.Unit.Synopsis,
			OutputPath: outPath,
			RenderedAt: time.Now().UTC(),
		})
		res.Rendered++
	}

	if len(records) > 0 {
		if err := b.Store.SavePages(ctx, records); err != nil {
			return res, err
		}
	}

	if res.Rendered > 0 || res.Removed > 0 {
		if err := b.rewriteIndexFromCache(ctx); err != nil {
			return res, err
		}
	}
	return res, nil
}

// rewriteIndexFromCache regenerates the index page from cached records, so
// an incremental pass never has to re-parse the whole tree.
func (b *Builder) rewriteIndexFromCache(ctx context.Context) error {
	cached, err := b.Store.LoadPages(ctx)
	if err != nil {
		return err
	}
	files := make([]parsedFile, 0, len(cached))
	for _, rec := range cached {
		files = append(files, parsedFile{
			Path: rec.SourcePath,
			Hash: rec.SourceHash,
			Unit: &model.DeclarationUnit{
				Kind:     model.UnitKind(rec.Kind),
				Name:     rec.Name,
				Synopsis: rec.Synopsis,
			},
		})
	}
	return b.writeIndex(files)
}
