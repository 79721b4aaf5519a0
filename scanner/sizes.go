package scanner

import (
	"context"
	"io/fs"

	"doppel/config"
	"doppel/logger"
	"doppel/utils"
)

// GroupBySize walks the tree once and buckets regular files by exact byte
// size. It returns the buckets, the number of files bucketed, and per-class
// skip tallies. Symlinks are never followed; zero-byte files and entries
// that fail to stat are left out and the walk continues.
func GroupBySize(ctx context.Context, cfg *config.Config, obs Observer) (map[int64][]FileEntry, int, SkipCounts, error) {
	obs = ensureObserver(obs)
	matcher := utils.NewPatternMatcher(cfg.IncludePatterns, cfg.ExcludePatterns)

	groups := make(map[int64][]FileEntry)
	var skips SkipCounts
	observed := 0
	seenIDs := make(map[string]struct{})

	err := stackWalker{}.Walk(ctx, cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Debugf("Skipping %s: %v", path, err)
			skips.StatErrors++
			return nil
		}
		if d == nil || d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			skips.Symlinks++
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !matcher.ShouldInclude(path) {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			logger.Debugf("Skipping %s: %v", path, infoErr)
			skips.StatErrors++
			return nil
		}
		if info.Size() == 0 || info.Size() < cfg.MinSize {
			return nil
		}
		if cfg.SkipHardlinks {
			if id := getFileID(path, info); id != "" {
				if _, seen := seenIDs[id]; seen {
					skips.Hardlinks++
					return nil
				}
				seenIDs[id] = struct{}{}
			}
		}
		groups[info.Size()] = append(groups[info.Size()], FileEntry{Path: path, Size: info.Size()})
		observed++
		obs.FileFound(path)
		return nil
	})
	if err != nil {
		return nil, 0, SkipCounts{}, err
	}
	return groups, observed, skips, nil
}
