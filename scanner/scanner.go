package scanner

import (
	"context"
	"sort"
	"time"

	"doppel/config"
	"doppel/logger"
)

// Scan runs the size pass and the content pass in sequence and assembles
// the final result. Groups are ordered by wasted bytes descending with the
// digest as tiebreak; members keep discovery order. A canceled context
// aborts the scan and no result is returned.
func Scan(ctx context.Context, cfg *config.Config, obs Observer) (*Result, error) {
	adjustConcurrency(cfg)

	result := &Result{
		RootPath:  cfg.Root,
		Algorithm: cfg.Digest,
		StartTime: time.Now().UTC().Format(time.RFC3339),
	}

	sizeGroups, observed, skips, err := GroupBySize(ctx, cfg, obs)
	if err != nil {
		return nil, err
	}
	result.FilesScanned = observed
	result.Skipped = skips
	logger.Debugf("Size pass complete: %d files in %d buckets", observed, len(sizeGroups))

	duplicates, hashErrors, err := FindDuplicates(ctx, sizeGroups, cfg, obs)
	if err != nil {
		return nil, err
	}
	result.Skipped.HashErrors = hashErrors

	groups := make([]DuplicateGroup, 0, len(duplicates))
	for digest, entries := range duplicates {
		groups = append(groups, DuplicateGroup{
			Digest: digest,
			Size:   entries[0].Size,
			Files:  entries,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].WastedBytes() != groups[j].WastedBytes() {
			return groups[i].WastedBytes() > groups[j].WastedBytes()
		}
		return groups[i].Digest < groups[j].Digest
	})
	result.Groups = groups

	result.EndTime = time.Now().UTC().Format(time.RFC3339)
	return result, nil
}
