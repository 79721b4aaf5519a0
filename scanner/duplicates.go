package scanner

import (
	"context"
	"sort"
	"sync"

	"doppel/config"
	"doppel/hasher"
	"doppel/logger"

	"golang.org/x/time/rate"
)

type candidate struct {
	entry  FileEntry
	digest string
	err    error
}

// FindDuplicates digests every member of the multi-entry size buckets and
// groups candidates by content digest; only digests shared by two or more
// files survive. Singleton size buckets are dropped without reading any
// content. The int return counts files excluded because their content could
// not be read.
//
// Hashing runs on cfg.Concurrency workers. Each worker writes into its
// candidate's own slot, so discovery order is intact when grouping happens
// afterwards.
func FindDuplicates(ctx context.Context, sizeGroups map[int64][]FileEntry, cfg *config.Config, obs Observer) (map[string][]FileEntry, int, error) {
	obs = ensureObserver(obs)

	sizes := make([]int64, 0, len(sizeGroups))
	for size, entries := range sizeGroups {
		if len(entries) >= 2 {
			sizes = append(sizes, size)
		}
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })

	var candidates []candidate
	for _, size := range sizes {
		for _, entry := range sizeGroups[size] {
			candidates = append(candidates, candidate{entry: entry})
		}
	}
	obs.HashingStarted(len(candidates))
	if len(candidates) == 0 {
		return map[string][]FileEntry{}, 0, nil
	}

	var ioLimiter *rate.Limiter
	if cfg.MaxIOPerSecond > 0 {
		ioLimiter = rate.NewLimiter(rate.Limit(cfg.MaxIOPerSecond), cfg.MaxIOPerSecond)
	}

	workers := max(cfg.Concurrency, 1)
	tasks := make(chan int, workers)
	progressCh := make(chan string, max(workers*4, 64))

	var progressWG sync.WaitGroup
	progressWG.Add(1)
	go func() {
		defer progressWG.Done()
		for path := range progressCh {
			obs.CandidateHashed(path)
		}
	}()

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				select {
				case <-ctx.Done():
					return
				default:
				}
				if ioLimiter != nil {
					if err := ioLimiter.Wait(ctx); err != nil {
						return
					}
				}
				digest, err := hasher.SumFile(ctx, candidates[idx].entry.Path, cfg.Digest)
				candidates[idx].digest = digest
				candidates[idx].err = err
				progressCh <- candidates[idx].entry.Path
			}
		}()
	}

feed:
	for idx := range candidates {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- idx:
		}
	}
	close(tasks)
	wg.Wait()
	close(progressCh)
	progressWG.Wait()

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	groups := make(map[string][]FileEntry)
	hashErrors := 0
	for i := range candidates {
		if candidates[i].err != nil {
			logger.Debugf("Skipping %s: %v", candidates[i].entry.Path, candidates[i].err)
			hashErrors++
			continue
		}
		groups[candidates[i].digest] = append(groups[candidates[i].digest], candidates[i].entry)
	}
	for digest, entries := range groups {
		if len(entries) < 2 {
			delete(groups, digest)
		}
	}
	return groups, hashErrors, nil
}
