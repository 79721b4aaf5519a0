package scanner

// FileEntry is one regular file observed during the size pass. Size is
// queried once at discovery and reused for all later accounting.
type FileEntry struct {
	Path string
	Size int64
}

// DuplicateGroup is a set of files sharing size and content digest. Files
// keep discovery order.
type DuplicateGroup struct {
	Digest string
	Size   int64
	Files  []FileEntry
}

// Redundant counts the copies beyond the first.
func (g DuplicateGroup) Redundant() int {
	if len(g.Files) < 2 {
		return 0
	}
	return len(g.Files) - 1
}

// WastedBytes is the space reclaimed by keeping a single copy.
func (g DuplicateGroup) WastedBytes() int64 {
	return g.Size * int64(g.Redundant())
}

// SkipCounts tallies entries excluded from consideration, by cause. Skips
// are never fatal; they exist so the report can mention what was left out.
type SkipCounts struct {
	Symlinks   int
	StatErrors int
	HashErrors int
	Hardlinks  int
}

func (s SkipCounts) Total() int {
	return s.Symlinks + s.StatErrors + s.HashErrors + s.Hardlinks
}

// Result is the complete outcome of one scan. It carries everything a
// reporter needs without touching the filesystem again.
type Result struct {
	RootPath     string
	Algorithm    string
	StartTime    string
	EndTime      string
	FilesScanned int
	Groups       []DuplicateGroup
	Skipped      SkipCounts
}

func (r *Result) GroupCount() int {
	return len(r.Groups)
}

func (r *Result) RedundantFiles() int {
	total := 0
	for _, g := range r.Groups {
		total += g.Redundant()
	}
	return total
}

func (r *Result) ReclaimableBytes() int64 {
	var total int64
	for _, g := range r.Groups {
		total += g.WastedBytes()
	}
	return total
}
