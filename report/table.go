package report

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"doppel/config"
	"doppel/scanner"
)

const digestPrefixLen = 12

func renderTable(w io.Writer, res *scanner.Result, cfg *config.Config) error {
	buf := bufio.NewWriter(w)

	if res.GroupCount() == 0 {
		fmt.Fprintln(buf, "No duplicate files found.")
		writeSummary(buf, res)
		return buf.Flush()
	}

	for i, group := range res.Groups {
		fmt.Fprintf(buf, "Group %d: %d files x %s (%d bytes), %s wasted, digest %s",
			i+1, len(group.Files),
			humanize.IBytes(uint64(group.Size)), group.Size,
			humanize.IBytes(uint64(group.WastedBytes())),
			digestPrefix(group.Digest))
		if cfg.DetectTypes && len(group.Files) > 0 {
			fmt.Fprintf(buf, ", type %s", mediaType(group.Files[0].Path))
		}
		fmt.Fprintln(buf)
		for _, file := range group.Files {
			mod := statTimes(file.Path).ModTime
			if mod == "" {
				mod = "-"
			}
			fmt.Fprintf(buf, "  %-20s  %s\n", mod, file.Path)
		}
		fmt.Fprintln(buf)
	}

	writeSummary(buf, res)
	return buf.Flush()
}

func writeSummary(buf *bufio.Writer, res *scanner.Result) {
	fmt.Fprintln(buf, "Summary:")
	fmt.Fprintf(buf, "  Duplicate groups:   %d\n", res.GroupCount())
	fmt.Fprintf(buf, "  Redundant files:    %d\n", res.RedundantFiles())
	fmt.Fprintf(buf, "  Reclaimable space:  %s (%d bytes)\n",
		humanize.IBytes(uint64(res.ReclaimableBytes())), res.ReclaimableBytes())
	fmt.Fprintf(buf, "  Files scanned:      %d\n", res.FilesScanned)
	if elapsed, ok := elapsedTime(res); ok {
		fmt.Fprintf(buf, "  Elapsed:            %s\n", elapsed)
	}
	if usage := volumeUsage(res.RootPath); usage != nil {
		fmt.Fprintf(buf, "  Volume:             %s total, %s free\n",
			humanize.IBytes(usage.Total), humanize.IBytes(usage.Free))
	}
	if res.Skipped.Total() > 0 {
		fmt.Fprintf(buf, "  Skipped:            %d symlinks, %d unreadable, %d hash failures, %d hardlinks\n",
			res.Skipped.Symlinks, res.Skipped.StatErrors, res.Skipped.HashErrors, res.Skipped.Hardlinks)
	}
}

func elapsedTime(res *scanner.Result) (time.Duration, bool) {
	start, err := time.Parse(time.RFC3339, res.StartTime)
	if err != nil {
		return 0, false
	}
	end, err := time.Parse(time.RFC3339, res.EndTime)
	if err != nil {
		return 0, false
	}
	return end.Sub(start).Round(time.Millisecond), true
}

func digestPrefix(digest string) string {
	if len(digest) <= digestPrefixLen {
		return digest
	}
	return digest[:digestPrefixLen]
}
