package report

import (
	"io"
	"os"
	"time"

	"github.com/djherbis/times"
	"github.com/h2non/filetype"
	"github.com/shirou/gopsutil/v4/disk"

	"doppel/logger"
)

type fileTimes struct {
	ModTime    string
	ChangeTime string
	BirthTime  string
}

func statTimes(path string) fileTimes {
	ts, err := times.Stat(path)
	if err != nil {
		logger.Debugf("Timestamps unavailable for %s: %v", path, err)
		return fileTimes{}
	}
	result := fileTimes{ModTime: ts.ModTime().UTC().Format(time.RFC3339)}
	if ts.HasChangeTime() {
		result.ChangeTime = ts.ChangeTime().UTC().Format(time.RFC3339)
	}
	if ts.HasBirthTime() {
		result.BirthTime = ts.BirthTime().UTC().Format(time.RFC3339)
	}
	return result
}

// mediaType sniffs the leading bytes of path. Unreadable or unrecognized
// content both come back as "unknown".
func mediaType(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return "unknown"
	}
	defer file.Close()

	buf := make([]byte, 261)
	if _, err := file.Read(buf); err != nil && err != io.EOF {
		return "unknown"
	}
	kind, err := filetype.Match(buf)
	if err != nil || kind == filetype.Unknown || kind.MIME.Value == "" {
		return "unknown"
	}
	return kind.MIME.Value
}

func volumeUsage(root string) *disk.UsageStat {
	usage, err := disk.Usage(root)
	if err != nil {
		logger.Debugf("Volume stats unavailable for %s: %v", root, err)
		return nil
	}
	return usage
}
