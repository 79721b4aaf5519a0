package report

import (
	"bufio"
	"io"

	"doppel/config"
	"doppel/scanner"
)

type jsonFile struct {
	Path       string `json:"path"`
	Size       int64  `json:"size"`
	ModTime    string `json:"mod_time,omitempty"`
	ChangeTime string `json:"change_time,omitempty"`
	BirthTime  string `json:"birth_time,omitempty"`
}

type jsonGroup struct {
	Digest      string     `json:"digest"`
	Size        int64      `json:"size"`
	WastedBytes int64      `json:"wasted_bytes"`
	MediaType   string     `json:"media_type,omitempty"`
	Files       []jsonFile `json:"files"`
}

type jsonSkips struct {
	Symlinks   int `json:"symlinks"`
	StatErrors int `json:"stat_errors"`
	HashErrors int `json:"hash_errors"`
	Hardlinks  int `json:"hardlinks"`
}

type jsonVolume struct {
	TotalBytes uint64 `json:"total_bytes"`
	FreeBytes  uint64 `json:"free_bytes"`
}

type jsonReport struct {
	SchemaVersion    string      `json:"schema_version"`
	RootPath         string      `json:"root_path"`
	Algorithm        string      `json:"algorithm"`
	StartTime        string      `json:"start_time"`
	EndTime          string      `json:"end_time"`
	FilesScanned     int         `json:"files_scanned"`
	GroupCount       int         `json:"group_count"`
	RedundantFiles   int         `json:"redundant_files"`
	ReclaimableBytes int64       `json:"reclaimable_bytes"`
	Skipped          jsonSkips   `json:"skipped"`
	Volume           *jsonVolume `json:"volume,omitempty"`
	Groups           []jsonGroup `json:"groups"`
}

func renderJSON(w io.Writer, res *scanner.Result, cfg *config.Config) error {
	doc := jsonReport{
		SchemaVersion:    SchemaVersion,
		RootPath:         res.RootPath,
		Algorithm:        res.Algorithm,
		StartTime:        res.StartTime,
		EndTime:          res.EndTime,
		FilesScanned:     res.FilesScanned,
		GroupCount:       res.GroupCount(),
		RedundantFiles:   res.RedundantFiles(),
		ReclaimableBytes: res.ReclaimableBytes(),
		Skipped: jsonSkips{
			Symlinks:   res.Skipped.Symlinks,
			StatErrors: res.Skipped.StatErrors,
			HashErrors: res.Skipped.HashErrors,
			Hardlinks:  res.Skipped.Hardlinks,
		},
		Groups: make([]jsonGroup, 0, len(res.Groups)),
	}
	if usage := volumeUsage(res.RootPath); usage != nil {
		doc.Volume = &jsonVolume{TotalBytes: usage.Total, FreeBytes: usage.Free}
	}

	for _, group := range res.Groups {
		jg := jsonGroup{
			Digest:      group.Digest,
			Size:        group.Size,
			WastedBytes: group.WastedBytes(),
			Files:       make([]jsonFile, 0, len(group.Files)),
		}
		if cfg.DetectTypes && len(group.Files) > 0 {
			jg.MediaType = mediaType(group.Files[0].Path)
		}
		for _, file := range group.Files {
			ts := statTimes(file.Path)
			jg.Files = append(jg.Files, jsonFile{
				Path:       file.Path,
				Size:       file.Size,
				ModTime:    ts.ModTime,
				ChangeTime: ts.ChangeTime,
				BirthTime:  ts.BirthTime,
			})
		}
		doc.Groups = append(doc.Groups, jg)
	}

	bytes, err := jsonMarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	buf := bufio.NewWriter(w)
	buf.Write(bytes)
	buf.WriteString("\n")
	return buf.Flush()
}
