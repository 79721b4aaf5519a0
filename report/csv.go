package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"doppel/scanner"
)

func renderCSV(w io.Writer, res *scanner.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"group", "digest", "size", "path"}); err != nil {
		return err
	}
	for i, group := range res.Groups {
		for _, file := range group.Files {
			row := []string{
				strconv.Itoa(i + 1),
				group.Digest,
				strconv.FormatInt(group.Size, 10),
				file.Path,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
