// Package progress renders scan activity on stderr.
package progress

import (
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// Reporter drives two displays in sequence: an indeterminate spinner while
// the tree is enumerated, then a bar across the hashing candidates. The
// scanner notifies it from one goroutine at a time, so no locking here.
type Reporter struct {
	bar *progressbar.ProgressBar
}

func NewReporter() *Reporter {
	return &Reporter{
		bar: progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Discovering files"),
			progressbar.OptionShowCount(),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetVisibility(progressVisible()),
			progressbar.OptionFullWidth(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionClearOnFinish(),
		),
	}
}

func (r *Reporter) FileFound(string) {
	_ = r.bar.Add(1)
}

func (r *Reporter) HashingStarted(total int) {
	_ = r.bar.Finish()
	_ = r.bar.Clear()
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Hashing candidates"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetVisibility(progressVisible()),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *Reporter) CandidateHashed(string) {
	_ = r.bar.Add(1)
}

// Done clears the display so the report starts on a clean line.
func (r *Reporter) Done() {
	_ = r.bar.Finish()
	_ = r.bar.Clear()
}

func progressVisible() bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv("DOPPEL_DISABLE_PROGRESS")))
	return value != "1" && value != "true" && value != "yes" && value != "on"
}
