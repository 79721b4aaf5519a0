package scanner

// Observer receives progress notifications during a scan. Notifications are
// append-only and order-insensitive; the scan never depends on them.
type Observer interface {
	// FileFound fires once per file accepted by the size pass.
	FileFound(path string)
	// HashingStarted fires once with the total candidate count before any
	// content is read.
	HashingStarted(total int)
	// CandidateHashed fires once per candidate after its digest attempt.
	CandidateHashed(path string)
}

type NopObserver struct{}

func (NopObserver) FileFound(string) {}

func (NopObserver) HashingStarted(int) {}

func (NopObserver) CandidateHashed(string) {}

func ensureObserver(obs Observer) Observer {
	if obs == nil {
		return NopObserver{}
	}
	return obs
}
