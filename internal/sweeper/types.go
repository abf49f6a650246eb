package sweeper

import "time"

const DefaultGracePeriod = time.Hour

// Config controls what counts as an orphan.
type Config struct {
	// GracePeriod protects blobs and staged files younger than this.
	// An upload between store and record insert is never swept.
	GracePeriod time.Duration
}

type SweepOutput struct {
	Scanned      int
	Orphans      int
	Removed      int
	Failed       int
	StagedPurged int
}
