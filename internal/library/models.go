package library

import "time"

// Entry is one indexed comic archive.
type Entry struct {
	ID          int64
	Path        string
	Fingerprint string

	Series    string
	Issue     string
	Title     string
	Publisher string
	Year      int
	PageCount int

	// Tagged reports whether the archive carried a valid tag document at
	// scan time.
	Tagged bool

	// ScanSession is the uuid of the scan run that last touched this entry.
	ScanSession string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stats summarizes the index.
type Stats struct {
	Total    int
	Tagged   int
	Untagged int
}

// ScanSummary reports the outcome of one scan run.
type ScanSummary struct {
	Session  string
	Scanned  int
	Tagged   int
	Untagged int
	Failed   int
	Pruned   int64
	Elapsed  time.Duration
}

// DatabaseHealth carries diagnostic information about the index database.
type DatabaseHealth struct {
	DBPath           string
	DatabaseExists   bool
	DatabaseReadable bool
	IntegrityCheck   bool
	TotalEntries     int
	Error            string
}
