package batch

import "time"

// Result is a completed batch run. Entries keep directory-enumeration
// order and are immutable once the run returns.
type Result struct {
	Dir     string
	Needle  string
	Entries []FileEntry
	Elapsed time.Duration
}

// TotalFiles returns the number of files examined.
func (r *Result) TotalFiles() int {
	return len(r.Entries)
}

// FilesWithMatch returns the number of files with at least one match.
func (r *Result) FilesWithMatch() int {
	n := 0
	for i := range r.Entries {
		if r.Entries[i].Result.Found() {
			n++
		}
	}
	return n
}

// BytesScanned returns the total bytes read across all files.
func (r *Result) BytesScanned() int64 {
	var total int64
	for i := range r.Entries {
		total += r.Entries[i].Result.BytesScanned
	}
	return total
}

// TotalSize returns the combined size of all examined files.
func (r *Result) TotalSize() int64 {
	var total int64
	for i := range r.Entries {
		total += r.Entries[i].Size
	}
	return total
}

// MatchRate returns filesWithMatch / totalFiles as a percentage.
// An empty batch has a rate of zero.
func (r *Result) MatchRate() float64 {
	if len(r.Entries) == 0 {
		return 0
	}
	return float64(r.FilesWithMatch()) / float64(len(r.Entries)) * 100
}

// CategoryCounts returns how many files fall into each category.
func (r *Result) CategoryCounts() map[Category]int {
	counts := make(map[Category]int)
	for i := range r.Entries {
		counts[r.Entries[i].Category()]++
	}
	return counts
}
