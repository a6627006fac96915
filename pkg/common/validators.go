package common

// IsValidProbability reports whether p lies in [0, 1].
func IsValidProbability(p float64) bool {
	return p >= 0 && p <= 1
}

// CheckRanges reports whether every field of the record lies in its domain.
func CheckRanges(r Record) bool {
	switch {
	case r.MatrixSize <= 0, r.Granularity <= 0:
		return false
	case !IsValidProbability(r.KillProbability):
		return false
	case r.WorkersKilled < 0:
		return false
	case r.TotalTime < 0, r.MultTime < 0:
		return false
	case r.MultTime > r.TotalTime:
		return false
	}
	return true
}
