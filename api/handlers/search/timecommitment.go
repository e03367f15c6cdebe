package search

import "strings"

// TimeCommitment is a coarse weekly-hours bucket used for filtering
type TimeCommitment string

// Time commitment buckets
const (
	TimeCommitmentAny    TimeCommitment = ""
	TimeCommitmentUnder5 TimeCommitment = "under5"
	TimeCommitment5To10  TimeCommitment = "5to10"
	TimeCommitment10To20 TimeCommitment = "10to20"
	TimeCommitmentOver20 TimeCommitment = "over20"
)

// bucketHints are matched as substrings against the lowercased free-text
// timeCommitment field. Opportunities store free text ("5-10 hours/week"),
// so bucket membership is best-effort by design; normalizing the field to a
// range is a data-model improvement tracked separately.
var bucketHints = map[TimeCommitment][]string{
	TimeCommitmentUnder5: {"less than 5", "under 5", "up to 5", "<5", "1-5", "0-5"},
	TimeCommitment5To10:  {"5-10", "5 to 10"},
	TimeCommitment10To20: {"10-20", "10 to 20"},
	TimeCommitmentOver20: {"20+", "more than 20", "over 20", "20 or more"},
}

// ValidTimeCommitment reports whether b is part of the bucket vocabulary
func ValidTimeCommitment(b TimeCommitment) bool {
	if b == TimeCommitmentAny {
		return true
	}
	_, ok := bucketHints[b]
	return ok
}

// MatchesTimeCommitment reports whether the free-text commitment field falls
// in the given bucket. An empty bucket matches everything.
func MatchesTimeCommitment(bucket TimeCommitment, freeText string) bool {
	if bucket == TimeCommitmentAny {
		return true
	}
	hints, ok := bucketHints[bucket]
	if !ok {
		return false
	}
	text := strings.ToLower(freeText)
	for _, hint := range hints {
		if strings.Contains(text, hint) {
			return true
		}
	}
	return false
}
