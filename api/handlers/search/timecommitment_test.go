package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/volunteerhub/volunteer-match-api/api/handlers/search"
)

func TestMatchesTimeCommitment(t *testing.T) {
	tests := []struct {
		name     string
		bucket   search.TimeCommitment
		freeText string
		want     bool
	}{
		{"any bucket matches everything", search.TimeCommitmentAny, "whatever the org wrote", true},
		{"hyphenated range", search.TimeCommitment5To10, "5-10 hours/week", true},
		{"spelled out range", search.TimeCommitment5To10, "5 to 10 hours per week", true},
		{"under 5 does not match 5-10", search.TimeCommitment5To10, "Less than 5 hours/week", false},
		{"less than phrasing", search.TimeCommitmentUnder5, "Less than 5 hours/week", true},
		{"up to phrasing", search.TimeCommitmentUnder5, "Up to 5 hours a week", true},
		{"plus suffix", search.TimeCommitmentOver20, "20+ hours/week", true},
		{"more than phrasing", search.TimeCommitmentOver20, "more than 20 hours", true},
		{"ten to twenty", search.TimeCommitment10To20, "10-20 hours/week", true},
		{"unrecognized text matches no bucket", search.TimeCommitment10To20, "flexible schedule", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, search.MatchesTimeCommitment(tt.bucket, tt.freeText))
		})
	}
}

func TestValidTimeCommitment(t *testing.T) {
	assert.True(t, search.ValidTimeCommitment(search.TimeCommitmentAny))
	assert.True(t, search.ValidTimeCommitment(search.TimeCommitment5To10))
	assert.True(t, search.ValidTimeCommitment(search.TimeCommitmentOver20))
	assert.False(t, search.ValidTimeCommitment("weekends"))
}
