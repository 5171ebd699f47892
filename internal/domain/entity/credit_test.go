package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCredits(t *testing.T) {
	assert.Equal(t, 7, EstimateCredits(3, DefaultWordRange()))
	assert.Equal(t, 0, EstimateCredits(0, WordRange{Min: 0, Max: 999}))
	assert.Equal(t, 12, EstimateCredits(5, WordRange{Min: 1000, Max: 2500}))
}

func TestFallbackCreditStatus(t *testing.T) {
	s := FallbackCreditStatus()

	assert.True(t, s.Degraded)
	assert.Zero(t, s.CurrentCredit)
	assert.Zero(t, s.UpcomingDeduction)
}
