package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildStats_Empty(t *testing.T) {
	stats := BuildStats(nil)
	assert.Zero(t, stats.Total)
	assert.Nil(t, stats.ByType)
	assert.Nil(t, stats.ByTopic)
	assert.Nil(t, stats.BySensitivity)
}

func TestBuildStats_Counts(t *testing.T) {
	claims := []Claim{
		{ClaimType: ClaimTypeNumeric, Topic: TopicFinance, TimeSensitivity: SensitivityHigh},
		{ClaimType: ClaimTypeNumeric, Topic: TopicTech, TimeSensitivity: SensitivityLow},
		{ClaimType: ClaimTypeTemporal, Topic: TopicTech, TimeSensitivity: SensitivityLow},
	}

	stats := BuildStats(claims)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByType[ClaimTypeNumeric])
	assert.Equal(t, 1, stats.ByType[ClaimTypeTemporal])
	assert.Equal(t, 2, stats.ByTopic[TopicTech])
	assert.Equal(t, 1, stats.ByTopic[TopicFinance])
	assert.Equal(t, 2, stats.BySensitivity[SensitivityLow])
	assert.Equal(t, 1, stats.BySensitivity[SensitivityHigh])
}
