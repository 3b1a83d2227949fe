package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgentScore_ReferenceValues(t *testing.T) {
	tests := []struct {
		name       string
		commission float64
		virality   float64
		views      float64
		want       float64
	}{
		{"car phone holder", 28, 86.7, 1_500_000, 12.57},
		{"baby head protector", 33, 89.1, 1_900_000, 13.88},
		{"pet hair remover", 30, 88.5, 1_750_000, 13.18},
		{"all zero", 0, 0, 0, 0},
		{"commission only", 25, 0, 0, 5.0},
		{"virality only", 0, 100, 0, 4.0},
		{"views only ten thousand", 0, 0, 10_000, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgentScore(tt.commission, tt.virality, tt.views))
		})
	}
}

func TestAgentScore_Deterministic(t *testing.T) {
	first := AgentScore(22, 78.9, 980_000)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, AgentScore(22, 78.9, 980_000))
	}
}

func TestDefaultScoreConfig_Constants(t *testing.T) {
	c := DefaultScoreConfig()
	assert.Equal(t, 5.0, c.CommissionDivisor)
	assert.Equal(t, 25.0, c.ViralityDivisor)
	assert.Equal(t, 0.25, c.ViewsExponent)
	assert.Equal(t, 10.0, c.ViewsDivisor)
}
