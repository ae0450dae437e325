package scenes

import (
	"testing"
	"time"

	"github.com/cbodonnell/reign/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestEndingHeadline(t *testing.T) {
	seen := map[string]bool{}
	for _, kind := range types.ResourceKinds {
		for _, bound := range []types.Bound{types.BoundFloor, types.BoundCeiling} {
			headline := endingHeadline(types.Ending{Kind: kind, Bound: bound})
			assert.NotEmpty(t, headline)
			assert.False(t, seen[headline], "duplicate headline %q", headline)
			seen[headline] = true
		}
	}
}

func TestGameOverLines(t *testing.T) {
	tests := []struct {
		name  string
		reign types.Reign
		want  []string
	}{
		{
			name:  "abdicated",
			reign: types.Reign{CardsResolved: 3},
			want:  []string{"You abdicated the throne.", "You ruled for 3 decisions."},
		},
		{
			name: "ended by a meter",
			reign: types.Reign{
				CardsResolved: 12,
				Endings:       []types.Ending{{Kind: types.ResourceGold, Bound: types.BoundFloor}},
			},
			want: []string{"The treasury ran dry.", "You ruled for 12 decisions."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gameOverLines(tt.reign))
		})
	}
}

func TestRecentReignLine(t *testing.T) {
	endedAt := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	ended := types.Reign{
		EndedAt:       endedAt,
		CardsResolved: 7,
		Endings:       []types.Ending{{Kind: types.ResourceFaith, Bound: types.BoundCeiling}},
	}
	assert.Equal(t, "Mar 05 14:30  7 cards  The clergy ruled in your name.", recentReignLine(ended))

	abandoned := types.Reign{EndedAt: endedAt, CardsResolved: 2}
	assert.Equal(t, "Mar 05 14:30  2 cards  abdicated", recentReignLine(abandoned))
}
