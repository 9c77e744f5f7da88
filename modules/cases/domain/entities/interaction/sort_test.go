package interaction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/interaction"
)

func TestSort_Normalize(t *testing.T) {
	cases := []struct {
		name string
		in   interaction.Sort
		want interaction.Sort
	}{
		{
			"allowed field and direction pass through",
			interaction.Sort{Field: interaction.SortByPriority, Direction: interaction.SortAsc},
			interaction.Sort{Field: interaction.SortByPriority, Direction: interaction.SortAsc},
		},
		{
			"unknown field falls back to timestamp",
			interaction.Sort{Field: "bogus", Direction: interaction.SortAsc},
			interaction.Sort{Field: interaction.SortByTimestamp, Direction: interaction.SortAsc},
		},
		{
			"unknown direction falls back to descending",
			interaction.Sort{Field: interaction.SortByCaseNumber, Direction: "sideways"},
			interaction.Sort{Field: interaction.SortByCaseNumber, Direction: interaction.SortDesc},
		},
		{
			"empty sort becomes timestamp descending",
			interaction.Sort{},
			interaction.Sort{Field: interaction.SortByTimestamp, Direction: interaction.SortDesc},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.Normalize())
		})
	}
}
