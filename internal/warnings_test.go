package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarningAggregator(t *testing.T) {
	w := NewWarningAggregator()
	assert.Equal(t, 0, w.Len())
	assert.Empty(t, w.Messages("input"))

	for _, id := range []string{"A->X", "B->Y", "C->Z", "D->W"} {
		w.Add(WarningUnresolvedDistance, id)
	}
	w.Add(WarningNoRouteShortName, "R1")

	assert.Equal(t, 2, w.Len())
	assert.Equal(t, 4, w.Count(WarningUnresolvedDistance))
	assert.Equal(t, 0, w.Count(WarningStopNotFound))

	msgs := w.Messages("input.json")
	require.Len(t, msgs, 2)
	assert.Equal(t, "input.json has routes with no route_short_name (1 occurrences). Using route_id as the bus name. Examples: R1", msgs[0])
	assert.Equal(t, "input.json has road distances naming unknown stops (4 occurrences). Ignoring the distance. Examples: A->X, B->Y, C->Z", msgs[1])
}
