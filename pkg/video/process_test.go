package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCanonical(t *testing.T) {
	store := NewObservationStore()

	//car 1 has a clear plurality
	for i := 0; i < 5; i++ {
		store.Append(PlateObservation{Frame: i, CarID: 1, Text: "34ABC123", TextScore: 0.9})
	}
	store.Append(PlateObservation{Frame: 5, CarID: 1, Text: "34ABC128", TextScore: 0.9})

	//car 2 never produced a usable reading
	store.Append(PlateObservation{Frame: 0, CarID: 2, Text: "0", TextScore: 0.9})
	store.Append(PlateObservation{Frame: 1, CarID: 2, Text: "", TextScore: 0.9})

	//car 3 has a single reading
	store.Append(PlateObservation{Frame: 7, CarID: 3, Text: "06DE412", TextScore: 0.5})

	resolved := ResolveCanonical(store, 10)

	require.Len(t, resolved, 2)
	assert.Equal(t, "34ABC123", resolved[1].Text)
	assert.Equal(t, "06DE412", resolved[3].Text)
	assert.Equal(t, 7, resolved[3].Frame)

	_, ok := resolved[2]
	assert.False(t, ok)
}

func TestResolveCanonicalEmptyStore(t *testing.T) {
	assert.Empty(t, ResolveCanonical(NewObservationStore(), 10))
}
