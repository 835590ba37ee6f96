package video

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservationStoreAppendAndRead(t *testing.T) {
	store := NewObservationStore()

	store.Append(PlateObservation{Frame: 0, CarID: 3, Text: "34ABC123"})
	store.Append(PlateObservation{Frame: 1, CarID: 3, Text: "34ABC128"})
	store.Append(PlateObservation{Frame: 0, CarID: 1, Text: "06DE412"})

	assert.Equal(t, []int{1, 3}, store.CarIDs())

	observations := store.Observations(3)
	require.Len(t, observations, 2)
	assert.Equal(t, "34ABC123", observations[0].Text)
	assert.Equal(t, "34ABC128", observations[1].Text)

	assert.Empty(t, store.Observations(99))
}

func TestObservationStoreReturnsCopies(t *testing.T) {
	store := NewObservationStore()
	store.Append(PlateObservation{Frame: 0, CarID: 1, Text: "34ABC123"})

	observations := store.Observations(1)
	observations[0].Text = "mutated"

	assert.Equal(t, "34ABC123", store.Observations(1)[0].Text)
}

func TestObservationStoreConcurrentAppends(t *testing.T) {
	store := NewObservationStore()

	carIDs := []int{1, 2, 3, 4, 5}
	perCar := 50

	var wg sync.WaitGroup
	for _, carID := range carIDs {
		carID := carID
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perCar; i++ {
				store.Append(PlateObservation{Frame: i, CarID: carID, Text: "34ABC123"})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, carIDs, store.CarIDs())
	for _, carID := range carIDs {
		assert.Len(t, store.Observations(carID), perCar)
	}
}

func TestObservationStoreByFrame(t *testing.T) {
	store := NewObservationStore()
	store.Append(PlateObservation{Frame: 0, CarID: 1, Text: "34ABC123"})
	store.Append(PlateObservation{Frame: 0, CarID: 2, Text: "06DE412"})
	store.Append(PlateObservation{Frame: 2, CarID: 1, Text: "34ABC123"})

	byFrame := store.ByFrame()
	assert.Len(t, byFrame[0], 2)
	assert.Len(t, byFrame[2], 1)
	assert.Empty(t, byFrame[1])
}
