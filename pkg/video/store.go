package video

import (
	"sort"
	"sync"
)

//ObservationStore accumulates plate observations per tracked vehicle. Appends are
//append-only per car id, safe for concurrent use from the OCR workers
type ObservationStore struct {
	mu           sync.Mutex
	observations map[int][]PlateObservation
}

func NewObservationStore() *ObservationStore {
	return &ObservationStore{observations: make(map[int][]PlateObservation)}
}

//Append adds given observation to it's car's sequence
func (s *ObservationStore) Append(obs PlateObservation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observations[obs.CarID] = append(s.observations[obs.CarID], obs)
}

//Observations returns a copy of given car's observation sequence, in append order
func (s *ObservationStore) Observations(carID int) []PlateObservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	observations := make([]PlateObservation, len(s.observations[carID]))
	copy(observations, s.observations[carID])
	return observations
}

//CarIDs returns the ids of all cars with at least one observation, sorted ascending
func (s *ObservationStore) CarIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.observations))
	for id := range s.observations {
		ids = append(ids, id)
	}

	sort.Ints(ids)
	return ids
}

//ByFrame returns all observations indexed by frame number, used by the render pass
func (s *ObservationStore) ByFrame() map[int][]PlateObservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	byFrame := make(map[int][]PlateObservation)
	for _, observations := range s.observations {
		for _, obs := range observations {
			byFrame[obs.Frame] = append(byFrame[obs.Frame], obs)
		}
	}

	return byFrame
}
