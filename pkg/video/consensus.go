package video

import (
	"sort"
	"strings"

	"github.com/denizyilmaz97/plate-recognition/pkg/utils"
)

//SelectCanonical reduces one vehicle's observation sequence to a single canonical plate:
//observations with empty or sentinel text are discarded, the rest are sorted by OCR
//confidence descending, and the most frequent text among the top-K wins (ties broken by
//first-encountered order). The representative frame/box come from the first top-K entry
//carrying the winning text.
//Returns false when no usable observation remains - the vehicle has no resolvable plate.
func SelectCanonical(carID int, observations []PlateObservation, topK int) (CanonicalPlate, bool) {
	if topK <= 0 {
		topK = utils.DefaultConsensusTopK
	}

	valid := make([]PlateObservation, 0, len(observations))
	for _, obs := range observations {
		if obs.Text == utils.SentinelPlate || strings.TrimSpace(obs.Text) == "" {
			continue
		}
		valid = append(valid, obs)
	}

	if len(valid) == 0 {
		return CanonicalPlate{}, false
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].TextScore > valid[j].TextScore
	})

	if topK > len(valid) {
		topK = len(valid)
	}
	top := valid[:topK]

	counts := make(map[string]int)
	order := make([]string, 0, len(top)) //first-encountered order for the tie-break
	for _, obs := range top {
		if _, seen := counts[obs.Text]; !seen {
			order = append(order, obs.Text)
		}
		counts[obs.Text]++
	}

	best := order[0]
	for _, text := range order {
		if counts[text] > counts[best] {
			best = text
		}
	}

	for _, obs := range top {
		if obs.Text == best {
			return CanonicalPlate{CarID: carID, Text: best, Frame: obs.Frame, Box: obs.PlateBox}, true
		}
	}

	return CanonicalPlate{}, false //unreachable, best always comes from top
}
