package video

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
)

//resultsHeader is the row schema downstream consumers match exactly
const resultsHeader = "frame_nmr,car_id,car_bbox,license_plate_bbox,license_plate_bbox_score,license_number,license_number_score\n"

//WriteResults writes one CSV row per (frame, car id, corrected plate) observation in
//given store, ordered by frame number then car id
func WriteResults(store *ObservationStore, outputPath string) error {
	rows := make([]PlateObservation, 0)
	for _, carID := range store.CarIDs() {
		rows = append(rows, store.Observations(carID)...)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Frame != rows[j].Frame {
			return rows[i].Frame < rows[j].Frame
		}
		return rows[i].CarID < rows[j].CarID
	})

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("WriteResults: Error, got '%v'", err)
	}
	defer f.Close()

	if _, err := f.WriteString(resultsHeader); err != nil {
		return fmt.Errorf("WriteResults: Error, got '%v'", err)
	}

	for _, obs := range rows {
		row := fmt.Sprintf("%d,%d,%s,%s,%v,%s,%v\n",
			obs.Frame, obs.CarID, formatBbox(obs.CarBox), formatBbox(obs.PlateBox),
			obs.BoxScore, obs.Text, obs.TextScore)
		if _, err := f.WriteString(row); err != nil {
			return fmt.Errorf("WriteResults: Error, got '%v'", err)
		}
	}

	return nil
}

//formatBbox serializes a bounding box as '[x1 y1 x2 y2]', space-separated with no commas
func formatBbox(box [4]float64) string {
	return fmt.Sprintf("[%s %s %s %s]", formatCoord(box[0]), formatCoord(box[1]), formatCoord(box[2]), formatCoord(box[3]))
}

//formatCoord renders a coordinate with a trailing .0 on integral values, existing row
//consumers expect '100.0' rather than '100'
func formatCoord(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
