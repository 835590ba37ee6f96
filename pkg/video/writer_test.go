package video

import (
	"io/ioutil"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResults(t *testing.T) {
	store := NewObservationStore()
	store.Append(PlateObservation{
		Frame:     2,
		CarID:     3,
		CarBox:    [4]float64{10.5, 20, 400, 300},
		PlateBox:  [4]float64{100, 200, 180, 230},
		Text:      "34ABC123",
		BoxScore:  0.91,
		TextScore: 0.87,
	})
	store.Append(PlateObservation{
		Frame:     1,
		CarID:     5,
		CarBox:    [4]float64{50, 60, 500, 400},
		PlateBox:  [4]float64{120, 220, 200, 250},
		Text:      "06DE412",
		BoxScore:  0.8,
		TextScore: 0.75,
	})

	outputPath := path.Join(t.TempDir(), "results.csv")
	require.NoError(t, WriteResults(store, outputPath))

	content, err := ioutil.ReadFile(outputPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "frame_nmr,car_id,car_bbox,license_plate_bbox,license_plate_bbox_score,license_number,license_number_score", lines[0])
	//rows ordered by frame number
	assert.Equal(t, "1,5,[50.0 60.0 500.0 400.0],[120.0 220.0 200.0 250.0],0.8,06DE412,0.75", lines[1])
	assert.Equal(t, "2,3,[10.5 20.0 400.0 300.0],[100.0 200.0 180.0 230.0],0.91,34ABC123,0.87", lines[2])
}

func TestWriteResultsEmptyStore(t *testing.T) {
	outputPath := path.Join(t.TempDir(), "results.csv")
	require.NoError(t, WriteResults(NewObservationStore(), outputPath))

	content, err := ioutil.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "frame_nmr,car_id,car_bbox,license_plate_bbox,license_plate_bbox_score,license_number,license_number_score\n", string(content))
}

func TestFormatBbox(t *testing.T) {
	//integral coordinates keep a trailing .0, fractional ones print as-is
	assert.Equal(t, "[1.0 2.5 3.0 4.0]", formatBbox([4]float64{1, 2.5, 3, 4}))
	assert.Equal(t, "[10.55 0.0 200.125 300.0]", formatBbox([4]float64{10.55, 0, 200.125, 300}))
}
