package video

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

//Line is one text line read by the OCR engine from a plate crop
type Line struct {
	Text       string
	Confidence float64
}

//Engine reads text lines from a license plate crop image on disk.
//Returning zero lines means no plate could be read, it's not an error
type Engine interface {
	ReadText(ctx context.Context, imagePath string) ([]Line, error)
}

//PaddleEngine runs the paddle OCR python script once per crop. Expected output is one
//line per recognized text block in the form "text;confidence"
type PaddleEngine struct {
	Script  string
	Timeout time.Duration
}

func (e *PaddleEngine) ReadText(ctx context.Context, imagePath string) ([]Line, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "python3", e.Script, "--image", imagePath)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ReadText: Error running OCR script, got '%v'", err)
	}

	return parseOCRLines(out), nil
}

//parseOCRLines parses the OCR script's "text;confidence" output, skipping anything malformed
func parseOCRLines(out []byte) []Line {
	lines := make([]Line, 0)
	for _, raw := range strings.Split(string(out), "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		parts := strings.SplitN(raw, ";", 2)
		if len(parts) != 2 {
			continue
		}

		confidence, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}

		lines = append(lines, Line{Text: parts[0], Confidence: confidence})
	}

	return lines
}

//ReadPlate asks given engine for the text on given crop and combines all line results
//into one raw candidate string: texts upper-cased, spaces removed, concatenated, with
//the confidences averaged. Returns the empty string when the engine read nothing or
//failed - a failed read degrades to "no plate read", never aborts the frame.
func ReadPlate(ctx context.Context, engine Engine, imagePath string) (string, float64) {
	lines, err := engine.ReadText(ctx, imagePath)
	if err != nil {
		log.Printf("ReadPlate: Error, got '%v'", err)
		return "", 0
	}

	if len(lines) == 0 {
		return "", 0
	}

	var builder strings.Builder
	scoreSum := 0.0
	for _, line := range lines {
		builder.WriteString(strings.ToUpper(strings.ReplaceAll(line.Text, " ", "")))
		scoreSum += line.Confidence
	}

	return builder.String(), scoreSum / float64(len(lines))
}
