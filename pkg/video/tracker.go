package video

import (
	"bufio"
	"encoding/json"
	"log"
	"os/exec"
	"strings"

	"github.com/spf13/viper"
)

//RunDetector executes python code that runs YOLO vehicle/plate detection and SORT tracking
//over given video. It listens to python's standard output and sends one frameDetections
//per video frame, in frame order, through given chan. Frame order matters: the tracker's
//ids and box predictions depend on prior-frame state.
//Because this function is the only one who writes to it's given chan, it will close it
//before it's finishing.
func RunDetector(videoPath string, framesC chan<- *frameDetections) {
	cmd := exec.Command("python3", viper.GetString("detector.script"), "--video", videoPath)

	defer func(framesC chan<- *frameDetections) {
		close(framesC)
	}(framesC)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		log.Printf("RunDetector: Error, got '%v'", err)
		return
	}
	defer stdout.Close()

	if err := cmd.Start(); err != nil {
		log.Printf("RunDetector: Error, got '%v'", err)
		return
	}

	scanner := bufio.NewScanner(stdout)

	var current *frameDetections
	frameCounter := -1

	for scanner.Scan() {
		if strings.Contains(scanner.Text(), "Frame #:") {
			if current != nil { //previous frame is complete, hand it off
				framesC <- current
			}

			frameCounter++
			current = newFrameDetections(frameCounter)
			continue
		}

		if scanner.Text() == "EOF" { //finished to read all frames - send left data and close this goroutine
			if current != nil {
				framesC <- current
			}
			return
		}

		if strings.Contains(scanner.Text(), "FPS: ") { //this is a log print, skip it
			continue
		}

		if current == nil { //detections before the first frame marker, skip
			continue
		}

		if strings.Contains(scanner.Text(), "{\"TrackID\":") { //it's printing a tracked vehicle box
			t := VehicleTrack{}
			if err := json.Unmarshal(scanner.Bytes(), &t); err == nil {
				current.tracks = append(current.tracks, t)
			} else {
				log.Printf("RunDetector: Error, got '%v'", err)
			}
			continue
		}

		if strings.Contains(scanner.Text(), "{\"Class\":") { //it's printing a plate detection box
			d := Detection{}
			if err := json.Unmarshal(scanner.Bytes(), &d); err == nil {
				current.plates = append(current.plates, d)
			} else {
				log.Printf("RunDetector: Error, got '%v'", err)
			}
			continue
		}
	}

	if err := cmd.Wait(); err != nil {
		log.Printf("RunDetector: Error waiting python's process, Got '%v'", err)
		return
	}
}
