package video

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"os/exec"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/denizyilmaz97/plate-recognition/pkg/db"
	"github.com/denizyilmaz97/plate-recognition/pkg/plate"
	"github.com/denizyilmaz97/plate-recognition/pkg/utils"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"gocv.io/x/gocv"
	"golang.org/x/sync/errgroup"
)

//Process runs license plate recognition over given uploaded video: a recognition pass
//that resolves per-frame plate readings into observations, then a render pass that plots
//them with each car's canonical plate. The annotated video (XVID (== MPEG-4 codec) '.avi',
//re-encoded by ffmpeg to the production format) and the results csv are saved in the
//'ready' directory from configuration file, resolved plates are recorded in given store.
//srcVideoName should include file's extension ('.mp4', etc.)
func Process(srcVideoName string, results *db.DB) {
	srcVideoPath := path.Join(viper.GetString("directory.source"), srcVideoName)
	tmpVideoPath := path.Join(viper.GetString("directory.temp"), strings.Split(srcVideoName, ".")[0]+"."+"avi")
	outputVideoPath := path.Join(viper.GetString("directory.ready"), srcVideoName)
	csvPath := path.Join(viper.GetString("directory.ready"), strings.Split(srcVideoName, ".")[0]+".csv")

	//uploads may process concurrently, each run crops into it's own scratch dir
	scratchDir := path.Join(viper.GetString("directory.temp"), uuid.NewString())
	if err := os.MkdirAll(scratchDir, 0766); err != nil {
		log.Printf("Process: Error creating '%s' directory, got '%v'", scratchDir, err)
		return
	}
	defer os.RemoveAll(scratchDir)

	engine := &PaddleEngine{Script: viper.GetString("ocr.script"), Timeout: ocrTimeout()}
	store := NewObservationStore()

	if err := recognize(srcVideoPath, scratchDir, engine, store); err != nil {
		log.Printf("Process: Error, got '%v'", err)
		return
	}

	if err := WriteResults(store, csvPath); err != nil {
		log.Printf("Process: Error, got '%v'", err)
	}

	canonical := ResolveCanonical(store, viper.GetInt("consensus.top-k"))

	if results != nil {
		for _, carID := range store.CarIDs() {
			if canonicalPlate, ok := canonical[carID]; ok {
				if err := results.RecordPlate(srcVideoName, canonicalPlate.CarID, canonicalPlate.Text, canonicalPlate.Frame, canonicalPlate.Box); err != nil {
					log.Printf("Process: Error, got '%v'", err)
				}
			}
		}
	}

	if err := render(srcVideoPath, tmpVideoPath, store, canonical); err != nil {
		log.Printf("Process: Error, got '%v'", err)
		return
	}
	defer os.Remove(tmpVideoPath) //remove '.avi' temp file at the end of this function

	//Convert from 'avi' to the production format. example: ffmpeg -i sample.avi sample.mp4
	cmd := exec.Command("ffmpeg", "-i", tmpVideoPath, outputVideoPath)
	if err := cmd.Run(); err != nil {
		log.Printf("Process: Error from ffmpeg, got '%v'", err)
	}
}

//recognize is the recognition pass: it walks the video in frame order next to the
//detector subprocess output, assigns every plate detection to a tracked vehicle,
//dispatches the crops to a bounded pool of OCR workers and appends the corrected
//readings to given store. Frames are consumed strictly in order, only the OCR calls
//within them run concurrently.
func recognize(videoPath, scratchDir string, engine Engine, store *ObservationStore) error {
	capture, err := gocv.VideoCaptureFile(videoPath)
	if err != nil {
		return fmt.Errorf("recognize: Error, got '%v'", err)
	}
	defer capture.Close()

	framesC := make(chan *frameDetections)
	go RunDetector(videoPath, framesC)

	frameMat := gocv.NewMat()
	defer frameMat.Close()

	workers := viper.GetInt("ocr.workers")
	if workers <= 0 {
		workers = utils.DefaultOCRWorkers
	}
	sema := make(chan struct{}, workers)
	var wg sync.WaitGroup

	maxCandidates := viper.GetInt("plate.max-candidates")

	for frame := range framesC {
		if !capture.Read(&frameMat) {
			//video ended before the detector's output did - drain so RunDetector can exit
			for range framesC {
			}
			break
		}

		for _, detected := range frame.plates {
			if detected.Class != utils.PlateClass {
				continue
			}

			car, ok := AssignCar(detected, frame.tracks)
			if !ok { //plate box is not inside any tracked vehicle this frame, drop it
				continue
			}

			cropPath, err := writeCrop(&frameMat, detected, scratchDir, frame.frameNumber, car.TrackID)
			if err != nil {
				log.Printf("recognize: Error, got '%v'", err)
				continue
			}

			wg.Add(1)
			sema <- struct{}{}
			go func(detected Detection, car VehicleTrack, frameNumber int, cropPath string) {
				defer wg.Done()
				defer func() { <-sema }()

				raw, textScore := ReadPlate(context.Background(), engine, cropPath)
				if raw == "" { //nothing read from this crop
					return
				}

				corrected := plate.Correct(plate.NormalizeLeadingDigits(raw), maxCandidates)
				if !plate.CheckFormatFlexible(corrected) {
					return
				}

				store.Append(PlateObservation{
					Frame:     frameNumber,
					CarID:     car.TrackID,
					CarBox:    [4]float64{car.X1, car.Y1, car.X2, car.Y2},
					PlateBox:  [4]float64{detected.X1, detected.Y1, detected.X2, detected.Y2},
					RawText:   raw,
					Text:      corrected,
					BoxScore:  detected.Score,
					TextScore: textScore,
				})
			}(detected, car, frame.frameNumber, cropPath)
		}
	}

	wg.Wait()
	return nil
}

//ResolveCanonical computes the canonical plate for every car in given store. Cars are
//independent at this stage, so consensus fans out per car id.
func ResolveCanonical(store *ObservationStore, topK int) map[int]CanonicalPlate {
	var mu sync.Mutex
	resolved := make(map[int]CanonicalPlate)

	g := new(errgroup.Group)
	for _, carID := range store.CarIDs() {
		carID := carID
		g.Go(func() error {
			canonicalPlate, ok := SelectCanonical(carID, store.Observations(carID), topK)
			if !ok { //no usable observation for this car, it has no resolvable plate
				return nil
			}

			mu.Lock()
			resolved[carID] = canonicalPlate
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	return resolved
}

//render is the render pass: replays the video and plots per-frame boxes plus each car's
//resolved plate banner. Plotting faults are logged per frame and never stop the pass.
func render(videoPath, outputVideoPath string, store *ObservationStore, canonical map[int]CanonicalPlate) error {
	capture, err := gocv.VideoCaptureFile(videoPath)
	if err != nil {
		return fmt.Errorf("render: Error, got '%v'", err)
	}
	defer capture.Close()

	videoWriter, err := gocv.VideoWriterFile(outputVideoPath, "XVID", capture.Get(gocv.VideoCaptureFPS), int(capture.Get(gocv.VideoCaptureFrameWidth)), int(capture.Get(gocv.VideoCaptureFrameHeight)), true)
	if err != nil {
		return fmt.Errorf("render: Error, got '%v'", err)
	}
	defer videoWriter.Close()

	crops := extractCanonicalCrops(capture, canonical)
	defer func() {
		for _, crop := range crops {
			crop.Close()
		}
	}()

	capture.Set(gocv.VideoCapturePosFrames, 0)

	byFrame := store.ByFrame()

	frameMat := gocv.NewMat()
	defer frameMat.Close()

	frameNumber := -1
	for capture.Read(&frameMat) {
		frameNumber++

		for _, obs := range byFrame[frameNumber] {
			plotObservation(&frameMat, obs)

			canonicalPlate, ok := canonical[obs.CarID]
			if !ok {
				continue
			}

			crop, ok := crops[obs.CarID]
			if !ok {
				continue
			}

			if err := plotCanonical(&frameMat, obs, canonicalPlate.Text, crop); err != nil {
				log.Printf("render: Error plotting car %v on frame %v, got '%v'. Skipping.", obs.CarID, frameNumber, err)
			}
		}

		videoWriter.Write(frameMat)
	}

	return nil
}

//extractCanonicalCrops seeks to each car's representative frame and cuts out the plate
//region, resized to the banner height
func extractCanonicalCrops(capture *gocv.VideoCapture, canonical map[int]CanonicalPlate) map[int]gocv.Mat {
	crops := make(map[int]gocv.Mat)

	frameMat := gocv.NewMat()
	defer frameMat.Close()

	for carID, canonicalPlate := range canonical {
		capture.Set(gocv.VideoCapturePosFrames, float64(canonicalPlate.Frame))
		if !capture.Read(&frameMat) {
			log.Printf("extractCanonicalCrops: Could not read frame %v for car %v", canonicalPlate.Frame, carID)
			continue
		}

		rect := rectFromBox(canonicalPlate.Box).Intersect(image.Rect(0, 0, frameMat.Cols(), frameMat.Rows()))
		if rect.Dx() == 0 || rect.Dy() == 0 {
			continue
		}

		region := frameMat.Region(rect)
		resized := gocv.NewMat()
		gocv.Resize(region, &resized, image.Pt(rect.Dx()*utils.BannerCropHeight/rect.Dy(), utils.BannerCropHeight), 0, 0, gocv.InterpolationLinear)
		region.Close()

		crops[carID] = resized
	}

	return crops
}

//writeCrop extracts the plate region from given frame, resizes it to the OCR target
//height and writes it under scratchDir for the OCR subprocess to pick up
func writeCrop(frameMat *gocv.Mat, detected Detection, scratchDir string, frameNumber, carID int) (string, error) {
	rect := rectFromBox([4]float64{detected.X1, detected.Y1, detected.X2, detected.Y2}).Intersect(image.Rect(0, 0, frameMat.Cols(), frameMat.Rows()))
	if rect.Dx() == 0 || rect.Dy() == 0 {
		return "", fmt.Errorf("writeCrop: Empty plate region on frame %v", frameNumber)
	}

	crop := frameMat.Region(rect)
	defer crop.Close()

	scale := float64(utils.OCRCropHeight) / float64(rect.Dy())
	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(crop, &resized, image.Pt(0, 0), scale, scale, gocv.InterpolationLinear)

	cropPath := path.Join(scratchDir, fmt.Sprintf("%d_%d.png", frameNumber, carID))
	if ok := gocv.IMWrite(cropPath, resized); !ok {
		return "", fmt.Errorf("writeCrop: Could not write '%s'", cropPath)
	}

	return cropPath, nil
}

func ocrTimeout() time.Duration {
	seconds := viper.GetInt("ocr.timeout-seconds")
	if seconds <= 0 {
		seconds = utils.DefaultOCRTimeoutSeconds
	}

	return time.Duration(seconds) * time.Second
}
