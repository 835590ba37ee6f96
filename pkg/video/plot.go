package video

import (
	"errors"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

var carBorderColor = color.RGBA{0, 255, 0, 0}
var plateBoxColor = color.RGBA{255, 0, 0, 0}

//rectFromBox converts a real-valued bounding box to pixel coordinates
func rectFromBox(box [4]float64) image.Rectangle {
	return image.Rect(int(box[0]), int(box[1]), int(box[2]), int(box[3]))
}

//drawCarBorder draws corner segments around given car bounding box instead of a full
//rectangle, so overlapping cars stay readable
func drawCarBorder(frame *gocv.Mat, rect image.Rectangle, plotColor color.RGBA) {
	thickness := 5
	lineLengthX, lineLengthY := 200, 200

	x1, y1 := rect.Min.X, rect.Min.Y
	x2, y2 := rect.Max.X, rect.Max.Y

	gocv.Line(frame, image.Pt(x1, y1), image.Pt(x1, y1+lineLengthY), plotColor, thickness)
	gocv.Line(frame, image.Pt(x1, y1), image.Pt(x1+lineLengthX, y1), plotColor, thickness)

	gocv.Line(frame, image.Pt(x1, y2), image.Pt(x1, y2-lineLengthY), plotColor, thickness)
	gocv.Line(frame, image.Pt(x1, y2), image.Pt(x1+lineLengthX, y2), plotColor, thickness)

	gocv.Line(frame, image.Pt(x2, y1), image.Pt(x2-lineLengthX, y1), plotColor, thickness)
	gocv.Line(frame, image.Pt(x2, y1), image.Pt(x2, y1+lineLengthY), plotColor, thickness)

	gocv.Line(frame, image.Pt(x2, y2), image.Pt(x2, y2-lineLengthY), plotColor, thickness)
	gocv.Line(frame, image.Pt(x2, y2), image.Pt(x2-lineLengthX, y2), plotColor, thickness)
}

//plotObservation draws one per-frame record: corner border around the car and a full
//rectangle around the plate
func plotObservation(frame *gocv.Mat, obs PlateObservation) {
	drawCarBorder(frame, rectFromBox(obs.CarBox), carBorderColor)
	gocv.Rectangle(frame, rectFromBox(obs.PlateBox), plateBoxColor, 5)
}

//plotCanonical places the resolved plate crop above the car and the canonical text above
//the crop, on a white banner. Returns an error when the banner falls outside the frame,
//the caller logs it and moves on to the next record.
func plotCanonical(frame *gocv.Mat, obs PlateObservation, text string, crop gocv.Mat) error {
	if crop.Empty() || text == "" {
		return errors.New("plotCanonical: Nothing to plot for this car")
	}

	carRect := rectFromBox(obs.CarBox)

	//shrink the banner crop so it fits between cars
	scale := 0.4
	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(crop, &resized, image.Pt(0, 0), scale, scale, gocv.InterpolationLinear)

	cropH, cropW := resized.Rows(), resized.Cols()
	cropX1 := (carRect.Max.X + carRect.Min.X - cropW) / 2
	cropY1 := carRect.Min.Y - cropH - 100
	cropRect := image.Rect(cropX1, cropY1, cropX1+cropW, cropY1+cropH)

	frameRect := image.Rect(0, 0, frame.Cols(), frame.Rows())
	if !cropRect.In(frameRect) {
		return errors.New("plotCanonical: Crop banner is out of frame bounds")
	}

	region := frame.Region(cropRect)
	resized.CopyTo(&region)
	region.Close()

	fontScale := 2.0
	fontThickness := 6
	textSize := gocv.GetTextSize(text, gocv.FontHersheySimplex, fontScale, fontThickness)

	textX := (carRect.Max.X + carRect.Min.X - textSize.X) / 2
	textY := carRect.Min.Y - cropH - 100

	backgroundRect := image.Rect(textX, textY-textSize.Y, textX+textSize.X, textY+textSize.Y*3/10)
	if !backgroundRect.In(frameRect) {
		return errors.New("plotCanonical: Text banner is out of frame bounds")
	}

	whiteRGB := color.RGBA{255, 255, 255, 0}
	gocv.Rectangle(frame, backgroundRect, whiteRGB, -1) //thickness -1 == filled rectangle
	gocv.PutText(frame, text, image.Pt(textX, textY), gocv.FontHersheySimplex, fontScale, color.RGBA{0, 0, 0, 0}, fontThickness)

	return nil
}
