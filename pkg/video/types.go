package video

//Detection is one bounding box produced by the external detector.
//Coordinates are real-valued pixels in the source frame
type Detection struct {
	X1    float64
	Y1    float64
	X2    float64
	Y2    float64
	Score float64
	Class int
}

//VehicleTrack is one tracked vehicle box for the current frame. TrackID is assigned by
//the external tracker and stays stable across frames for the same physical vehicle
type VehicleTrack struct {
	X1      float64
	Y1      float64
	X2      float64
	Y2      float64
	TrackID int
}

//PlateObservation is one successfully assigned and read plate for one frame.
//Never mutated after creation, owned by the ObservationStore
type PlateObservation struct {
	Frame     int
	CarID     int
	CarBox    [4]float64
	PlateBox  [4]float64
	RawText   string
	Text      string
	BoxScore  float64
	TextScore float64
}

//CanonicalPlate is the single plate chosen to represent a vehicle after aggregating
//all of it's per-frame observations. Frame and Box reference the representative crop
type CanonicalPlate struct {
	CarID int
	Text  string
	Frame int
	Box   [4]float64
}

type frameDetections struct {
	frameNumber int
	tracks      []VehicleTrack
	plates      []Detection
}

func newFrameDetections(frameNum int) *frameDetections {
	f := frameDetections{}
	f.frameNumber = frameNum
	f.tracks = make([]VehicleTrack, 0)
	f.plates = make([]Detection, 0)
	return &f
}
