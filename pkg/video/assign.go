package video

//AssignCar returns the first tracked vehicle whose bounding box strictly contains given
//plate detection box. Boundary-touching does not count. When two overlapping tracks both
//contain the plate, the earlier one in iteration order wins.
func AssignCar(plate Detection, tracks []VehicleTrack) (VehicleTrack, bool) {
	for _, track := range tracks {
		if plate.X1 > track.X1 && plate.Y1 > track.Y1 && plate.X2 < track.X2 && plate.Y2 < track.Y2 {
			return track, true
		}
	}

	return VehicleTrack{}, false
}
