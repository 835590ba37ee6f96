package utils

//PlateClass is the enum represents a detection classified as a license plate
const PlateClass = 0

//SentinelPlate is the placeholder text marking an unreadable plate reading, filtered out at consensus time
const SentinelPlate = "0"

//DefaultConsensusTopK is the number of highest-confidence observations voting for a vehicle's canonical plate
const DefaultConsensusTopK = 10

//DefaultOCRWorkers is the fallback bound for concurrent OCR calls within a frame
const DefaultOCRWorkers = 2

//DefaultOCRTimeoutSeconds is the fallback per-OCR-call deadline, a timed out call counts as "no plate read"
const DefaultOCRTimeoutSeconds = 10

//OCRCropHeight is the height plate crops are resized to before they are handed to the OCR engine
const OCRCropHeight = 100

//BannerCropHeight is the height resolved plate crops are resized to when plotted above the car
const BannerCropHeight = 400
