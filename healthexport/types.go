package healthexport

// HealthKit identifiers relevant to pool swimming data in export.xml.
const (
	distanceMetric  = "HKQuantityTypeIdentifierDistanceSwimming"
	energyMetric    = "HKQuantityTypeIdentifierActiveEnergyBurned"
	heartRateMetric = "HKQuantityTypeIdentifierHeartRate"
	lapEventType    = "HKWorkoutEventTypeLap"
	strokeStyleKey  = "HKSwimmingStrokeStyle"
	swolfKey        = "HKSWOLFScore"
)

// timeLayout is the timestamp format Apple Health uses throughout export.xml.
const timeLayout = "2006-01-02 15:04:05 -0700"

var swimActivityTypes = map[string]bool{
	"HKWorkoutActivityTypeSwimming":          true,
	"HKWorkoutActivityTypePoolSwimming":      true,
	"HKWorkoutActivityTypeOpenWaterSwimming": true,
}

// workoutXML mirrors one <Workout> element of export.xml.
type workoutXML struct {
	ActivityType string            `xml:"workoutActivityType,attr"`
	Duration     string            `xml:"duration,attr"`
	StartDate    string            `xml:"startDate,attr"`
	EndDate      string            `xml:"endDate,attr"`
	Events       []workoutEventXML `xml:"WorkoutEvent"`
	Statistics   []statisticsXML   `xml:"WorkoutStatistics"`
}

// workoutEventXML mirrors a <WorkoutEvent> element; lap events carry the lap
// start timestamp and a duration in minutes.
type workoutEventXML struct {
	Type     string        `xml:"type,attr"`
	Date     string        `xml:"date,attr"`
	Duration string        `xml:"duration,attr"`
	Metadata []metadataXML `xml:"MetadataEntry"`
}

// statisticsXML mirrors a <WorkoutStatistics> element.
type statisticsXML struct {
	Type    string `xml:"type,attr"`
	Sum     string `xml:"sum,attr"`
	Average string `xml:"average,attr"`
}

// metadataXML mirrors a <MetadataEntry> element.
type metadataXML struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}
