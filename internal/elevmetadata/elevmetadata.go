package elevmetadata

import (
	"encoding/json"

	"github.com/heislab/elevcomedi/internal/logger"
)

var Log = logger.GetLogger()

type ElevMetaData struct {
	SoftwareVersion string `json:"software_version"`
	Identifier      string `json:"identifier"`
	Device          string `json:"device"`
	UpperFloor      int    `json:"upper_turnaround_floor"`
	LowerFloor      int    `json:"lower_turnaround_floor"`
}

func (elevMetaData *ElevMetaData) String() string {
	jsonData, err := json.Marshal(elevMetaData)

	if err != nil {
		Log.Error().Msg("Error Serialising ElevMetaData Object to JSON")
		return ""
	}
	return string(jsonData)
}
