package domain

import "time"

type ActivityType string

const (
	ActivityPlanting    ActivityType = "planting"
	ActivityFertilizing ActivityType = "fertilizing"
	ActivityPestControl ActivityType = "pest_control"
	ActivityHarvesting  ActivityType = "harvesting"
	ActivityIrrigation  ActivityType = "irrigation"
)

type ActivityStatus string

const (
	ActivityPlanned   ActivityStatus = "planned"
	ActivityOngoing   ActivityStatus = "ongoing"
	ActivityCompleted ActivityStatus = "completed"
)

type CropActivity struct {
	ID               int64          `json:"id" db:"id"`
	Kabupaten        string         `json:"kabupaten" db:"kabupaten"`
	ActivityType     ActivityType   `json:"activity_type" db:"activity_type"`
	CropType         string         `json:"crop_type" db:"crop_type"`
	AreaHectares     float64        `json:"area_hectares" db:"area_hectares"`
	ActivityDate     time.Time      `json:"activity_date" db:"activity_date"`
	Status           ActivityStatus `json:"status" db:"status"`
	Description      *string        `json:"description,omitempty" db:"description"`
	ExtensionOfficer *string        `json:"extension_officer,omitempty" db:"extension_officer"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityPlanting, ActivityFertilizing, ActivityPestControl, ActivityHarvesting, ActivityIrrigation:
		return true
	}
	return false
}

func (s ActivityStatus) Valid() bool {
	switch s {
	case ActivityPlanned, ActivityOngoing, ActivityCompleted:
		return true
	}
	return false
}
