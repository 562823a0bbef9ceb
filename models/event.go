package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// FacilityIDList stores the facility IDs an event may be held in as a
// JSON array column.
type FacilityIDList []uint

func (l FacilityIDList) Value() (driver.Value, error) {
	if l == nil {
		l = FacilityIDList{}
	}
	return json.Marshal(l)
}

func (l *FacilityIDList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for facility id list", value)
	}
}

func (l FacilityIDList) Contains(id uint) bool {
	for _, fid := range l {
		if fid == id {
			return true
		}
	}
	return false
}

type Event struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Name              string         `gorm:"type:varchar(100);unique;not null" json:"name"`
	Description       string         `gorm:"type:text" json:"description"`
	AllowedFacilities FacilityIDList `gorm:"type:text;not null" json:"allowed_facilities"`
	CreatedAt         time.Time      `json:"created_at"`
}
