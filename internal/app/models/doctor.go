package models

type Doctor struct {
	Name      string   `json:"name"`
	TimeSlots []string `json:"timeSlots"`
}

func (d *Doctor) HasTimeSlot(timeSlot string) bool {
	for _, slot := range d.TimeSlots {
		if slot == timeSlot {
			return true
		}
	}
	return false
}
