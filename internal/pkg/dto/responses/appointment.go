package responses

type Patient struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type Appointment struct {
	ID         int     `json:"id"`
	Patient    Patient `json:"patient"`
	DoctorName string  `json:"doctorName"`
	TimeSlot   string  `json:"timeSlot"`
}
