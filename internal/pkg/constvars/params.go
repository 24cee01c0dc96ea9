package constvars

const (
	URLParamEmail      = "email"
	URLParamDoctorName = "doctorName"
)
