package models

// AppointmentAvailability is one emitted row of an availability report.
type AppointmentAvailability struct {
	// SNo is the 1-based position among emitted rows.
	SNo int `json:"sNo"`
	// Date is the slot's calendar date, YYYY-MM-DD.
	Date string `json:"date"`
	// Day is the full weekday name of Date.
	Day string `json:"day"`
	// Time is the slot's start time, HH:MM:SS.
	Time string `json:"time"`
	// NoOfAppointments is the remaining capacity of the slot.
	NoOfAppointments int `json:"noOfAppointments"`
	// TotalSlots is the per-slot capacity of the matched schedule rule.
	TotalSlots int `json:"totalSlots"`
}

// AvailabilityReport is the result of an availability request.
type AvailabilityReport struct {
	AppointmentDetails []AppointmentAvailability `json:"appointmentDetails"`
	ClientName         string                    `json:"clientName"`
	PocName            string                    `json:"pocName"`
	PocSpecialization  string                    `json:"pocSpecialization"`
}
