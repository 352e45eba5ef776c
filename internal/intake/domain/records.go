package domain

// Each record type has its own table, created on submission and never read
// back. Fields are stored exactly as submitted, with no coercion and no
// foreign key to accounts.

type HealthProfile struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	BloodPressure string  `json:"bloodPressure"`
	Conditions    string  `json:"conditions"`
	Medications   string  `json:"medications"`
}

// LifestyleEntry mirrors the lifestyle tab of the dashboard: frequency
// scores on a 0-5 scale plus a free-form BMI category.
type LifestyleEntry struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Exercise     int    `json:"exercise"`
	Smoking      int    `json:"smoking"`
	Drinking     int    `json:"drinking"`
	BMI          string `json:"bmi"`
	JobHazard    int    `json:"jobHazard"`
	MentalStress int    `json:"mentalStress"`
}

type LabRecord struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	TestName       string `json:"testName"`
	TestDate       string `json:"testDate"`
	ResultValue    string `json:"resultValue"`
	ReferenceRange string `json:"referenceRange"`
	DoctorNotes    string `json:"doctorNotes"`
}
