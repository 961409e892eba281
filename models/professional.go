package models

type Professional struct {
	ProfessionalID     string   `json:"ProfessionalId"`
	Username           string   `json:"Username"`
	FirstName          string   `json:"FirstName"`
	LastName           string   `json:"LastName"`
	Password           string   `json:"Password"`
	Sex                string   `json:"Sex"`
	Specialty          string   `json:"Specialty"`
	RegistrationNumber string   `json:"RegistrationNumber"`
	ProfessionalBio    string   `json:"ProfessionalBio"`
	Email              string   `json:"Email"`
	PhoneNumber        string   `json:"PhoneNumber"`
	StreetAddress      string   `json:"StreetAddress"`
	CityName           string   `json:"CityName"`
	StateName          string   `json:"StateName"`
	ZipCode            string   `json:"ZipCode"`
	BirthDate          string   `json:"BirthDate"`
	// ScheduleText is the free-text weekly hours field the agenda engine
	// parses; edited as-is in the dashboard.
	ScheduleText       string   `json:"ScheduleText"`
	RatingScore        *float32 `json:"RatingScore"`
	RatingCount        int      `json:"RatingCount"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
