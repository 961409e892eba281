package models

type Patient struct {
	PatientID     string `json:"PatientId"`
	Username      string `json:"Username"`
	Password      string `json:"Password"`
	Email         string `json:"Email"`
	PhoneNumber   string `json:"PhoneNumber"`
	FirstName     string `json:"FirstName"`
	LastName      string `json:"LastName"`
	BirthDate     string `json:"BirthDate"`
	StreetAddress string `json:"StreetAddress"`
	CityName      string `json:"CityName"`
	StateName     string `json:"StateName"`
	ZipCode       string `json:"ZipCode"`
	PatientBio    string `json:"PatientBio"`
	Sex           string `json:"Sex"`
}
