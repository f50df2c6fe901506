package models

import "time"

const InquiryStatusNew = "new"

// AdvisorInquiry is a lead captured by the product advisor.
type AdvisorInquiry struct {
	ID              string    `json:"id"`
	CompanyName     string    `json:"companyName"`
	ContactPerson   string    `json:"contactPerson"`
	Email           string    `json:"email"`
	Category        string    `json:"category"`
	SelectedFeature string    `json:"selectedFeature"`
	Recommendations []string  `json:"recommendations"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type AdvisorInquiryRequest struct {
	CompanyName     string   `json:"companyName"`
	ContactPerson   string   `json:"contactPerson"`
	Email           string   `json:"email"`
	Category        string   `json:"category"`
	SelectedFeature string   `json:"selectedFeature"`
	Recommendations []string `json:"recommendations"`
}

// AdvisorSelection is the set of answers given in the advisor quiz.
type AdvisorSelection struct {
	Category        string `json:"category"`
	SecurityBrand   string `json:"securityBrand,omitempty"`
	WorkwearFeature string `json:"workwearFeature,omitempty"`
	CoolingFeature  string `json:"coolingFeature,omitempty"`
}
