package models

import "time"

// ContactSubmission is written once and never updated.
type ContactSubmission struct {
	ID                 string    `json:"id"`
	CompanyName        string    `json:"companyName"`
	Department         string    `json:"department,omitempty"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	PostalCode         string    `json:"postalCode"`
	Address            string    `json:"address"`
	Purpose            string    `json:"purpose"`
	Quantity           string    `json:"quantity,omitempty"`
	PreferredColors    string    `json:"preferredColors,omitempty"`
	PreferredMaterials string    `json:"preferredMaterials,omitempty"`
	NeedsConsultation  bool      `json:"needsConsultation"`
	Message            string    `json:"message"`
	CreatedAt          time.Time `json:"createdAt"`
}

type ContactRequest struct {
	CompanyName        string `json:"companyName"        example:"株式会社サンプル"`
	Department         string `json:"department"`
	Name               string `json:"name"               example:"山田 太郎"`
	Email              string `json:"email"              example:"taro@example.com"`
	Phone              string `json:"phone"              example:"03-1234-5678"`
	PostalCode         string `json:"postalCode"         example:"100-0001"`
	Address            string `json:"address"`
	Purpose            string `json:"purpose"`
	Quantity           string `json:"quantity"`
	PreferredColors    string `json:"preferredColors"`
	PreferredMaterials string `json:"preferredMaterials"`
	NeedsConsultation  bool   `json:"needsConsultation"`
	Message            string `json:"message"`
}
