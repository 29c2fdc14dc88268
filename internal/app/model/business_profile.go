package model

import (
	"time"
)

type BusinessProfile struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE" json:"-"`

	CompanyName      string  `gorm:"type:varchar(200);not null" json:"company_name"`
	BusinessType     string  `gorm:"type:varchar(100)" json:"business_type"`
	YearsOfOperation int     `json:"years_of_operation"`
	AnnualTurnover   float64 `json:"annual_turnover"`
	State            string  `gorm:"type:varchar(100)" json:"state"`
	City             string  `gorm:"type:varchar(100)" json:"city"`
}

func (BusinessProfile) TableName() string {
	return "business_profiles"
}

// Option sets rendered by the business profile form. Values are stored as
// free text; the lists only drive the UI.

func BusinessTypes() []string {
	return []string{"Supermarket", "FMCG", "Clothing", "Electronics"}
}

func States() []string {
	return []string{
		"Andhra Pradesh",
		"Delhi",
		"Karnataka",
		"Kerala",
		"Tamil Nadu",
		"Telangana",
	}
}
