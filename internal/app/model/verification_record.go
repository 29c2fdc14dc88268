package model

import (
	"time"
)

// VerificationRecord holds one MSME verification submission. The certificate
// image lives on disk; CertificatePath is the server-side location and must
// never be rendered to clients, which fetch the image through the lookup
// route instead.
type VerificationRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE" json:"-"`

	UdyamNumber     string     `gorm:"type:varchar(100);uniqueIndex" json:"udyam_number"`
	CertificatePath string     `gorm:"type:text" json:"-"`
	Status          string     `gorm:"type:varchar(50);default:'Pending';index" json:"status"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
}

func (VerificationRecord) TableName() string {
	return "msme_verification"
}

// Status values used by the submission form. Status is stored as submitted;
// nothing transitions it after insert.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)
