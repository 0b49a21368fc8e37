package models

import "time"

// Role values stored in User.UserType.
const (
	RoleSponsor = "sponsor"
	RoleEditor  = "editor"
	RoleAdmin   = "admin"
)

// Approval states stored in User.UserStatus. Every signup starts as
// StatusPending; only an admin moves it forward.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// User is an application account. Sponsors create documents, editors revise
// them, admins approve signups.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Name         string `gorm:"not null" json:"name"`
	Organization string `json:"organization"`
	PasswordHash string `gorm:"not null" json:"-"`
	UserType     string `gorm:"not null;index" json:"userType"`
	UserStatus   string `gorm:"not null;default:pending" json:"userStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Approved reports whether the user may act on document routes.
func (u *User) Approved() bool { return u.UserStatus == StatusApproved }

// Document is the unit of work moving between a sponsor and an editor.
// Access is mediated entirely through the Retention row, never through the
// document itself.
type Document struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	DocumentName string `gorm:"not null" json:"documentName"`
	DocumentBody string `json:"documentBody"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Retention records which sponsor/editor pair is responsible for a document.
// Exactly one row exists per document; EditorID is mutable (reassignment).
type Retention struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	SponsorID  uint `gorm:"index;not null" json:"sponsorId"`
	EditorID   uint `gorm:"index;not null" json:"editorId"`
	DocumentID uint `gorm:"uniqueIndex;not null" json:"documentId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Autodoc is a generated companion text. Immutable once created.
type Autodoc struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	AutodocBody string `gorm:"not null" json:"autodocBody"`

	CreatedAt time.Time `json:"createdAt"`
}

// Revision links a document to the autodoc generated for it at a point in
// time.
type Revision struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	DocumentID uint `gorm:"index;not null" json:"documentId"`
	AutodocID  uint `gorm:"index;not null" json:"autodocId"`

	CreatedAt time.Time `json:"createdAt"`
}
