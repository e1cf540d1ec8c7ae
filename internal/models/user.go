package models

import "time"

type User struct {
	BaseModel
	Name            string     `json:"name"`
	Email           string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string     `gorm:"not null" json:"-"`
	Approved        bool       `gorm:"default:false" json:"approved"`
	IsSuperadmin    bool       `gorm:"default:false" json:"is_superadmin"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
}

// CanAccess reports whether the user passes the approval gate.
// A superadmin is implicitly approved regardless of the stored flag.
func (u *User) CanAccess() bool {
	return u.IsSuperadmin || u.Approved
}
