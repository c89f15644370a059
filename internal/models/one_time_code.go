package models

import "time"

// OneTimeCode is a short-lived password-reset code. Expiry is enforced at
// lookup time; rows past their TTL are purged opportunistically.
type OneTimeCode struct {
	ID        uint64    `gorm:"primarykey" json:"-"`
	Email     string    `gorm:"type:varchar(255);index;not null" json:"email"`
	Code      string    `gorm:"type:varchar(6);not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
