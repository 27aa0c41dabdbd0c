package models

import "time"

// User signs up with exactly one identifier: email or phone. The unused
// column stays NULL so the unique indexes do not collide.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     *string   `gorm:"uniqueIndex;size:191" json:"email"`
	Phone     *string   `gorm:"uniqueIndex;size:32" json:"phone"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SignupData struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}
