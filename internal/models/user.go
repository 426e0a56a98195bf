package models

import "time"

// User is the local mirror of an identity-provider account. A row is created
// by the sync endpoint the first time an external identity shows up and is
// never deleted by this service.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Username    string    `json:"username" gorm:"uniqueIndex"`
	Email       string    `json:"email" gorm:"uniqueIndex"`
	Image       string    `json:"image,omitempty"`
	FirebaseUID string    `json:"firebase_uid,omitempty" gorm:"uniqueIndex"` // external identity key
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserCounts holds the aggregates attached to a profile read. They are
// computed from the follows and posts tables at read time, never stored.
type UserCounts struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
	Posts     int64 `json:"posts"`
}

// UserWithCounts is the shape returned by profile lookups.
type UserWithCounts struct {
	User
	Counts UserCounts `json:"_count"`
}

// SuggestedUser is one follow-suggestion candidate.
type SuggestedUser struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Image     string `json:"image,omitempty"`
	Followers int64  `json:"followers"`
}
