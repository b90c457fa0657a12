package models

import "time"

// LocalOpenID is the openId of the single user in local mode.
const LocalOpenID = "local-user"

// User is the owner of all other resources.
type User struct {
	DefaultModel
	OpenID       string    `json:"openId" gorm:"uniqueIndex;not null;size:64"`
	Name         string    `json:"name"`
	Email        string    `json:"email" gorm:"size:320"`
	LoginMethod  string    `json:"loginMethod" gorm:"size:64"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}
