package models

import (
	"time"
)

// Notice is a dismissible prompt shown to a user
type Notice string

const (
	// NoticeVerifyEmail asks the user to verify their email
	NoticeVerifyEmail Notice = "verify_email"

	// NoticeAppUpdate tells the user a newer version is available
	NoticeAppUpdate Notice = "app_update"
)

// Timezone holds the user's timezone selection
type Timezone struct {
	// Selected is the IANA zone in use
	Selected string `json:"selected"`

	// Automatic means the zone follows the device
	Automatic bool `json:"automatic"`
}

// User is a registered account
type User struct {
	// ID is the unique identifier of the user
	ID string `json:"id"`

	// DisplayName is shown to friends
	DisplayName string `json:"display_name"`

	// Nickname is the name friends search for
	Nickname string `json:"nickname"`

	// NicknameKey is Nickname cleaned for use as an index key
	NicknameKey string `json:"nickname_key"`

	// CreatedAt is when the account was created
	CreatedAt time.Time `json:"created_at"`

	// Timezone is the user's timezone setting
	Timezone Timezone `json:"timezone"`

	// AgreedToTermsAt is when the user accepted the terms, nil if never
	AgreedToTermsAt *time.Time `json:"agreed_to_terms_at,omitempty"`

	// DismissedNotices records when each notice was last dismissed
	DismissedNotices map[Notice]time.Time `json:"dismissed_notices,omitempty"`
}

// Location resolves the user's selected timezone, falling back to UTC
func (u *User) Location() *time.Location {
	if u == nil || u.Timezone.Selected == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(u.Timezone.Selected)
	if err != nil {
		return time.UTC
	}
	return loc
}
