// Package models contains data structures for the application's domain models.
package models

import (
	"encoding/json"
	"time"
)

// SocialLinks holds the optional social platform URLs on a profile.
// All columns live on the profiles table with a social_ prefix.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Profile is a user's developer profile. Exactly one profile may exist per
// user (UserID is unique); experience and education are returned newest first.
type Profile struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	UserID         uint         `gorm:"uniqueIndex;not null" json:"user_id"`
	User           User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `gorm:"type:text" json:"bio,omitempty"`
	Status         string       `gorm:"not null" json:"status"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Skills         []string     `gorm:"serializer:json" json:"skills"`
	Social         SocialLinks  `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experience     []Experience `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"experience"`
	Education      []Education  `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"education"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// MarshalJSON serializes the owning user as its public view. Profiles are
// readable without authentication, so the owner's email never appears here.
func (p Profile) MarshalJSON() ([]byte, error) {
	type profileAlias Profile
	return json.Marshal(struct {
		profileAlias
		User PublicUser `json:"user"`
	}{
		profileAlias: profileAlias(p),
		User:         p.User.Public(),
	})
}

// UnmarshalJSON restores the public user view. Profiles round-trip through
// the cache as JSON, so the embedded user keeps only its public fields.
func (p *Profile) UnmarshalJSON(data []byte) error {
	type profileAlias Profile
	aux := struct {
		*profileAlias
		User PublicUser `json:"user"`
	}{profileAlias: (*profileAlias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.User = User{ID: aux.User.ID, Name: aux.User.Name, Avatar: aux.User.Avatar}
	return nil
}

// Experience is a work history entry on a profile.
type Experience struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProfileID   uint       `gorm:"not null;index" json:"-"`
	Title       string     `gorm:"not null" json:"title"`
	Company     string     `gorm:"not null" json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `gorm:"not null" json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Education is a schooling entry on a profile.
type Education struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ProfileID    uint       `gorm:"not null;index" json:"-"`
	School       string     `gorm:"not null" json:"school"`
	Degree       string     `gorm:"not null" json:"degree"`
	FieldOfStudy string     `gorm:"not null" json:"fieldofstudy"`
	From         time.Time  `gorm:"not null" json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
