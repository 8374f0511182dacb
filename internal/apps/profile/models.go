package profile

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Profile is one user's public developer profile. Experience and education
// are stored inline so the whole profile is read and saved as one document.
type Profile struct {
	ID             uuid.UUID                       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID                       `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	Owner          *Owner                          `gorm:"-" json:"user"`
	Handle         string                          `gorm:"size:40;not null;uniqueIndex" json:"handle"`
	Company        string                          `gorm:"size:255" json:"company"`
	Website        string                          `gorm:"size:255" json:"website"`
	Location       string                          `gorm:"size:255" json:"location"`
	Status         string                          `gorm:"size:255;not null" json:"status"`
	Skills         datatypes.JSONSlice[string]     `json:"skills"`
	Bio            string                          `gorm:"type:text" json:"bio"`
	GitHubUsername string                          `gorm:"size:100" json:"githubusername"`
	Social         Social                          `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experience     datatypes.JSONSlice[Experience] `json:"experience"`
	Education      datatypes.JSONSlice[Education]  `json:"education"`
	CreatedAt      time.Time                       `json:"date"`
	UpdatedAt      time.Time                       `json:"-"`
}

func (Profile) TableName() string { return "profiles" }

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Owner is the populated user reference of a profile.
type Owner struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
}

type Social struct {
	YouTube   string `gorm:"size:255" json:"youtube"`
	Twitter   string `gorm:"size:255" json:"twitter"`
	Facebook  string `gorm:"size:255" json:"facebook"`
	LinkedIn  string `gorm:"size:255" json:"linkedin"`
	Instagram string `gorm:"size:255" json:"instagram"`
}

type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type Education struct {
	ID           uuid.UUID  `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}
