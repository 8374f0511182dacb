package posts

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Post is a status update. Likes and comments live inline on the post row.
type Post struct {
	ID        uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID                    `gorm:"type:uuid;not null;index" json:"user"`
	Text      string                       `gorm:"type:text;not null" json:"text"`
	Name      string                       `gorm:"size:255" json:"name"`
	Avatar    string                       `gorm:"size:255" json:"avatar"`
	Likes     datatypes.JSONSlice[Like]    `json:"likes"`
	Comments  datatypes.JSONSlice[Comment] `json:"comments"`
	CreatedAt time.Time                    `gorm:"index" json:"date"`
	UpdatedAt time.Time                    `json:"-"`
}

func (Post) TableName() string { return "posts" }

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Like struct {
	User uuid.UUID `json:"user"`
}

type Comment struct {
	ID     uuid.UUID `json:"id"`
	User   uuid.UUID `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

// LikedBy reports whether userID is among the post's likes.
func (p *Post) LikedBy(userID uuid.UUID) bool {
	return p.likeIndex(userID) >= 0
}

func (p *Post) likeIndex(userID uuid.UUID) int {
	for i, l := range p.Likes {
		if l.User == userID {
			return i
		}
	}
	return -1
}
