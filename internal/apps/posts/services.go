package posts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/devconnector/internal/identity"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/validation"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns every post, newest first.
func (s *Service) List(ctx context.Context) ([]Post, error) {
	posts := make([]Post, 0)
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	for i := range posts {
		normalize(&posts[i])
	}
	return posts, nil
}

func (s *Service) Get(ctx context.Context, rawID string) (*Post, error) {
	return s.find(ctx, s.db, rawID)
}

// Create publishes a post owned by id. Name and avatar fall back to the
// author's account values.
func (s *Service) Create(ctx context.Context, id identity.Identity, in validation.PostInput) (*Post, error) {
	post := Post{
		UserID:   id.UserID,
		Text:     strings.TrimSpace(in.Text),
		Name:     fallback(in.Name, id.Name),
		Avatar:   fallback(in.Avatar, id.Avatar),
		Likes:    datatypes.JSONSlice[Like]{},
		Comments: datatypes.JSONSlice[Comment]{},
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &post, nil
}

// Delete removes a post. Only its author may delete it.
func (s *Service) Delete(ctx context.Context, id identity.Identity, rawID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, err := s.find(ctx, tx, rawID)
		if err != nil {
			return err
		}
		if identity.Guard(id, post.UserID) != identity.Authorized {
			return ErrNotAuthorized
		}
		if err := tx.Delete(post).Error; err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}
		return nil
	})
}

func (s *Service) Like(ctx context.Context, id identity.Identity, rawID string) (*Post, error) {
	return s.mutate(ctx, rawID, func(p *Post) error {
		if p.LikedBy(id.UserID) {
			return ErrAlreadyLiked
		}
		p.Likes = append(datatypes.JSONSlice[Like]{{User: id.UserID}}, p.Likes...)
		return nil
	})
}

func (s *Service) Unlike(ctx context.Context, id identity.Identity, rawID string) (*Post, error) {
	return s.mutate(ctx, rawID, func(p *Post) error {
		i := p.likeIndex(id.UserID)
		if i < 0 {
			return ErrNotLiked
		}
		p.Likes = append(p.Likes[:i:i], p.Likes[i+1:]...)
		return nil
	})
}

// AddComment prepends a comment written by id.
func (s *Service) AddComment(ctx context.Context, id identity.Identity, rawID string, in validation.PostInput) (*Post, error) {
	comment := Comment{
		ID:     uuid.New(),
		User:   id.UserID,
		Text:   strings.TrimSpace(in.Text),
		Name:   fallback(in.Name, id.Name),
		Avatar: fallback(in.Avatar, id.Avatar),
		Date:   time.Now().UTC(),
	}

	return s.mutate(ctx, rawID, func(p *Post) error {
		p.Comments = append(datatypes.JSONSlice[Comment]{comment}, p.Comments...)
		return nil
	})
}

// DeleteComment removes a comment. Only the comment's author may remove it.
func (s *Service) DeleteComment(ctx context.Context, id identity.Identity, rawID, rawCommentID string) (*Post, error) {
	commentID, err := uuid.Parse(rawCommentID)
	if err != nil {
		commentID = uuid.Nil
	}

	return s.mutate(ctx, rawID, func(p *Post) error {
		for i, cm := range p.Comments {
			if commentID == uuid.Nil || cm.ID != commentID {
				continue
			}
			if identity.Guard(id, cm.User) != identity.Authorized {
				return ErrNotAuthorized
			}
			p.Comments = append(p.Comments[:i:i], p.Comments[i+1:]...)
			return nil
		}
		return ErrCommentNotFound
	})
}

// mutate loads a post, applies fn and saves the result in one transaction.
func (s *Service) mutate(ctx context.Context, rawID string, fn func(*Post) error) (*Post, error) {
	var result *Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, err := s.find(ctx, tx, rawID)
		if err != nil {
			return err
		}
		if err := fn(post); err != nil {
			return err
		}
		if err := tx.Save(post).Error; err != nil {
			return fmt.Errorf("failed to save post: %w", err)
		}
		result = post
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) find(ctx context.Context, db *gorm.DB, rawID string) (*Post, error) {
	postID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrPostNotFound
	}

	var post Post
	err = db.WithContext(ctx).First(&post, "id = ?", postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	normalize(&post)
	return &post, nil
}

func fallback(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

func normalize(p *Post) {
	if p.Likes == nil {
		p.Likes = datatypes.JSONSlice[Like]{}
	}
	if p.Comments == nil {
		p.Comments = datatypes.JSONSlice[Comment]{}
	}
}
