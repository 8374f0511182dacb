package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/devconnector/internal/identity"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/models"
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

// Current returns the profile of the authenticated user.
func (s *Service) Current(ctx context.Context, id identity.Identity) (*Profile, error) {
	p, err := s.findByUser(ctx, s.db, id.UserID)
	if err != nil {
		return nil, err
	}
	return p, s.attachOwners(ctx, p)
}

// All returns every profile with its owner populated.
func (s *Service) All(ctx context.Context) ([]Profile, error) {
	var profiles []Profile
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	if len(profiles) == 0 {
		return nil, ErrNoProfiles
	}

	ptrs := make([]*Profile, len(profiles))
	for i := range profiles {
		ptrs[i] = &profiles[i]
	}
	if err := s.attachOwners(ctx, ptrs...); err != nil {
		return nil, err
	}
	return profiles, nil
}

// ByUser looks a profile up by its owner's id. A malformed id is reported as
// not found.
func (s *Service) ByUser(ctx context.Context, rawUserID string) (*Profile, error) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	p, err := s.findByUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	return p, s.attachOwners(ctx, p)
}

func (s *Service) ByHandle(ctx context.Context, handle string) (*Profile, error) {
	var p Profile
	err := s.db.WithContext(ctx).Where("handle = ?", handle).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	normalize(&p)
	return &p, s.attachOwners(ctx, &p)
}

// Upsert creates the caller's profile or merges the supplied fields into the
// existing one. Empty fields never overwrite stored values.
func (s *Service) Upsert(ctx context.Context, id identity.Identity, in validation.ProfileInput) (*Profile, error) {
	handle := strings.TrimSpace(in.Handle)

	var result *Profile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&Profile{}).
			Where("handle = ? AND user_id <> ?", handle, id.UserID).
			Count(&taken).Error; err != nil {
			return fmt.Errorf("failed to check handle: %w", err)
		}
		if taken > 0 {
			return ErrHandleTaken
		}

		existing, err := s.findByUser(ctx, tx, id.UserID)
		switch {
		case errors.Is(err, ErrProfileNotFound):
			p := Profile{UserID: id.UserID}
			merge(&p, in)
			normalize(&p)
			if err := tx.Create(&p).Error; err != nil {
				return fmt.Errorf("failed to create profile: %w", err)
			}
			result = &p
		case err != nil:
			return err
		default:
			merge(existing, in)
			if err := tx.Save(existing).Error; err != nil {
				return fmt.Errorf("failed to update profile: %w", err)
			}
			result = existing
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, s.attachOwners(ctx, result)
}

// AddExperience prepends an entry to the caller's experience list.
func (s *Service) AddExperience(ctx context.Context, id identity.Identity, in validation.ExperienceInput) (*Profile, error) {
	from, to := parseRange(in.From, in.To, in.Current)
	entry := Experience{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Location:    strings.TrimSpace(in.Location),
		From:        from,
		To:          to,
		Current:     in.Current,
		Description: in.Description,
	}

	return s.mutate(ctx, id, func(p *Profile) error {
		p.Experience = append(datatypes.JSONSlice[Experience]{entry}, p.Experience...)
		return nil
	})
}

func (s *Service) RemoveExperience(ctx context.Context, id identity.Identity, rawID string) (*Profile, error) {
	expID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrExperienceNotFound
	}

	return s.mutate(ctx, id, func(p *Profile) error {
		for i, e := range p.Experience {
			if e.ID == expID {
				p.Experience = append(p.Experience[:i:i], p.Experience[i+1:]...)
				return nil
			}
		}
		return ErrExperienceNotFound
	})
}

// AddEducation prepends an entry to the caller's education list.
func (s *Service) AddEducation(ctx context.Context, id identity.Identity, in validation.EducationInput) (*Profile, error) {
	from, to := parseRange(in.From, in.To, in.Current)
	entry := Education{
		ID:           uuid.New(),
		School:       strings.TrimSpace(in.School),
		Degree:       strings.TrimSpace(in.Degree),
		FieldOfStudy: strings.TrimSpace(in.FieldOfStudy),
		From:         from,
		To:           to,
		Current:      in.Current,
		Description:  in.Description,
	}

	return s.mutate(ctx, id, func(p *Profile) error {
		p.Education = append(datatypes.JSONSlice[Education]{entry}, p.Education...)
		return nil
	})
}

func (s *Service) RemoveEducation(ctx context.Context, id identity.Identity, rawID string) (*Profile, error) {
	eduID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrEducationNotFound
	}

	return s.mutate(ctx, id, func(p *Profile) error {
		for i, e := range p.Education {
			if e.ID == eduID {
				p.Education = append(p.Education[:i:i], p.Education[i+1:]...)
				return nil
			}
		}
		return ErrEducationNotFound
	})
}

// Delete removes the caller's profile and then the caller's account. Posts
// written by the user are kept.
func (s *Service) Delete(ctx context.Context, id identity.Identity) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id.UserID).Delete(&Profile{}).Error; err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}
		if err := tx.Where("id = ?", id.UserID).Delete(&models.User{}).Error; err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}

// mutate loads the caller's profile, applies fn and saves the result.
func (s *Service) mutate(ctx context.Context, id identity.Identity, fn func(*Profile) error) (*Profile, error) {
	var result *Profile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := s.findByUser(ctx, tx, id.UserID)
		if err != nil {
			return err
		}
		if err := fn(p); err != nil {
			return err
		}
		if err := tx.Save(p).Error; err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, s.attachOwners(ctx, result)
}

func (s *Service) findByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*Profile, error) {
	var p Profile
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	normalize(&p)
	return &p, nil
}

// attachOwners populates Owner with the id, name and avatar of each
// profile's user.
func (s *Service) attachOwners(ctx context.Context, profiles ...*Profile) error {
	ids := make([]uuid.UUID, 0, len(profiles))
	for _, p := range profiles {
		normalize(p)
		ids = append(ids, p.UserID)
	}

	var users []models.User
	if err := s.db.WithContext(ctx).Select("id", "name", "avatar").Where("id IN ?", ids).Find(&users).Error; err != nil {
		return fmt.Errorf("failed to load profile owners: %w", err)
	}

	byID := make(map[uuid.UUID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for _, p := range profiles {
		owner := Owner{ID: p.UserID}
		if u, ok := byID[p.UserID]; ok {
			owner.Name = u.Name
			owner.Avatar = u.Avatar
		}
		p.Owner = &owner
	}
	return nil
}

// merge copies every non-empty field of in onto p. Social links are merged
// one by one.
func merge(p *Profile, in validation.ProfileInput) {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}

	set(&p.Handle, in.Handle)
	set(&p.Company, in.Company)
	set(&p.Website, in.Website)
	set(&p.Location, in.Location)
	set(&p.Status, in.Status)
	set(&p.Bio, in.Bio)
	set(&p.GitHubUsername, in.GitHubUsername)

	if skills := validation.SplitSkills(in.Skills); len(skills) > 0 {
		p.Skills = skills
	}

	set(&p.Social.YouTube, in.YouTube)
	set(&p.Social.Twitter, in.Twitter)
	set(&p.Social.Facebook, in.Facebook)
	set(&p.Social.LinkedIn, in.LinkedIn)
	set(&p.Social.Instagram, in.Instagram)
}

// parseRange converts validated date strings. A current position has no end date.
func parseRange(rawFrom, rawTo string, current bool) (time.Time, *time.Time) {
	from, _ := validation.ParseDate(rawFrom)
	if current || strings.TrimSpace(rawTo) == "" {
		return from, nil
	}
	to, err := validation.ParseDate(rawTo)
	if err != nil {
		return from, nil
	}
	return from, &to
}

// normalize replaces nil sequences so they serialize as [] instead of null.
func normalize(p *Profile) {
	if p.Skills == nil {
		p.Skills = datatypes.JSONSlice[string]{}
	}
	if p.Experience == nil {
		p.Experience = datatypes.JSONSlice[Experience]{}
	}
	if p.Education == nil {
		p.Education = datatypes.JSONSlice[Education]{}
	}
}
