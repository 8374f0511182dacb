package profile

import "errors"

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrNoProfiles         = errors.New("no profiles")
	ErrHandleTaken        = errors.New("handle already exists")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrEducationNotFound  = errors.New("education not found")
)
