// Package service implements the application's business rules on top of the
// repository layer: profile upsert semantics, ownership checks, and the
// like/comment mutation rules.
package service

import (
	"context"
	"strings"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// ProfileService owns profile lifecycle and the experience/education rules.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewProfileService returns a ProfileService using the given repositories.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

// UpsertProfileInput carries the profile fields from the request. Empty
// strings mean "not provided": an omitted field never clears a stored value.
type UpsertProfileInput struct {
	UserID         uint
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	Skills         string // comma-separated
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

// ExperienceInput carries one new work history entry. Dates arrive as strings
// ("2006-01-02" or RFC3339) and are parsed here.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// EducationInput carries one new schooling entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// Get returns the profile owned by userID.
func (s *ProfileService) Get(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewValidationError("There is no profile for this user.")
	}
	return profile, nil
}

// List returns every profile, newest first.
func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// Upsert creates the caller's profile or updates it in place. The operation
// is idempotent: repeating the same payload mutates the single existing row.
func (s *ProfileService) Upsert(ctx context.Context, in UpsertProfileInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	creating := profile == nil
	if creating {
		profile = &models.Profile{UserID: in.UserID}
	}

	applyProfileFields(profile, in)

	if creating {
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	} else if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return s.Get(ctx, in.UserID)
}

// applyProfileFields resolves input onto the profile, touching only the
// fields present in the request.
func applyProfileFields(profile *models.Profile, in UpsertProfileInput) {
	if in.Company != "" {
		profile.Company = in.Company
	}
	if in.Website != "" {
		profile.Website = in.Website
	}
	if in.Location != "" {
		profile.Location = in.Location
	}
	if in.Bio != "" {
		profile.Bio = in.Bio
	}
	if in.Status != "" {
		profile.Status = in.Status
	}
	if in.GithubUsername != "" {
		profile.GithubUsername = in.GithubUsername
	}
	if in.Skills != "" {
		profile.Skills = splitSkills(in.Skills)
	}
	if in.Youtube != "" {
		profile.Social.Youtube = in.Youtube
	}
	if in.Twitter != "" {
		profile.Social.Twitter = in.Twitter
	}
	if in.Facebook != "" {
		profile.Social.Facebook = in.Facebook
	}
	if in.Linkedin != "" {
		profile.Social.Linkedin = in.Linkedin
	}
	if in.Instagram != "" {
		profile.Social.Instagram = in.Instagram
	}
}

// splitSkills turns "html, css ,go" into ["html", "css", "go"].
func splitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// DeleteAccount removes the caller's profile and then the user record itself.
// Both are hard deletes; experience and education rows go with the profile.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.profileRepo.Delete(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

// AddExperience inserts a work history entry at the head of the caller's list.
func (s *ProfileService) AddExperience(ctx context.Context, userID uint, in ExperienceInput) (*models.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	from, to, err := parseDateRange(in.From, in.To)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        from,
		To:          to,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, profile, exp); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

// RemoveExperience removes the entry whose ID matches expID from the caller's
// profile. The match is by entry identifier, scoped to the owner's profile,
// so one user can never remove another's entry.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	deleted, err := s.profileRepo.DeleteExperience(ctx, profile, expID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, models.NewNotFoundError("Experience not found")
	}

	return s.Get(ctx, userID)
}

// AddEducation inserts a schooling entry at the head of the caller's list.
func (s *ProfileService) AddEducation(ctx context.Context, userID uint, in EducationInput) (*models.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	from, to, err := parseDateRange(in.From, in.To)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, profile, edu); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

// RemoveEducation removes the entry whose ID matches eduID from the caller's
// profile, by entry identifier.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	deleted, err := s.profileRepo.DeleteEducation(ctx, profile, eduID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, models.NewNotFoundError("Education not found")
	}

	return s.Get(ctx, userID)
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseDateRange parses the from date (required) and to date (optional).
func parseDateRange(fromStr, toStr string) (time.Time, *time.Time, error) {
	from, err := parseDate(fromStr)
	if err != nil {
		return time.Time{}, nil, models.NewValidationError("Invalid from date")
	}
	if toStr == "" {
		return from, nil, nil
	}
	to, err := parseDate(toStr)
	if err != nil {
		return time.Time{}, nil, models.NewValidationError("Invalid to date")
	}
	return from, &to, nil
}
