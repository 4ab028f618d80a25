package service

import (
	"context"
	"testing"
	"time"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileRepoStub is a stub for repository.ProfileRepository.
type profileRepoStub struct {
	getByUserIDFn      func(context.Context, uint) (*models.Profile, error)
	listFn             func(context.Context) ([]models.Profile, error)
	createFn           func(context.Context, *models.Profile) error
	updateFn           func(context.Context, *models.Profile) error
	deleteFn           func(context.Context, uint) error
	addExperienceFn    func(context.Context, *models.Profile, *models.Experience) error
	deleteExperienceFn func(context.Context, *models.Profile, uint) (bool, error)
	addEducationFn     func(context.Context, *models.Profile, *models.Education) error
	deleteEducationFn  func(context.Context, *models.Profile, uint) (bool, error)
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) List(ctx context.Context) ([]models.Profile, error) {
	return s.listFn(ctx)
}
func (s *profileRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}
func (s *profileRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}
func (s *profileRepoStub) Delete(ctx context.Context, userID uint) error {
	return s.deleteFn(ctx, userID)
}
func (s *profileRepoStub) AddExperience(ctx context.Context, profile *models.Profile, exp *models.Experience) error {
	return s.addExperienceFn(ctx, profile, exp)
}
func (s *profileRepoStub) DeleteExperience(ctx context.Context, profile *models.Profile, expID uint) (bool, error) {
	return s.deleteExperienceFn(ctx, profile, expID)
}
func (s *profileRepoStub) AddEducation(ctx context.Context, profile *models.Profile, edu *models.Education) error {
	return s.addEducationFn(ctx, profile, edu)
}
func (s *profileRepoStub) DeleteEducation(ctx context.Context, profile *models.Profile, eduID uint) (bool, error) {
	return s.deleteEducationFn(ctx, profile, eduID)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByUserIDFn:      func(_ context.Context, _ uint) (*models.Profile, error) { return nil, nil },
		listFn:             func(_ context.Context) ([]models.Profile, error) { return nil, nil },
		createFn:           func(_ context.Context, _ *models.Profile) error { return nil },
		updateFn:           func(_ context.Context, _ *models.Profile) error { return nil },
		deleteFn:           func(_ context.Context, _ uint) error { return nil },
		addExperienceFn:    func(_ context.Context, _ *models.Profile, _ *models.Experience) error { return nil },
		deleteExperienceFn: func(_ context.Context, _ *models.Profile, _ uint) (bool, error) { return false, nil },
		addEducationFn:     func(_ context.Context, _ *models.Profile, _ *models.Education) error { return nil },
		deleteEducationFn:  func(_ context.Context, _ *models.Profile, _ uint) (bool, error) { return false, nil },
	}
}

// memoryProfileRepo keeps a single profile in memory so upsert flows can be
// exercised end to end.
func memoryProfileRepo() *profileRepoStub {
	repo := noopProfileRepo()
	var stored *models.Profile

	repo.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
		if stored == nil || stored.UserID != userID {
			return nil, nil
		}
		copied := *stored
		return &copied, nil
	}
	repo.createFn = func(_ context.Context, profile *models.Profile) error {
		profile.ID = 1
		copied := *profile
		stored = &copied
		return nil
	}
	repo.updateFn = func(_ context.Context, profile *models.Profile) error {
		copied := *profile
		stored = &copied
		return nil
	}
	return repo
}

func TestGetMissingProfile(t *testing.T) {
	svc := NewProfileService(noopProfileRepo(), noopUserRepo())

	_, err := svc.Get(context.Background(), 5)
	assertValidationError(t, err, "There is no profile for this user.")
}

func TestUpsertCreatesProfile(t *testing.T) {
	svc := NewProfileService(memoryProfileRepo(), noopUserRepo())

	profile, err := svc.Upsert(context.Background(), UpsertProfileInput{
		UserID: 5,
		Status: "Developer",
		Skills: "HTML, CSS ,Go",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(5), profile.UserID)
	assert.Equal(t, "Developer", profile.Status)
	assert.Equal(t, []string{"HTML", "CSS", "Go"}, profile.Skills)
}

func TestUpsertIsIdempotent(t *testing.T) {
	repo := memoryProfileRepo()
	svc := NewProfileService(repo, noopUserRepo())

	in := UpsertProfileInput{UserID: 5, Status: "Developer", Skills: "Go"}

	first, err := svc.Upsert(context.Background(), in)
	require.NoError(t, err)
	second, err := svc.Upsert(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestUpsertLeavesOmittedFieldsUntouched(t *testing.T) {
	svc := NewProfileService(memoryProfileRepo(), noopUserRepo())

	_, err := svc.Upsert(context.Background(), UpsertProfileInput{
		UserID:  5,
		Status:  "Developer",
		Company: "Acme",
		Skills:  "Go",
	})
	require.NoError(t, err)

	profile, err := svc.Upsert(context.Background(), UpsertProfileInput{
		UserID: 5,
		Bio:    "building things",
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme", profile.Company)
	assert.Equal(t, "Developer", profile.Status)
	assert.Equal(t, []string{"Go"}, profile.Skills)
	assert.Equal(t, "building things", profile.Bio)
}

func TestUpsertSetsSocialLinks(t *testing.T) {
	svc := NewProfileService(memoryProfileRepo(), noopUserRepo())

	profile, err := svc.Upsert(context.Background(), UpsertProfileInput{
		UserID:  5,
		Status:  "Developer",
		Skills:  "Go",
		Twitter: "https://twitter.com/gopher",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://twitter.com/gopher", profile.Social.Twitter)
}

func TestAddExperienceParsesDates(t *testing.T) {
	repo := memoryProfileRepo()
	svc := NewProfileService(repo, noopUserRepo())

	_, err := svc.Upsert(context.Background(), UpsertProfileInput{UserID: 5, Status: "Developer", Skills: "Go"})
	require.NoError(t, err)

	var added *models.Experience
	repo.addExperienceFn = func(_ context.Context, _ *models.Profile, exp *models.Experience) error {
		added = exp
		return nil
	}

	_, err = svc.AddExperience(context.Background(), 5, ExperienceInput{
		Title:   "Engineer",
		Company: "Acme",
		From:    "2020-01-02",
		Current: true,
	})
	require.NoError(t, err)
	require.NotNil(t, added)

	assert.Equal(t, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), added.From)
	assert.Nil(t, added.To)
	assert.True(t, added.Current)
}

func TestAddExperienceRejectsBadDate(t *testing.T) {
	repo := memoryProfileRepo()
	svc := NewProfileService(repo, noopUserRepo())

	_, err := svc.Upsert(context.Background(), UpsertProfileInput{UserID: 5, Status: "Developer", Skills: "Go"})
	require.NoError(t, err)

	_, err = svc.AddExperience(context.Background(), 5, ExperienceInput{
		Title:   "Engineer",
		Company: "Acme",
		From:    "not-a-date",
	})
	assertValidationError(t, err, "Invalid from date")
}

func TestAddExperienceWithoutProfile(t *testing.T) {
	svc := NewProfileService(noopProfileRepo(), noopUserRepo())

	_, err := svc.AddExperience(context.Background(), 5, ExperienceInput{
		Title: "Engineer",
		From:  "2020-01-02",
	})
	assertValidationError(t, err, "There is no profile for this user.")
}

func TestRemoveExperienceNotFound(t *testing.T) {
	repo := memoryProfileRepo()
	svc := NewProfileService(repo, noopUserRepo())

	_, err := svc.Upsert(context.Background(), UpsertProfileInput{UserID: 5, Status: "Developer", Skills: "Go"})
	require.NoError(t, err)

	_, err = svc.RemoveExperience(context.Background(), 5, 42)
	assertNotFoundError(t, err, "Experience not found")
}

func TestRemoveExperienceScopedToOwner(t *testing.T) {
	repo := memoryProfileRepo()
	svc := NewProfileService(repo, noopUserRepo())

	_, err := svc.Upsert(context.Background(), UpsertProfileInput{UserID: 5, Status: "Developer", Skills: "Go"})
	require.NoError(t, err)

	var scopedProfile *models.Profile
	var requestedID uint
	repo.deleteExperienceFn = func(_ context.Context, profile *models.Profile, expID uint) (bool, error) {
		scopedProfile = profile
		requestedID = expID
		return true, nil
	}

	_, err = svc.RemoveExperience(context.Background(), 5, 42)
	require.NoError(t, err)

	require.NotNil(t, scopedProfile)
	assert.Equal(t, uint(5), scopedProfile.UserID)
	assert.Equal(t, uint(42), requestedID)
}

func TestRemoveEducationNotFound(t *testing.T) {
	repo := memoryProfileRepo()
	svc := NewProfileService(repo, noopUserRepo())

	_, err := svc.Upsert(context.Background(), UpsertProfileInput{UserID: 5, Status: "Developer", Skills: "Go"})
	require.NoError(t, err)

	_, err = svc.RemoveEducation(context.Background(), 5, 42)
	assertNotFoundError(t, err, "Education not found")
}

func TestDeleteAccountRemovesProfileThenUser(t *testing.T) {
	profileRepo := noopProfileRepo()
	userRepo := noopUserRepo()

	var order []string
	profileRepo.deleteFn = func(_ context.Context, userID uint) error {
		require.Equal(t, uint(5), userID)
		order = append(order, "profile")
		return nil
	}
	userRepo.deleteFn = func(_ context.Context, id uint) error {
		require.Equal(t, uint(5), id)
		order = append(order, "user")
		return nil
	}

	svc := NewProfileService(profileRepo, userRepo)

	require.NoError(t, svc.DeleteAccount(context.Background(), 5))
	assert.Equal(t, []string{"profile", "user"}, order)
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"HTML", "CSS", "Go"}, splitSkills("HTML, CSS ,Go"))
	assert.Equal(t, []string{"Go"}, splitSkills("Go"))
}
