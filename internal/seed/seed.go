// Package seed provides helpers to create development and demo data for the
// application database.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/avatar"
	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls seeding behavior.
type Options struct {
	// SkipBcrypt stores a plaintext placeholder password instead of hashing.
	// Much faster for large seeds; development only.
	SkipBcrypt bool
	// MaxDays is the age spread for generated posts.
	MaxDays int
}

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Child tables go first so foreign keys
// never block the wipe.
func (s *Seeder) ClearAll() error {
	tables := []interface{}{
		&models.Comment{},
		&models.Like{},
		&models.Post{},
		&models.Experience{},
		&models.Education{},
		&models.Profile{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("clear %T: %w", table, err)
		}
	}
	log.Println("database cleared")
	return nil
}

var statuses = []string{
	"Developer", "Junior Developer", "Senior Developer",
	"Manager", "Student or Learning", "Instructor or Teacher", "Intern",
}

var skillPool = []string{
	"HTML", "CSS", "JavaScript", "TypeScript", "Go", "Python",
	"React", "Node.js", "PostgreSQL", "Redis", "Docker", "Kubernetes",
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (s *Seeder) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	email := gofakeit.Email()
	user := &models.User{
		Name:   gofakeit.Name(),
		Email:  email,
		Avatar: avatar.URL(email),
	}

	if s.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile persists a profile for the user with a random status, skills,
// and one to three work history entries.
func (s *Seeder) CreateProfile(user *models.User) (*models.Profile, error) {
	skills := make([]string, 0, 4)
	for _, i := range s.rng.Perm(len(skillPool))[:4] {
		skills = append(skills, skillPool[i])
	}

	profile := &models.Profile{
		UserID:         user.ID,
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Bio:            gofakeit.Sentence(12),
		Status:         statuses[s.rng.Intn(len(statuses))],
		GithubUsername: strings.ToLower(gofakeit.Username()),
		Skills:         skills,
		Social: models.SocialLinks{
			Twitter:  fmt.Sprintf("https://twitter.com/%s", strings.ToLower(gofakeit.Username())),
			Linkedin: fmt.Sprintf("https://linkedin.com/in/%s", strings.ToLower(gofakeit.Username())),
		},
	}
	if err := s.db.Create(profile).Error; err != nil {
		return nil, err
	}

	for i := 0; i < 1+s.rng.Intn(3); i++ {
		from := gofakeit.DateRange(
			time.Now().AddDate(-8, 0, 0), time.Now().AddDate(-1, 0, 0))
		exp := &models.Experience{
			ProfileID:   profile.ID,
			Title:       gofakeit.JobTitle(),
			Company:     gofakeit.Company(),
			Location:    gofakeit.City(),
			From:        from,
			Current:     i == 0,
			Description: gofakeit.Sentence(8),
		}
		if !exp.Current {
			to := gofakeit.DateRange(from, time.Now())
			exp.To = &to
		}
		if err := s.db.Create(exp).Error; err != nil {
			return nil, err
		}
	}

	return profile, nil
}

// CreatePost persists a post authored by the user, with the author's name and
// avatar snapshotted and a created time spread over the configured window.
func (s *Seeder) CreatePost(user *models.User) (*models.Post, error) {
	maxDays := s.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}

	post := &models.Post{
		UserID: user.ID,
		Text:   gofakeit.Paragraph(1, 3, 8, "\n"),
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	post.CreatedAt = time.Now().
		Add(-time.Duration(s.rng.Intn(maxDays*24)) * time.Hour).
		Add(-time.Duration(s.rng.Intn(60)) * time.Minute)

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Run seeds numUsers users, each with a profile, and numPosts posts spread
// across them, with a sprinkling of likes and comments.
func (s *Seeder) Run(numUsers, numPosts int) error {
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.CreateUser()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if _, err := s.CreateProfile(user); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		users = append(users, user)
	}

	for i := 0; i < numPosts; i++ {
		author := users[s.rng.Intn(len(users))]
		post, err := s.CreatePost(author)
		if err != nil {
			return fmt.Errorf("create post: %w", err)
		}

		numLikes := s.rng.Intn(4)
		if numLikes > len(users) {
			numLikes = len(users)
		}
		for _, j := range s.rng.Perm(len(users))[:numLikes] {
			like := &models.Like{PostID: post.ID, UserID: users[j].ID}
			if err := s.db.Create(like).Error; err != nil {
				return fmt.Errorf("create like: %w", err)
			}
		}

		for k := 0; k < s.rng.Intn(3); k++ {
			commenter := users[s.rng.Intn(len(users))]
			comment := &models.Comment{
				PostID: post.ID,
				UserID: commenter.ID,
				Text:   gofakeit.Sentence(10),
				Name:   commenter.Name,
				Avatar: commenter.Avatar,
			}
			if err := s.db.Create(comment).Error; err != nil {
				return fmt.Errorf("create comment: %w", err)
			}
		}
	}

	log.Printf("seeded %d users and %d posts", numUsers, numPosts)
	return nil
}
