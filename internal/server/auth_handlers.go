package server

import (
	"time"

	"devconnect/internal/avatar"
	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/token"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

var registerRules = validation.RuleSet{
	validation.Required("name", "Name is required"),
	validation.Email("email", "Please enter a valid email."),
	validation.MinLength("password", 6, "Please enter a password with 6 or more characters."),
}

var loginRules = validation.RuleSet{
	validation.Email("email", "Please enter a valid email."),
	validation.Required("password", "Password is required"),
}

// Register handles POST /api/users
func (s *Server) Register(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if errs := registerRules.Evaluate(map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
	}); errs != nil {
		return respondValidation(c, errs)
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return respondServiceError(c, err)
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("User already exists"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondServiceError(c, err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Avatar:   avatar.URL(req.Email),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can still hit the unique email index.
		return respondServiceError(c, err)
	}

	return s.respondWithToken(c, user.ID)
}

// Login handles POST /api/auth
func (s *Server) Login(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if errs := loginRules.Evaluate(map[string]string{
		"email":    req.Email,
		"password": req.Password,
	}); errs != nil {
		return respondValidation(c, errs)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return respondServiceError(c, err)
	}
	// One message for both a missing account and a wrong password, so the
	// endpoint does not leak which emails are registered.
	if user == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid Credentials."))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid Credentials."))
	}

	return s.respondWithToken(c, user.ID)
}

// GetAuthenticatedUser handles GET /api/auth
func (s *Server) GetAuthenticatedUser(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	if user == nil {
		return respondServiceError(c, models.NewNotFoundError("User not found"))
	}
	return c.JSON(user)
}

func (s *Server) respondWithToken(c *fiber.Ctx, userID uint) error {
	ttl := token.DefaultTTL
	if s.config.JWTTTLSeconds > 0 {
		ttl = time.Duration(s.config.JWTTTLSeconds) * time.Second
	}

	tok, err := token.Issue(userID, s.config.JWTSecret, ttl)
	if err != nil {
		middleware.Logger.Error("token issue failed", "error", err)
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"token": tok})
}
