package server

import (
	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

var postTextRules = validation.RuleSet{
	validation.Required("text", "Text is required."),
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if errs := postTextRules.Evaluate(map[string]string{"text": req.Text}); errs != nil {
		return respondValidation(c, errs)
	}

	post, err := s.postService.Create(c.Context(), currentUserID(c), req.Text)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		// A malformed id reads the same as a missing post.
		return respondServiceError(c, models.NewValidationError("Post not found"))
	}

	post, err := s.postService.Get(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return respondServiceError(c, models.NewValidationError("Post not found"))
	}

	if err := s.postService.Delete(c.Context(), currentUserID(c), postID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "Post successfully removed."})
}

// LikePost handles PUT /api/posts/like/:id
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return respondServiceError(c, models.NewValidationError("Post not found"))
	}

	likes, err := s.postService.Like(c.Context(), currentUserID(c), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(likes)
}

// UnlikePost handles PUT /api/posts/unlike/:id
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return respondServiceError(c, models.NewValidationError("Post not found"))
	}

	likes, err := s.postService.Unlike(c.Context(), currentUserID(c), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(likes)
}

// AddComment handles POST /api/posts/comment/:id
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return respondServiceError(c, models.NewValidationError("Post not found"))
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if errs := postTextRules.Evaluate(map[string]string{"text": req.Text}); errs != nil {
		return respondValidation(c, errs)
	}

	comments, err := s.postService.AddComment(c.Context(), currentUserID(c), postID, req.Text)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comments)
}

// DeleteComment handles DELETE /api/posts/comment/:id/:comment_id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return respondServiceError(c, models.NewValidationError("Post not found"))
	}
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return respondServiceError(c, models.NewNotFoundError("Comment not found"))
	}

	comments, err := s.postService.RemoveComment(c.Context(), currentUserID(c), postID, commentID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comments)
}
