package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// PostService owns post lifecycle: authorship, likes, and comments.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService returns a PostService using the given repositories.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// Create makes a new post for userID, snapshotting the author's current name
// and avatar onto the post.
func (s *PostService) Create(ctx context.Context, userID uint, text string) (*models.Post, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User not found")
	}

	post := &models.Post{
		UserID: userID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// List returns every post, newest first.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

// Get returns a single post with its likes and comments.
func (s *PostService) Get(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewValidationError("Post not found")
	}
	return post, nil
}

// Delete removes a post. Only the author may delete it; the API reports an
// ownership violation on posts as a 400.
func (s *PostService) Delete(ctx context.Context, userID, postID uint) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewValidationError("User not authorized.")
	}
	return s.postRepo.Delete(ctx, post.ID)
}

// Like records userID's like on the post and returns the updated like list.
// Liking the same post twice is rejected.
func (s *PostService) Like(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, post.ID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, models.NewValidationError("Post already Liked.")
	}

	if err := s.postRepo.Like(ctx, userID, post.ID); err != nil {
		return nil, err
	}
	return s.postRepo.GetLikes(ctx, post.ID)
}

// Unlike removes userID's like from the post and returns the updated list.
func (s *PostService) Unlike(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, post.ID)
	if err != nil {
		return nil, err
	}
	if !liked {
		return nil, models.NewValidationError("Post has not yet been liked yet.")
	}

	if err := s.postRepo.Unlike(ctx, userID, post.ID); err != nil {
		return nil, err
	}
	return s.postRepo.GetLikes(ctx, post.ID)
}

// AddComment attaches a comment to the post, snapshotting the commenter's
// name and avatar, and returns the updated comment list newest first.
func (s *PostService) AddComment(ctx context.Context, userID, postID uint, text string) ([]models.Comment, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User not found")
	}

	comment := &models.Comment{
		PostID: post.ID,
		UserID: userID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return s.postRepo.GetComments(ctx, post.ID)
}

// RemoveComment deletes a comment from the post. Only the comment's author
// may remove it.
func (s *PostService) RemoveComment(ctx context.Context, userID, postID, commentID uint) ([]models.Comment, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment, err := s.postRepo.GetComment(ctx, post.ID, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, models.NewNotFoundError("Comment not found")
	}
	if comment.UserID != userID {
		return nil, models.NewUnauthorizedError("You are not authorized to delete this.")
	}

	if err := s.postRepo.DeleteComment(ctx, post.ID, comment.ID); err != nil {
		return nil, err
	}
	return s.postRepo.GetComments(ctx, post.ID)
}
