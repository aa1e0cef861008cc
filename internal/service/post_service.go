package service

import (
	"context"
	"errors"
	"fmt"

	"postboard/internal/models"
	"postboard/internal/repository"
)

type CreatePostRequest struct {
	OwnerID     string `json:"ownerId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdatePostRequest struct {
	PostID      string `json:"postId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	GetPostsByOwner(ctx context.Context, ownerID string) ([]models.Post, error)
	AuthorizeMutation(ctx context.Context, postID string, caller *models.User) (*models.Post, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest, caller *models.User) (*models.Post, error)
	DeletePost(ctx context.Context, postID string, caller *models.User) error
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		OwnerID:     req.OwnerID,
		Title:       req.Title,
		Description: req.Description,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return post, nil
}

// GetPost is not owner-gated: any authenticated caller may read any post.
func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return post, nil
}

func (p *postService) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return posts, nil
}

func (p *postService) GetPostsByOwner(ctx context.Context, ownerID string) ([]models.Post, error) {
	posts, err := p.postRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return posts, nil
}

// AuthorizeMutation loads the post and checks that caller owns it. The loaded
// post is returned so mutation paths need no second lookup.
func (p *postService) AuthorizeMutation(ctx context.Context, postID string, caller *models.User) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if post.OwnerID != caller.UserID {
		return nil, ErrForbidden
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, req UpdatePostRequest, caller *models.User) (*models.Post, error) {
	post, err := p.AuthorizeMutation(ctx, req.PostID, caller)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Description = req.Description

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, postID string, caller *models.User) error {
	_, err := p.AuthorizeMutation(ctx, postID, caller)
	if err != nil {
		return err
	}

	err = p.postRepo.Delete(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return nil
}
