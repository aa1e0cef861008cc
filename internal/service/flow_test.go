package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/models"
	"postboard/internal/repository"
)

// In-memory fakes standing in for the Postgres repositories, so the whole
// register -> login -> resolve -> post flow can run without a database.

type memUserRepository struct {
	mu    sync.Mutex
	users map[string]models.User // keyed by email
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{users: make(map[string]models.User)}
}

func (r *memUserRepository) CreateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return fmt.Errorf("%w: email %s", repository.ErrDuplicate, user.Email)
	}

	user.UserID = uuid.New().String()
	user.CreatedAt = time.Now()
	r.users[user.Email] = *user
	return nil
}

func (r *memUserRepository) GetUserByID(_ context.Context, userID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.UserID == userID {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: user %s", repository.ErrNotFound, userID)
}

func (r *memUserRepository) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[email]
	if !exists {
		return nil, fmt.Errorf("%w: email %s", repository.ErrNotFound, email)
	}
	u := user
	return &u, nil
}

type memPostRepository struct {
	mu    sync.Mutex
	posts map[string]models.Post
}

func newMemPostRepository() *memPostRepository {
	return &memPostRepository{posts: make(map[string]models.Post)}
}

func (r *memPostRepository) Create(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.PostID = uuid.New().String()
	post.CreatedAt = time.Now()
	r.posts[post.PostID] = *post
	return nil
}

func (r *memPostRepository) GetByID(_ context.Context, postID string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, exists := r.posts[postID]
	if !exists {
		return nil, fmt.Errorf("%w: post %s", repository.ErrNotFound, postID)
	}
	p := post
	return &p, nil
}

func (r *memPostRepository) GetAll(_ context.Context) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts := make([]models.Post, 0, len(r.posts))
	for _, post := range r.posts {
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *memPostRepository) GetByOwnerID(_ context.Context, ownerID string) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var posts []models.Post
	for _, post := range r.posts {
		if post.OwnerID == ownerID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (r *memPostRepository) Update(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[post.PostID]; !exists {
		return fmt.Errorf("%w: post %s", repository.ErrNotFound, post.PostID)
	}
	r.posts[post.PostID] = *post
	return nil
}

func (r *memPostRepository) Delete(_ context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[postID]; !exists {
		return fmt.Errorf("%w: post %s", repository.ErrNotFound, postID)
	}
	delete(r.posts, postID)
	return nil
}

func TestRegisterLoginPostFlow(t *testing.T) {
	ctx := context.Background()
	cfg := testTokenConfig()
	tokens := NewTokenService(cfg)
	userRepo := newMemUserRepository()
	auth := NewAuthService(userRepo, tokens, cfg)
	posts := NewPostService(newMemPostRepository())

	// register
	registered, err := auth.Register(ctx, RegisterRequest{
		Email:    "e1@x.com",
		Name:     "First",
		Phone:    "+1000000",
		Password: "pw123456",
	})
	require.NoError(t, err)

	// registering the same email again fails and leaves the first user intact
	_, err = auth.Register(ctx, RegisterRequest{
		Email:    "e1@x.com",
		Name:     "Impostor",
		Password: "pw123456",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	kept, err := userRepo.GetUserByEmail(ctx, "e1@x.com")
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, kept.UserID)
	assert.Equal(t, "First", kept.Name)

	// login with the same credentials
	tokenString, err := auth.Login(ctx, "e1@x.com", "pw123456")
	require.NoError(t, err)

	// the token resolves back to the same user
	caller, err := auth.CurrentUser(ctx, tokenString)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, caller.UserID)

	// create a post as that user
	post, err := posts.CreatePost(ctx, CreatePostRequest{
		OwnerID:     caller.UserID,
		Title:       "First post",
		Description: "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, caller.UserID, post.OwnerID)

	// the owner may mutate it
	authorized, err := posts.AuthorizeMutation(ctx, post.PostID, caller)
	require.NoError(t, err)
	assert.Equal(t, post.PostID, authorized.PostID)

	// a second registered user may read it but not mutate it
	_, err = auth.Register(ctx, RegisterRequest{
		Email:    "e2@x.com",
		Name:     "Second",
		Password: "pw654321",
	})
	require.NoError(t, err)

	otherToken, err := auth.Login(ctx, "e2@x.com", "pw654321")
	require.NoError(t, err)
	other, err := auth.CurrentUser(ctx, otherToken)
	require.NoError(t, err)

	read, err := posts.GetPost(ctx, post.PostID)
	require.NoError(t, err)
	assert.Equal(t, caller.UserID, read.OwnerID)

	_, err = posts.AuthorizeMutation(ctx, post.PostID, other)
	assert.ErrorIs(t, err, ErrForbidden)
}
