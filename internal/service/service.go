package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/himanshu221/medium-backend/internal/errs"
	"github.com/himanshu221/medium-backend/internal/models"
	"github.com/himanshu221/medium-backend/internal/token"
)

// Store defines the database operations the service depends on.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateBlog(ctx context.Context, blog *models.Blog) error
	UpdateBlog(ctx context.Context, id, authorID int64, title, content string) error
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	FindBlogByID(ctx context.Context, id int64) (*models.Blog, error)
}

// Service handles business logic
type Service struct {
	store  Store
	tokens *token.Manager
	log    *logrus.Logger
}

// NewService initializes a new service
func NewService(store Store, tokens *token.Manager, log *logrus.Logger) *Service {
	return &Service{store: store, tokens: tokens, log: log}
}

// Signup creates a new user with a hashed password and returns a signed token
func (s *Service) Signup(ctx context.Context, username, password, firstname, lastname string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Firstname:    firstname,
		Lastname:     lastname,
		PasswordHash: string(hashedPassword),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return "", err
	}

	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", err
	}

	s.log.Infof("User signed up: %s", user.Username)
	return signed, nil
}

// Signin authenticates a user by username and password and returns a signed
// token. Unknown usernames and wrong passwords both map to errs.ErrNotFound.
func (s *Service) Signin(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.FindUserByUsername(ctx, username)
	if err != nil {
		return "", errs.ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errs.ErrNotFound
	}

	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", err
	}

	s.log.Infof("User signed in: %s", user.Username)
	return signed, nil
}

// CreateBlog creates a new blog owned by the authenticated user
func (s *Service) CreateBlog(ctx context.Context, authorID int64, title, content string) (*models.Blog, error) {
	blog := &models.Blog{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}

	if err := s.store.CreateBlog(ctx, blog); err != nil {
		return nil, err
	}

	s.log.Infof("Blog %d created by user %d", blog.ID, authorID)
	return blog, nil
}

// UpdateBlog updates a blog if and only if it belongs to the authenticated
// user. A non-owner's update matches zero rows and surfaces as an error.
func (s *Service) UpdateBlog(ctx context.Context, id, authorID int64, title, content string) error {
	if err := s.store.UpdateBlog(ctx, id, authorID, title, content); err != nil {
		return err
	}
	s.log.Infof("Blog %d updated by user %d", id, authorID)
	return nil
}

// ListBlogs returns all blogs with their author names
func (s *Service) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return s.store.ListBlogs(ctx)
}

// GetBlog returns a single blog by id. A missing record returns (nil, nil);
// the handler reports it as a success with a null payload.
func (s *Service) GetBlog(ctx context.Context, id int64) (*models.Blog, error) {
	blog, err := s.store.FindBlogByID(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blog, nil
}
