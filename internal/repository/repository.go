package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/himanshu221/medium-backend/internal/errs"
	"github.com/himanshu221/medium-backend/internal/models"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, firstname, lastname, password_hash, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, user.Username, user.Firstname, user.Lastname, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByUsername retrieves a user by username
func (r *Repository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, firstname, lastname, password_hash, created_at
		FROM users
		WHERE username = $1`
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.Firstname, &user.Lastname, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateBlog creates a new blog for its author
func (r *Repository) CreateBlog(ctx context.Context, blog *models.Blog) error {
	query := `
		INSERT INTO blogs (title, content, author_id, publish_date)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, publish_date`
	err := r.db.QueryRowContext(ctx, query, blog.Title, blog.Content, blog.AuthorID).
		Scan(&blog.ID, &blog.PublishDate)
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}
	return nil
}

// UpdateBlog updates a blog filtered by both record id and owner id.
// A non-owner's update matches zero rows and is reported as errs.ErrNotFound.
func (r *Repository) UpdateBlog(ctx context.Context, id, authorID int64, title, content string) error {
	query := `
		UPDATE blogs
		SET title = $1, content = $2
		WHERE id = $3 AND author_id = $4`
	res, err := r.db.ExecContext(ctx, query, title, content, id, authorID)
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}
	if rows == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ListBlogs retrieves all blogs joined with their author names
func (r *Repository) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	query := `
		SELECT b.id, b.title, b.content, b.publish_date,
		       COALESCE(u.firstname, ''), COALESCE(u.lastname, '')
		FROM blogs b
		JOIN users u ON u.id = b.author_id
		ORDER BY b.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	blogs := []models.Blog{}
	for rows.Next() {
		var b models.Blog
		author := &models.BlogAuthor{}
		if err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.PublishDate, &author.Firstname, &author.Lastname); err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		b.Author = author
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

// FindBlogByID retrieves a single blog with its author names
func (r *Repository) FindBlogByID(ctx context.Context, id int64) (*models.Blog, error) {
	b := &models.Blog{Author: &models.BlogAuthor{}}
	query := `
		SELECT b.id, b.title, b.content, b.publish_date,
		       COALESCE(u.firstname, ''), COALESCE(u.lastname, '')
		FROM blogs b
		JOIN users u ON u.id = b.author_id
		WHERE b.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&b.ID, &b.Title, &b.Content, &b.PublishDate, &b.Author.Firstname, &b.Author.Lastname)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find blog: %w", err)
	}
	return b, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
