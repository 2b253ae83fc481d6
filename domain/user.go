package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// A user can register, login, post tweets, follow and like.
type User struct {
	ID        string    // Unique identifier
	Name      string    // Display name
	Username  string    // Login username (unique)
	Password  string    // Bcrypt hashed password
	Image     string    // Avatar URL, may be empty
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// Author is the slice of User exposed inside a TweetSummary.
type Author struct {
	ID    string
	Name  string
	Image string
}

// AsAuthor projects the public author fields of a user.
func (u User) AsAuthor() Author {
	return Author{ID: u.ID, Name: u.Name, Image: u.Image}
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id string) (User, error)

	// Insert creates a new user account.
	Insert(ctx context.Context, u *User) error

	// GetByUsername retrieves a user by their username.
	// Used during login to verify credentials.
	GetByUsername(ctx context.Context, username string) (User, error)
}

// UserUsecase defines the business logic contract for user operations.
type UserUsecase interface {
	// Register creates a new user account.
	// Returns ErrConflict if the username already exists.
	Register(ctx context.Context, name, username, password string) error

	// Login verifies user credentials and returns a JWT token.
	// Returns ErrNotFound if the user doesn't exist.
	// Returns ErrBadParamInput if the password is incorrect.
	Login(ctx context.Context, username, password string) (string, error)

	// Me returns the profile of the authenticated viewer.
	Me(ctx context.Context, viewer Viewer) (User, error)
}
