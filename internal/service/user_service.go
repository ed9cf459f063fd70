package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"userpanel/internal/entities"
	"userpanel/internal/models"
	"userpanel/internal/repository"
)

const defaultPageSize = 5

// UserService defines the interface for user business logic
type UserService interface {
	ListUsers(page int) (*models.UserPage, error)
	GetUser(id int64) (*entities.User, error)
	UpsertUser(req *models.UpsertUserRequest) (*entities.User, error)
	DeleteUser(id int64) error
}

type userService struct {
	repo            repository.UserRepository
	pageSize        int
	defaultPassword string
}

// NewUserService creates a new user service. defaultPassword is the
// placeholder credential every created or updated user is hashed with; see
// the DEFAULT_USER_PASSWORD note in config.
func NewUserService(repo repository.UserRepository, pageSize int, defaultPassword string) UserService {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &userService{
		repo:            repo,
		pageSize:        pageSize,
		defaultPassword: defaultPassword,
	}
}

// ListUsers returns one page of users with pagination metadata
func (s *userService) ListUsers(page int) (*models.UserPage, error) {
	if page < 1 {
		page = 1
	}

	users, total, err := s.repo.List(page, s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	lastPage := (total + s.pageSize - 1) / s.pageSize
	if lastPage < 1 {
		lastPage = 1
	}

	return &models.UserPage{
		Users: users,
		Meta: models.PageMeta{
			CurrentPage: page,
			PageSize:    s.pageSize,
			Total:       total,
			LastPage:    lastPage,
		},
	}, nil
}

// GetUser returns a single user by id
func (s *userService) GetUser(id int64) (*entities.User, error) {
	return s.repo.FindByID(id)
}

// UpsertUser creates or updates a user keyed by email. The stored password
// hash is derived from the configured default credential, not user input.
// Exactly one upsert statement is issued per request.
func (s *userService) UpsertUser(req *models.UpsertUserRequest) (*entities.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.UpsertByEmail(req.Name, req.Email, string(hashedPassword))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return user, nil
}

// DeleteUser removes a user by id, reporting repository.ErrUserNotFound when
// no such user exists
func (s *userService) DeleteUser(id int64) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.DeleteByID(id)
}
