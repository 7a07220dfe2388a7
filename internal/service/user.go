package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"sort"

	"pandoro-backend/internal/database/models"
	apperrors "pandoro-backend/internal/errors"
	"pandoro-backend/internal/logger"
	"pandoro-backend/internal/repository"
	"pandoro-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles account operations
type UserService struct {
	repo        repository.UserRepositoryInterface
	credentials CredentialsManager
	uploader    imageUploader
	validator   *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(
	repo repository.UserRepositoryInterface,
	credentials CredentialsManager,
	files storage.Storage,
	maxUploadSize int64,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		repo:        repo,
		credentials: credentials,
		uploader:    imageUploader{storage: files, maxSize: maxUploadSize},
		validator:   validator,
	}
}

// SignUpRequest represents the request to create an account
type SignUpRequest struct {
	ServerSecret string `json:"serverSecret,omitempty"`
	Name         string `json:"name" validate:"user_name" example:"John"`
	Surname      string `json:"surname" validate:"user_surname" example:"Doe"`
	Email        string `json:"email" validate:"user_email" example:"john.doe@pandoro.dev"`
	Password     string `json:"password" validate:"password"`
}

// SignInRequest represents the request to authenticate
type SignInRequest struct {
	Email    string `json:"email" validate:"user_email" example:"john.doe@pandoro.dev"`
	Password string `json:"password" validate:"password"`
}

// ChangeEmailRequest represents the request to change the account email
type ChangeEmailRequest struct {
	Email string `json:"email" validate:"user_email" example:"john.doe@pandoro.dev"`
}

// ChangePasswordRequest represents the request to change the account password
type ChangePasswordRequest struct {
	Password string `json:"password" validate:"password"`
}

// AuthResponse carries the credentials and the profile of the authenticated user
type AuthResponse struct {
	ID         uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Token      string    `json:"token"`
	Name       string    `json:"name" example:"John"`
	Surname    string    `json:"surname" example:"Doe"`
	Email      string    `json:"email" example:"john.doe@pandoro.dev"`
	ProfilePic string    `json:"profilePic"`
}

// GetCandidates returns a page of the users the user can invite into a group, skipping the
// excluded ones, usually the members already joined or invited
func (s *UserService) GetCandidates(userID uuid.UUID, exclude []uuid.UUID, page PageRequest) (*Page[models.User], error) {
	users, total, err := s.repo.GetCandidates(userID, exclude, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	return NewPage(users, page, total), nil
}

// CountCandidates returns the number of users the user can invite, skipping the excluded ones
func (s *UserService) CountCandidates(userID uuid.UUID, exclude []uuid.UUID) (int64, error) {
	total, err := s.repo.CountCandidates(userID, exclude)
	if err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return total, nil
}

// SignUp creates an account and returns its credentials
func (s *UserService) SignUp(req *SignUpRequest) (*AuthResponse, error) {
	if err := s.credentials.CheckServerSecret(req.ServerSecret); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user by email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := s.credentials.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: hash,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.authResponse(user)
}

// SignIn authenticates the account with email and password
func (s *UserService) SignIn(req *SignInRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	user, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !s.credentials.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.authResponse(user)
}

func (s *UserService) authResponse(user *models.User) (*AuthResponse, error) {
	token, err := s.credentials.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		ID:         user.ID,
		Token:      token,
		Name:       user.Name,
		Surname:    user.Surname,
		Email:      user.Email,
		ProfilePic: user.ProfilePic,
	}, nil
}

// ChangeEmail changes the email of the account
func (s *UserService) ChangeEmail(userID uuid.UUID, req *ChangeEmailRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		return lookupError(err, apperrors.ErrUserNotFound, "user")
	}

	other, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing user by email: %w", err)
	}
	if other != nil && other.ID != user.ID {
		return apperrors.ErrUserExists
	}

	user.Email = req.Email
	if err := s.repo.Update(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// ChangePassword changes the password of the account
func (s *UserService) ChangePassword(userID uuid.UUID, req *ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		return lookupError(err, apperrors.ErrUserNotFound, "user")
	}

	hash, err := s.credentials.HashPassword(req.Password)
	if err != nil {
		return err
	}
	user.Password = hash
	if err := s.repo.Update(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// ChangeProfilePic stores the uploaded picture and returns its URL
func (s *UserService) ChangeProfilePic(ctx context.Context, userID uuid.UUID, file *multipart.FileHeader) (string, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return "", lookupError(err, apperrors.ErrUserNotFound, "user")
	}

	url, err := s.uploader.replace(ctx, "profiles", user.ID, file, user.ProfilePic, apperrors.ErrWrongProfilePic)
	if err != nil {
		return "", err
	}

	user.ProfilePic = url
	if err := s.repo.Update(user); err != nil {
		return "", fmt.Errorf("failed to update user: %w", err)
	}
	return url, nil
}

// DeleteAccount removes the account. Every group the user joined is left first: a sole
// member deletes the group, a sole ADMIN hands the role to the longest-standing member.
// Projects, personal notes and changelogs of the user are removed with the account. The
// whole removal is one transaction and stored images are discarded only once it commits.
func (s *UserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return lookupError(err, apperrors.ErrUserNotFound, "user")
	}

	var logos []string
	err = s.repo.Transaction(func(users repository.UserRepositoryInterface, groupRepo repository.GroupRepositoryInterface) error {
		groups, err := groupRepo.GetByUser(userID)
		if err != nil {
			return fmt.Errorf("failed to get user groups: %w", err)
		}
		for i := range groups {
			deleted, err := leave(ctx, groupRepo, &groups[i], userID)
			if err != nil {
				return err
			}
			if deleted {
				logos = append(logos, groups[i].Logo)
			}
		}
		if err := users.Delete(userID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, logo := range logos {
		s.uploader.discard(ctx, logo)
	}
	s.uploader.discard(ctx, user.ProfilePic)
	return nil
}

// leave removes the user from the group and reports whether the group was deleted
func leave(ctx context.Context, groupRepo repository.GroupRepositoryInterface, group *models.Group, userID uuid.UUID) (bool, error) {
	leaving := group.Member(userID)
	others := group.JoinedMemberIDs(userID)

	if len(others) == 0 {
		if err := groupRepo.Delete(group.ID); err != nil {
			return false, fmt.Errorf("failed to delete group %s: %w", group.ID, err)
		}
		return true, nil
	}

	var successor *models.GroupMember
	if group.IsAdmin(userID) && len(group.Admins()) == 1 {
		successor = longestStanding(group, userID)
	} else if group.AuthorID == userID {
		successor = otherAdmin(group, userID)
	}

	if err := groupRepo.HandOver(group, leaving, successor); err != nil {
		return false, fmt.Errorf("failed to leave group %s: %w", group.ID, err)
	}
	if successor != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"group_id":  group.ID,
			"successor": successor.UserID,
		}).Info("Group handed over on account deletion")
	}
	return false, nil
}

// longestStanding returns the joined member, other than the user, with the oldest membership
func longestStanding(group *models.Group, userID uuid.UUID) *models.GroupMember {
	var joined []*models.GroupMember
	for i := range group.Members {
		member := &group.Members[i]
		if member.IsJoined() && member.UserID != userID {
			joined = append(joined, member)
		}
	}
	if len(joined) == 0 {
		return nil
	}
	sort.SliceStable(joined, func(i, j int) bool {
		return joined[i].CreatedAt.Before(joined[j].CreatedAt)
	})
	return joined[0]
}

// otherAdmin returns an ADMIN other than the user, who inherits the group authorship
func otherAdmin(group *models.Group, userID uuid.UUID) *models.GroupMember {
	for i := range group.Members {
		member := &group.Members[i]
		if member.IsJoined() && member.Role == models.RoleAdmin && member.UserID != userID {
			return member
		}
	}
	return nil
}
