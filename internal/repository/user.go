package repository

import (
	"strings"

	"pandoro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, ignoring case
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", normalizeEmail(email)).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmails retrieves the registered users among the given emails
func (r *UserRepository) GetByEmails(emails []string) ([]models.User, error) {
	var users []models.User
	if len(emails) == 0 {
		return users, nil
	}
	normalized := make([]string, 0, len(emails))
	for _, email := range emails {
		normalized = append(normalized, normalizeEmail(email))
	}
	if err := r.db.Where("email IN ?", normalized).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) candidates(userID uuid.UUID, exclude []uuid.UUID) *gorm.DB {
	query := r.db.Model(&models.User{}).Where("id <> ?", userID)
	if len(exclude) > 0 {
		query = query.Where("id NOT IN ?", exclude)
	}
	return query
}

// GetCandidates retrieves a page of the users that can be invited by the user, skipping the
// excluded ones, and the number of candidates
func (r *UserRepository) GetCandidates(userID uuid.UUID, exclude []uuid.UUID, limit, offset int) ([]models.User, int64, error) {
	total, err := r.CountCandidates(userID, exclude)
	if err != nil {
		return nil, 0, err
	}

	var users []models.User
	err = r.candidates(userID, exclude).
		Order("surname ASC, name ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// CountCandidates counts the users that can be invited by the user, skipping the excluded ones
func (r *UserRepository) CountCandidates(userID uuid.UUID, exclude []uuid.UUID) (int64, error) {
	var total int64
	err := r.candidates(userID, exclude).Count(&total).Error
	return total, err
}

// Update saves the user profile fields
func (r *UserRepository) Update(user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	return r.db.Model(user).
		Select("name", "surname", "email", "password", "profile_pic").
		Updates(user).Error
}

// Delete deletes a user with their personal notes. Owned projects and changelogs cascade,
// while updates, change notes and events they wrote elsewhere lose their author.
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ? AND update_id IS NULL", id).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}

// Transaction runs fn with user and group repositories bound to one database transaction
func (r *UserRepository) Transaction(fn func(users UserRepositoryInterface, groups GroupRepositoryInterface) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewUserRepository(tx), NewGroupRepository(tx))
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
