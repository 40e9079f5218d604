package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell-backend/errs"
	"github.com/inkwell-app/inkwell-backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *UserRepo) GetDB() *gorm.DB {
	return r.db
}

// FindByID returns a user by internal id, or nil if no row matches.
func (r *UserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByExternalID returns the user owned by an identity-provider account,
// or nil if the identity has never been seen.
func (r *UserRepo) FindByExternalID(externalID string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "external_id = ?", externalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername returns a user by username, or nil if no row matches.
func (r *UserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindOrCreateByExternalID resolves an external identity to its internal
// user row, creating the row with an empty username on first sight. When
// two first-time requests race, the unique index on external_id rejects
// the loser's insert and the read path is retried once to return the
// winner's row.
func (r *UserRepo) FindOrCreateByExternalID(externalID, email string) (*models.User, error) {
	user, err := r.FindByExternalID(externalID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	created := models.User{
		ExternalID: externalID,
		Username:   "",
		Email:      email,
	}
	err = r.db.Create(&created).Error
	if err == nil {
		return &created, nil
	}
	if errs.IsDuplicateKey(err) {
		return r.FindByExternalID(externalID)
	}
	return nil, err
}

// Add inserts a new user into the database
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Create(user).Error
}

// Update overwrites an existing user row in full.
func (r *UserRepo) Update(user *models.User) error {
	return r.db.Save(user).Error
}
