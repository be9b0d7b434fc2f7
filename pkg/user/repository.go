package user

import (
	"context"
	"errors"

	"github.com/eventt-hub/event-manager/internal/errdef"
	"github.com/eventt-hub/event-manager/pkg/model"
	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewDuplicated("a user with that name or email already exists")
	}
	return err
}

func (r repository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u *model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("user not found by email: %s", email)
	}
	return u, err
}

func (r repository) FindById(ctx context.Context, id uint) (*model.User, error) {
	var u *model.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("user not found by id: %d", id)
	}
	return u, err
}

func (r repository) Save(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Save(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewDuplicated("a user with that name or email already exists")
	}
	return err
}
