package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/eventt-hub/event-manager/internal/errdef"
	"github.com/eventt-hub/event-manager/pkg/model"
	"golang.org/x/crypto/scrypt"
)

type userRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindById(ctx context.Context, id uint) (*model.User, error)
	Save(ctx context.Context, user *model.User) error
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(userRepository userRepository) *service {
	return &service{userRepository}
}

type service struct {
	userRepository userRepository
}

func (s service) Register(ctx context.Context, name, email, password, photoURL string) (*model.User, error) {
	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:          strings.TrimSpace(name),
		Email:         strings.ToLower(email),
		Password:      hashedPassword,
		LastLoginTime: time.Now(),
		PhotoURL:      photoURL,
	}

	err = s.userRepository.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// SignIn verifies the supplied credentials and records the login time. A
// missing user and a wrong password are indistinguishable to the caller.
func (s service) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepository.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errdef.IsNotFound(err) {
			return nil, errdef.NewBadRequest("invalid email or password")
		}
		return nil, err
	}

	match, err := comparePasswords(user.Password, password)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, errdef.NewBadRequest("invalid email or password")
	}

	user.LastLoginTime = time.Now()
	err = s.userRepository.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s service) FindById(ctx context.Context, id uint) (*model.User, error) {
	return s.userRepository.FindById(ctx, id)
}

// UpdateUser carries the fields of an update request. Nil fields are left
// untouched on the user.
type UpdateUser struct {
	Name     *string
	Email    *string
	Password *string
	PhotoURL *string
}

func (s service) Update(ctx context.Context, id uint, update UpdateUser) (*model.User, error) {
	user, err := s.userRepository.FindById(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Email != nil {
		user.Email = strings.ToLower(*update.Email)
	}
	if update.Password != nil {
		hashedPassword, err := hashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}
	if update.PhotoURL != nil {
		user.PhotoURL = *update.PhotoURL
	}

	err = s.userRepository.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func hashPassword(password string) (string, error) {
	// example for making salt - https://play.golang.org/p/_Aw6WeWC42I
	salt := make([]byte, 32)
	_, err := rand.Read(salt)
	if err != nil {
		return "", err
	}

	// using recommended cost parameters from - https://godoc.org/golang.org/x/crypto/scrypt
	hash, err := scrypt.Key([]byte(password), salt, 32768, 8, 1, 32)
	if err != nil {
		return "", err
	}

	hashedPassword := fmt.Sprintf("%s.%s", hex.EncodeToString(hash), hex.EncodeToString(salt))

	return hashedPassword, nil
}

func comparePasswords(storedPassword string, suppliedPassword string) (bool, error) {
	passwordAndSalt := strings.Split(storedPassword, ".")
	if len(passwordAndSalt) != 2 {
		return false, fmt.Errorf("wrong password/salt format: %s", storedPassword)
	}

	salt, err := hex.DecodeString(passwordAndSalt[1])
	if err != nil {
		return false, fmt.Errorf("unable to verify user password")
	}

	hash, err := scrypt.Key([]byte(suppliedPassword), salt, 32768, 8, 1, 32)
	if err != nil {
		return false, err
	}

	return hex.EncodeToString(hash) == passwordAndSalt[0], nil
}
