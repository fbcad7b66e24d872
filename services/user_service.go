package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistroboss/models"
)

type UserService struct {
	Users UserRepo
}

func NewUserService(users UserRepo) *UserService {
	return &UserService{Users: users}
}

// Register creates a user on first sign-in. A second user sharing an
// existing uid or email is rejected with ErrUserExists.
func (s *UserService) Register(ctx context.Context, uid, name, email string) (*models.User, error) {
	exists, err := s.Users.ExistsByUIDOrEmail(ctx, uid, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	now := time.Now()
	user := &models.User{
		ID:        primitive.NewObjectID(),
		UID:       uid,
		Name:      name,
		Email:     email,
		Role:      models.RoleUser,
		LastLogin: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login looks the user up by subject id and stamps last_login.
func (s *UserService) Login(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.Users.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	user.LastLogin = time.Now()
	if err := s.Users.SetLastLogin(ctx, user.ID, user.LastLogin); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) All(ctx context.Context) ([]models.User, error) {
	return s.Users.All(ctx)
}

// MakeAdmin promotes the user; the promoted role is read back from the
// store so the change is visible to admin-gated routes immediately.
func (s *UserService) MakeAdmin(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.Users.SetRole(ctx, id, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	user, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return s.Users.Delete(ctx, id)
}
