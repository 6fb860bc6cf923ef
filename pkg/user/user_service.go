package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/utils"
	"foodgram/internal/utils/mailing"
	"foodgram/pkg/jwt"
	"foodgram/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resetPasswordTTL = time.Hour

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisteredUser, error)
		GetUsers(ctx context.Context, page domain.Pagination, requesterID string) ([]domain.User, int64, error)
		GetUserByID(ctx context.Context, id string, requesterID string) (domain.User, error)
		Me(ctx context.Context, userID string) (domain.User, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Logout(ctx context.Context, token string) error
		SetPassword(ctx context.Context, req domain.SetPasswordRequest, userID string) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		ResetPasswordConfirm(ctx context.Context, req domain.ResetPasswordConfirmRequest) error
	}

	// SubscriptionReader reports which of authorIDs the user follows.
	SubscriptionReader interface {
		GetSubscribedAuthorIDs(ctx context.Context, userID string, authorIDs []string) (map[string]bool, error)
	}

	userService struct {
		userRepository UserRepository
		subscriptions  SubscriptionReader
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
		appURL         string
	}
)

func NewUserService(
	userRepository UserRepository,
	subscriptions SubscriptionReader,
	jwtService jwt.JWTService,
	mailer mailing.Mailer,
	appURL string,
) UserService {
	return &userService{
		userRepository: userRepository,
		subscriptions:  subscriptions,
		jwtService:     jwtService,
		mailer:         mailer,
		appURL:         strings.TrimRight(appURL, "/"),
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisteredUser, error) {
	fieldErrs := domain.FieldErrors{}

	emailTaken, err := s.userRepository.IsEmailTaken(ctx, req.Email)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	if emailTaken {
		fieldErrs.Add("email", domain.ErrEmailTaken["email"][0])
	}

	usernameTaken, err := s.userRepository.IsUsernameTaken(ctx, req.Username)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	if usernameTaken {
		fieldErrs.Add("username", domain.ErrUsernameTaken["username"][0])
	}

	if len(fieldErrs) > 0 {
		return domain.RegisteredUser{}, fieldErrs
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	user := &entities.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hash,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RegisteredUser{}, domain.NewFieldError(domain.NonFieldErrors, "user with this email or username already exists")
		}
		return domain.RegisteredUser{}, err
	}

	logger.Log(ctx).Info(ctx, "user registered", zap.String("user_id", user.ID.String()))

	return domain.RegisteredUser{
		ID:        user.ID.String(),
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (s *userService) GetUsers(ctx context.Context, page domain.Pagination, requesterID string) ([]domain.User, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, page)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID.String())
	}

	subscribed, err := s.subscribedSet(ctx, requesterID, ids)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.User, 0, len(users))
	for _, user := range users {
		res = append(res, ToUserResponse(user, subscribed[user.ID.String()]))
	}
	return res, count, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string, requesterID string) (domain.User, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	subscribed, err := s.subscribedSet(ctx, requesterID, []string{id})
	if err != nil {
		return domain.User{}, err
	}

	return ToUserResponse(user, subscribed[user.ID.String()]), nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	return ToUserResponse(user, false), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID.String())
	if err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{AuthToken: token}, nil
}

func (s *userService) Logout(ctx context.Context, token string) error {
	return s.jwtService.RevokeToken(ctx, token)
}

func (s *userService) SetPassword(ctx context.Context, req domain.SetPasswordRequest, userID string) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPassword(user.Password, req.CurrentPassword) {
		return domain.ErrInvalidCurrentPassword
	}

	return s.updatePassword(ctx, userID, req.NewPassword)
}

// ResetPassword mails a reset link when the email belongs to a user. Unknown
// emails are accepted silently.
func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(map[string]any{
		"user_id": user.ID.String(),
		"stamp":   utils.PasswordStamp(user.Password),
	}, resetPasswordTTL)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/password/reset/confirm?token=%s", s.appURL, token)
	body := fmt.Sprintf(
		"<p>Hello, %s!</p><p>Follow the link to set a new password: <a href=\"%s\">%s</a></p><p>The link is valid for one hour.</p>",
		user.Username, link, link,
	)

	return s.mailer.SendMail(ctx, user.Email, "Foodgram password reset", body)
}

func (s *userService) ResetPasswordConfirm(ctx context.Context, req domain.ResetPasswordConfirmRequest) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return domain.ErrInvalidResetToken
	}

	userID, _ := claims["user_id"].(string)
	stamp, _ := claims["stamp"].(string)
	if userID == "" || stamp == "" {
		return domain.ErrInvalidResetToken
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidResetToken
		}
		return err
	}

	// the token is single use: any password change invalidates it
	if utils.PasswordStamp(user.Password) != stamp {
		return domain.ErrInvalidResetToken
	}

	return s.updatePassword(ctx, userID, req.NewPassword)
}

func (s *userService) getUser(ctx context.Context, id string) (*entities.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrUserNotFound
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) updatePassword(ctx context.Context, userID, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	if err := s.userRepository.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *userService) subscribedSet(ctx context.Context, requesterID string, authorIDs []string) (map[string]bool, error) {
	if requesterID == "" || len(authorIDs) == 0 {
		return map[string]bool{}, nil
	}
	return s.subscriptions.GetSubscribedAuthorIDs(ctx, requesterID, authorIDs)
}

func ToUserResponse(user *entities.User, isSubscribed bool) domain.User {
	return domain.User{
		ID:           user.ID.String(),
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: isSubscribed,
	}
}
