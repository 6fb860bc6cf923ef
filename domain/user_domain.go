package domain

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessGetUsers        = "success get users"
	MessageSuccessGetUser         = "success get user"
	MessageSuccessLogin           = "login successful"
	MessageSuccessLogout          = "logout successful"
	MessageSuccessSetPassword     = "password changed successfully"
	MessageSuccessResetPassword   = "password reset email sent"
	MessageSuccessConfirmReset    = "password reset successfully"
	MessageSuccessSubscribe       = "subscribed successfully"
	MessageSuccessUnsubscribe     = "unsubscribed successfully"
	MessageSuccessGetSubscription = "success get subscriptions"

	MessageFailedRegister        = "failed to register user"
	MessageFailedGetUsers        = "failed to get users"
	MessageFailedGetUser         = "failed to get user"
	MessageFailedLogin           = "failed to login"
	MessageFailedLogout          = "failed to logout"
	MessageFailedSetPassword     = "failed to change password"
	MessageFailedResetPassword   = "failed to reset password"
	MessageFailedSubscribe       = "failed to subscribe"
	MessageFailedUnsubscribe     = "failed to unsubscribe"
	MessageFailedGetSubscription = "failed to get subscriptions"

	ErrUserNotFound           = NotFound("user not found")
	ErrSubscriptionNotFound   = NotFound("subscription not found")
	ErrAlreadySubscribed      = Conflict("you are already subscribed to this author")
	ErrSelfSubscription       = Conflict("you cannot subscribe to yourself")
	ErrInvalidCredentials     = NewFieldError(NonFieldErrors, "unable to log in with provided credentials")
	ErrInvalidCurrentPassword = NewFieldError("current_password", "invalid password")
	ErrEmailTaken             = NewFieldError("email", "user with this email already exists")
	ErrUsernameTaken          = NewFieldError("username", "user with this username already exists")
	ErrInvalidResetToken      = NewFieldError("token", "invalid or expired token")
)

type (
	RegisterRequest struct {
		Email     string `json:"email" validate:"required,email,max=254"`
		Username  string `json:"username" validate:"required,max=150,username"`
		FirstName string `json:"first_name" validate:"required,max=150"`
		LastName  string `json:"last_name" validate:"required,max=150"`
		Password  string `json:"password" validate:"required,min=8,max=128"`
	}

	// RegisteredUser is the registration response; it never carries is_subscribed.
	RegisteredUser struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	User struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		Username     string `json:"username"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		IsSubscribed bool   `json:"is_subscribed"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		AuthToken string `json:"auth_token"`
	}

	SetPasswordRequest struct {
		NewPassword     string `json:"new_password" validate:"required,min=8,max=128"`
		CurrentPassword string `json:"current_password" validate:"required"`
	}

	ResetPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordConfirmRequest struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8,max=128"`
	}

	// UserWithRecipes is an author as listed in the requester's subscriptions.
	UserWithRecipes struct {
		User
		Recipes      []RecipeMinified `json:"recipes"`
		RecipesCount int64            `json:"recipes_count"`
	}
)
