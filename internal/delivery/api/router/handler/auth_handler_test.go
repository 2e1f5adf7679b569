package handler

import (
	"net/http"
	"testing"

	domainerrors "estatex/internal/domain/errors"
	mockUC "estatex/internal/mocks/usecase"
	"estatex/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Signup(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{UserUC: userUC})
	broker := testBroker()

	body := `{"fullName":"Asha Patil","email":"asha@example.com","phone":"9876543210","reraNumber":"A51800012345",` +
		`"state":"Maharashtra","city":"Mumbai","password":"secret1","confirmPassword":"secret1"}`
	c, rec := newRequest(http.MethodPost, "/api/auth/signup", body, nil)

	userUC.EXPECT().Signup(mock.Anything, mock.MatchedBy(func(in *usecase.SignupInput) bool {
		return in.Email == "asha@example.com" && in.City == "Mumbai"
	})).Return(&usecase.AuthOutput{Token: "jwt", User: broker}, nil)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decode(t, rec).Success)
	assert.Contains(t, rec.Body.String(), `"token":"jwt"`)
}

func TestAuthHandler_Signup_ValidationFailure(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{UserUC: userUC})

	c, rec := newRequest(http.MethodPost, "/api/auth/signup", `{"email":"not-an-email","password":"123"}`, nil)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, body.Message, "fullName is required")
	assert.Contains(t, body.Message, "email must be a valid email")
}

func TestAuthHandler_Signup_MalformedBody(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{UserUC: mockUC.NewMockUserUsecase(t)})
	c, rec := newRequest(http.MethodPost, "/api/auth/signup", `{"email":`, nil)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{UserUC: userUC})
	c, rec := newRequest(http.MethodPost, "/api/auth/login", `{"email":"asha@example.com","password":"wrong"}`, nil)

	userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), decode(t, rec).Error.Code)
}

func TestAuthHandler_Profile(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{UserUC: mockUC.NewMockUserUsecase(t)})
	broker := testBroker()
	c, rec := newRequest(http.MethodGet, "/api/auth/profile", "", broker)

	require.NoError(t, h.Profile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), broker.ID.String())
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Profile_NoUser(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{UserUC: mockUC.NewMockUserUsecase(t)})
	c, rec := newRequest(http.MethodGet, "/api/auth/profile", "", nil)

	require.NoError(t, h.Profile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{UserUC: userUC})
	broker := testBroker()
	c, rec := newRequest(http.MethodPut, "/api/auth/profile", `{"city":"Pune"}`, broker)

	updated := *broker
	updated.City = "Pune"
	userUC.EXPECT().UpdateProfile(mock.Anything, broker.ID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
		return in.City != nil && *in.City == "Pune" && in.FullName == nil
	})).Return(&updated, nil)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"city":"Pune"`)
}
