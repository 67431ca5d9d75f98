package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/drafza/pos-api/internal/application/auth"
	"github.com/drafza/pos-api/internal/application/dto"
	"github.com/drafza/pos-api/internal/domain/entity"
	"github.com/drafza/pos-api/internal/domain/repository"
	apphttp "github.com/drafza/pos-api/internal/interfaces/http"
)

type stubUserRepo struct{ user *entity.User }

var _ repository.UserRepository = (*stubUserRepo)(nil)

func (r *stubUserRepo) Create(*entity.User) error { return nil }
func (r *stubUserRepo) GetByID(string) (*entity.User, error) {
	return r.user, nil
}
func (r *stubUserRepo) FindByUsername(username string) (*entity.User, error) {
	if r.user != nil && r.user.Username == username {
		return r.user, nil
	}
	return nil, nil
}
func (r *stubUserRepo) DeleteAll() error { return nil }

func buildLoginApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Akmal123"), bcrypt.MinCost)
	require.NoError(t, err)

	uc := auth.NewAuthUseCase(&stubUserRepo{user: &entity.User{
		ID:           testUserID,
		Username:     testUsername,
		PasswordHash: string(hash),
		DisplayName:  "PKNS Bazaar",
		Location:     testLocation,
		Role:         entity.RoleAdmin,
	}}, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})

	app := fiber.New()
	app.Post("/api/auth/login", apphttp.NewAuthHandler(uc).Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLoginHandler_CredencialesCorrectas(t *testing.T) {
	app := buildLoginApp(t)
	resp := postLogin(t, app, dto.LoginRequest{Username: testUsername, Password: "Akmal123"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, testUsername, out.User.Username)
	assert.Equal(t, testLocation, out.User.Location)
}

func TestLoginHandler_PasswordIncorrecto(t *testing.T) {
	app := buildLoginApp(t)
	resp := postLogin(t, app, dto.LoginRequest{Username: testUsername, Password: "incorrecta"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginHandler_CamposFaltantes(t *testing.T) {
	app := buildLoginApp(t)
	resp := postLogin(t, app, dto.LoginRequest{Username: testUsername})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
