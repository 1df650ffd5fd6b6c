package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"ledgerly-api/internal/auth"
	"ledgerly-api/pkg/authgate"
	pkgLog "ledgerly-api/pkg/log"
	"ledgerly-api/pkg/token"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fakeUsecase struct {
	registerErr error
	loginOut    auth.LoginOutput
	loginErr    error
	logoutErr   error
}

func (f *fakeUsecase) Register(ctx context.Context, ip auth.RegisterInput) error {
	return f.registerErr
}

func (f *fakeUsecase) RegisterAdmin(ctx context.Context, ip auth.RegisterInput) error {
	return f.registerErr
}

func (f *fakeUsecase) Login(ctx context.Context, ip auth.LoginInput) (auth.LoginOutput, error) {
	return f.loginOut, f.loginErr
}

func (f *fakeUsecase) Logout(ctx context.Context, refreshToken string) error {
	return f.logoutErr
}

type envelope struct {
	Data  map[string]any `json:"data"`
	Error string         `json:"error"`
}

func newTestRouter(t *testing.T, uc auth.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec, err := token.NewCodec(testSecret)
	if err != nil {
		t.Fatalf("token.NewCodec() error = %v", err)
	}

	gate, err := authgate.New(authgate.Config{Codec: codec, Cookie: authgate.CookieConfig{Secure: true}})
	if err != nil {
		t.Fatalf("authgate.New() error = %v", err)
	}

	engine := gin.New()
	New(pkgLog.NewNopLogger(), uc, gate).MapRoutes(engine.Group(""))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal response %q: %v", rec.Body.String(), err)
	}
	return rec, env
}

func TestHandler_Login(t *testing.T) {
	t.Run("success sets both cookies and returns both tokens", func(t *testing.T) {
		engine := newTestRouter(t, &fakeUsecase{
			loginOut: auth.LoginOutput{AccessToken: "acc-token", RefreshToken: "ref-token"},
		})

		rec, env := doJSON(t, engine, http.MethodPost, "/login",
			`{"email":"alice@example.com","password":"secret"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
		}
		if env.Data["accessToken"] != "acc-token" || env.Data["refreshToken"] != "ref-token" {
			t.Errorf("data = %v, want both tokens", env.Data)
		}

		cookies := map[string]*http.Cookie{}
		for _, ck := range rec.Result().Cookies() {
			cookies[ck.Name] = ck
		}
		access := cookies[authgate.AccessTokenCookie]
		refresh := cookies[authgate.RefreshTokenCookie]
		if access == nil || refresh == nil {
			t.Fatalf("cookies = %v, want accessToken and refreshToken", rec.Result().Cookies())
		}
		if access.Value != "acc-token" || refresh.Value != "ref-token" {
			t.Errorf("cookie values = %q/%q, want acc-token/ref-token", access.Value, refresh.Value)
		}
		if !access.HttpOnly || !refresh.HttpOnly {
			t.Error("session cookies must be httpOnly")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		engine := newTestRouter(t, &fakeUsecase{loginErr: auth.ErrNotRegistered})

		rec, env := doJSON(t, engine, http.MethodPost, "/login",
			`{"email":"ghost@example.com","password":"secret"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if env.Error != "please you need to register" {
			t.Errorf("error = %q, want the registration prompt", env.Error)
		}
		if len(rec.Result().Cookies()) != 0 {
			t.Errorf("cookies = %v, want none on failed login", rec.Result().Cookies())
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		engine := newTestRouter(t, &fakeUsecase{loginErr: auth.ErrWrongCredentials})

		rec, env := doJSON(t, engine, http.MethodPost, "/login",
			`{"email":"alice@example.com","password":"nope"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if env.Error != "wrong credentials" {
			t.Errorf("error = %q, want wrong credentials", env.Error)
		}
	})
}

func TestHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		engine := newTestRouter(t, &fakeUsecase{})

		rec, env := doJSON(t, engine, http.MethodPost, "/register",
			`{"username":"alice","email":"alice@example.com","password":"secret"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
		}
		if env.Data["message"] != "User registred successfully." {
			t.Errorf("message = %v, want the registration confirmation", env.Data["message"])
		}
	})

	t.Run("missing attributes", func(t *testing.T) {
		engine := newTestRouter(t, &fakeUsecase{})

		rec, env := doJSON(t, engine, http.MethodPost, "/register",
			`{"username":"alice","email":"alice@example.com"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if env.Error != "All attributes are required" {
			t.Errorf("error = %q, want All attributes are required", env.Error)
		}
		if env.Data != nil {
			t.Errorf("data = %v, want empty on error", env.Data)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		engine := newTestRouter(t, &fakeUsecase{})

		rec, env := doJSON(t, engine, http.MethodPost, "/register",
			`{"username":"alice","email":"not-an-email","password":"secret"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if env.Error != "Invalid email format" {
			t.Errorf("error = %q, want Invalid email format", env.Error)
		}
	})

	t.Run("duplicate account", func(t *testing.T) {
		engine := newTestRouter(t, &fakeUsecase{registerErr: auth.ErrAlreadyRegistered})

		rec, env := doJSON(t, engine, http.MethodPost, "/register",
			`{"username":"alice","email":"alice@example.com","password":"secret"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if env.Error != "Email/Username already registered" {
			t.Errorf("error = %q, want Email/Username already registered", env.Error)
		}
	})

	t.Run("admin variant message", func(t *testing.T) {
		engine := newTestRouter(t, &fakeUsecase{})

		rec, env := doJSON(t, engine, http.MethodPost, "/admin",
			`{"username":"root","email":"root@example.com","password":"secret"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if env.Data["message"] != "Admin added succesfully" {
			t.Errorf("message = %v, want the admin confirmation", env.Data["message"])
		}
	})
}

func TestHandler_Logout(t *testing.T) {
	t.Run("missing refresh cookie", func(t *testing.T) {
		engine := newTestRouter(t, &fakeUsecase{})

		req := httptest.NewRequest(http.MethodGet, "/logout", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		var env envelope
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if env.Error != "Refresh token not found" {
			t.Errorf("error = %q, want Refresh token not found", env.Error)
		}
	})

	t.Run("clears the session cookies", func(t *testing.T) {
		engine := newTestRouter(t, &fakeUsecase{})

		req := httptest.NewRequest(http.MethodGet, "/logout", nil)
		req.AddCookie(&http.Cookie{Name: authgate.RefreshTokenCookie, Value: "ref-token"})
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
		}
		for _, ck := range rec.Result().Cookies() {
			if ck.MaxAge >= 0 {
				t.Errorf("cookie %s MaxAge = %d, want expired", ck.Name, ck.MaxAge)
			}
		}
	})
}
