package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"Railcalc/internal/httpx"
	repo "Railcalc/internal/repo"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const claimsKey contextKey = "claims"

const (
	CookieName = "session_token"
	TokenTTL   = 30 * 24 * time.Hour
)

type Authenv struct {
	JWTkey []byte
	Repo   repo.Repository
	Log    *slog.Logger
	// Secure marks the session cookie https-only.
	Secure bool
}

type Claims struct {
	UserID int    `json:"user_id"`
	Login  string `json:"login"`
	jwt.RegisteredClaims
}

type Loginrequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type Registerrequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func (env *Authenv) IssueToken(userID int, login string, now time.Time) (string, error) {
	claims := Claims{
		UserID: userID,
		Login:  login,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(env.JWTkey)
}

func (env *Authenv) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return env.JWTkey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == 0 || claims.Login == "" {
		return nil, errors.New("token without user")
	}
	return claims, nil
}

// tokenFrom reads the session cookie, falling back to a bearer header for
// scripted clients.
func tokenFrom(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil {
		return cookie.Value
	}
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func (env *Authenv) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := tokenFrom(r)
		if raw == "" {
			httpx.WriteError(w, httpx.NewUnauthorizedError("login required"))
			return
		}
		claims, err := env.ParseToken(raw)
		if err != nil {
			env.Log.Debug("token rejected", "err", err)
			httpx.WriteError(w, httpx.NewUnauthorizedError("invalid session"))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*Claims)
	return c, ok
}

func (env *Authenv) addCookie(w http.ResponseWriter, userID int, login string) error {
	now := time.Now()
	tokenString, err := env.IssueToken(userID, login, now)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tokenString,
		Expires:  now.Add(TokenTTL),
		Path:     "/",
		HttpOnly: true,
		Secure:   env.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (env *Authenv) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req Registerrequest
	if apiErr := httpx.DecodeJSON(w, r, &req); apiErr != nil {
		httpx.WriteError(w, apiErr)
		return
	}
	req.Login = strings.TrimSpace(req.Login)
	req.Email = strings.TrimSpace(req.Email)
	if req.Login == "" || req.Email == "" || req.Password == "" {
		httpx.WriteError(w, httpx.NewBadRequestError("login, email and password required", nil))
		return
	}
	if len(req.Password) < 6 {
		httpx.WriteError(w, httpx.NewBadRequestError("password too short", nil))
		return
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		httpx.WriteError(w, httpx.NewInternalError("error hashing password", err))
		return
	}
	id, err := env.Repo.CreateUser(r.Context(), req.Login, req.Email, hashedPassword)
	if errors.Is(err, repo.ErrUserExists) {
		httpx.WriteError(w, httpx.NewConflictError("user already exists"))
		return
	}
	if err != nil {
		env.Log.Error("create user", "login", req.Login, "err", err)
		httpx.WriteError(w, httpx.NewInternalError("database error", nil))
		return
	}

	if err := env.addCookie(w, id, req.Login); err != nil {
		httpx.WriteError(w, httpx.NewInternalError("session error", err))
		return
	}
	httpx.Write(w, r, http.StatusCreated, map[string]interface{}{"id": id, "login": req.Login})
}

func (env *Authenv) AuthHandler(w http.ResponseWriter, r *http.Request) {
	var req Loginrequest
	if apiErr := httpx.DecodeJSON(w, r, &req); apiErr != nil {
		httpx.WriteError(w, apiErr)
		return
	}
	req.Login = strings.TrimSpace(req.Login)
	if req.Login == "" || req.Password == "" {
		httpx.WriteError(w, httpx.NewBadRequestError("login and password required", nil))
		return
	}

	id, storedHash, err := env.Repo.GetByLogin(r.Context(), req.Login)
	if err != nil {
		env.Log.Error("get user", "login", req.Login, "err", err)
		httpx.WriteError(w, httpx.NewInternalError("database error", nil))
		return
	}
	if id == 0 || bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password)) != nil {
		httpx.WriteError(w, httpx.NewUnauthorizedError("invalid login or password"))
		return
	}
	if err := env.addCookie(w, id, req.Login); err != nil {
		httpx.WriteError(w, httpx.NewInternalError("session error", err))
		return
	}
	httpx.Write(w, r, http.StatusOK, map[string]interface{}{"id": id, "login": req.Login})
}
