package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/abdoachhoubi/billsplitter/internal/models"
	"github.com/abdoachhoubi/billsplitter/internal/storage"
)

type memoryUsers struct {
	byEmail map[string]*models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byEmail: make(map[string]*models.User)}
}

func (m *memoryUsers) CreateUser(_ context.Context, user *models.User) error {
	m.byEmail[user.Email] = user
	return nil
}

func (m *memoryUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user %s: %w", email, storage.ErrNotFound)
}

func (m *memoryUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, storage.ErrNotFound)
}

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	user := models.NewUser("alice@example.com", "Alice", "Doe", "")

	token, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Subject != user.ID {
		t.Errorf("UserID/Subject = %q/%q, want %q", claims.UserID, claims.Subject, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("Email = %q, want %q", claims.Email, user.Email)
	}
	if claims.Issuer != Issuer {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, Issuer)
	}
}

func TestJWTManager_Rejects(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	user := models.NewUser("alice@example.com", "Alice", "Doe", "")

	otherKey, _ := NewJWTManager("other-secret", time.Hour).Generate(user)
	expired, _ := NewJWTManager("test-secret", -time.Minute).Generate(user)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	foreignIssuer, _ := foreign.SignedString([]byte("test-secret"))

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong key", otherKey},
		{"expired", expired},
		{"wrong issuer", foreignIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.Validate(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestPasswordAuthenticator_Register(t *testing.T) {
	ctx := context.Background()
	users := newMemoryUsers()
	authn := NewPasswordAuthenticator(users).WithCost(bcrypt.MinCost)

	user, err := authn.Register(ctx, Profile{
		Email:     "  Alice@Example.com ",
		FirstName: "Alice",
		LastName:  "Doe",
	}, "correct horse")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("Email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "" || user.PasswordHash == "correct horse" {
		t.Errorf("Password not hashed: %q", user.PasswordHash)
	}

	t.Run("duplicate email", func(t *testing.T) {
		_, err := authn.Register(ctx, Profile{Email: "alice@example.com", FirstName: "A", LastName: "B"}, "password123")
		if !errors.Is(err, ErrEmailExists) {
			t.Errorf("Expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := authn.Register(ctx, Profile{Email: "bob@example.com", FirstName: "Bob", LastName: "B"}, "short")
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("Expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("invalid profile lists every problem", func(t *testing.T) {
		_, err := authn.Register(ctx, Profile{Email: "not-an-email"}, "password123")
		var profileErr *ProfileError
		if !errors.As(err, &profileErr) {
			t.Fatalf("Expected *ProfileError, got %v", err)
		}
		if len(profileErr.Problems) != 3 {
			t.Errorf("Expected 3 problems, got %v", profileErr.Problems)
		}
		if !strings.Contains(err.Error(), "invalid profile") {
			t.Errorf("Unexpected message: %q", err.Error())
		}
	})
}

func TestPasswordAuthenticator_Authenticate(t *testing.T) {
	ctx := context.Background()
	authn := NewPasswordAuthenticator(newMemoryUsers()).WithCost(bcrypt.MinCost)

	registered, err := authn.Register(ctx, Profile{Email: "carol@example.com", FirstName: "Carol", LastName: "C"}, "s3cret-pass")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := authn.Authenticate(ctx, "Carol@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("Authenticated wrong user: %s", user.ID)
	}

	if _, err := authn.Authenticate(ctx, "carol@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := authn.Authenticate(ctx, "nobody@example.com", "s3cret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
