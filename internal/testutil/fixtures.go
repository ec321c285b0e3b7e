package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/inotebook/server/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// NoteBuilder creates test notes
type NoteBuilder struct {
	title       string
	description string
	tag         string
	userID      uuid.UUID
}

// NewNoteBuilder creates a NoteBuilder owned by the given user
func NewNoteBuilder(userID uuid.UUID) *NoteBuilder {
	return &NoteBuilder{
		title:       "Test note",
		description: "A note used in tests",
		tag:         "general",
		userID:      userID,
	}
}

// WithTitle sets the title
func (b *NoteBuilder) WithTitle(title string) *NoteBuilder {
	b.title = title
	return b
}

// WithDescription sets the description
func (b *NoteBuilder) WithDescription(description string) *NoteBuilder {
	b.description = description
	return b
}

// WithTag sets the tag
func (b *NoteBuilder) WithTag(tag string) *NoteBuilder {
	b.tag = tag
	return b
}

// Build creates the note in the database
func (b *NoteBuilder) Build(t *testing.T, db *gorm.DB) *domain.Note {
	t.Helper()

	note := &domain.Note{
		ID:          uuid.New(),
		Title:       b.title,
		Description: b.description,
		Tag:         b.tag,
		UserID:      b.userID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(note).Error; err != nil {
		t.Fatalf("failed to create note: %v", err)
	}

	return note
}

// PostJSON sends a JSON POST with the given client
func PostJSON(t *testing.T, client *http.Client, url string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

// DoJSON sends a JSON request with an arbitrary method
func DoJSON(t *testing.T, client *http.Client, method, url string, body interface{}) *http.Response {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, bytes.NewBuffer(payload))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

// Login authenticates the client against the test server, storing the session
// cookie in the client's jar
func Login(t *testing.T, ts *TestServer, client *http.Client, email, password string) {
	t.Helper()

	resp := PostJSON(t, client, ts.APIURL("/auth/login"), map[string]string{
		"email":    email,
		"password": password,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}
}
