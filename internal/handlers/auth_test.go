package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/partshub/apiserver/internal/services"
	"github.com/partshub/apiserver/internal/store"
	"github.com/partshub/apiserver/types"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[string]types.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[string]types.User)}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[username]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Username]; ok {
		return types.User{}, store.ErrConflict
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	f.users[user.Username] = user
	return user, nil
}

const testSecret = "test-secret"

func newAuthServer(t *testing.T) (*httptest.Server, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	router := chi.NewRouter()
	router.Route("/auth", func(r chi.Router) {
		AuthRouter(r, services.NewUserService(repo), testSecret, DefaultTokenTTL)
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, repo
}

func register(t *testing.T, baseURL, username, password string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(RegisterRequest{Username: username, Password: password})
	resp, err := http.Post(baseURL+"/auth/", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("register request: %v", err)
	}
	return resp
}

func login(t *testing.T, baseURL, username, password string) *http.Response {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	resp, err := http.Post(baseURL+"/auth/token", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	srv, _ := newAuthServer(t)

	resp := register(t, srv.URL, "alice", "hunter2")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, want 201", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(bytes.TrimSpace(body)) != 0 {
		t.Fatalf("register body = %q, want empty", body)
	}

	resp = login(t, srv.URL, "alice", "hunter2")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}
	var token TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		t.Fatalf("decode token response: %v", err)
	}
	resp.Body.Close()

	if token.TokenType != "bearer" {
		t.Fatalf("token_type = %q, want bearer", token.TokenType)
	}

	subject, userID, err := VerifyToken(token.AccessToken, []byte(testSecret))
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("subject = %q, want alice", subject)
	}
	if userID != 1 {
		t.Fatalf("user id = %d, want 1", userID)
	}

	// The default TTL is twenty minutes; check exp landed near now+20m.
	claims := accessClaims{}
	if _, err := jwt.ParseWithClaims(token.AccessToken, &claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}); err != nil {
		t.Fatalf("parse claims: %v", err)
	}
	wantExp := time.Now().Add(DefaultTokenTTL)
	if diff := claims.ExpiresAt.Time.Sub(wantExp); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("exp = %v, want within a minute of %v", claims.ExpiresAt.Time, wantExp)
	}
}

func TestLoginAntiEnumeration(t *testing.T) {
	srv, _ := newAuthServer(t)

	resp := register(t, srv.URL, "alice", "hunter2")
	resp.Body.Close()

	missing := login(t, srv.URL, "nobody", "hunter2")
	missingBody, _ := io.ReadAll(missing.Body)
	missing.Body.Close()

	wrong := login(t, srv.URL, "alice", "wrong")
	wrongBody, _ := io.ReadAll(wrong.Body)
	wrong.Body.Close()

	if missing.StatusCode != http.StatusUnauthorized || wrong.StatusCode != http.StatusUnauthorized {
		t.Fatalf("statuses = %d, %d, want both 401", missing.StatusCode, wrong.StatusCode)
	}
	if !bytes.Equal(missingBody, wrongBody) {
		t.Fatalf("unknown-user body %q differs from wrong-password body %q", missingBody, wrongBody)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	srv, _ := newAuthServer(t)

	first := register(t, srv.URL, "alice", "hunter2")
	first.Body.Close()
	if first.StatusCode != http.StatusCreated {
		t.Fatalf("first register status = %d, want 201", first.StatusCode)
	}

	second := register(t, srv.URL, "alice", "other")
	second.Body.Close()
	if second.StatusCode != http.StatusConflict {
		t.Fatalf("second register status = %d, want 409", second.StatusCode)
	}
}

func TestMeRequiresToken(t *testing.T) {
	srv, _ := newAuthServer(t)

	resp, err := http.Get(srv.URL + "/auth/me")
	if err != nil {
		t.Fatalf("me request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me without token status = %d, want 401", resp.StatusCode)
	}

	register(t, srv.URL, "alice", "hunter2").Body.Close()
	loginResp := login(t, srv.URL, "alice", "hunter2")
	var token TokenResponse
	_ = json.NewDecoder(loginResp.Body).Decode(&token)
	loginResp.Body.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("me request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me with token status = %d, want 200", resp.StatusCode)
	}
	var me types.User
	if err := json.NewDecoder(resp.Body).Decode(&me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if me.Username != "alice" {
		t.Fatalf("me username = %q, want alice", me.Username)
	}
}

func TestVerifyTokenFailureModes(t *testing.T) {
	secret := []byte(testSecret)

	expired, err := IssueToken("alice", 1, secret, -time.Minute)
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}
	if _, _, err := VerifyToken(expired, secret); err != ErrTokenExpired {
		t.Fatalf("expired token error = %v, want %v", err, ErrTokenExpired)
	}

	valid, err := IssueToken("alice", 1, secret, time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	tampered := valid[:len(valid)-2] + flipChar(valid[len(valid)-2:])
	if _, _, err := VerifyToken(tampered, secret); err != ErrTokenSignature {
		t.Fatalf("tampered token error = %v, want %v", err, ErrTokenSignature)
	}

	if _, _, err := VerifyToken(valid, []byte("other-secret")); err != ErrTokenSignature {
		t.Fatalf("wrong-secret error = %v, want %v", err, ErrTokenSignature)
	}

	if _, _, err := VerifyToken("not-a-token", secret); err != ErrTokenMalformed {
		t.Fatalf("malformed token error = %v, want %v", err, ErrTokenMalformed)
	}
}

// flipChar swaps the given signature chars for different base64url
// chars so the token stays parseable but the signature no longer
// matches.
func flipChar(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c == 'A' {
			out[i] = 'B'
		} else {
			out[i] = 'A'
		}
	}
	return string(out)
}

func TestBcryptHashesAreSalted(t *testing.T) {
	first, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if bytes.Equal(first, second) {
		t.Fatal("two hashes of the same password should differ")
	}
	if err := bcrypt.CompareHashAndPassword(first, []byte("hunter2")); err != nil {
		t.Fatalf("first hash should verify: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword(second, []byte("hunter2")); err != nil {
		t.Fatalf("second hash should verify: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword(first, []byte("hunter3")); err == nil {
		t.Fatal("wrong password should not verify")
	}
}
