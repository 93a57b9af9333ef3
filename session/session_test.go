// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/urban-services/api"
	"github.com/danielhkuo/urban-services/models"
	"github.com/danielhkuo/urban-services/testutil"
)

func TestCurrentBeforeRestore(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	sess := New(testutil.NewKV(t), api.NewClient(fake.URL()))

	if _, err := sess.Current(); !errors.Is(err, ErrNotRestored) {
		t.Errorf("Current() before Restore error = %v, want ErrNotRestored", err)
	}
	if err := sess.Logout(); !errors.Is(err, ErrNotRestored) {
		t.Errorf("Logout() before Restore error = %v, want ErrNotRestored", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	kv := testutil.NewKV(t)
	client := api.NewClient(fake.URL())
	sess := New(kv, client)
	if err := sess.Restore(); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	if err := sess.Login(context.Background(), testutil.TestEmail, testutil.TestPassword); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	cur, err := sess.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if !cur.IsAuthenticated {
		t.Error("expected authenticated session after login")
	}
	if cur.User.Email != testutil.TestEmail {
		t.Errorf("user email = %q, want %q", cur.User.Email, testutil.TestEmail)
	}
	if cur.Token != testutil.TestToken {
		t.Errorf("token = %q, want %q", cur.Token, testutil.TestToken)
	}

	// Token and user are persisted
	if got, err := kv.Get("token"); err != nil || got != testutil.TestToken {
		t.Errorf("stored token = %q, %v", got, err)
	}
	if _, err := kv.Get("user"); err != nil {
		t.Errorf("stored user missing: %v", err)
	}

	// Subsequent API calls carry the bearer header
	if _, err := client.ListRequests(context.Background(), models.Filters{}); err != nil {
		t.Fatalf("ListRequests() error = %v", err)
	}
	last := fake.AuthHeaders[len(fake.AuthHeaders)-1]
	if last != "Bearer "+testutil.TestToken {
		t.Errorf("Authorization header = %q, want bearer token", last)
	}
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	kv := testutil.NewKV(t)
	client := api.NewClient(fake.URL())
	sess := New(kv, client)
	if err := sess.Restore(); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	err := sess.Login(context.Background(), testutil.TestEmail, "wrong-password")
	if !errors.Is(err, ErrAuthFailed) {
		t.Fatalf("Login() error = %v, want ErrAuthFailed", err)
	}

	cur, _ := sess.Current()
	if cur.IsAuthenticated {
		t.Error("session became authenticated after rejected login")
	}
	if _, err := kv.Get("token"); err == nil {
		t.Error("rejected login wrote a token to storage")
	}
	if client.Token() != "" {
		t.Error("rejected login installed a bearer credential")
	}
}

func TestRestoreFromStorage(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	kv := testutil.NewKV(t)

	// First process: login and persist
	client1 := api.NewClient(fake.URL())
	sess1 := New(kv, client1)
	if err := sess1.Restore(); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if err := sess1.Login(context.Background(), testutil.TestEmail, testutil.TestPassword); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	// Second process: restored as authenticated without hitting the server
	client2 := api.NewClient(fake.URL())
	sess2 := New(kv, client2)
	if err := sess2.Restore(); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	cur, err := sess2.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if !cur.IsAuthenticated {
		t.Error("expected restored session to be authenticated")
	}
	if cur.User != testutil.TestUser {
		t.Errorf("restored user = %+v, want %+v", cur.User, testutil.TestUser)
	}
	if client2.Token() != testutil.TestToken {
		t.Error("restore did not install the bearer credential")
	}
}

func TestRestoreRequiresBothKeys(t *testing.T) {
	tests := []struct {
		name string
		seed map[string]string
	}{
		{"empty storage", nil},
		{"token only", map[string]string{"token": "abc"}},
		{"user only", map[string]string{"user": `{"id":1,"email":"a@b.c"}`}},
		{"unreadable user", map[string]string{"token": "abc", "user": "not json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := testutil.NewFakeAPI(t)
			kv := testutil.NewKV(t)
			for k, v := range tt.seed {
				kv.Set(k, v)
			}

			sess := New(kv, api.NewClient(fake.URL()))
			if err := sess.Restore(); err != nil {
				t.Fatalf("Restore() error = %v", err)
			}
			cur, err := sess.Current()
			if err != nil {
				t.Fatalf("Current() error = %v", err)
			}
			if cur.IsAuthenticated {
				t.Error("partial storage restored as authenticated")
			}
		})
	}
}

func TestLogoutIdempotent(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	kv := testutil.NewKV(t)
	client := api.NewClient(fake.URL())
	sess := New(kv, client)
	if err := sess.Restore(); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if err := sess.Login(context.Background(), testutil.TestEmail, testutil.TestPassword); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if err := sess.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	first, _ := sess.Current()

	// Second logout is a no-op leaving identical state
	if err := sess.Logout(); err != nil {
		t.Fatalf("second Logout() error = %v", err)
	}
	second, _ := sess.Current()

	if first != second {
		t.Errorf("state changed between logouts: %+v vs %+v", first, second)
	}
	if second.IsAuthenticated || second.Token != "" {
		t.Errorf("logout left residual state: %+v", second)
	}
	if client.Token() != "" {
		t.Error("logout left the bearer credential installed")
	}
	if _, err := kv.Get("token"); err == nil {
		t.Error("logout left token in storage")
	}
}
