// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/danielhkuo/urban-services/api"
	"github.com/danielhkuo/urban-services/models"
	"github.com/danielhkuo/urban-services/store"
)

var (
	// ErrAuthFailed is the only thing a caller learns about a rejected
	// login; the stored session is left untouched.
	ErrAuthFailed = errors.New("Falha na autenticação")

	// ErrNotRestored means a Store was used before Restore. Session
	// state is only valid inside a restored store, so this fails loudly
	// instead of silently reporting "unauthenticated".
	ErrNotRestored = errors.New("session store used before Restore")
)

// Durable storage keys, shared with the web front-end's localStorage.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Session is a read-only snapshot of the current authentication state.
type Session struct {
	IsAuthenticated bool
	User            models.User
	Token           string
}

// Store owns session state: an in-memory view mirrored to durable
// key-value storage, plus the bearer credential installed on the API
// client. It is passed explicitly to its consumers rather than living
// in a package-level global.
type Store struct {
	kv     *store.KV
	client *api.Client

	restored bool
	current  Session
}

// New creates a session store over kv, installing credentials on
// client. Call Restore before reading or mutating session state.
func New(kv *store.KV, client *api.Client) *Store {
	return &Store{kv: kv, client: client}
}

// Restore loads the persisted session, if any. When both a token and a
// serialized user are present the session is considered authenticated
// without asking the server; a revoked token is only discovered when a
// later call is rejected. Missing or unreadable state just means
// "not logged in".
func (s *Store) Restore() error {
	s.restored = true
	s.current = Session{}

	token, err := s.kv.Get(keyToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	rawUser, err := s.kv.Get(keyUser)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		slog.Warn("discarding unreadable stored user", "error", err)
		return nil
	}

	s.client.SetToken(token)
	s.current = Session{IsAuthenticated: true, User: user, Token: token}
	return nil
}

// Current returns the session snapshot. It refuses to answer before
// Restore has run.
func (s *Store) Current() (Session, error) {
	if !s.restored {
		return Session{}, ErrNotRestored
	}
	return s.current, nil
}

// Login authenticates against the server and, on success, persists the
// token and user record and installs the bearer credential. On failure
// nothing changes: stored state, memory, and the client credential all
// keep their previous values.
func (s *Store) Login(ctx context.Context, email, password string) error {
	if !s.restored {
		return ErrNotRestored
	}

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		slog.Error("login rejected", "email", email, "error", err)
		return ErrAuthFailed
	}

	rawUser, err := json.Marshal(resp.User)
	if err != nil {
		return err
	}
	if err := s.kv.Set(keyToken, resp.AccessToken); err != nil {
		return err
	}
	if err := s.kv.Set(keyUser, string(rawUser)); err != nil {
		return err
	}

	s.client.SetToken(resp.AccessToken)
	s.current = Session{IsAuthenticated: true, User: resp.User, Token: resp.AccessToken}

	slog.Info("logged in", "user_id", resp.User.ID, "email", resp.User.Email)
	return nil
}

// Logout clears durable storage, in-memory state, and the client's
// bearer credential. Logging out while already logged out is a no-op.
func (s *Store) Logout() error {
	if !s.restored {
		return ErrNotRestored
	}

	if err := s.kv.Delete(keyToken); err != nil {
		return err
	}
	if err := s.kv.Delete(keyUser); err != nil {
		return err
	}

	s.client.ClearToken()
	s.current = Session{}
	return nil
}
