package session

import (
	"testing"
	"time"

	"github.com/reelvault/reelvault/internal/common"
	"github.com/reelvault/reelvault/internal/server/auth"
)

const testLifetime = 30 * 24 * time.Hour

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager("super-secret", testLifetime, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	return m
}

func TestNewManager_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewManager("", testLifetime, 24*time.Hour)
	if err == nil {
		t.Fatalf("expected error for empty signing key, got nil")
	}
}

func TestIssueAndResolve_Roundtrip(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	identity := &auth.Identity{ID: "u-1", Email: "user@test.com"}

	tok, err := m.Issue(identity)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := m.Resolve(tok)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got.ID != identity.ID || got.Email != identity.Email {
		t.Fatalf("identity mismatch: got %+v want %+v", got, identity)
	}
}

func TestResolve_Expired(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	m.now = func() time.Time { return time.Now().Add(-testLifetime - time.Hour) }
	tok, err := m.Issue(&auth.Identity{ID: "u-1", Email: "user@test.com"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	m.now = time.Now

	_, err = m.Resolve(tok)
	if err != common.ErrTokenExpired {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestResolve_WrongSecret(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	tok, err := m.Issue(&auth.Identity{ID: "u-1", Email: "user@test.com"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	other, err := NewManager("different-secret", testLifetime, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}

	_, err = other.Resolve(tok)
	if err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestResolve_MalformedString(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	_, err := m.Resolve("not.a.jwt")
	if err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestRefreshIfNeeded_FreshTokenUnchanged(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	tok, err := m.Issue(&auth.Identity{ID: "u-1", Email: "user@test.com"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := m.RefreshIfNeeded(tok)
	if err != nil {
		t.Fatalf("RefreshIfNeeded error: %v", err)
	}
	if got != tok {
		t.Fatalf("fresh token must come back unchanged")
	}
}

func TestRefreshIfNeeded_StaleTokenReissued(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	issued := time.Now().Add(-48 * time.Hour)
	m.now = func() time.Time { return issued }
	tok, err := m.Issue(&auth.Identity{ID: "u-1", Email: "user@test.com"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	m.now = time.Now

	got, err := m.RefreshIfNeeded(tok)
	if err != nil {
		t.Fatalf("RefreshIfNeeded error: %v", err)
	}
	if got == tok {
		t.Fatalf("stale token must be re-issued")
	}

	id, err := m.Resolve(got)
	if err != nil {
		t.Fatalf("Resolve error on refreshed token: %v", err)
	}
	if id.ID != "u-1" || id.Email != "user@test.com" {
		t.Fatalf("refreshed token must carry the same identity, got %+v", id)
	}
}

func TestRefreshIfNeeded_NeverRefreshesInvalidToken(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	m.now = func() time.Time { return time.Now().Add(-testLifetime - time.Hour) }
	expired, err := m.Issue(&auth.Identity{ID: "u-1", Email: "user@test.com"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	m.now = time.Now

	if _, err := m.RefreshIfNeeded(expired); err != common.ErrTokenExpired {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
	if _, err := m.RefreshIfNeeded("garbage"); err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}
