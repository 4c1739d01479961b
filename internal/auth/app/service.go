package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Manuelsilva1/Library/internal/auth/domain"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service holds the current session for the storefront process. It also
// serves as the token source for the rest clients.
type Service struct {
	client   AuthClient
	sessions SessionStore
	log      *slog.Logger

	mu      sync.Mutex
	current domain.Session
	active  bool
}

// NewService restores any persisted session; unreadable content degrades to
// anonymous and the stored copy is discarded.
func NewService(client AuthClient, sessions SessionStore, log *slog.Logger) *Service {
	s := &Service{
		client:   client,
		sessions: sessions,
		log:      log,
	}

	sess, ok, err := sessions.Load()
	if err != nil {
		log.Warn("stored session unreadable, starting anonymous", slog.Any("err", err))
		if err := sessions.Discard(); err != nil {
			log.Warn("stored session discard failed", slog.Any("err", err))
		}
		return s
	}
	if ok && sess.Active(time.Now()) {
		s.current = sess
		s.active = true
	}

	return s
}

func (s *Service) Login(ctx context.Context, email, password string) (domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.Session{}, ErrInvalidCredentials
	}

	sess, err := s.client.Login(ctx, email, password)
	if err != nil {
		return domain.Session{}, err
	}

	s.install(sess)
	return sess, nil
}

func (s *Service) Register(ctx context.Context, name, email, password string) (domain.Session, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return domain.Session{}, ErrInvalidCredentials
	}

	sess, err := s.client.Register(ctx, name, email, password)
	if err != nil {
		return domain.Session{}, err
	}

	s.install(sess)
	return sess, nil
}

func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = domain.Session{}
	s.active = false
	if err := s.sessions.Discard(); err != nil {
		s.log.Warn("session discard failed", slog.Any("err", err))
	}
}

// Current returns the live session, if any. A session past its expiry is
// dropped on read.
func (s *Service) Current() (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return domain.Session{}, false
	}
	if !s.current.Active(time.Now()) {
		s.current = domain.Session{}
		s.active = false
		if err := s.sessions.Discard(); err != nil {
			s.log.Warn("expired session discard failed", slog.Any("err", err))
		}
		return domain.Session{}, false
	}

	return s.current, true
}

func (s *Service) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// Token implements the rest client's token source.
func (s *Service) Token() (string, bool) {
	sess, ok := s.Current()
	if !ok {
		return "", false
	}
	return sess.Token, true
}

func (s *Service) install(sess domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = sess
	s.active = true
	if err := s.sessions.Save(sess); err != nil {
		s.log.Warn("session write failed", slog.Any("err", err))
	}
}
