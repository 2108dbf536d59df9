package memory

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"transitlive/tracking-service/internal/models"
	"transitlive/tracking-service/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// Store is the in-memory account directory. Accounts are created on
// registration and never mutated or deleted; IDs are assigned sequentially
// starting at 1. Credentials are kept only as bcrypt hashes.
type Store struct {
	mu      sync.RWMutex
	byEmail map[string]int
	byID    map[int]models.Account
	nextID  int
}

func NewStore() *Store {
	return &Store{
		byEmail: make(map[string]int),
		byID:    make(map[int]models.Account),
		nextID:  1,
	}
}

func (s *Store) Register(ctx context.Context, input store.RegisterInput) (models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[input.Email]; exists {
		return models.Account{}, store.ErrEmailTaken
	}

	account := models.Account{
		ID:           s.nextID,
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		ProfileIcon:  avatarURL(input.Name),
		CreatedAt:    time.Now().UTC(),
	}
	s.nextID++
	s.byEmail[account.Email] = account.ID
	s.byID[account.ID] = account

	log.Printf("user registered id=%d email=%s", account.ID, account.Email)
	return account, nil
}

func (s *Store) Authenticate(ctx context.Context, email, password string) (models.Account, error) {
	s.mu.RLock()
	id, ok := s.byEmail[email]
	account := s.byID[id]
	s.mu.RUnlock()

	// Unknown email and wrong password must be indistinguishable to the caller.
	if !ok {
		return models.Account{}, store.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		return models.Account{}, store.ErrInvalidCredentials
	}

	log.Printf("user login id=%d email=%s", account.ID, account.Email)
	return account, nil
}

func (s *Store) FindByID(ctx context.Context, id int) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byID[id]
	if !ok {
		return models.Account{}, store.ErrUserNotFound
	}
	return account, nil
}

func (s *Store) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func avatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random&color=fff&size=100", url.QueryEscape(name))
}
