package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/getbankd/bankd/pkg/account"
)

// Fixed KV keys. Each holds the full serialized collection.
const (
	accountsKey = "accountList"
	usersKey    = "users"
)

// RecordStore owns the in-memory account and user collections. Collections
// keep insertion order; callers always receive copies, never live
// references. Every mutating operation rewrites the full collection to the
// durable KV under its fixed key.
//
// All operations are serialized behind a single mutex so a read-modify-write
// sequence is never interleaved with another mutation.
type RecordStore struct {
	mu       sync.Mutex
	kv       KV
	accounts []account.Account
	users    []account.User
}

// Open loads both collections from the KV, seeding any absent key from seed
// and persisting the seeded collection. A nil seed starts absent keys empty.
func Open(kv KV, seed *Seed) (*RecordStore, error) {
	if seed == nil {
		seed = &Seed{}
	}
	s := &RecordStore{kv: kv}

	if err := loadOrSeed(kv, accountsKey, &s.accounts, seed.Accounts); err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	if err := loadOrSeed(kv, usersKey, &s.users, seed.Users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return s, nil
}

// loadOrSeed fills dst from the KV value under key, or from seed when the
// key is absent (writing the seed back so the next open finds it).
func loadOrSeed[T any](kv KV, key string, dst *[]T, seed []T) error {
	data, ok, err := kv.Get(key)
	if err != nil {
		return err
	}
	if ok {
		return json.Unmarshal(data, dst)
	}

	*dst = append([]T(nil), seed...)
	out, err := json.Marshal(*dst)
	if err != nil {
		return err
	}
	return kv.Set(key, out)
}

// Accounts returns a copy of the account collection in insertion order.
func (s *RecordStore) Accounts() []account.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]account.Account(nil), s.accounts...)
}

// FindAccount returns the account with the given id, if present.
func (s *RecordStore) FindAccount(id string) (account.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return account.Account{}, false
}

// AddAccount assigns a fresh unique id, appends the record, persists the
// collection, and returns the stored copy.
func (s *RecordStore) AddAccount(a account.Account) (account.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = uuid.NewString()
	s.accounts = append(s.accounts, a)
	if err := s.persistAccountsLocked(); err != nil {
		return account.Account{}, err
	}
	return a, nil
}

// UpdateAccount overwrites every field except the id of the account with the
// given id and persists the collection. Returns NotFoundError if no account
// has that id.
func (s *RecordStore) UpdateAccount(id string, a account.Account) (account.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].ID == id {
			a.ID = id
			s.accounts[i] = a
			if err := s.persistAccountsLocked(); err != nil {
				return account.Account{}, err
			}
			return a, nil
		}
	}
	return account.Account{}, &NotFoundError{ID: id}
}

// RemoveAccount removes the account with the given id and returns that id.
// Removing an absent id is a silent no-op; the collection is persisted
// either way.
func (s *RecordStore) RemoveAccount(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.accounts[:0]
	for _, a := range s.accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.accounts = kept
	if err := s.persistAccountsLocked(); err != nil {
		return "", err
	}
	return id, nil
}

// Users returns a copy of the user collection in insertion order.
func (s *RecordStore) Users() []account.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]account.User(nil), s.users...)
}

// FindUserByCredentials returns the user matching both username and
// password exactly, if any.
func (s *RecordStore) FindUserByCredentials(username, password string) (account.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}
	return account.User{}, false
}

// FindUserByName returns the user with the given username, if any.
func (s *RecordStore) FindUserByName(username string) (account.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return account.User{}, false
}

// AddUser assigns the next sequential id (max existing id + 1, or 1 for an
// empty collection), appends the user, persists, and returns the stored
// copy.
func (s *RecordStore) AddUser(u account.User) (account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 1
	for _, existing := range s.users {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	u.ID = next
	s.users = append(s.users, u)
	if err := s.persistUsersLocked(); err != nil {
		return account.User{}, err
	}
	return u, nil
}

func (s *RecordStore) persistAccountsLocked() error {
	data, err := json.Marshal(s.accounts)
	if err != nil {
		return err
	}
	return s.kv.Set(accountsKey, data)
}

func (s *RecordStore) persistUsersLocked() error {
	data, err := json.Marshal(s.users)
	if err != nil {
		return err
	}
	return s.kv.Set(usersKey, data)
}
