package memory

import (
	"strings"
	"time"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// CompanyRepo implementa repository.CompanyRepository en memoria.
type CompanyRepo struct {
	store *Store
}

// NewCompanyRepo construye el repositorio.
func NewCompanyRepo(store *Store) *CompanyRepo {
	return &CompanyRepo{store: store}
}

func (r *CompanyRepo) Create(company *entity.Company) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.companies = append(r.store.companies, cloneCompany(company))
	return nil
}

func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, c := range r.store.companies {
		if c.ID == id {
			return cloneCompany(c), nil
		}
	}
	return nil, nil
}

// UserRepo implementa repository.UserRepository en memoria.
// Las búsquedas por email y login ID son case-insensitive.
type UserRepo struct {
	store *Store
}

// NewUserRepo construye el repositorio.
func NewUserRepo(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) Create(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users = append(r.store.users, cloneUser(user))
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepo) GetByLoginID(loginID string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if strings.EqualFold(u.LoginID, loginID) {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, u := range r.store.users {
		if u.ID == user.ID {
			r.store.users[i] = cloneUser(user)
			return nil
		}
	}
	return nil
}

func (r *UserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*entity.User, 0)
	for _, u := range r.store.users {
		if u.CompanyID == companyID {
			matched = append(matched, u)
		}
	}
	if offset >= len(matched) {
		return []*entity.User{}, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]*entity.User, 0, end-offset)
	for _, u := range matched[offset:end] {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

// PasswordResetRepo implementa repository.PasswordResetRepository en memoria.
type PasswordResetRepo struct {
	store *Store
}

// NewPasswordResetRepo construye el repositorio.
func NewPasswordResetRepo(store *Store) *PasswordResetRepo {
	return &PasswordResetRepo{store: store}
}

func (r *PasswordResetRepo) Create(reset *entity.PasswordReset) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.resets = append(r.store.resets, cloneReset(reset))
	return nil
}

func (r *PasswordResetRepo) GetActiveByEmail(email string) (*entity.PasswordReset, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	now := time.Now()
	var latest *entity.PasswordReset
	for _, reset := range r.store.resets {
		if !strings.EqualFold(reset.Email, email) || !reset.Usable(now) {
			continue
		}
		if latest == nil || reset.CreatedAt.After(latest.CreatedAt) {
			latest = reset
		}
	}
	if latest == nil {
		return nil, nil
	}
	return cloneReset(latest), nil
}

func (r *PasswordResetRepo) MarkConsumed(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, reset := range r.store.resets {
		if reset.ID == id {
			now := time.Now()
			reset.ConsumedAt = &now
			return nil
		}
	}
	return nil
}

// SequenceRepo implementa repository.SequenceRepository en memoria.
type SequenceRepo struct {
	store *Store
}

// NewSequenceRepo construye el repositorio.
func NewSequenceRepo(store *Store) *SequenceRepo {
	return &SequenceRepo{store: store}
}

func (r *SequenceRepo) Next(companyID, prefix string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := companyID + "|" + prefix
	r.store.sequences[key]++
	return r.store.sequences[key], nil
}
