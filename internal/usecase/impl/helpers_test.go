package impl

// In-memory fakes for the repository and service interfaces. They keep the
// use-case tests independent of GORM while still exercising the sentinel
// errors the real Postgres implementations return.

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"

	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- contacts ---

type fakeContactRepo struct {
	contacts map[int64]*entity.Contact
	nextID   int64
	failWith error
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{
		contacts: make(map[int64]*entity.Contact),
		nextID:   1,
	}
}

func (r *fakeContactRepo) FindAll(ctx context.Context) ([]*entity.Contact, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}

	out := make([]*entity.Contact, 0, len(r.contacts))
	for _, contact := range r.contacts {
		copied := *contact
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *fakeContactRepo) FindByID(ctx context.Context, id int64) (*entity.Contact, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}

	contact, ok := r.contacts[id]
	if !ok {
		return nil, repository.ErrContactNotFound
	}
	copied := *contact

	return &copied, nil
}

func (r *fakeContactRepo) Create(ctx context.Context, contact *entity.Contact) error {
	if r.failWith != nil {
		return r.failWith
	}

	contact.ID = r.nextID
	r.nextID++
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = contact.CreatedAt
	copied := *contact
	r.contacts[contact.ID] = &copied

	return nil
}

func (r *fakeContactRepo) Update(ctx context.Context, contact *entity.Contact) error {
	if r.failWith != nil {
		return r.failWith
	}

	if _, ok := r.contacts[contact.ID]; !ok {
		return repository.ErrContactNotFound
	}
	contact.UpdatedAt = time.Now()
	copied := *contact
	r.contacts[contact.ID] = &copied

	return nil
}

func (r *fakeContactRepo) Delete(ctx context.Context, id int64) error {
	if r.failWith != nil {
		return r.failWith
	}

	if _, ok := r.contacts[id]; !ok {
		return repository.ErrContactNotFound
	}
	delete(r.contacts, id)

	return nil
}

// --- users ---

type fakeUserRepo struct {
	usersByID map[uuid.UUID]*entity.User
	failWith  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{usersByID: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}

	user, ok := r.usersByID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}

	for _, user := range r.usersByID {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.failWith != nil {
		return r.failWith
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.usersByID[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	if r.failWith != nil {
		return r.failWith
	}

	user, ok := r.usersByID[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now()

	return nil
}

// --- reset tokens ---

type fakeResetTokenRepo struct {
	tokens   map[uuid.UUID]*entity.PasswordResetToken
	failWith error
}

func newFakeResetTokenRepo() *fakeResetTokenRepo {
	return &fakeResetTokenRepo{tokens: make(map[uuid.UUID]*entity.PasswordResetToken)}
}

func (r *fakeResetTokenRepo) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	if r.failWith != nil {
		return r.failWith
	}

	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.CreatedAt = time.Now()
	copied := *token
	r.tokens[token.ID] = &copied

	return nil
}

func (r *fakeResetTokenRepo) FindByHash(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}

	for _, token := range r.tokens {
		if token.TokenHash != tokenHash {
			continue
		}
		if token.Consumed() {
			return nil, repository.ErrResetTokenUsed
		}
		if token.Expired(time.Now()) {
			return nil, repository.ErrResetTokenExpired
		}
		copied := *token

		return &copied, nil
	}

	return nil, repository.ErrResetTokenNotFound
}

func (r *fakeResetTokenRepo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	if r.failWith != nil {
		return r.failWith
	}

	token, ok := r.tokens[id]
	if !ok || token.Consumed() {
		return repository.ErrResetTokenUsed
	}
	now := time.Now()
	token.UsedAt = &now

	return nil
}

func (r *fakeResetTokenRepo) InvalidateForUser(ctx context.Context, userID uuid.UUID) error {
	if r.failWith != nil {
		return r.failWith
	}

	now := time.Now()
	for _, token := range r.tokens {
		if token.UserID == userID && !token.Consumed() {
			token.UsedAt = &now
		}
	}

	return nil
}

func (r *fakeResetTokenRepo) activeCount(userID uuid.UUID) int {
	count := 0
	for _, token := range r.tokens {
		if token.UserID == userID && !token.Consumed() {
			count++
		}
	}

	return count
}

// --- transaction manager ---

type fakeRepoFactory struct {
	contactRepo *fakeContactRepo
	userRepo    *fakeUserRepo
	tokenRepo   *fakeResetTokenRepo
}

func (f *fakeRepoFactory) NewContactRepository() repository.ContactRepository {
	return f.contactRepo
}

func (f *fakeRepoFactory) NewUserRepository() repository.UserRepository {
	return f.userRepo
}

func (f *fakeRepoFactory) NewPasswordResetTokenRepository() repository.PasswordResetTokenRepository {
	return f.tokenRepo
}

type fakeTxManager struct {
	factory *fakeRepoFactory
}

func (m *fakeTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// --- domain services ---

type fakeHasher struct {
	failWith  error
	hashCalls int
}

func (h *fakeHasher) Hash(password string) (string, error) {
	h.hashCalls++
	if h.failWith != nil {
		return "", h.failWith
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenGenerator struct {
	failWith error
}

func (g *fakeTokenGenerator) Generate(userID uuid.UUID, email string) (string, error) {
	if g.failWith != nil {
		return "", g.failWith
	}

	return "token-for-" + email, nil
}

func (g *fakeTokenGenerator) Validate(tokenString string) (*service.Claims, error) {
	panic("not used in these tests")
}

type fakeMailer struct {
	sentTo    []string
	sentToken string
	failWith  error
}

func (m *fakeMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	if m.failWith != nil {
		return m.failWith
	}

	m.sentTo = append(m.sentTo, email)
	m.sentToken = token

	return nil
}
