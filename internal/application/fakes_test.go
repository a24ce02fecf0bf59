package application

import (
	"context"
	"sync"

	"github.com/avelle/storefront-cli/internal/domain"
)

type memorySessions struct {
	mu      sync.Mutex
	session domain.Session
	saves   int
	clears  int
	loadErr error
	saveErr error
}

func (m *memorySessions) Load(context.Context) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return domain.Session{}, m.loadErr
	}
	return m.session, nil
}

func (m *memorySessions) Save(_ context.Context, session domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.session = session
	m.saves++
	return nil
}

func (m *memorySessions) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = domain.Session{}
	m.clears++
	return nil
}

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, message)
}

type fakeAuthAPI struct {
	loginResult  domain.AuthSession
	loginErr     error
	registerErr  error
	currentUser  domain.UserIdentity
	currentErr   error
	logoutErr    error
	loginCalls   int
	logoutCalls  int
	lastRegister domain.Registration
}

func (f *fakeAuthAPI) Login(_ context.Context, _ domain.Credentials) (domain.AuthSession, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return domain.AuthSession{}, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakeAuthAPI) Register(_ context.Context, reg domain.Registration) (domain.UserIdentity, error) {
	f.lastRegister = reg
	if f.registerErr != nil {
		return domain.UserIdentity{}, f.registerErr
	}
	return domain.UserIdentity{ID: 2, Username: reg.Username, Email: reg.Email}, nil
}

func (f *fakeAuthAPI) CurrentUser(context.Context) (domain.UserIdentity, error) {
	if f.currentErr != nil {
		return domain.UserIdentity{}, f.currentErr
	}
	return f.currentUser, nil
}

func (f *fakeAuthAPI) Logout(context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

type fakeCartAPI struct {
	mu          sync.Mutex
	cartFn      func(call int) (domain.CartView, error)
	cartCalls   int
	addErr      error
	updateErr   error
	removeErr   error
	clearErr    error
	addCalls    int
	updateCalls int
	removeCalls int
	clearCalls  int
}

func (f *fakeCartAPI) Cart(context.Context) (domain.CartView, error) {
	f.mu.Lock()
	f.cartCalls++
	call := f.cartCalls
	fn := f.cartFn
	f.mu.Unlock()

	if fn == nil {
		return domain.CartView{}, nil
	}
	return fn(call)
}

func (f *fakeCartAPI) AddItem(_ context.Context, addition domain.CartAddition) (domain.CartLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addCalls++
	if f.addErr != nil {
		return domain.CartLine{}, f.addErr
	}
	return domain.CartLine{ID: 1, ProductID: addition.ProductID, Quantity: addition.Quantity}, nil
}

func (f *fakeCartAPI) UpdateItem(_ context.Context, itemID domain.CartLineID, quantity int) (domain.CartLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.updateErr != nil {
		return domain.CartLine{}, f.updateErr
	}
	return domain.CartLine{ID: itemID, Quantity: quantity}, nil
}

func (f *fakeCartAPI) RemoveItem(context.Context, domain.CartLineID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeCalls++
	return f.removeErr
}

func (f *fakeCartAPI) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearCalls++
	return f.clearErr
}

type fakeOrdersAPI struct {
	createResult domain.Order
	createErr    error
	createCalls  int
	lastDraft    domain.OrderDraft
}

func (f *fakeOrdersAPI) CreateOrder(_ context.Context, draft domain.OrderDraft) (domain.Order, error) {
	f.createCalls++
	f.lastDraft = draft
	if f.createErr != nil {
		return domain.Order{}, f.createErr
	}
	return f.createResult, nil
}

func (f *fakeOrdersAPI) Orders(context.Context, int, int) (domain.OrderPage, error) {
	return domain.OrderPage{}, nil
}

func (f *fakeOrdersAPI) Order(context.Context, domain.OrderID) (domain.Order, error) {
	return domain.Order{}, nil
}

func (f *fakeOrdersAPI) OrderByNumber(context.Context, string) (domain.Order, error) {
	return domain.Order{}, nil
}
