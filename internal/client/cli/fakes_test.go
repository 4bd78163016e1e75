package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
	"github.com/dmitrijs2005/udharoguru/internal/client/routes"
)

type fakeSession struct {
	mu sync.Mutex

	loading bool
	ready   chan struct{}
	profile *models.Profile

	LoginRet    *models.Profile
	LoginErr    error
	RegisterRet *models.Profile
	RegisterErr error
	RefreshRet  *models.Profile
	RefreshErr  error
	LogoutErr   error

	LastEmail    string
	LastPassword string
	LastRegister models.RegisterRequest

	observers []func(*models.Profile)
}

func newFakeSession(p *models.Profile) *fakeSession {
	ready := make(chan struct{})
	close(ready)
	return &fakeSession{profile: p, ready: ready}
}

func (f *fakeSession) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

func (f *fakeSession) Ready() <-chan struct{} { return f.ready }

func (f *fakeSession) Profile() *models.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profile
}

func (f *fakeSession) set(p *models.Profile) {
	f.mu.Lock()
	f.profile = p
	obs := append([]func(*models.Profile){}, f.observers...)
	f.mu.Unlock()
	for _, fn := range obs {
		fn(p)
	}
}

func (f *fakeSession) Login(_ context.Context, email, password string) (*models.Profile, error) {
	f.LastEmail, f.LastPassword = email, password
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	f.set(f.LoginRet)
	return f.LoginRet, nil
}

func (f *fakeSession) Register(_ context.Context, req models.RegisterRequest) (*models.Profile, error) {
	f.LastRegister = req
	if f.RegisterErr != nil {
		return nil, f.RegisterErr
	}
	if f.RegisterRet != nil {
		f.set(f.RegisterRet)
	}
	return f.RegisterRet, nil
}

func (f *fakeSession) Logout(context.Context) error {
	f.set(nil)
	return f.LogoutErr
}

func (f *fakeSession) RefreshUser(context.Context) (*models.Profile, error) {
	if f.RefreshErr != nil {
		return nil, f.RefreshErr
	}
	f.set(f.RefreshRet)
	return f.RefreshRet, nil
}

func (f *fakeSession) OnChange(fn func(*models.Profile)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observers = append(f.observers, fn)
	return func() {}
}

type fakeBusiness struct {
	StatusRet   *models.BusinessStatusInfo
	StatusErr   error
	SubmitRet   *models.Profile
	SubmitErr   error
	LastPayment *models.PaymentSubmission
	PaymentFile string
	LastKYC     *models.KYCSubmission
}

func (f *fakeBusiness) Status(context.Context) (*models.BusinessStatusInfo, error) {
	return f.StatusRet, f.StatusErr
}

func (f *fakeBusiness) SubmitPayment(_ context.Context, p models.PaymentSubmission) (*models.Profile, error) {
	f.LastPayment = &p
	if p.Screenshot != nil {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(p.Screenshot.Content)
		f.PaymentFile = buf.String()
	}
	return f.SubmitRet, f.SubmitErr
}

func (f *fakeBusiness) SubmitKYC(_ context.Context, k models.KYCSubmission) (*models.Profile, error) {
	f.LastKYC = &k
	return f.SubmitRet, f.SubmitErr
}

type fakeGate struct {
	Decision routes.Decision
	LastPath string
}

func (f *fakeGate) Check(_ context.Context, currentPath string) routes.Decision {
	f.LastPath = currentPath
	return f.Decision
}

type fakeChat struct {
	mu       sync.Mutex
	Thread   *models.ChatThread
	ThreadEr error
	Polled   []models.ChatMessage
	Sent     []string
	SendErr  error
	// OnSend runs inside Send after the text is recorded.
	OnSend    func()
	LastGroup int64
	polling   bool
}

func (f *fakeChat) DirectThread(context.Context, int64) (*models.ChatThread, error) {
	return f.Thread, f.ThreadEr
}

func (f *fakeChat) GroupThread(_ context.Context, groupID int64) (*models.ChatThread, error) {
	f.mu.Lock()
	f.LastGroup = groupID
	f.mu.Unlock()
	return f.Thread, f.ThreadEr
}

func (f *fakeChat) Messages(context.Context, int64) ([]models.ChatMessage, error) {
	return f.Polled, nil
}

func (f *fakeChat) Send(_ context.Context, threadID int64, text string) (*models.ChatMessage, error) {
	f.mu.Lock()
	f.Sent = append(f.Sent, text)
	hook, err := f.OnSend, f.SendErr
	n := len(f.Sent)
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return &models.ChatMessage{ID: 100 + int64(n), Thread: threadID, SenderEmail: "me@example.com", Message: text}, nil
}

// Poll delivers Polled once and then blocks until cancelled.
func (f *fakeChat) Poll(ctx context.Context, _ int64, _ time.Duration, onMessages func([]models.ChatMessage)) {
	f.mu.Lock()
	f.polling = true
	msgs := f.Polled
	f.mu.Unlock()

	onMessages(msgs)
	<-ctx.Done()

	f.mu.Lock()
	f.polling = false
	f.mu.Unlock()
}

func (f *fakeChat) stillPolling() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.polling
}

type fakeTokens struct{ tok models.Tokens }

func (f fakeTokens) Tokens() models.Tokens { return f.tok }

// newTestApp builds an App reading the given lines.
func newTestApp(session *fakeSession, deps Deps, lines ...string) (*App, *bytes.Buffer) {
	deps.Session = session
	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return NewApp(deps, in, out), out
}

func readerFrom(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func privateUser() *models.Profile {
	return &models.Profile{ID: 1, Email: "sita@example.com", FullName: "Sita", AccountType: models.AccountPrivate}
}

func businessUser(s models.BusinessStatus) *models.Profile {
	return &models.Profile{ID: 2, Email: "shop@example.com", AccountType: models.AccountBusiness, BusinessStatus: s}
}
