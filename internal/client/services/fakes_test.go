package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/udharoguru/internal/client/client"
	"github.com/dmitrijs2005/udharoguru/internal/client/models"
)

// fakeAPI implements AuthAPI, BusinessAPI and ChatAPI.
type fakeAPI struct {
	mu sync.Mutex

	// presets
	LoginRet    models.Tokens
	LoginErr    error
	RegisterRet models.RegisterResponse
	RegisterErr error
	MeRet       *models.Profile
	MeErr       error
	// MeHook runs inside Me before it returns.
	MeHook func()

	StatusRet  *models.BusinessStatusInfo
	StatusErr  error
	PaymentErr error
	KYCErr     error

	ThreadRet   *models.ChatThread
	MessagesRet []models.ChatMessage
	// MessagesErrs are returned by successive ThreadMessages calls before
	// MessagesRet is.
	MessagesErrs []error
	SendErr      error

	// observed
	LoginCalls     int
	LastCreds      models.Credentials
	LastRegister   models.RegisterRequest
	MeCalls        int
	LastPayment    models.PaymentSubmission
	LastKYC        models.KYCSubmission
	MessagesCalls  int
	LastSentText   string
	LastDirectUser int64
	LastGroup      int64
}

func (f *fakeAPI) Login(_ context.Context, creds models.Credentials) (models.Tokens, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	f.LastCreds = creds
	return f.LoginRet, f.LoginErr
}

func (f *fakeAPI) Register(_ context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastRegister = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeAPI) Me(_ context.Context) (*models.Profile, error) {
	f.mu.Lock()
	f.MeCalls++
	hook := f.MeHook
	ret, err := f.MeRet, f.MeErr
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	cp := *ret
	return &cp, nil
}

func (f *fakeAPI) setMe(p *models.Profile, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.MeRet, f.MeErr = p, err
}

func (f *fakeAPI) BusinessStatus(context.Context) (*models.BusinessStatusInfo, error) {
	return f.StatusRet, f.StatusErr
}

func (f *fakeAPI) SubmitPayment(_ context.Context, p models.PaymentSubmission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastPayment = p
	return f.PaymentErr
}

func (f *fakeAPI) SubmitKYC(_ context.Context, k models.KYCSubmission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastKYC = k
	return f.KYCErr
}

func (f *fakeAPI) DirectThread(_ context.Context, userID int64) (*models.ChatThread, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastDirectUser = userID
	return f.ThreadRet, nil
}

func (f *fakeAPI) GroupThread(_ context.Context, groupID int64) (*models.ChatThread, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastGroup = groupID
	return f.ThreadRet, nil
}

func (f *fakeAPI) ThreadMessages(context.Context, int64) ([]models.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.MessagesCalls++
	if len(f.MessagesErrs) > 0 {
		err := f.MessagesErrs[0]
		f.MessagesErrs = f.MessagesErrs[1:]
		return nil, err
	}
	return f.MessagesRet, nil
}

func (f *fakeAPI) SendMessage(_ context.Context, threadID int64, text string) (*models.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastSentText = text
	if f.SendErr != nil {
		return nil, f.SendErr
	}
	return &models.ChatMessage{ID: 99, Thread: threadID, Message: text}, nil
}

func (f *fakeAPI) calls() (me, messages int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.MeCalls, f.MessagesCalls
}

func apiErr(status int, data map[string]any) error {
	return &client.APIError{Status: status, Data: data}
}

// failingBackend accepts writes but cannot delete.
type failingBackend struct{}

func (failingBackend) Get(context.Context, string) ([]byte, error) { return nil, nil }

func (failingBackend) SetMany(context.Context, map[string][]byte) error { return nil }

func (failingBackend) Delete(context.Context, ...string) error { return errors.New("disk gone") }
