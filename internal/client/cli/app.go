package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
	"github.com/dmitrijs2005/udharoguru/internal/client/routes"
	"github.com/dmitrijs2005/udharoguru/internal/logging"
)

// SessionService is what the CLI needs from services.SessionService.
type SessionService interface {
	Loading() bool
	Ready() <-chan struct{}
	Profile() *models.Profile
	Login(ctx context.Context, email, password string) (*models.Profile, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.Profile, error)
	Logout(ctx context.Context) error
	RefreshUser(ctx context.Context) (*models.Profile, error)
	OnChange(fn func(*models.Profile)) (unsubscribe func())
}

type BusinessService interface {
	Status(ctx context.Context) (*models.BusinessStatusInfo, error)
	SubmitPayment(ctx context.Context, p models.PaymentSubmission) (*models.Profile, error)
	SubmitKYC(ctx context.Context, k models.KYCSubmission) (*models.Profile, error)
}

type BusinessGate interface {
	Check(ctx context.Context, currentPath string) routes.Decision
}

type ChatService interface {
	DirectThread(ctx context.Context, userID int64) (*models.ChatThread, error)
	GroupThread(ctx context.Context, groupID int64) (*models.ChatThread, error)
	Messages(ctx context.Context, threadID int64) ([]models.ChatMessage, error)
	Send(ctx context.Context, threadID int64, text string) (*models.ChatMessage, error)
	Poll(ctx context.Context, threadID int64, interval time.Duration, onMessages func([]models.ChatMessage))
}

type PrivateService interface {
	Transactions(ctx context.Context) ([]models.PrivateTransaction, error)
	AddTransaction(ctx context.Context, t models.PrivateTransaction) (*models.PrivateTransaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	Summary(ctx context.Context) (*models.PrivateSummary, error)
	Items(ctx context.Context) ([]models.ItemLoan, error)
	LendItem(ctx context.Context, item models.ItemLoan) (*models.ItemLoan, error)
	ReturnItem(ctx context.Context, id int64) (*models.ItemLoan, error)
	Connections(ctx context.Context) ([]models.Connection, error)
	Connect(ctx context.Context, inviteCode string) (*models.Connection, error)
	Groups(ctx context.Context) ([]models.Group, error)
	CreateGroup(ctx context.Context, name string) (*models.Group, error)
	AddGroupMember(ctx context.Context, groupID, userID int64) error
}

type LedgerService interface {
	Entries(ctx context.Context) ([]models.LedgerEntry, error)
	AddEntry(ctx context.Context, e models.LedgerEntryRequest) (*models.LedgerEntry, error)
	Settle(ctx context.Context, id int64) (*models.LedgerEntry, error)
	Balances(ctx context.Context) ([]models.CustomerBalance, error)
	CustomerEntries(ctx context.Context, name string) ([]models.LedgerEntry, error)
	Receipts(ctx context.Context) ([]models.OCRDocument, error)
	UploadReceipt(ctx context.Context, image *models.Attachment) (*models.OCRDocument, error)
	Receipt(ctx context.Context, id int64) (*models.OCRDocument, error)
	ConfirmReceipt(ctx context.Context, id int64, conf models.OCRConfirmation) (*models.OCRDocument, error)
}

type CustomerService interface {
	Customers(ctx context.Context) ([]models.Customer, error)
	AddCustomer(ctx context.Context, c models.Customer) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	Transactions(ctx context.Context, customerID int64) ([]models.CustomerTransaction, error)
	AddTransaction(ctx context.Context, t models.CustomerTransaction) (*models.CustomerTransaction, error)
	Summary(ctx context.Context, customerID int64) (*models.CustomerSummary, error)
}

// TokenSource exposes the stored credentials for display.
type TokenSource interface {
	Tokens() models.Tokens
}

// Deps are the services an App drives.
type Deps struct {
	Session   SessionService
	Business  BusinessService
	Gate      BusinessGate
	Chat      ChatService
	Private   PrivateService
	Ledger    LedgerService
	Customers CustomerService
	Tokens    TokenSource
	Logger    logging.Logger
}

// App is the interactive UdharoGuru client.
type App struct {
	session   SessionService
	business  BusinessService
	gate      BusinessGate
	chat      ChatService
	private   PrivateService
	ledger    LedgerService
	customers CustomerService
	tokens    TokenSource
	log       logging.Logger

	pollInterval time.Duration
	reader       *bufio.Reader
	out          io.Writer

	// loggingOut silences the "session ended" notice for a deliberate logout.
	loggingOut  atomic.Bool
	unsubscribe func()
}

type Option func(*App)

// WithPollInterval sets how often an open chat is re-fetched.
func WithPollInterval(d time.Duration) Option {
	return func(a *App) { a.pollInterval = d }
}

func NewApp(d Deps, in io.Reader, out io.Writer, opts ...Option) *App {
	a := &App{
		session:   d.Session,
		business:  d.Business,
		gate:      d.Gate,
		chat:      d.Chat,
		private:   d.Private,
		ledger:    d.Ledger,
		customers: d.Customers,
		tokens:    d.Tokens,
		log:       d.Logger,
		reader:    bufio.NewReader(in),
		out:       &lockedWriter{w: out},
	}
	if a.log == nil {
		a.log = logging.Nop()
	}
	for _, opt := range opts {
		opt(a)
	}

	a.unsubscribe = a.session.OnChange(a.onProfileChange)
	return a
}

// Close stops listening to session changes.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
}

func (a *App) onProfileChange(p *models.Profile) {
	if p == nil && !a.loggingOut.Load() {
		a.println("Your session has ended. Please log in again.")
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// report prints a command failure the way the user should see it.
func (a *App) report(err error) error {
	if err != nil {
		a.println("Error:", err.Error())
	}
	return err
}

// lockedWriter serializes writes from the REPL and background pollers.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
