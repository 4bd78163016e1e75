package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/dmitrijs2005/udharoguru/internal/client/cli"
	"github.com/dmitrijs2005/udharoguru/internal/client/client"
	"github.com/dmitrijs2005/udharoguru/internal/client/config"
	"github.com/dmitrijs2005/udharoguru/internal/client/services"
	"github.com/dmitrijs2005/udharoguru/internal/client/tokens"
	"github.com/dmitrijs2005/udharoguru/internal/filex"
	"github.com/dmitrijs2005/udharoguru/internal/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	displayAppname("UdharoGuru")

	var backend tokens.Backend
	if !cfg.Ephemeral {
		dbPath := cfg.DatabasePath
		if dbPath != ":memory:" {
			if dbPath, err = filex.EnsureParentDir(dbPath); err != nil {
				return err
			}
		}
		st, err := client.InitDatabase(ctx, dbPath)
		if err != nil {
			return fmt.Errorf("open database %s: %w", dbPath, err)
		}
		defer st.Close()
		backend = st.Metadata

		if cfg.TokenPassphrase != "" {
			sealed, err := tokens.NewSealedBackend(ctx, st.Metadata, []byte(cfg.TokenPassphrase))
			if err != nil {
				return fmt.Errorf("token encryption: %w", err)
			}
			backend = sealed
		}
	}

	store := tokens.NewStore(backend)
	if err := store.Load(ctx); err != nil {
		return fmt.Errorf("load tokens: %w", err)
	}

	api, err := client.NewHTTPClient(cfg.ServerBaseURL, store,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer api.Close()

	session := services.NewSessionService(api, store, logger)
	defer session.Close()

	app := cli.NewApp(cli.Deps{
		Session:   session,
		Business:  services.NewBusinessService(api, session, logger),
		Gate:      services.NewBusinessGate(session),
		Chat:      services.NewChatService(api, logger),
		Private:   services.NewPrivateService(api, logger),
		Ledger:    services.NewLedgerService(api, logger),
		Customers: services.NewCustomerService(api, logger),
		Tokens:    store,
		Logger:    logger,
	}, os.Stdin, os.Stdout, cli.WithPollInterval(cfg.ChatPollInterval))
	defer app.Close()

	go func() {
		if err := session.Bootstrap(ctx); err != nil {
			fmt.Fprintln(os.Stdout, "Could not restore your session:", err)
		}
	}()

	app.Run(ctx)
	return nil
}

func displayAppname(name string) {
	figure.NewFigure(name, "cybermedium", true).Print()
	fmt.Println()
}
