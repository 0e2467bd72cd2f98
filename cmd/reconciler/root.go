package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kchowhan/propvestor-sub002/internal/config"
	"github.com/kchowhan/propvestor-sub002/internal/logging"
	"github.com/kchowhan/propvestor-sub002/internal/repository"
	service "github.com/kchowhan/propvestor-sub002/internal/services/reconciliation"
)

const dateLayout = "2006-01-02"

// app is built lazily so that --help works without a database.
type app struct {
	cfg *config.Config
	log *logrus.Logger
	svc *service.ReconciliationService
}

func (a *app) init() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cfg.Log.Level, cfg.Log.Format)

	db, err := config.InitDB(cfg)
	if err != nil {
		return err
	}
	if err := repository.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	a.svc = service.NewReconciliationService(
		repository.NewPaymentRepository(db),
		repository.NewBankTransactionRepository(db),
		repository.NewReconciliationRepository(db),
		a.log,
	)
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "reconciler",
		Short:         "Match payments against bank statements",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.AddCommand(
		newImportCmd(a),
		newAutoMatchCmd(a),
		newSessionCmd(a),
		newMatchCmd(a),
	)
	return root
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// rangeFlags binds --org, --start and --end. The end date covers its whole day.
type rangeFlags struct {
	org, start, end string
}

func (f *rangeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.org, "org", "", "organization id (required)")
	cmd.Flags().StringVar(&f.start, "start", "", "start date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&f.end, "end", "", "end date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("org")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
}

func (f *rangeFlags) parse() (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, f.start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse start date: %w", err)
	}
	end, err := time.Parse(dateLayout, f.end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse end date: %w", err)
	}
	return start, end.Add(24*time.Hour - time.Millisecond), nil
}
