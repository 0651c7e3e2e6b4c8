package invoicing

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/invoicing/business/invoice"
	"encore.app/invoicing/business/ledger"
	"encore.app/invoicing/domain"
	"encore.app/invoicing/repository"
	"encore.app/invoicing/workflow"
)

var invoicingDB = sqldb.NewDatabase("invoicing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

const taskQueue = "invoicing"

//encore:service
type Service struct {
	business invoice.Business
	ledger   ledger.Business
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](invoicingDB)

	repo := repository.NewRepository(pgxdb)
	stateMachine := domain.NewInvoiceStateMachine(pgxdb, repo.Invoices, repo.Items, repo.Payments)

	invoiceBusiness := invoice.NewInvoiceBusiness(pgxdb, repo.Invoices, repo.Items, stateMachine)
	ledgerBusiness := ledger.NewLedgerBusiness(repo.Payments, stateMachine, ledger.Policy{
		AllowOverpayment: os.Getenv("LEDGER_ALLOW_OVERPAYMENT") == "true",
	})

	workflow.SetActivityDependencies(invoiceBusiness)

	hostPort := os.Getenv("TEMPORAL_HOST_PORT")
	if hostPort == "" {
		hostPort = client.DefaultHostPort
	}

	c, err := client.Dial(client.Options{HostPort: hostPort})
	if err != nil {
		return nil, err
	}

	w := worker.New(c, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.InvoiceLifecycle)
	w.RegisterActivity(workflow.MarkOverdueActivity)
	if err := w.Start(); err != nil {
		c.Close()
		return nil, err
	}

	rlog.Info("invoicing service initialized", "task_queue", taskQueue)

	return &Service{
		business: invoiceBusiness,
		ledger:   ledgerBusiness,
		temporal: c,
		worker:   w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}
