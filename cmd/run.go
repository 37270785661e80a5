package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/cketh-starter/ckusdc-depositor/config"
	"github.com/cketh-starter/ckusdc-depositor/db"
	"github.com/cketh-starter/ckusdc-depositor/etherman"
	"github.com/cketh-starter/ckusdc-depositor/messagepush"
	"github.com/cketh-starter/ckusdc-depositor/metrics"
	"github.com/cketh-starter/ckusdc-depositor/nacos"
	"github.com/cketh-starter/ckusdc-depositor/redisstorage"
	"github.com/cketh-starter/ckusdc-depositor/token"
	"github.com/cketh-starter/ckusdc-depositor/utils"
	"github.com/cketh-starter/ckusdc-depositor/verifier"
	"github.com/cketh-starter/ckusdc-depositor/wallet"
	"github.com/cketh-starter/ckusdc-depositor/workflow"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// depositor holds one wired deposit session
type depositor struct {
	cfg      *config.Config
	asset    token.Asset
	wallet   *wallet.KeyWallet
	chain    *etherman.Client
	workflow *workflow.DepositWorkflow
	storage  db.Storage
	producer messagepush.KafkaProducer
}

func loadConfig(cliCtx *cli.Context) (*config.Config, error) {
	c, err := config.Load(cliCtx.String(flagCfg), cliCtx.String(flagNetwork))
	if err != nil {
		return nil, err
	}
	setupLog(c.Log)
	return c, nil
}

func setupLog(c log.Config) {
	log.Init(c)
}

// signalContext is canceled on interrupt, it carries a trace id for the session logs
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return utils.WithTraceID(ctx), cancel
}

func newAuthorizer(cliCtx *cli.Context, in io.Reader) wallet.Authorizer {
	if cliCtx.Bool(flagYes) {
		return wallet.AutoApprove{}
	}
	return &wallet.PromptAuthorizer{In: in, Out: os.Stderr}
}

func newDepositor(ctx context.Context, c *config.Config, authorizer wallet.Authorizer, out io.Writer) (*depositor, error) {
	d := &depositor{cfg: c, asset: c.NetworkConfig.Asset()}

	var err error
	d.wallet, err = wallet.New(c.Wallet, authorizer)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	d.chain, err = etherman.NewClient(ctx, c.Etherman, c.TokenAddr, c.HelperAddr, d.wallet)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	if chainID := d.chain.ChainID(); !chainID.IsUint64() || chainID.Uint64() != c.L1ChainID {
		return nil, errors.Errorf("node at %s is on chain %s, %d is configured", c.Etherman.URL, chainID.String(), c.L1ChainID)
	}

	if c.Nacos.NacosUrls != "" {
		if err := nacos.InitNacosClient(c.Nacos); err != nil {
			log.Error(err)
			return nil, err
		}
	}
	var store redisstorage.RedisStorage
	if c.Redis.Enabled {
		store, err = redisstorage.NewRedisStorage(c.Redis)
		if err != nil {
			log.Error(err)
			return nil, err
		}
	}
	verifierClient, err := verifier.NewClient(c.Verifier, store)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	d.workflow, err = workflow.New(c.Workflow, c.TokenAddr, c.HelperAddr, d.chain, verifierClient)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	d.workflow.Subscribe(newPrinter(out, d.asset))

	if c.Metrics.Enabled {
		d.workflow.Subscribe(metrics.NewWorkflowObserver(d.asset.Symbol, d.asset.Decimals))
	}
	if c.MessagePush.Enabled {
		d.producer, err = messagepush.NewKafkaProducer(c.MessagePush)
		if err != nil {
			log.Error(err)
			d.close()
			return nil, err
		}
		d.workflow.Subscribe(messagepush.NewWorkflowPusher(d.producer, d.wallet.Address()))
	}
	if c.Journal.Enabled {
		d.storage, err = newJournalStorage(c.Journal)
		if err != nil {
			d.close()
			return nil, err
		}
		d.workflow.Subscribe(db.NewJournal(d.storage))
	}

	log.Infof("depositing %s (%s) from %s through helper %s on chain %d",
		d.asset.Symbol, c.TokenAddr.Hex(), d.wallet.Address().Hex(), c.HelperAddr.Hex(), c.L1ChainID)
	return d, nil
}

func newJournalStorage(c db.Config) (db.Storage, error) {
	err := db.RunMigrations(c)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	storage, err := db.NewStorage(c)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	return storage, nil
}

// close stops the background work and releases the connections
func (d *depositor) close() {
	if d.workflow != nil {
		d.workflow.Reset()
	}
	if d.producer != nil {
		if err := d.producer.Close(); err != nil {
			log.Warnf("error closing kafka producer: %v", err)
		}
	}
	if d.storage != nil {
		d.storage.Close()
	}
}

// start runs the interactive session until quit or an interrupt
func start(cliCtx *cli.Context) error {
	c, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	metrics.Init(c.Metrics)
	in := newLineReader(ctx, os.Stdin)
	d, err := newDepositor(ctx, c, newAuthorizer(cliCtx, in), os.Stdout)
	if err != nil {
		return err
	}
	defer d.close()

	go metrics.StartMetricsHttpServer(ctx, c.Metrics)

	return newSession(d.workflow, d.asset, in, os.Stdout).run(ctx)
}
