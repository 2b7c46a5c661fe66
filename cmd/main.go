package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"gitlab.com/TitanInd/crowdfunding/internal/config"
	"gitlab.com/TitanInd/crowdfunding/internal/handlers"
	"gitlab.com/TitanInd/crowdfunding/internal/handlers/httphandlers"
	"gitlab.com/TitanInd/crowdfunding/internal/interfaces"
	"gitlab.com/TitanInd/crowdfunding/internal/lib"
	"gitlab.com/TitanInd/crowdfunding/internal/repositories/contracts"
	"gitlab.com/TitanInd/crowdfunding/internal/repositories/contracts/crowdfunding"
	"gitlab.com/TitanInd/crowdfunding/internal/sdk"
	"gitlab.com/TitanInd/crowdfunding/internal/session"
	"gitlab.com/TitanInd/crowdfunding/internal/wallet"
	"golang.org/x/sync/errgroup"
)

func main() {
	err := start()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func start() error {
	var cfg config.Config
	err := config.LoadConfig(&cfg, &os.Args, ".env")
	if err != nil {
		return err
	}

	logCfg := func(level string) lib.LoggerConfig {
		return lib.LoggerConfig{
			Level:    level,
			Color:    cfg.Log.Color,
			IsProd:   cfg.Log.IsProd,
			JSON:     cfg.Log.JSON,
			FilePath: cfg.Log.FilePath,
		}
	}

	log, err := lib.NewLogger(logCfg(cfg.Log.LevelApp))
	if err != nil {
		return err
	}

	contractLog, err := lib.NewLogger(logCfg(cfg.Log.LevelContract))
	if err != nil {
		return err
	}

	sessionLog, err := lib.NewLogger(logCfg(cfg.Log.LevelSession))
	if err != nil {
		return err
	}

	httpLog, err := lib.NewLogger(logCfg(cfg.Log.LevelHTTP))
	if err != nil {
		return err
	}

	defer func() {
		_ = log.Sync()
	}()

	log.Infof("crowdfunding client %s, environment %s", config.BuildVersion, cfg.Environment)

	abiJSON, err := loadABI(cfg.Contract.ABIPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-shutdownChan
		log.Warnf("Received signal: %s", s)
		cancel()

		s = <-shutdownChan
		log.Warnf("Received signal: %s. Forcing exit...", s)
		os.Exit(1)
	}()

	userWallet := wallet.NewWallet(cfg.Wallet.Mnemonic, cfg.Wallet.PrivateKey, cfg.Wallet.AccountIndex, log.Named("WALLET"))
	if cfg.Wallet.AutoConnect {
		err = userWallet.Connect(ctx)
		if err != nil {
			return err
		}
	} else if !userWallet.HasCredentials() {
		log.Warn("wallet credentials are not configured, running read-only")
	}

	holder := sdk.NewHolder(cfg.Blockchain.EthNodeAddress, cfg.Blockchain.DialTimeout, cfg.Blockchain.DialInterval, sdk.DefaultDialer, userWallet, log.Named("SDK"))
	if cfg.Blockchain.ChainID != 0 {
		holder.SetExpectedChainID(big.NewInt(cfg.Blockchain.ChainID))
	}

	binder := contracts.NewBinder(cfg.Blockchain.EthLegacyTx, cfg.Blockchain.TxConfirmTimeout, contractLog.Named("CONTRACT"))
	sess := session.NewSession(common.HexToAddress(cfg.Contract.Address), binder, userWallet, sessionLog.Named("SESSION"))
	controller := session.NewController(sess, sdk.DepsSource(holder, userWallet, abiJSON), cfg.Session.SyncInterval, sessionLog.Named("CONTROLLER"))

	handl := httphandlers.NewHTTPHandler(sess, userWallet, controller, &cfg, httpLog.Named("HTTP"))
	server := handlers.NewHTTPServer(cfg.Web.Address, handl, httpLog.Named("HTTP"))

	runnables := []interfaces.Runnable{holder, controller, server}

	g, subCtx := errgroup.WithContext(ctx)
	for _, r := range runnables {
		r := r
		g.Go(func() error {
			return r.Run(subCtx)
		})
	}

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Errorf("App exited due to %s", err)
		return err
	}

	log.Info("App exited")
	return nil
}

// loadABI reads the contract ABI from path, falling back to the embedded definition
func loadABI(path string) (string, error) {
	if path == "" {
		return crowdfunding.CrowdfundingMetaData.ABI, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read contract abi %s: %w", path, err)
	}
	return string(data), nil
}
