package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/collabops/webex-provisioner/pkg/config"
	"github.com/collabops/webex-provisioner/pkg/logger"
	"github.com/collabops/webex-provisioner/pkg/provision"
	"github.com/collabops/webex-provisioner/pkg/version"
	"github.com/collabops/webex-provisioner/pkg/webex"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	exitCodeProvisioningFailure = 1
	exitCodeMissingCredential   = 2
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		log.Errorf("configuration: %s", err)
		if errors.Is(err, config.ErrMissingToken) {
			os.Exit(exitCodeMissingCredential)
		}
		os.Exit(exitCodeProvisioningFailure)
	}

	lg, err := logger.GetLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Errorf("logger: %s", err)
		os.Exit(exitCodeProvisioningFailure)
	}

	err = run(cfg, lg)
	if err != nil {
		lg.Errorf("provisioning failed: %s", err)
		os.Exit(exitCodeProvisioningFailure)
	}
}

func run(cfg *config.Config, lg logger.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-signals
		lg.Infof("received signal %s, terminating...", sig)
		cancel()
	}()

	lg = lg.WithCorrelationID(uuid.New())
	lg.Infof("webex-provisioner version %s", version.Version())

	client := webex.New(cfg.APIURL, cfg.APIVersion, cfg.APIToken, nil)

	return provision.New(client, lg).Run(ctx, cfg.TeamName, cfg.Rooms)
}
