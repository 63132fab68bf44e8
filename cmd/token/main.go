package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ozon-logistics-api/internal/config"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/authenticating"
)

var rootCmd = &cobra.Command{
	Use:   "token <client>",
	Short: "Issue a service token for an internal API client",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Fatal("token not issued")
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	token, expiresAt, err := authenticating.NewService(cfg, nil).IssueToken(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	logrus.WithFields(logrus.Fields{
		"client":     args[0],
		"expires_at": expiresAt.Format(time.RFC3339),
	}).Info("token issued")

	return nil
}
