package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/ONSdigital/dp-applications-api/auth"
	"github.com/ONSdigital/dp-applications-api/config"
	"github.com/ONSdigital/dp-applications-api/models"
	"github.com/ONSdigital/dp-applications-api/postgres"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/spf13/cobra"
)

// create-provisioner seeds the account that manages commission access. It
// writes directly to postgres so it can run before the API has ever started.
func main() {
	log.Namespace = "create-provisioner"

	if err := newCommand().Execute(); err != nil {
		log.Fatal(context.Background(), "create-provisioner failed", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		email       string
		password    string
		fullName    string
		accessUntil string
	)

	cmd := &cobra.Command{
		Use:          "create-provisioner",
		Short:        "Create or update the provisioner account used to manage commission access",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return createProvisioner(cmd.Context(), email, password, fullName, accessUntil)
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Email address for the provisioner account (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Initial password, rotated on first login (required)")
	cmd.Flags().StringVar(&fullName, "name", "Provisioner", "Full name shown on the account")
	cmd.Flags().StringVar(&accessUntil, "access-until", "", "Last day of access as YYYY-MM-DD (no expiry when omitted)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func createProvisioner(ctx context.Context, email, password, fullName, accessUntil string) error {
	cfg, err := config.Get()
	if err != nil {
		return errors.Wrap(err, "unable to retrieve service configuration")
	}

	if len(password) < cfg.MinStaffPasswordLength {
		return errors.Errorf("password must be at least %d characters", cfg.MinStaffPasswordLength)
	}

	user := &models.User{
		ID:                 uuid.NewV4().String(),
		FullName:           strings.TrimSpace(fullName),
		Email:              models.NormaliseEmail(email),
		Role:               models.RoleProvisioner,
		IsActive:           true,
		MustChangePassword: true,
	}
	if accessUntil != "" {
		day, pErr := time.Parse("2006-01-02", accessUntil)
		if pErr != nil {
			return errors.Wrap(pErr, "access-until must be a date in the form 2006-01-02")
		}
		expiry := models.EndOfDay(day)
		user.AccessExpiresAt = &expiry
	}

	user.PasswordHash, err = auth.HashPassword(password)
	if err != nil {
		return errors.Wrap(err, "unable to hash password")
	}

	postgresDB := &postgres.Postgres{PostgresConfig: cfg.PostgresConfig}
	if err := postgresDB.Init(ctx); err != nil {
		return errors.Wrap(err, "unable to connect to postgres")
	}
	defer func() {
		if cErr := postgresDB.Close(ctx); cErr != nil {
			log.Error(ctx, "failed to close postgres connection", cErr)
		}
	}()

	if err := postgresDB.Bootstrap(ctx); err != nil {
		return errors.Wrap(err, "unable to bootstrap the schema")
	}

	if err := postgresDB.UpsertProvisioner(ctx, user); err != nil {
		return errors.Wrap(err, "unable to upsert the provisioner account")
	}

	event := models.NewProvisioningEvent(user.ID, user.ID, models.ProvisionActionCreate)
	event.Meta = models.EventMeta{"target_email": models.MaskEmail(user.Email), "bootstrap": "true"}
	if err := postgresDB.CreateProvisioningEvent(ctx, event); err != nil {
		log.Warn(ctx, "failed to record provisioning event", log.Data{"error": err.Error()})
	}

	log.Info(ctx, "provisioner account ready", log.Data{"email": models.MaskEmail(user.Email)})
	return nil
}
