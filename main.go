package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"asafs_backend/internals/configs"
	database "asafs_backend/internals/databases"
	paymentService "asafs_backend/internals/features/payment/donations/service"
	"asafs_backend/internals/helpers/mailer"
	"asafs_backend/internals/helpers/storage"
	routes "asafs_backend/internals/route"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := configs.NewLogger(cfg.Env)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg configs.Config, log zerolog.Logger) error {
	// 🔌 DB connect + pool + warm-up
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	if err := database.TunePool(db); err != nil {
		return err
	}
	if err := database.Ping(context.Background(), db); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	images, uploadDir, err := newImageStore(cfg, log)
	if err != nil {
		return err
	}

	app := routes.NewApp(routes.Deps{
		DB:        db,
		Config:    cfg,
		Log:       log,
		Mailer:    newMailer(cfg, log),
		Images:    images,
		Payments:  newPayments(cfg, log),
		UploadDir: uploadDir,
	})

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		errCh <- app.Listen(addr)
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.ShutdownWithContext(ctx)
}

func newMailer(cfg configs.Config, log zerolog.Logger) *mailer.Mailer {
	if !cfg.SMTPEnabled() {
		log.Warn().Msg("SMTP not configured, emails will be skipped")
		return mailer.New(mailer.NopSender{Log: log}, log)
	}
	return mailer.New(mailer.NewSMTPSender(mailer.SMTPConfig{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	}), log)
}

// newImageStore returns S3 when a bucket is configured, otherwise the local
// upload directory together with its path for static serving.
func newImageStore(cfg configs.Config, log zerolog.Logger) (storage.ImageStore, string, error) {
	if cfg.S3Enabled() {
		store, err := storage.NewS3Store(context.Background(), cfg.S3Bucket, cfg.AWSRegion)
		if err != nil {
			return nil, "", err
		}
		log.Info().Str("bucket", cfg.S3Bucket).Msg("images stored in S3")
		return store, "", nil
	}
	store, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		return nil, "", err
	}
	return store, store.BasePath(), nil
}

func newPayments(cfg configs.Config, log zerolog.Logger) *paymentService.PaymentService {
	stripe := paymentService.NewStripeCheckout(paymentService.StripeConfig{
		SecretKey:   cfg.StripeSecretKey,
		FrontendURL: cfg.FrontendURL,
	})
	maisha := paymentService.NewMaishaPayClient(paymentService.MaishaPayConfig{
		APIURL:      cfg.MaishaPayAPIURL,
		APIKey:      cfg.MaishaPayAPIKey,
		MerchantID:  cfg.MaishaPayMerchantID,
		CallbackURL: cfg.MaishaPayCallbackURL(),
	}, &http.Client{})

	var midtrans paymentService.HostedProvider
	if cfg.MidtransEnabled() {
		midtrans = paymentService.NewMidtransSnap(cfg.MidtransServerKey, cfg.MidtransUseProd)
		log.Info().Bool("production", cfg.MidtransUseProd).Msg("midtrans snap enabled")
	}
	return paymentService.NewPaymentService(stripe, midtrans, maisha)
}
