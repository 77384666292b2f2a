package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"challenge-hub/backend/internal/audit"
	audithandler "challenge-hub/backend/internal/audit/handler"
	auditrepo "challenge-hub/backend/internal/audit/repository"
	authhandler "challenge-hub/backend/internal/auth/handler"
	authservice "challenge-hub/backend/internal/auth/service"
	challengehandler "challenge-hub/backend/internal/challenge/handler"
	challengerepo "challenge-hub/backend/internal/challenge/repository"
	challengeservice "challenge-hub/backend/internal/challenge/service"
	"challenge-hub/backend/internal/config"
	"challenge-hub/backend/internal/db"
	healthhandler "challenge-hub/backend/internal/health/handler"
	"challenge-hub/backend/internal/notification"
	"challenge-hub/backend/internal/notification/producer"
	participationhandler "challenge-hub/backend/internal/participation/handler"
	participationrepo "challenge-hub/backend/internal/participation/repository"
	participationservice "challenge-hub/backend/internal/participation/service"
	"challenge-hub/backend/internal/security"
	"challenge-hub/backend/internal/server"
	"challenge-hub/backend/internal/server/httpctx"
	sessionrepo "challenge-hub/backend/internal/session/repository"
	"challenge-hub/backend/internal/telemetry"
	telemetryotel "challenge-hub/backend/internal/telemetry/otel"
	userrepo "challenge-hub/backend/internal/user/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	providers, err := telemetryotel.NewProviders(ctx, cfg.OTLPEndpoint, "challenge-hub", cfg.OTLPInsecure)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	providers.SetGlobal()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	privateKey, err := security.ParsePrivateKey(cfg.JWTPrivateKey)
	if err != nil {
		log.Fatalf("jwt private key: %v", err)
	}
	publicKey, err := security.ParsePublicKey(cfg.JWTPublicKey)
	if err != nil {
		log.Fatalf("jwt public key: %v", err)
	}
	tokens := security.NewTokenProvider(privateKey, publicKey, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL(), cfg.RefreshTTL())
	hasher := security.NewHasher(cfg.BcryptCost)

	users := userrepo.NewPostgresRepository(conn)
	sessions := sessionrepo.NewPostgresRepository(conn)
	challenges := challengerepo.NewPostgresRepository(conn)
	participations := participationrepo.NewPostgresRepository(conn)
	auditLogs := auditrepo.NewPostgresRepository(conn)

	kafkaProducer, err := producer.NewKafkaProducer(cfg.KafkaBrokersList(), cfg.NotificationsKafkaTopic)
	if err != nil {
		log.Fatalf("kafka: %v", err)
	}
	if kafkaProducer != nil {
		defer kafkaProducer.Close()
	} else {
		log.Println("KAFKA_BROKERS not set, pending notifications disabled")
	}

	authSvc := authservice.NewAuthService(users, sessions, hasher, tokens, cfg.RefreshTTL())
	challengeSvc := challengeservice.NewChallengeService(challenges)
	statusSvc := challengeservice.NewStatusService(challenges)
	var notifier participationservice.Notifier
	if kafkaProducer != nil {
		notifier = notification.NewNotifier(kafkaProducer)
	}
	enrollmentSvc := participationservice.NewEnrollmentService(
		challenges,
		participationservice.PostgresStore{PostgresRepository: participations},
		statusSvc,
		notifier,
	)

	router := server.NewRouter(server.Deps{
		Tokens:         tokens,
		Auditor:        audit.NewLogger(auditLogs, httpctx.ClientIP),
		Emitter:        telemetryotel.NewEventEmitter(providers.LoggerProvider),
		CORSOrigins:    cfg.CORSOrigins(),
		Auth:           authhandler.NewHandler(authSvc),
		Challenges:     challengehandler.NewHandler(challengeSvc),
		Participations: participationhandler.NewHandler(enrollmentSvc, participations),
		AuditLogs:      audithandler.NewHandler(auditLogs),
		Health:         healthhandler.NewHandler(conn),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}

	// Let in-flight async emits drain before tearing down the providers.
	time.Sleep(telemetry.ShutdownDrainDuration)
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Printf("telemetry shutdown: %v", err)
	}
	log.Println("HTTP server stopped")
}
