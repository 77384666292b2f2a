// seed inserts development sample data for local testing.
// Idempotent: skips inserts if the dev user (dev@example.com) already exists.
package main

import (
	"context"
	"log"
	"time"

	challengedomain "challenge-hub/backend/internal/challenge/domain"
	challengerepo "challenge-hub/backend/internal/challenge/repository"
	"challenge-hub/backend/internal/config"
	"challenge-hub/backend/internal/db"
	participationdomain "challenge-hub/backend/internal/participation/domain"
	participationrepo "challenge-hub/backend/internal/participation/repository"
	"challenge-hub/backend/internal/security"
	userdomain "challenge-hub/backend/internal/user/domain"
	userrepo "challenge-hub/backend/internal/user/repository"
)

const (
	devUserEmail    = "dev@example.com"
	memberEmail     = "member@example.com"
	devPassword     = "Devpassword123!"
	devUserID       = "dev-user-001"
	devUser2ID      = "dev-user-002"
	devChallengeID  = "dev-challenge-001"
	openChallengeID = "dev-challenge-002"
	devInviteToken  = "dev-invite-token-001"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()
	users := userrepo.NewPostgresRepository(conn)
	challenges := challengerepo.NewPostgresRepository(conn)
	participations := participationrepo.NewPostgresRepository(conn)

	existing, err := users.GetByEmail(ctx, devUserEmail)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	if existing != nil {
		log.Println("seed: dev user already exists, nothing to do")
		return
	}

	hasher := security.NewHasher(cfg.BcryptCost)
	passwordHash, err := hasher.Hash([]byte(devPassword))
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	now := time.Now().UTC()
	for _, u := range []*userdomain.User{
		{ID: devUserID, Email: devUserEmail, Name: "Dev Creator", PasswordHash: passwordHash, Status: userdomain.UserStatusActive, CreatedAt: now, UpdatedAt: now},
		{ID: devUser2ID, Email: memberEmail, Name: "Dev Member", PasswordHash: passwordHash, Status: userdomain.UserStatusActive, CreatedAt: now, UpdatedAt: now},
	} {
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("seed user %s: %v", u.Email, err)
		}
	}

	ends := now.Add(30 * 24 * time.Hour)
	for _, c := range []*challengedomain.Challenge{
		{
			ID: devChallengeID, CreatorID: devUserID, Title: "Invite-only build week",
			Description: "Join via invitation token.", InvitationToken: devInviteToken,
			SubmissionEndsAt: &ends, Status: challengedomain.StatusDraft,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: openChallengeID, CreatorID: devUserID, Title: "Open sprint",
			Description: "Anyone can join, auto-accepted.", InvitationToken: "dev-invite-token-002",
			Open: true, SubmissionEndsAt: &ends, Status: challengedomain.StatusOpen,
			CreatedAt: now, UpdatedAt: now,
		},
	} {
		if err := challenges.Create(ctx, c); err != nil {
			log.Fatalf("seed challenge %s: %v", c.Title, err)
		}
	}

	tx, err := participations.Begin(ctx)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	p := &participationdomain.Participation{
		ID: "dev-participation-001", UserID: devUser2ID, ChallengeID: devChallengeID,
		AcceptationStatus: participationdomain.StatusPending,
		CreatedAt:         now, UpdatedAt: now,
	}
	if err := tx.Insert(ctx, p); err != nil {
		_ = tx.Rollback()
		log.Fatalf("seed participation: %v", err)
	}
	if err := tx.Commit(); err != nil {
		log.Fatalf("seed participation: %v", err)
	}

	log.Printf("seed: done (login as %s / %s)", devUserEmail, devPassword)
}
