package domain

import (
	"testing"
	"time"
)

func TestChallenge_CanJoin(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name      string
		challenge Challenge
		want      bool
	}{
		{"empty challenge", Challenge{}, true},
		{"at cap", Challenge{ParticipationsCount: 2}, false},
		{"over cap", Challenge{ParticipationsCount: 5}, false},
		{"at cap but sponsored", Challenge{ParticipationsCount: 2, Sponsored: true}, true},
		{"under cap", Challenge{ParticipationsCount: 1}, true},
		{"deadline passed", Challenge{SubmissionEndsAt: &past}, false},
		{"deadline passed and sponsored", Challenge{Sponsored: true, SubmissionEndsAt: &past}, false},
		{"deadline ahead", Challenge{SubmissionEndsAt: &future}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.challenge.CanJoin(now); got != tc.want {
				t.Errorf("CanJoin = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestChallenge_DeriveStatus(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)

	cases := []struct {
		name      string
		challenge Challenge
		count     int
		want      Status
	}{
		{"default", Challenge{}, 0, StatusDraft},
		{"open flag", Challenge{Open: true}, 0, StatusOpen},
		{"sponsored counts as open", Challenge{Sponsored: true}, 0, StatusOpen},
		{"full at cap", Challenge{Open: true}, 2, StatusFull},
		{"sponsored never full", Challenge{Sponsored: true}, 10, StatusOpen},
		{"closed past deadline", Challenge{Open: true, SubmissionEndsAt: &past}, 0, StatusClosed},
		{"closed wins over full", Challenge{SubmissionEndsAt: &past}, 2, StatusClosed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.challenge.DeriveStatus(tc.count, now); got != tc.want {
				t.Errorf("DeriveStatus = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestChallenge_Validate(t *testing.T) {
	c := &Challenge{CreatorID: "u1", Title: "Weekly sketch"}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if c.Status != StatusDraft {
		t.Errorf("Status should default to draft, got %q", c.Status)
	}
	if err := (&Challenge{Title: "x"}).Validate(); err == nil {
		t.Error("missing creator should fail")
	}
	if err := (&Challenge{CreatorID: "u1"}).Validate(); err == nil {
		t.Error("missing title should fail")
	}
}
