package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alecgard/mentorloop/internal/config"
	"github.com/alecgard/mentorloop/internal/message"
	"github.com/alecgard/mentorloop/internal/platform"
	"github.com/alecgard/mentorloop/internal/session"
	"github.com/alecgard/mentorloop/internal/user"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo mentors, mentees, sessions, and messages",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

type demoUser struct {
	name       string
	email      string
	role       string
	bio        string
	skills     []string
	experience string
	goals      []string
}

var demoUsers = []demoUser{
	{
		name:       "Sarah Chen",
		email:      "sarah.chen@example.com",
		role:       user.RoleMentor,
		bio:        "Staff engineer focused on distributed systems and developer platforms. Happy to help with system design interviews and career ladders.",
		skills:     []string{"Go", "Distributed Systems", "System Design"},
		experience: "10+ years",
	},
	{
		name:       "Marcus Johnson",
		email:      "marcus.johnson@example.com",
		role:       user.RoleMentor,
		bio:        "Product leader who moved from engineering into management. I mentor on stakeholder communication and the IC-to-manager transition.",
		skills:     []string{"Product Strategy", "Leadership", "Communication"},
		experience: "8 years",
	},
	{
		name:       "Elena Rodriguez",
		email:      "elena.rodriguez@example.com",
		role:       user.RoleMentor,
		bio:        "Design systems specialist. I review portfolios and help designers grow into senior roles.",
		skills:     []string{"UX Design", "Design Systems", "Portfolio Review"},
		experience: "6 years",
	},
	{
		name:  "Alex Kim",
		email: "alex.kim@example.com",
		role:  user.RoleMentee,
		goals: []string{"Land a senior engineering role", "Improve system design skills"},
	},
	{
		name:  "Jordan Price",
		email: "jordan.price@example.com",
		role:  user.RoleMentee,
		goals: []string{"Transition into product management"},
	},
}

const demoPassword = "password123"

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client := platform.NewClient(cfg.Platform.BaseURL, cfg.Platform.Timeout)

	// Check if seed has already run.
	existing, err := client.FetchUsers(ctx)
	if err != nil {
		return fmt.Errorf("checking existing users: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("demo data already exists, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("hashing demo password: %w", err)
	}

	created := make([]user.User, 0, len(demoUsers))
	for _, d := range demoUsers {
		u, err := client.CreateUser(ctx, user.User{
			ID:         uuid.NewString(),
			Name:       d.name,
			Email:      d.email,
			Password:   string(hash),
			Role:       d.role,
			Bio:        d.bio,
			Skills:     d.skills,
			Experience: d.experience,
			Goals:      d.goals,
			CreatedAt:  time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("creating user %q: %w", d.name, err)
		}
		slog.Info("created user", "name", u.Name, "role", u.Role, "id", u.ID)
		created = append(created, *u)
	}

	mentor, mentee := created[0], created[3]

	sess, err := client.CreateSession(ctx, session.Session{
		ID:        uuid.NewString(),
		MentorID:  mentor.ID,
		MenteeID:  mentee.ID,
		Title:     "System design deep dive",
		DateTime:  time.Now().Add(72 * time.Hour).UTC(),
		Duration:  60,
		Status:    session.StatusScheduled,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("creating demo session: %w", err)
	}
	slog.Info("created session", "id", sess.ID, "title", sess.Title)

	msgs := []message.Message{
		{
			ID:         uuid.NewString(),
			SenderID:   mentee.ID,
			ReceiverID: mentor.ID,
			Content:    "Hi Sarah, thanks for accepting my session request. Anything I should prepare?",
			Timestamp:  time.Now().Add(-2 * time.Hour).UTC(),
			Read:       true,
		},
		{
			ID:         uuid.NewString(),
			SenderID:   mentor.ID,
			ReceiverID: mentee.ID,
			Content:    "Looking forward to it! Bring a system you have built recently and we will walk through the trade-offs together.",
			Timestamp:  time.Now().Add(-1 * time.Hour).UTC(),
		},
	}
	for _, m := range msgs {
		if _, err := client.CreateMessage(ctx, m); err != nil {
			return fmt.Errorf("creating demo message: %w", err)
		}
	}

	fmt.Printf("\n=== Demo Data Seeded ===\n")
	fmt.Printf("Users:     %d (3 mentors, 2 mentees)\n", len(created))
	fmt.Printf("Password:  %s (all accounts)\n", demoPassword)
	fmt.Printf("\nTry it:\n")
	fmt.Printf("  curl -X POST localhost:8080/api/v1/auth/login -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", mentee.Email, demoPassword)
	fmt.Printf("  curl localhost:8080/api/v1/mentors?skill=Go\n")

	return nil
}
