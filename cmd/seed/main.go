// Command seed loads demo data for local development: a handful of member
// profiles, three sample hackathons, and one recruiting team per hackathon.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"go-hackmate-backend/config"
	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/internal/repository/postgres"
	"go-hackmate-backend/pkg/database"
	"go-hackmate-backend/pkg/logger"

	"github.com/google/uuid"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	ctx := context.Background()
	now := time.Now()

	profileRepo := postgres.NewProfileRepository(dbPool)
	teamRepo := postgres.NewTeamRepository(dbPool)
	hackathonRepo := postgres.NewHackathonRepository(dbPool)

	organizer := uuid.NewString()

	profiles := []domain.Profile{
		{
			UserID:          organizer,
			Bio:             "Full-stack tinkerer, serial hackathon organizer.",
			Skills:          domain.NewSkillSet("Go", "React", "PostgreSQL"),
			ExperienceLevel: domain.ExperienceAdvanced,
			Location:        "San Francisco, USA",
			Timezone:        "America/Los_Angeles",
			PreferredRoles:  domain.NewSkillSet("backend", "devops"),
			IsAvailable:     true,
		},
		{
			UserID:          uuid.NewString(),
			Bio:             "Frontend developer who cares about accessible UIs.",
			Skills:          domain.NewSkillSet("TypeScript", "React", "Figma"),
			ExperienceLevel: domain.ExperienceIntermediate,
			Location:        "Berlin, Germany",
			Timezone:        "Europe/Berlin",
			PreferredRoles:  domain.NewSkillSet("frontend", "design"),
			IsAvailable:     true,
		},
		{
			UserID:          uuid.NewString(),
			Bio:             "ML engineer, mostly computer vision.",
			Skills:          domain.NewSkillSet("Python", "Machine Learning", "TensorFlow"),
			ExperienceLevel: domain.ExperienceExpert,
			Location:        "Bangalore, India",
			Timezone:        "Asia/Kolkata",
			PreferredRoles:  domain.NewSkillSet("ai_ml", "data"),
			IsAvailable:     true,
		},
		{
			UserID:          uuid.NewString(),
			Bio:             "Mobile developer, shipped two apps to the stores.",
			Skills:          domain.NewSkillSet("Swift", "Kotlin", "React Native"),
			ExperienceLevel: domain.ExperienceBeginner,
			Location:        "Austin, USA",
			Timezone:        "America/Chicago",
			PreferredRoles:  domain.NewSkillSet("mobile"),
			IsAvailable:     true,
		},
	}

	for i := range profiles {
		if err := profileRepo.Upsert(ctx, &profiles[i]); err != nil {
			logger.Log.Error("Failed to seed profile", "user_id", profiles[i].UserID, "error", err)
			os.Exit(1)
		}
	}
	logger.Log.Info("Seeded profiles", "count", len(profiles))

	hackathons := []domain.Hackathon{
		{
			Title:                "AI for Good Hackathon",
			Description:          "Build AI solutions that make a positive impact on society.",
			LocationType:         domain.LocationHybrid,
			LocationDetails:      "San Francisco, CA + Remote",
			StartDate:            now.AddDate(0, 0, 30),
			EndDate:              now.AddDate(0, 0, 32),
			RegistrationDeadline: now.AddDate(0, 0, 25),
			MaxTeamSize:          5,
			MinTeamSize:          2,
			Themes:               domain.NewSkillSet("AI", "Social Impact", "Healthcare", "Education"),
			RequiredSkills:       domain.NewSkillSet("Python", "Machine Learning", "TensorFlow"),
			Organizer:            "TechForGood Foundation",
			Status:               domain.HackathonUpcoming,
			CreatedBy:            organizer,
		},
		{
			Title:                "Mobile App Innovation Challenge",
			Description:          "Create innovative mobile applications that solve real-world problems.",
			LocationType:         domain.LocationRemote,
			LocationDetails:      "Online via Discord",
			StartDate:            now.AddDate(0, 0, 45),
			EndDate:              now.AddDate(0, 0, 47),
			RegistrationDeadline: now.AddDate(0, 0, 40),
			MaxTeamSize:          4,
			MinTeamSize:          2,
			Themes:               domain.NewSkillSet("Mobile", "Innovation", "User Experience"),
			RequiredSkills:       domain.NewSkillSet("React Native", "Swift", "Kotlin", "UI/UX Design"),
			Organizer:            "Mobile Dev Community",
			Status:               domain.HackathonUpcoming,
			CreatedBy:            organizer,
		},
		{
			Title:                "Blockchain & Web3 Hackathon",
			Description:          "Build the future of decentralized applications and Web3.",
			LocationType:         domain.LocationOnsite,
			LocationDetails:      "Austin, TX",
			StartDate:            now.AddDate(0, 0, 60),
			EndDate:              now.AddDate(0, 0, 62),
			RegistrationDeadline: now.AddDate(0, 0, 55),
			MaxTeamSize:          6,
			MinTeamSize:          3,
			Themes:               domain.NewSkillSet("Blockchain", "DeFi", "NFTs", "Smart Contracts"),
			RequiredSkills:       domain.NewSkillSet("Solidity", "JavaScript", "Blockchain"),
			Organizer:            "Crypto Innovators",
			Status:               domain.HackathonUpcoming,
			CreatedBy:            organizer,
		},
	}

	teamNames := []string{"Neural Knights", "Pocket Rockets", "Chain Gang"}
	teamSkills := []domain.SkillSet{
		domain.NewSkillSet("Python", "Machine Learning"),
		domain.NewSkillSet("React Native", "UI/UX Design"),
		domain.NewSkillSet("Solidity", "JavaScript"),
	}

	for i := range hackathons {
		if err := hackathonRepo.Create(ctx, &hackathons[i]); err != nil {
			logger.Log.Error("Failed to seed hackathon", "title", hackathons[i].Title, "error", err)
			os.Exit(1)
		}

		team := &domain.Team{
			Name:           teamNames[i],
			Description:    "Demo team seeded for local development.",
			HackathonID:    hackathons[i].ID,
			LeaderID:       organizer,
			IsRecruiting:   true,
			MaxMembers:     hackathons[i].MaxTeamSize,
			RequiredSkills: teamSkills[i],
			ProjectIdea:    "To be decided at the kickoff.",
		}
		if err := teamRepo.Create(ctx, team); err != nil {
			logger.Log.Error("Failed to seed team", "name", team.Name, "error", err)
			os.Exit(1)
		}
		membership := &domain.TeamMembership{
			TeamID:   team.ID,
			UserID:   organizer,
			Role:     "leader",
			Status:   domain.MembershipAccepted,
			JoinedAt: now,
		}
		if err := teamRepo.CreateMembership(ctx, membership); err != nil {
			logger.Log.Error("Failed to seed membership", "team", team.Name, "error", err)
			os.Exit(1)
		}
	}
	logger.Log.Info("Seeded hackathons and teams", "count", len(hackathons))
}
