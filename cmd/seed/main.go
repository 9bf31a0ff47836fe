// Command seed populates a development database with a demo recruiter, a demo
// job seeker and the fixture job postings.
package main

import (
	"context"
	"flag"
	"log"

	"careerflow/internal/bootstrap"
	"careerflow/internal/config"
	"careerflow/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	extra := flag.Int("extra", 0, "Number of generated jobs to add on top of the fixtures")
	applications := flag.Int("applications", 0, "Number of recruiter jobs the demo seeker applies to")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	bootstrap.ConfigureLogger(cfg)

	rt, err := bootstrap.InitRuntime(cfg, bootstrap.Options{ApplySchema: true})
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = rt.Close() }()

	s, err := seed.NewSeeder(rt.DB)
	if err != nil {
		log.Fatalf("Failed to load fixtures: %v", err)
	}

	res, err := s.Run(context.Background(), seed.Options{ExtraJobs: *extra, Applications: *applications})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d jobs for %s", len(res.Jobs), res.Recruiter.Email)
	log.Printf("Recruiter login: %s / 123", res.Recruiter.Email)
	log.Printf("Job seeker login: %s / password123", res.Seeker.Email)
}
