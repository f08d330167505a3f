package main

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"cesizen/internal/auth"
	"cesizen/internal/config"
	"cesizen/internal/db"
	"cesizen/internal/model"
	"cesizen/internal/repository"
)

const seedPassword = "Hola123"

// Holmes-Rahe life events with their stress weights.
var seedQuestions = []model.Question{
	{Question: "Have you recently experienced the death of your spouse?", Score: 100},
	{Question: "Have you recently divorced?", Score: 73},
	{Question: "Have you experienced a marital separation?", Score: 65},
	{Question: "Have you served a jail term?", Score: 63},
	{Question: "Have you lost a close family member?", Score: 63},
	{Question: "Have you had a personal injury or illness?", Score: 53},
	{Question: "Have you recently gotten married?", Score: 50},
	{Question: "Have you been fired from work?", Score: 47},
	{Question: "Have you reconciled with your spouse?", Score: 45},
	{Question: "Have you retired?", Score: 45},
	{Question: "Has there been a change in a family member's health?", Score: 44},
	{Question: "Are you pregnant?", Score: 40},
	{Question: "Are you having sexual difficulties?", Score: 39},
	{Question: "Has a new member joined the family?", Score: 39},
	{Question: "Have you gone through a business readjustment?", Score: 39},
	{Question: "Has your financial situation changed?", Score: 38},
	{Question: "Have you lost a close friend?", Score: 37},
	{Question: "Have you changed to a different line of work?", Score: 36},
	{Question: "Have arguments with your spouse increased?", Score: 35},
	{Question: "Have you taken on a large loan?", Score: 31},
}

var seedCategories = map[string][]model.Article{
	"Stress Management": {
		{
			Title:   "The benefits of daily meditation",
			Content: "Meditation is an ancient practice that has grown in popularity in recent years, and for good reason. Practicing mindfulness meditation for as little as ten minutes a day can significantly reduce your stress level.",
		},
		{
			Title:   "Breathing techniques for anxiety",
			Content: "Controlled breathing is one of the fastest ways to calm the nervous system. Slow, deep breaths activate the parasympathetic response and lower heart rate within minutes.",
		},
	},
	"Emotional Well-being": {
		{
			Title:   "Keeping an emotion journal",
			Content: "Writing down what you feel, without judging it, helps identify recurring triggers and patterns. A few lines every evening are enough to build the habit.",
		},
	},
	"Social Relationships": {
		{
			Title:   "The importance of work-life balance",
			Content: "In a performance-driven society, keeping a healthy balance between work and personal life has become a real challenge, yet it is essential to preventing burnout.",
		},
	},
	"Adapting to Change": {},
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Info().Msg("starting seed")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect")
	}

	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Category{},
		&model.Article{},
		&model.Question{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	ctx := context.Background()
	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	questionRepo := repository.NewQuestionRepository(gormDB)

	adminRole := ensureRole(ctx, roleRepo, model.RoleAdmin)
	userRole := ensureRole(ctx, roleRepo, model.RoleUser)

	ensureUser(ctx, userRepo, model.User{
		FirstName: "Admin",
		LastName:  "User",
		Email:     "admin@example.com",
		Username:  "admin",
		Activated: true,
		RoleID:    adminRole.ID,
	})
	ensureUser(ctx, userRepo, model.User{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "user@example.com",
		Username:  "user",
		Activated: true,
		RoleID:    userRole.ID,
	})

	existingCategories, err := categoryRepo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list categories")
	}
	byName := make(map[string]model.Category, len(existingCategories))
	for _, c := range existingCategories {
		byName[c.CategoryName] = c
	}

	created := 0
	for name, articles := range seedCategories {
		category, ok := byName[name]
		if !ok {
			category = model.Category{CategoryName: name}
			if err := categoryRepo.Create(ctx, &category); err != nil {
				log.Fatal().Err(err).Str("category", name).Msg("create category")
			}
			for i := range articles {
				articles[i].CategoryID = category.ID
				if err := articleRepo.Create(ctx, &articles[i]); err != nil {
					log.Fatal().Err(err).Str("title", articles[i].Title).Msg("create article")
				}
			}
			created++
		}
	}
	log.Info().Int("created", created).Msg("categories seeded")

	existingQuestions, err := questionRepo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list questions")
	}
	if len(existingQuestions) == 0 {
		for i := range seedQuestions {
			if err := questionRepo.Create(ctx, &seedQuestions[i]); err != nil {
				log.Fatal().Err(err).Msg("create question")
			}
		}
		log.Info().Int("created", len(seedQuestions)).Msg("questions seeded")
	}

	log.Info().Msg("seed completed")
}

func ensureRole(ctx context.Context, repo repository.RoleRepository, name string) *model.Role {
	role, err := repo.FindByName(ctx, name)
	if err == nil {
		return role
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal().Err(err).Str("role", name).Msg("find role")
	}
	role = &model.Role{RoleName: name}
	if err := repo.Create(ctx, role); err != nil {
		log.Fatal().Err(err).Str("role", name).Msg("create role")
	}
	log.Info().Str("role", name).Msg("role created")
	return role
}

func ensureUser(ctx context.Context, repo repository.UserRepository, user model.User) {
	if _, err := repo.FindByEmail(ctx, user.Email); err == nil {
		return
	}
	hashed, err := auth.HashPassword(seedPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("hash seed password")
	}
	user.Password = hashed
	if err := repo.Create(ctx, &user); err != nil {
		log.Fatal().Err(err).Str("email", user.Email).Msg("create user")
	}
	log.Info().Str("email", user.Email).Msg("user created")
}
