package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"teamup-backend/internal/auth"
	"teamup-backend/internal/config"
	"teamup-backend/internal/database"
	"teamup-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Account   string   `yaml:"account"`
	Username  string   `yaml:"username"`
	Email     string   `yaml:"email"`
	Phone     string   `yaml:"phone,omitempty"`
	AvatarURL string   `yaml:"avatar_url,omitempty"`
	Profile   string   `yaml:"profile,omitempty"`
	Gender    int      `yaml:"gender"`
	Role      string   `yaml:"role"`
	Tags      []string `yaml:"tags"`
}

type TeamData struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	OwnerAccount  string   `yaml:"owner_account"`
	MaxNum        int      `yaml:"max_num"`
	Status        string   `yaml:"status"`
	Password      string   `yaml:"password,omitempty"`
	ExpireInHours int      `yaml:"expire_in_hours,omitempty"`
	Members       []string `yaml:"members,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	users, err := loadDataFromYAMLFiles(db, "scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	// Print a bearer token per seeded user so the API can be exercised right away
	tokens, err := auth.NewTokenService(cfg.JWTSecret, 24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}
	for _, user := range users {
		token, err := tokens.GenerateJWT(user)
		if err != nil {
			log.Fatalf("Failed to issue token for %s: %v", user.Account, err)
		}
		fmt.Printf("%-16s %s\n", user.Account, token)
	}

	log.Println("Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress SQL and "record not found" logs during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) ([]*models.User, error) {
	var usersFile UsersFile
	if err := readYAMLFiles(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		usersFile.Users = append(usersFile.Users, file.Users...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	var teamsFile TeamsFile
	if err := readYAMLFiles(dataDir, "teams", func(data []byte) error {
		var file TeamsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		teamsFile.Teams = append(teamsFile.Teams, file.Teams...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}

	userMap := make(map[string]*models.User)
	users := make([]*models.User, 0, len(usersFile.Users))
	userCreated := 0
	for _, userData := range usersFile.Users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.Account, err)
		}
		userMap[userData.Account] = user
		users = append(users, user)
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(usersFile.Users))

	teamCreated := 0
	for _, teamData := range teamsFile.Teams {
		created, err := createTeam(db, teamData, userMap)
		if err != nil {
			return nil, fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(teamsFile.Teams))

	return users, nil
}

// readYAMLFiles calls fn for every .yaml file under dataDir whose path contains kind
func readYAMLFiles(dataDir, kind string, fn func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return fn(data)
	})
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	err := db.Where("account = ?", userData.Account).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	role := models.UserRole(userData.Role)
	if !role.IsValid() {
		role = models.UserRoleUser
	}

	user = models.User{
		Account:   userData.Account,
		Username:  userData.Username,
		Email:     userData.Email,
		Phone:     userData.Phone,
		AvatarURL: userData.AvatarURL,
		Profile:   userData.Profile,
		Gender:    userData.Gender,
		Role:      role,
		Tags:      datatypes.JSONSlice[string](userData.Tags),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, true, nil
}

// createTeam inserts the team with its owner and listed members as memberships.
// Teams are matched by name and owner; existing ones are left untouched.
func createTeam(db *gorm.DB, teamData TeamData, userMap map[string]*models.User) (bool, error) {
	owner := userMap[teamData.OwnerAccount]
	if owner == nil {
		return false, fmt.Errorf("owner %s not found for team %s", teamData.OwnerAccount, teamData.Name)
	}

	var existing models.Team
	err := db.Where("name = ? AND owner_id = ?", teamData.Name, owner.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query team: %w", err)
	}

	status, ok := models.ParseTeamStatus(teamData.Status)
	if !ok {
		status = models.TeamStatusPublic
	}

	team := models.Team{
		Name:        teamData.Name,
		Description: teamData.Description,
		MaxNum:      teamData.MaxNum,
		Status:      status,
		OwnerID:     owner.ID,
	}
	if status == models.TeamStatusSecret {
		team.Password = teamData.Password
	}
	if teamData.ExpireInHours > 0 {
		expire := time.Now().Add(time.Duration(teamData.ExpireInHours) * time.Hour)
		team.ExpireTime = &expire
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		joined := time.Now()
		accounts := append([]string{teamData.OwnerAccount}, teamData.Members...)
		if len(accounts) > team.MaxNum {
			return fmt.Errorf("team %s lists %d members but holds %d", team.Name, len(accounts), team.MaxNum)
		}
		for i, account := range accounts {
			member := userMap[account]
			if member == nil {
				return fmt.Errorf("member %s not found", account)
			}
			// owner first, the rest in listed order
			membership := models.Membership{
				UserID:   member.ID,
				TeamID:   team.ID,
				JoinTime: joined.Add(time.Duration(i) * time.Millisecond),
			}
			if err := tx.Create(&membership).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
