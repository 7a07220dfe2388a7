package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pandoro-backend/internal/config"
	"pandoro-backend/internal/database"
	"pandoro-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Name     string `yaml:"name"`
	Surname  string `yaml:"surname"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type ProjectData struct {
	Name             string `yaml:"name"`
	AuthorEmail      string `yaml:"author_email"`
	ShortDescription string `yaml:"short_description"`
	Description      string `yaml:"description"`
	Version          string `yaml:"version"`
	Repository       string `yaml:"repository,omitempty"`
}

type GroupData struct {
	Name        string       `yaml:"name"`
	AuthorEmail string       `yaml:"author_email"`
	Description string       `yaml:"description"`
	Members     []MemberData `yaml:"members,omitempty"`
	Projects    []string     `yaml:"projects,omitempty"`
}

type MemberData struct {
	Email  string `yaml:"email"`
	Role   string `yaml:"role"`
	Status string `yaml:"status"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type GroupsFile struct {
	Groups []GroupData `yaml:"groups"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

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

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
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

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var users []UserData
	err := loadFiles(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		users = append(users, file.Users...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	var projects []ProjectData
	err = loadFiles(dataDir, "projects", func(data []byte) error {
		var file ProjectsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		projects = append(projects, file.Projects...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	var groups []GroupData
	err = loadFiles(dataDir, "groups", func(data []byte) error {
		var file GroupsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		groups = append(groups, file.Groups...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to load groups: %w", err)
	}

	// Create users first
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create projects
	projectMap := make(map[string]*models.Project)
	projectCreated := 0
	for _, projectData := range projects {
		project, created, err := createProject(db, projectData, userMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create project %s: %v", projectData.Name, err)
			continue // Continue with other projects
		}
		projectMap[projectData.Name] = project
		if created {
			projectCreated++
		}
	}
	log.Printf("📋 Projects: %d created, %d total", projectCreated, len(projects))

	// Create groups, their members and the shared projects
	groupCreated := 0
	for _, groupData := range groups {
		_, created, err := createGroup(db, groupData, userMap, projectMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create group %s: %v", groupData.Name, err)
			continue // Continue with other groups
		}
		if created {
			groupCreated++
		}
	}
	log.Printf("📋 Groups: %d created, %d total", groupCreated, len(groups))

	return nil
}

// loadFiles passes every YAML file under dataDir whose path contains kind to decode
func loadFiles(dataDir, kind string, decode func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			return decode(data)
		}
		return nil
	})
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", strings.ToLower(userData.Email)).First(&user).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, false, fmt.Errorf("failed to hash password: %w", err)
		}

		user = models.User{
			Name:     userData.Name,
			Surname:  userData.Surname,
			Email:    strings.ToLower(userData.Email),
			Password: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create user: %w", err)
		}
		return &user, true, nil
	}

	return &user, false, nil
}

func createProject(db *gorm.DB, projectData ProjectData, userMap map[string]*models.User) (*models.Project, bool, error) {
	author := userMap[projectData.AuthorEmail]
	if author == nil {
		return nil, false, fmt.Errorf("author %s not found for project %s", projectData.AuthorEmail, projectData.Name)
	}

	var project models.Project
	if err := db.Where("name = ? AND author_id = ?", projectData.Name, author.ID).First(&project).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, fmt.Errorf("failed to query project: %w", err)
		}

		project = models.Project{
			AuthorID:         author.ID,
			Name:             projectData.Name,
			ShortDescription: projectData.ShortDescription,
			Description:      projectData.Description,
			Version:          projectData.Version,
			Repository:       projectData.Repository,
		}
		if err := db.Omit("Author", "Groups", "Updates").Create(&project).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create project: %w", err)
		}
		return &project, true, nil
	}

	return &project, false, nil
}

func createGroup(db *gorm.DB, groupData GroupData, userMap map[string]*models.User, projectMap map[string]*models.Project) (*models.Group, bool, error) {
	author := userMap[groupData.AuthorEmail]
	if author == nil {
		return nil, false, fmt.Errorf("author %s not found for group %s", groupData.AuthorEmail, groupData.Name)
	}

	var group models.Group
	err := db.Where("name = ?", groupData.Name).First(&group).Error
	if err == nil {
		return &group, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("failed to query group: %w", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		group = models.Group{
			AuthorID:    author.ID,
			Name:        groupData.Name,
			Description: groupData.Description,
		}
		if err := tx.Omit("Author", "Members", "Projects").Create(&group).Error; err != nil {
			return fmt.Errorf("failed to create group: %w", err)
		}

		// The author always joins as admin
		members := []models.GroupMember{{
			GroupID:          group.ID,
			UserID:           author.ID,
			Role:             models.RoleAdmin,
			InvitationStatus: models.InvitationStatusJoined,
		}}
		for _, memberData := range groupData.Members {
			user := userMap[memberData.Email]
			if user == nil || user.ID == author.ID {
				log.Printf("⚠️  Warning: skipping member %s of group %s", memberData.Email, groupData.Name)
				continue
			}
			role := models.Role(memberData.Role)
			if !role.IsValid() {
				role = models.RoleDeveloper
			}
			status := models.InvitationStatus(memberData.Status)
			if !status.IsValid() {
				status = models.InvitationStatusPending
			}
			members = append(members, models.GroupMember{
				GroupID:          group.ID,
				UserID:           user.ID,
				Role:             role,
				InvitationStatus: status,
			})
		}
		if err := tx.Omit("User").Create(&members).Error; err != nil {
			return fmt.Errorf("failed to create members: %w", err)
		}

		var shared []models.Project
		for _, name := range groupData.Projects {
			project := projectMap[name]
			if project == nil || project.AuthorID != author.ID {
				log.Printf("⚠️  Warning: skipping project %s of group %s", name, groupData.Name)
				continue
			}
			shared = append(shared, *project)
		}
		if len(shared) > 0 {
			if err := tx.Model(&group).Association("Projects").Append(&shared); err != nil {
				return fmt.Errorf("failed to share projects: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return &group, true, nil
}
