package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"company-directory/internal/auth"
	"company-directory/internal/config"
	"company-directory/internal/database"
	"company-directory/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Verified bool   `yaml:"verified"`
}

type EmployeeData struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Address   string `yaml:"address"`
}

type CompanyData struct {
	Name      string         `yaml:"name"`
	ABN       string         `yaml:"abn"`
	Email     string         `yaml:"email"`
	Address   string         `yaml:"address"`
	Employees []EmployeeData `yaml:"employees,omitempty"`
}

// YAML file structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type CompaniesFile struct {
	Companies []CompanyData `yaml:"companies"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, cfg.DatabaseDriver, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(dsn, driver string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   driver,
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
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
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	companies, err := loadCompanies(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}

	userCreated := 0
	for _, userData := range users {
		_, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	companyCreated, employeeCreated, employeeTotal := 0, 0, 0
	for _, companyData := range companies {
		company, created, err := createCompany(db, companyData)
		if err != nil {
			return fmt.Errorf("failed to create company %s: %w", companyData.Name, err)
		}
		if created {
			companyCreated++
		}

		for _, employeeData := range companyData.Employees {
			employeeTotal++
			_, created, err := createEmployee(db, employeeData, company)
			if err != nil {
				return fmt.Errorf("failed to create employee %s for %s: %w", employeeData.Email, companyData.Name, err)
			}
			if created {
				employeeCreated++
			}
		}
	}
	log.Printf("📋 Companies: %d created, %d total", companyCreated, len(companies))
	log.Printf("📋 Employees: %d created, %d total", employeeCreated, employeeTotal)

	return nil
}

// readYAMLFiles decodes every .yaml file under dataDir whose path contains kind
func readYAMLFiles(dataDir, kind string, decode func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := decode(data); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		return nil
	})
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := readYAMLFiles(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allUsers = append(allUsers, file.Users...)
		return nil
	})

	return allUsers, err
}

func loadCompanies(dataDir string) ([]CompanyData, error) {
	var allCompanies []CompanyData

	err := readYAMLFiles(dataDir, "companies", func(data []byte) error {
		var file CompaniesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allCompanies = append(allCompanies, file.Companies...)
		return nil
	})

	return allCompanies, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(userData.Email))

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}

		hash, err := auth.HashPassword(userData.Password)
		if err != nil {
			return nil, false, err
		}

		user = models.User{
			Name:         userData.Name,
			Email:        email,
			PasswordHash: hash,
		}
		if userData.Verified {
			now := time.Now()
			user.EmailVerifiedAt = &now
		}

		if err := db.Create(&user).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create user: %w", err)
		}
		return &user, true, nil
	}

	return &user, false, nil
}

func createCompany(db *gorm.DB, companyData CompanyData) (*models.Company, bool, error) {
	var company models.Company
	if err := db.Where("abn = ?", companyData.ABN).First(&company).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, fmt.Errorf("failed to query company: %w", err)
		}

		company = models.Company{
			Name:    companyData.Name,
			ABN:     companyData.ABN,
			Email:   companyData.Email,
			Address: companyData.Address,
		}
		if err := db.Create(&company).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create company: %w", err)
		}
		return &company, true, nil
	}

	return &company, false, nil
}

// employees have no unique column, so email within a company identifies a seeded row
func createEmployee(db *gorm.DB, employeeData EmployeeData, company *models.Company) (*models.Employee, bool, error) {
	var employee models.Employee
	if err := db.Where("company_id = ? AND email = ?", company.ID, employeeData.Email).First(&employee).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, fmt.Errorf("failed to query employee: %w", err)
		}

		employee = models.Employee{
			CompanyID: company.ID,
			FirstName: employeeData.FirstName,
			LastName:  employeeData.LastName,
			Email:     employeeData.Email,
			Address:   employeeData.Address,
		}
		if err := db.Create(&employee).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create employee: %w", err)
		}
		return &employee, true, nil
	}

	return &employee, false, nil
}
