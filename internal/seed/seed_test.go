package seed

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jobboard-dev/jobboard/internal/models"
	"github.com/jobboard-dev/jobboard/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	for _, model := range []interface{}{&models.User{}, &models.Job{}, &models.Application{}} {
		if err := database.AutoMigrate(model); err != nil {
			t.Fatalf("failed to migrate: %v", err)
		}
	}

	t.Cleanup(func() {
		sqlDB, _ := database.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})

	return database
}

func TestJobsIsIdempotent(t *testing.T) {
	database := testDB(t)

	created, err := Jobs(database)

	if err != nil {
		t.Fatalf("first seed failed: %v", err)
	}

	if created != len(sampleJobs) {
		t.Errorf("expected %d jobs created, got %d", len(sampleJobs), created)
	}

	created, err = Jobs(database)

	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	if created != 0 {
		t.Errorf("second seed must be a no-op, created %d", created)
	}

	var count int64

	if err := database.Model(&models.Job{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}

	if count != int64(len(sampleJobs)) {
		t.Errorf("expected %d jobs in store, got %d", len(sampleJobs), count)
	}
}

func TestSeededJobsAreActive(t *testing.T) {
	database := testDB(t)

	if _, err := Jobs(database); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var inactive int64

	if err := database.Model(&models.Job{}).Where("is_active = ?", false).Count(&inactive).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}

	if inactive != 0 {
		t.Errorf("seeded jobs must all be active, found %d inactive", inactive)
	}
}

func TestEnsureAdminCreates(t *testing.T) {
	database := testDB(t)

	if err := EnsureAdmin(database, "Admin", "Admin@Example.COM", "hunter22"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}

	var admin models.User

	if err := database.Where("email = ?", "admin@example.com").First(&admin).Error; err != nil {
		t.Fatalf("admin not found under normalized email: %v", err)
	}

	if admin.Role != types.RoleAdmin {
		t.Errorf("expected role admin, got %q", admin.Role)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("hunter22")); err != nil {
		t.Error("stored hash does not match the given password")
	}
}

func TestEnsureAdminPromotesExistingUser(t *testing.T) {
	database := testDB(t)

	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("original"), bcrypt.MinCost)

	user := models.User{
		Name:         "Existing",
		Email:        "someone@example.com",
		PasswordHash: string(passwordHash),
		Role:         types.RoleUser,
	}

	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	if err := EnsureAdmin(database, "Ignored", "someone@example.com", "new-password"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}

	var promoted models.User

	if err := database.First(&promoted, user.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}

	if promoted.Role != types.RoleAdmin {
		t.Errorf("expected promotion to admin, got %q", promoted.Role)
	}

	// Promotion must not overwrite the existing password.
	if err := bcrypt.CompareHashAndPassword([]byte(promoted.PasswordHash), []byte("original")); err != nil {
		t.Error("promotion must leave the password untouched")
	}
}
