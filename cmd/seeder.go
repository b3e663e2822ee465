package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aosmicepp/platform/internal/rbac"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample accounts for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"messages", "articles", "services", "reclamations", "demandes", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "ChangeMe123!"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		accounts := []struct {
			email     string
			firstName string
			lastName  string
			role      rbac.Role
			dept      string
		}{
			{"admin@aos-micepp.org", "Ahmed", "Ben Ali", rbac.RoleAdmin, "Administration"},
			{"support@aos-micepp.org", "Fatima", "Zahra", rbac.RoleSupport, "Support"},
			{"agent@aos-micepp.org", "Mohamed", "Kassimi", rbac.RoleAgent, "Opérations"},
		}

		for _, a := range accounts {
			var exists int
			row := db.Raw("SELECT 1 FROM users WHERE email = ?", a.email).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Println("user already exists, skipping:", a.email)
				continue
			}

			err := db.Exec(
				`INSERT INTO users (email, first_name, last_name, password_hash, role, is_active, must_change_password, department, cin, matricule, created_at, updated_at)
				 VALUES (?, ?, ?, ?, ?, true, true, ?, '', '', now(), now())`,
				a.email, a.firstName, a.lastName, string(hash), a.role.String(), a.dept,
			).Error
			if err != nil {
				log.Fatalf("failed to insert %s: %v", a.email, err)
			}
			fmt.Printf("Seeded %s user: %s (temporary password: %s)\n", a.role, a.email, password)
		}
	},
}
