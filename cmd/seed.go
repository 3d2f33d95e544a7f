package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/linesmerrill/hospital-api/databases"
	"github.com/linesmerrill/hospital-api/fixtures"
	"github.com/linesmerrill/hospital-api/models"
)

var (
	seedFile       string
	seedPassword   string
	seedAdminEmail string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load fixture users, profiles, appointments and schedules",
	Long: `seed writes a fixture set into the database. Without --file the built-in
sample data behind the admin dashboard is used. Every seeded account gets the
password given with --password.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(seedPassword) < 8 {
			return errors.New("--password must be at least 8 characters")
		}

		set, err := loadSet(seedFile)
		if err != nil {
			return err
		}
		data, err := set.Resolve()
		if err != nil {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		a, err := connect(ctx)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		db := a.DB()
		stores := fixtures.Stores{
			Users:        databases.NewUserDatabase(db),
			Profiles:     databases.NewPatientProfileDatabase(db),
			Appointments: databases.NewAppointmentDatabase(db),
			Schedules:    databases.NewDoctorScheduleDatabase(db),
		}

		green := color.New(color.FgGreen, color.Bold)
		yellow := color.New(color.FgYellow, color.Bold)

		sum, err := data.Seed(ctx, stores, string(hash))
		if errors.Is(err, fixtures.ErrAlreadySeeded) {
			yellow.Println("⚠️ ", err)
		} else if err != nil {
			return err
		} else {
			green.Println("✅ Seed complete")
			fmt.Printf("   users: %d\n   profiles: %d\n   appointments: %d\n   schedules: %d\n",
				sum.Users, sum.Profiles, sum.Appointments, sum.Schedules)
		}

		if seedAdminEmail == "" {
			return nil
		}
		created, err := ensureAdmin(ctx, stores.Users, seedAdminEmail, string(hash))
		if err != nil {
			return err
		}
		if created {
			green.Printf("✅ Admin account %s created\n", seedAdminEmail)
		} else {
			yellow.Printf("⚠️  Admin account %s already exists\n", seedAdminEmail)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML fixture file (defaults to the built-in sample)")
	seedCmd.Flags().StringVarP(&seedPassword, "password", "p", "", "password for every seeded account")
	seedCmd.Flags().StringVar(&seedAdminEmail, "admin-email", "", "also create an admin account with this email")
}

func loadSet(path string) (*fixtures.Set, error) {
	if path == "" {
		return fixtures.Sample()
	}
	return fixtures.LoadFile(path)
}

func ensureAdmin(ctx context.Context, users databases.UserDatabase, email, hash string) (bool, error) {
	_, err := users.GetUserByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, err
	}
	admin := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    email,
		Password: hash,
		Name:     "Administrator",
		Role:     models.RoleAdmin,
	}
	return true, users.CreateUser(ctx, admin)
}
