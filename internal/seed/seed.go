package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/natarchives/visitordesk/backend/internal/config"
	"github.com/natarchives/visitordesk/backend/internal/domain"
	"github.com/natarchives/visitordesk/backend/internal/repository"
	"github.com/natarchives/visitordesk/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

var demoUsers = []struct {
	username string
	fullName string
	role     domain.Role
}{
	{"frontdesk", "Rudo Makoni", domain.RoleReceptionist},
	{"accounts", "Tendai Moyo", domain.RoleAccountant},
	{"library", "Nyasha Dube", domain.RoleLibraryOfficer},
}

// SeedDemoData loads one user per staff role plus a day of random visitor
// traffic, for demos and local development. The store is process-resident,
// so this runs inside the server at startup rather than as a separate
// command.
func SeedDemoData(cfg *config.Config, repo *repository.Repository) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	for _, du := range demoUsers {
		user := &domain.User{
			Username:     du.username,
			PasswordHash: string(passwordHash),
			FullName:     du.fullName,
			Email:        du.username + "@archives.gov.zw",
			Role:         du.role,
		}
		if err := repo.CreateUser(user); err != nil {
			return fmt.Errorf("seed user %s: %w", du.username, err)
		}
	}

	now := time.Now()
	visitorCount := rand.Intn(15) + 10
	researchers := 0

	for i := 0; i < visitorCount; i++ {
		timeIn := now.Add(-time.Duration(rand.Intn(8*60)) * time.Minute)

		visitor := &domain.Visitor{
			FullName:    utils.GenerateRandomFullName(),
			IDNumber:    utils.GenerateRandomIDNumber(),
			PhoneNumber: utils.GenerateRandomPhoneNumber(),
			VisitorType: domain.VisitorTypeGeneral,
			Destination: utils.GenerateRandomDepartment(),
			TimeIn:      timeIn,
		}

		if rand.Intn(3) == 0 {
			visitor.VisitorType = domain.VisitorTypeResearcher
			visitor.Institute = "University of Zimbabwe"
			visitor.ResearchArea = "Colonial land records"
			visitor.HomeAddress = "Harare"
		}

		if err := repo.CreateVisitor(visitor); err != nil {
			return fmt.Errorf("seed visitor: %w", err)
		}

		if visitor.VisitorType == domain.VisitorTypeResearcher {
			researchers++
			ticket := utils.GenerateRandomTicketNumber(now.Year())
			if _, err := repo.UpdateResearcherFee(visitor.ID, true, ticket); err != nil {
				return fmt.Errorf("seed fee payment: %w", err)
			}

			visit := &domain.LibraryVisit{
				VisitorID:         visitor.ID,
				TicketNumber:      ticket,
				SpecificStudyArea: "Reading Room A",
				ControlOfficer:    "Nyasha Dube",
				CheckInTime:       timeIn.Add(10 * time.Minute),
			}
			if err := repo.CreateLibraryVisit(visit); err != nil {
				return fmt.Errorf("seed library visit: %w", err)
			}
		}

		// roughly half the day's visitors have already left
		if rand.Intn(2) == 0 {
			timeOut := timeIn.Add(time.Duration(rand.Intn(180)+15) * time.Minute)
			if _, err := repo.CheckOutVisitor(visitor.ID, timeOut); err != nil {
				return fmt.Errorf("seed checkout: %w", err)
			}
		}
	}

	slog.Info("demo data seeded", "users", len(demoUsers), "visitors", visitorCount, "researchers", researchers)

	return nil
}
