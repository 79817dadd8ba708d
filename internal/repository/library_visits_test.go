package repository

import (
	"testing"
	"time"

	"github.com/natarchives/visitordesk/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLibraryVisit(ticket string, checkIn time.Time) *domain.LibraryVisit {
	return &domain.LibraryVisit{
		VisitorID:         1,
		TicketNumber:      ticket,
		SpecificStudyArea: "Reading Room A",
		ControlOfficer:    "Nyasha Dube",
		CheckInTime:       checkIn,
	}
}

func TestCreateLibraryVisit(t *testing.T) {
	repo := newTestRepository()
	checkIn := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	visit := newLibraryVisit("NAZ-24-1234", checkIn)
	require.NoError(t, repo.CreateLibraryVisit(visit))

	assert.Equal(t, int64(1), visit.ID)
	assert.Equal(t, domain.StatusCheckedIn, visit.Status)
	assert.Nil(t, visit.CheckOutTime)
	assert.Equal(t, "2024-01-01", visit.Date)
}

func TestCreateLibraryVisitRejectsDuplicateActiveTicket(t *testing.T) {
	repo := newTestRepository()
	checkIn := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateLibraryVisit(newLibraryVisit("NAZ-24-1234", checkIn)))

	err := repo.CreateLibraryVisit(newLibraryVisit("NAZ-24-1234", checkIn.Add(time.Hour)))
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
}

func TestCheckOutLibraryVisit(t *testing.T) {
	repo := newTestRepository()
	checkIn := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(3 * time.Hour)

	visit := newLibraryVisit("NAZ-24-1234", checkIn)
	require.NoError(t, repo.CreateLibraryVisit(visit))

	updated, err := repo.CheckOutLibraryVisit(visit.ID, checkOut, "two files returned")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedOut, updated.Status)
	require.NotNil(t, updated.CheckOutTime)
	assert.Equal(t, checkOut, *updated.CheckOutTime)
	assert.Equal(t, "two files returned", updated.Notes)

	_, err = repo.CheckOutLibraryVisit(visit.ID, checkOut.Add(time.Hour), "")
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
}

func TestCheckOutLibraryVisitKeepsPriorNotesWhenEmpty(t *testing.T) {
	repo := newTestRepository()
	checkIn := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	visit := newLibraryVisit("NAZ-24-1234", checkIn)
	visit.Notes = "fragile materials"
	require.NoError(t, repo.CreateLibraryVisit(visit))

	updated, err := repo.CheckOutLibraryVisit(visit.ID, checkIn.Add(time.Hour), "")
	require.NoError(t, err)
	assert.Equal(t, "fragile materials", updated.Notes)
}

func TestGetActiveLibraryVisitByTicket(t *testing.T) {
	repo := newTestRepository()
	checkIn := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	visit := newLibraryVisit("NAZ-24-1234", checkIn)
	require.NoError(t, repo.CreateLibraryVisit(visit))

	found, err := repo.GetActiveLibraryVisitByTicket("NAZ-24-1234")
	require.NoError(t, err)
	assert.Equal(t, visit.ID, found.ID)

	_, err = repo.CheckOutLibraryVisit(visit.ID, checkIn.Add(time.Hour), "")
	require.NoError(t, err)

	_, err = repo.GetActiveLibraryVisitByTicket("NAZ-24-1234")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetLibraryVisitsByVisitorID(t *testing.T) {
	repo := newTestRepository()
	checkIn := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	first := newLibraryVisit("NAZ-24-0001", checkIn)
	require.NoError(t, repo.CreateLibraryVisit(first))
	_, err := repo.CheckOutLibraryVisit(first.ID, checkIn.Add(time.Hour), "")
	require.NoError(t, err)

	second := newLibraryVisit("NAZ-24-0001", checkIn.Add(2*time.Hour))
	require.NoError(t, repo.CreateLibraryVisit(second))

	other := newLibraryVisit("NAZ-24-0002", checkIn)
	other.VisitorID = 7
	require.NoError(t, repo.CreateLibraryVisit(other))

	visits, err := repo.GetLibraryVisitsByVisitorID(1)
	require.NoError(t, err)
	assert.Len(t, visits, 2)
}
