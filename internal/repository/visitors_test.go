package repository

import (
	"testing"
	"time"

	"github.com/natarchives/visitordesk/backend/internal/config"
	"github.com/natarchives/visitordesk/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository() *Repository {
	return NewRepository(&config.Config{})
}

func newResearcher(idNumber string, timeIn time.Time) *domain.Visitor {
	return &domain.Visitor{
		FullName:    "Rudo Makoni",
		IDNumber:    idNumber,
		PhoneNumber: "0771234567",
		VisitorType: domain.VisitorTypeResearcher,
		Destination: "Library",
		TimeIn:      timeIn,
	}
}

func newGeneralVisitor(idNumber string, timeIn time.Time) *domain.Visitor {
	return &domain.Visitor{
		FullName:    "Tendai Moyo",
		IDNumber:    idNumber,
		PhoneNumber: "0779876543",
		VisitorType: domain.VisitorTypeGeneral,
		Destination: "Administration",
		TimeIn:      timeIn,
	}
}

func TestCreateVisitor(t *testing.T) {
	repo := newTestRepository()
	timeIn := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	visitor := newResearcher("123", timeIn)
	require.NoError(t, repo.CreateVisitor(visitor))

	assert.Equal(t, int64(1), visitor.ID)
	assert.Equal(t, domain.StatusCheckedIn, visitor.Status)
	assert.Nil(t, visitor.TimeOut)
	assert.Equal(t, "2024-01-01", visitor.Date)
}

func TestCreateVisitorRejectsDuplicateActiveIDNumber(t *testing.T) {
	repo := newTestRepository()
	timeIn := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateVisitor(newGeneralVisitor("123", timeIn)))

	err := repo.CreateVisitor(newGeneralVisitor("123", timeIn.Add(time.Hour)))
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

	// once the first visit ends, the id number is free again
	_, err = repo.CheckOutVisitor(1, timeIn.Add(2*time.Hour))
	require.NoError(t, err)
	assert.NoError(t, repo.CreateVisitor(newGeneralVisitor("123", timeIn.Add(3*time.Hour))))
}

func TestCheckOutVisitor(t *testing.T) {
	repo := newTestRepository()
	timeIn := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	timeOut := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)

	visitor := newResearcher("123", timeIn)
	require.NoError(t, repo.CreateVisitor(visitor))

	updated, err := repo.CheckOutVisitor(visitor.ID, timeOut)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedOut, updated.Status)
	require.NotNil(t, updated.TimeOut)
	assert.Equal(t, timeOut, *updated.TimeOut)
}

func TestCheckOutVisitorIsTerminal(t *testing.T) {
	repo := newTestRepository()
	timeIn := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	timeOut := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)

	visitor := newResearcher("123", timeIn)
	require.NoError(t, repo.CreateVisitor(visitor))

	_, err := repo.CheckOutVisitor(visitor.ID, timeOut)
	require.NoError(t, err)

	_, err = repo.CheckOutVisitor(visitor.ID, timeOut.Add(time.Hour))
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)

	// the stored checkout time must be untouched by the rejected attempt
	stored, err := repo.GetVisitorByID(visitor.ID)
	require.NoError(t, err)
	assert.Equal(t, timeOut, *stored.TimeOut)
}

func TestCheckOutVisitorNotFound(t *testing.T) {
	repo := newTestRepository()

	_, err := repo.CheckOutVisitor(42, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetActiveVisitorByIDNumber(t *testing.T) {
	repo := newTestRepository()
	timeIn := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	visitor := newResearcher("123", timeIn)
	require.NoError(t, repo.CreateVisitor(visitor))

	found, err := repo.GetActiveVisitorByIDNumber("123")
	require.NoError(t, err)
	assert.Equal(t, visitor.ID, found.ID)

	// once checked out the lookup must come up empty
	_, err = repo.CheckOutVisitor(visitor.ID, timeIn.Add(time.Hour))
	require.NoError(t, err)

	_, err = repo.GetActiveVisitorByIDNumber("123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateResearcherFee(t *testing.T) {
	repo := newTestRepository()
	timeIn := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	visitor := newResearcher("123", timeIn)
	require.NoError(t, repo.CreateVisitor(visitor))

	updated, err := repo.UpdateResearcherFee(visitor.ID, true, "NAZ-24-1234")
	require.NoError(t, err)
	assert.True(t, updated.FeePaid)
	assert.Equal(t, "NAZ-24-1234", updated.TicketNumber)
	assert.Equal(t, domain.StatusCheckedIn, updated.Status)
}

func TestUpdateResearcherFeeRejectsGeneralVisitor(t *testing.T) {
	repo := newTestRepository()
	timeIn := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	visitor := newGeneralVisitor("456", timeIn)
	require.NoError(t, repo.CreateVisitor(visitor))

	_, err := repo.UpdateResearcherFee(visitor.ID, true, "NAZ-24-1234")
	assert.ErrorIs(t, err, ErrNotResearcher)

	stored, err := repo.GetVisitorByID(visitor.ID)
	require.NoError(t, err)
	assert.False(t, stored.FeePaid)
	assert.Empty(t, stored.TicketNumber)
}

func TestVisitorQueries(t *testing.T) {
	repo := newTestRepository()
	day1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateVisitor(newResearcher("1", day1)))
	require.NoError(t, repo.CreateVisitor(newGeneralVisitor("2", day1)))
	require.NoError(t, repo.CreateVisitor(newGeneralVisitor("3", day2)))

	_, err := repo.CheckOutVisitor(2, day1.Add(time.Hour))
	require.NoError(t, err)

	byDate, err := repo.GetVisitorsByDate("2024-01-01")
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	byStatus, err := repo.GetVisitorsByStatus(domain.StatusCheckedOut)
	require.NoError(t, err)
	assert.Len(t, byStatus, 1)

	byType, err := repo.GetVisitorsByTypeAndDate(domain.VisitorTypeResearcher, "2024-01-01")
	require.NoError(t, err)
	assert.Len(t, byType, 1)

	byDept, err := repo.GetVisitorsByDepartmentAndDate("Administration", "2024-01-01")
	require.NoError(t, err)
	assert.Len(t, byDept, 1)

	// checked-in-now spans all dates
	active, err := repo.GetCheckedInVisitors()
	require.NoError(t, err)
	assert.Len(t, active, 2)
}
