package services

import (
	"strconv"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunteerhub/volunteerhub-backend/internal/dto"
)

func TestCertificatesFor(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name       string
		totalHours float64
		milestones []int
	}{
		{"below first milestone", 19.5, nil},
		{"exactly first milestone", 20, []int{20}},
		{"between first and second", 25, []int{20}},
		{"all milestones", 120, []int{20, 50, 100}},
		{"zero hours", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			certs := CertificatesFor(userID, tt.totalHours, now)
			require.Len(t, certs, len(tt.milestones))
			for i, milestone := range tt.milestones {
				assert.Equal(t, milestone, certs[i].Milestone)
				assert.Equal(t, "CERT-"+userID.String()+"-"+strconv.Itoa(milestone), certs[i].CertificateID)
				assert.Equal(t, now, certs[i].IssuedDate)
			}
		})
	}
}

func TestLogHoursValidation(t *testing.T) {
	svc := NewImpactService(nil)
	eventID := uuid.New()

	tests := []struct {
		name string
		req  dto.LogHoursRequest
	}{
		{"no hours", dto.LogHoursRequest{EventID: &eventID}},
		{"negative hours", dto.LogHoursRequest{EventID: &eventID, Hours: -2}},
		{"no association", dto.LogHoursRequest{Hours: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.LogHours(uuid.New(), &tt.req)
			assert.ErrorIs(t, err, ErrMissingTarget)
		})
	}
}

func TestLogHoursEventNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewImpactService(db)
	eventID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.LogHours(uuid.New(), &dto.LogHoursRequest{EventID: &eventID, Hours: 2})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestLogHoursRequiresRegistration(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewImpactService(db)
	eventID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow(eventID.String(), "upcoming"))
	mock.ExpectQuery(`SELECT (.+) FROM "user_events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.LogHours(uuid.New(), &dto.LogHoursRequest{EventID: &eventID, Hours: 2})
	assert.ErrorIs(t, err, ErrNotRegistered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogHoursMarksAttendanceAndCreatesPendingRecord(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewImpactService(db)

	userID := uuid.New()
	eventID := uuid.New()
	registrationID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow(eventID.String(), "upcoming"))
	mock.ExpectQuery(`SELECT (.+) FROM "user_events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "event_id", "status"}).
			AddRow(registrationID.String(), userID.String(), eventID.String(), "registered"))
	mock.ExpectExec(`UPDATE "user_events" SET`).
		WithArgs("attended", sqlmock.AnyArg(), registrationID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "volunteer_hours"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "points"}).
			AddRow(uuid.New().String(), 0))

	record, err := svc.LogHours(userID, &dto.LogHoursRequest{
		EventID:     &eventID,
		Hours:       3,
		Description: "Beach cleanup shift",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", record.Status)
	assert.Equal(t, 0, record.Points)
	assert.Equal(t, 3.0, record.Hours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyHoursRejectsSelfVerification(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewImpactService(db)

	recordID := uuid.New()
	ownerID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "volunteer_hours"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "hours", "status", "points"}).
			AddRow(recordID.String(), ownerID.String(), 4.0, "pending", 0))

	err := svc.VerifyHours(recordID, ownerID)
	assert.ErrorIs(t, err, ErrSelfVerify)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyHoursAwardsPoints(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewImpactService(db)

	recordID := uuid.New()
	ownerID := uuid.New()
	verifierID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "volunteer_hours"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "hours", "status", "points"}).
			AddRow(recordID.String(), ownerID.String(), 4.0, "pending", 0))
	mock.ExpectExec(`UPDATE "volunteer_hours" SET`).
		WithArgs(20, "verified", sqlmock.AnyArg(), recordID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.VerifyHours(recordID, verifierID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyHoursRoundsFractionalHours(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewImpactService(db)

	recordID := uuid.New()

	// 4.5 h at 5 points/h is 22.5, which rounds to 23.
	mock.ExpectQuery(`SELECT (.+) FROM "volunteer_hours"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "hours", "status", "points"}).
			AddRow(recordID.String(), uuid.New().String(), 4.5, "pending", 0))
	mock.ExpectExec(`UPDATE "volunteer_hours" SET`).
		WithArgs(23, "verified", sqlmock.AnyArg(), recordID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.VerifyHours(recordID, uuid.New())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyHoursNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewImpactService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "volunteer_hours"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.VerifyHours(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrHoursNotFound)
}

func TestGetUserImpactSummary(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewImpactService(db)

	userID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID.String()))

	// 20 + 5 verified hours: 20-hour certificate earned, 50 still out of
	// reach.
	mock.ExpectQuery(`SELECT (.+) FROM "volunteer_hours"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "hours", "status", "points"}).
			AddRow(uuid.New().String(), userID.String(), 20.0, "verified", 100).
			AddRow(uuid.New().String(), userID.String(), 5.0, "verified", 25))

	impact, err := svc.GetUserImpact(userID)
	require.NoError(t, err)

	assert.Equal(t, 25.0, impact.Summary.TotalHours)
	assert.Equal(t, 125, impact.Summary.TotalPoints)
	require.Len(t, impact.Summary.Certificates, 1)
	assert.Equal(t, 20, impact.Summary.Certificates[0].Milestone)
	assert.Len(t, impact.VolunteerHours, 2)
}

func TestGetUserImpactUnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewImpactService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.GetUserImpact(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetLeaderboard(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewImpactService(db)

	first := uuid.New()
	second := uuid.New()
	teamID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fullname", "total_hours", "total_points"}).
			AddRow(first.String(), "Top Volunteer", 42.0, 210).
			AddRow(second.String(), "Runner Up", 10.0, 50))
	mock.ExpectQuery(`SELECT (.+) FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "total_impact"}).
			AddRow(teamID.String(), "River Cleaners", 300))

	board, err := svc.GetLeaderboard()
	require.NoError(t, err)

	require.Len(t, board.UserLeaderboard, 2)
	assert.Equal(t, "Top Volunteer", board.UserLeaderboard[0].Fullname)
	assert.Equal(t, 42.0, board.UserLeaderboard[0].TotalHours)
	require.Len(t, board.TeamLeaderboard, 1)
	assert.Equal(t, 300, board.TeamLeaderboard[0].TotalImpact)
}
