package services

import (
	"testing"

	"api/internal/models"
	"api/internal/sql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIntakeCatalog(t *testing.T) {
	logger := zap.NewNop()
	db := newTestDB(t)
	service := IntakeService{DB: db}

	require.NoError(t, db.Create(&models.Aspect{Name: "Вежливость", IsEnabled: true, Position: 1}).Error)
	require.NoError(t, db.Create(&models.Aspect{Name: "Скрытый", IsEnabled: false, Position: 0}).Error)
	require.NoError(t, db.Create(&models.Aspect{Name: "Чистота", IsEnabled: true, Position: 2}).Error)
	require.NoError(t, db.Create(&models.Doctor{Name: "Иванов", Role: "Терапевт", IsEnabled: true}).Error)
	require.NoError(t, db.Create(&models.Doctor{Name: "Уволен", Role: "Хирург", IsEnabled: false}).Error)

	catalog, err := service.Catalog(logger, models.UserClaims{}, nil)
	require.NoError(t, err)

	require.Len(t, catalog.Aspects, 2)
	assert.Equal(t, "Вежливость", catalog.Aspects[0].Name)
	assert.Equal(t, "Чистота", catalog.Aspects[1].Name)

	require.Len(t, catalog.Doctors, 1)
	assert.Equal(t, "Иванов", catalog.Doctors[0].Name)
}

func TestIntakeCreateReview(t *testing.T) {
	logger := zap.NewNop()
	db := newTestDB(t)
	service := IntakeService{DB: db}

	doctor := models.Doctor{Name: "Иванов", Role: "Терапевт", IsEnabled: true}
	require.NoError(t, db.Create(&doctor).Error)
	source := models.Source{Name: "Регистратура", IsEnabled: true}
	require.NoError(t, db.Create(&source).Error)

	text := "всё понравилось"
	review, err := service.CreateReview(logger, models.UserClaims{}, nil, models.ReviewBody{
		ReviewText: &text,
		DoctorIDs:  []uint{doctor.ID, doctor.ID},
		SourceID:   &source.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, review.ID)

	// Repeated ids collapse to a single association.
	require.Len(t, review.SelectedDoctors, 1)
	assert.Equal(t, doctor.ID, review.SelectedDoctors[0].ID)

	loaded, err := sql.GetReviewsInRange(db, nil, nil)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Len(t, loaded[0].SelectedDoctors, 1)
	require.NotNil(t, loaded[0].SelectedSource)
	assert.Equal(t, source.ID, loaded[0].SelectedSource.ID)
}

func TestIntakeCreateComplaint(t *testing.T) {
	logger := zap.NewNop()
	db := newTestDB(t)
	service := IntakeService{DB: db}

	reason := models.Reason{Name: "Очередь", IsEnabled: true}
	require.NoError(t, db.Create(&reason).Error)

	text := "долго ждали приёма"
	complaint, err := service.CreateComplaint(logger, models.UserClaims{}, nil, models.ComplaintBody{
		ComplaintText: &text,
		ReasonIDs:     []uint{reason.ID},
	})
	require.NoError(t, err)
	assert.NotZero(t, complaint.ID)
	require.Len(t, complaint.SelectedReasons, 1)
	assert.Equal(t, reason.ID, complaint.SelectedReasons[0].ID)
}
