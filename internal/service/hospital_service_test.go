package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"healthcare/internal/db"
	"healthcare/internal/entities"
	apperrors "healthcare/internal/errors"
	"healthcare/internal/geo"
)

func located(lat, lon float64) (sql.NullFloat64, sql.NullFloat64) {
	return sql.NullFloat64{Float64: lat, Valid: true}, sql.NullFloat64{Float64: lon, Valid: true}
}

func sampleHospitals() []db.Hospital {
	mLat, mLon := located(-6.8, 39.2847)
	aLat, aLon := located(-3.3869, 36.6830)
	kLat, kLon := located(-6.7892, 39.2723)
	return []db.Hospital{
		{ID: 1, Name: "Muhimbili National Hospital", Latitude: mLat, Longitude: mLon, HasEmergency: true},
		{ID: 2, Name: "Mount Meru Hospital", Latitude: aLat, Longitude: aLon, HasEmergency: true},
		{ID: 3, Name: "Unmapped Clinic"},
		{ID: 4, Name: "Kinondoni Hospital", Latitude: kLat, Longitude: kLon},
	}
}

func TestHospitalService_ListHospitalsNearby(t *testing.T) {
	hospitals := new(mockHospitalRepo)
	doctors := new(mockDoctorRepo)
	svc := NewHospitalService(hospitals, doctors, geo.DefaultConfig())

	hospitals.On("List", mock.Anything, "").Return(sampleHospitals(), nil)
	doctors.On("ListByHospitalIDs", mock.Anything, []int64{4, 1}).Return(map[int64][]db.Doctor{
		1: {{ID: 10, HospitalID: 1, Name: "Dr. John Mwakalinga", AvailableDays: []string{"Monday"}}},
	}, nil)

	out, err := svc.ListHospitals(context.Background(), entities.HospitalQuery{
		Latitude:  ptr(-6.7895),
		Longitude: ptr(39.2720),
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Kinondoni Hospital", out[0].Name)
	assert.Equal(t, "Muhimbili National Hospital", out[1].Name)
	require.NotNil(t, out[0].Distance)
	require.NotNil(t, out[1].Distance)
	assert.LessOrEqual(t, *out[0].Distance, *out[1].Distance)
	assert.Empty(t, out[0].Doctors)
	require.Len(t, out[1].Doctors, 1)
	assert.Equal(t, "10", out[1].Doctors[0].ID)
	hospitals.AssertExpectations(t)
	doctors.AssertExpectations(t)
}

func TestHospitalService_ListHospitalsWithoutLocation(t *testing.T) {
	hospitals := new(mockHospitalRepo)
	doctors := new(mockDoctorRepo)
	svc := NewHospitalService(hospitals, doctors, geo.DefaultConfig())

	hospitals.On("List", mock.Anything, "Cardiology").Return(sampleHospitals(), nil)
	doctors.On("ListByHospitalIDs", mock.Anything, []int64{1, 2, 3, 4}).Return(map[int64][]db.Doctor{}, nil)

	// a lone latitude is not a location
	out, err := svc.ListHospitals(context.Background(), entities.HospitalQuery{Specialty: "Cardiology", Latitude: ptr(-6.8)})
	require.NoError(t, err)
	require.Len(t, out, 4)
	for i, h := range out {
		assert.Equal(t, entities.FormatID(int64(i+1)), h.ID)
		assert.Nil(t, h.Distance)
		assert.NotNil(t, h.Doctors)
	}
}

func TestHospitalService_ListHospitalsInvalidInput(t *testing.T) {
	hospitals := new(mockHospitalRepo)
	doctors := new(mockDoctorRepo)
	svc := NewHospitalService(hospitals, doctors, geo.DefaultConfig())
	hospitals.On("List", mock.Anything, "").Return(sampleHospitals(), nil)

	_, err := svc.ListHospitals(context.Background(), entities.HospitalQuery{
		Latitude: ptr(-6.8), Longitude: ptr(39.28), RadiusKm: ptr(0.0),
	})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))

	_, err = svc.ListHospitals(context.Background(), entities.HospitalQuery{
		Latitude: ptr(-96.8), Longitude: ptr(39.28),
	})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))
	doctors.AssertNotCalled(t, "ListByHospitalIDs", mock.Anything, mock.Anything)
}

func TestHospitalService_DoctorsForHospital(t *testing.T) {
	hospitals := new(mockHospitalRepo)
	doctors := new(mockDoctorRepo)
	svc := NewHospitalService(hospitals, doctors, geo.DefaultConfig())

	hospitals.On("GetByID", mock.Anything, int64(404)).Return(nil, nil)
	_, err := svc.DoctorsForHospital(context.Background(), 404)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	hospitals.On("GetByID", mock.Anything, int64(1)).Return(&sampleHospitals()[0], nil)
	doctors.On("ListByHospitalIDs", mock.Anything, []int64{1}).Return(map[int64][]db.Doctor{
		1: {{ID: 10, Name: "Dr. John Mwakalinga"}, {ID: 11, Name: "Dr. Amina Said"}},
	}, nil)
	out, err := svc.DoctorsForHospital(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []string{}, out[0].AvailableDays)
	assert.Equal(t, []string{}, out[0].Languages)
}

func TestHospitalService_BadStoredCoordinatesAreInternal(t *testing.T) {
	hospitals := new(mockHospitalRepo)
	svc := NewHospitalService(hospitals, new(mockDoctorRepo), geo.DefaultConfig())

	badLat, badLon := located(-6.8, 200)
	rows := append(sampleHospitals(), db.Hospital{ID: 5, Name: "Misplaced Hospital", Latitude: badLat, Longitude: badLon})
	hospitals.On("List", mock.Anything, "").Return(rows, nil)

	_, err := svc.ListHospitals(context.Background(), entities.HospitalQuery{Latitude: ptr(-6.79), Longitude: ptr(39.27)})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))

	// the caller's own bad origin is still their error
	_, err = svc.ListHospitals(context.Background(), entities.HospitalQuery{Latitude: ptr(-95.0), Longitude: ptr(39.27)})
	assert.Equal(t, apperrors.KindInvalidArgument, apperrors.KindOf(err))
}
