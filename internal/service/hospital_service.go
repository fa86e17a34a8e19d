package service

import (
	"context"
	"fmt"

	"healthcare/internal/db"
	"healthcare/internal/entities"
	apperrors "healthcare/internal/errors"
	"healthcare/internal/geo"
	"healthcare/internal/repository"
)

type HospitalService struct {
	hospitals repository.HospitalRepository
	doctors   repository.DoctorRepository
	geo       geo.Config
}

func NewHospitalService(hospitals repository.HospitalRepository, doctors repository.DoctorRepository, geoCfg geo.Config) *HospitalService {
	return &HospitalService{hospitals: hospitals, doctors: doctors, geo: geoCfg}
}

// ListHospitals returns hospitals with their doctors. When both coordinates are
// given only hospitals within the radius are kept, nearest first.
func (s *HospitalService) ListHospitals(ctx context.Context, q entities.HospitalQuery) ([]entities.HospitalResponse, error) {
	hospitals, err := s.hospitals.List(ctx, q.Specialty)
	if err != nil {
		return nil, err
	}

	radius := s.geo.DefaultRadiusKm
	if q.RadiusKm != nil {
		radius = *q.RadiusKm
	}
	found, err := filterNearby(s.geo, origin(q.Latitude, q.Longitude), hospitals, radius)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(found))
	for _, f := range found {
		ids = append(ids, f.Item.ID)
	}
	byHospital, err := s.doctors.ListByHospitalIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]entities.HospitalResponse, 0, len(found))
	for _, f := range found {
		h := f.Item
		h.Doctors = byHospital[h.ID]
		out = append(out, toHospitalResponse(h, f.DistanceKm))
	}
	return out, nil
}

func (s *HospitalService) DoctorsForHospital(ctx context.Context, hospitalID int64) ([]entities.DoctorResponse, error) {
	h, err := s.hospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	byHospital, err := s.doctors.ListByHospitalIDs(ctx, []int64{h.ID})
	if err != nil {
		return nil, err
	}
	out := make([]entities.DoctorResponse, 0, len(byHospital[h.ID]))
	for _, d := range byHospital[h.ID] {
		out = append(out, toDoctorResponse(d))
	}
	return out, nil
}

func (s *HospitalService) hospital(ctx context.Context, id int64) (*db.Hospital, error) {
	h, err := s.hospitals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("hospital %d not found", id))
	}
	return h, nil
}

// origin is nil unless both coordinates were supplied.
func origin(lat, lon *float64) *geo.Point {
	if lat == nil || lon == nil {
		return nil
	}
	return &geo.Point{Lat: *lat, Lon: *lon}
}
