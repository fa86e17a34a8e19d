package service

import (
	"database/sql"
	"time"

	"healthcare/internal/db"
	"healthcare/internal/entities"
)

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func floatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}

func intPtr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	i := ni.Int64
	return &i
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func strings0(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toDoctorResponse(d db.Doctor) entities.DoctorResponse {
	return entities.DoctorResponse{
		ID:              entities.FormatID(d.ID),
		Name:            d.Name,
		Specialty:       d.Specialty,
		Qualification:   stringPtr(d.Qualification),
		Experience:      d.Experience,
		Rating:          d.Rating,
		ImageURL:        stringPtr(d.ImageURL),
		AvailableDays:   strings0(d.AvailableDays),
		AvailableTime:   stringPtr(d.AvailableTime),
		ConsultationFee: d.ConsultationFee,
		Bio:             stringPtr(d.Bio),
		Languages:       strings0(d.Languages),
	}
}

func toHospitalResponse(h db.Hospital, distance *float64) entities.HospitalResponse {
	doctors := make([]entities.DoctorResponse, 0, len(h.Doctors))
	for _, d := range h.Doctors {
		doctors = append(doctors, toDoctorResponse(d))
	}
	return entities.HospitalResponse{
		ID:           entities.FormatID(h.ID),
		Name:         h.Name,
		Address:      h.Address,
		Latitude:     floatPtr(h.Latitude),
		Longitude:    floatPtr(h.Longitude),
		Distance:     distance,
		Specialties:  strings0(h.Specialties),
		Rating:       h.Rating,
		PhoneNumber:  h.PhoneNumber,
		HasEmergency: h.HasEmergency,
		ImageURL:     stringPtr(h.ImageURL),
		Doctors:      doctors,
	}
}

func toHomeVisitResponse(v db.HomeVisit, distance *float64) entities.HomeVisitResponse {
	return entities.HomeVisitResponse{
		ID:                  entities.FormatID(v.ID),
		ProviderID:          v.ProviderID,
		ProviderName:        v.ProviderName,
		ProviderType:        v.ProviderType,
		Specialty:           v.Specialty,
		ProviderImageURL:    stringPtr(v.ProviderImageURL),
		Rating:              v.Rating,
		ReviewCount:         v.ReviewCount,
		Price:               v.Price,
		Currency:            v.Currency,
		Location:            v.Location,
		Latitude:            floatPtr(v.Latitude),
		Longitude:           floatPtr(v.Longitude),
		Distance:            distance,
		EstimatedTravelTime: intPtr(v.EstimatedTravelTime),
		AvailableDays:       strings0(v.AvailableDays),
		AvailableTimeSlots:  strings0(v.AvailableTimeSlots),
		IsAvailable:         v.IsAvailable,
		Description:         v.Description,
		Services:            strings0(v.Services),
		AcceptsInsurance:    v.AcceptsInsurance,
	}
}

func toAppointmentResponse(a db.Appointment) entities.AppointmentResponse {
	return entities.AppointmentResponse{
		ID:              entities.FormatID(a.ID),
		HospitalID:      entities.FormatID(a.HospitalID),
		HospitalName:    a.HospitalName,
		DoctorID:        entities.FormatID(a.DoctorID),
		DoctorName:      a.DoctorName,
		DoctorSpecialty: a.DoctorSpecialty,
		AppointmentDate: a.AppointmentDate,
		TimeSlot:        a.TimeSlot,
		PatientName:     a.PatientName,
		PatientPhone:    a.PatientPhone,
		Problem:         a.Problem,
		Status:          a.Status,
		Amount:          a.Amount,
		PaymentMethod:   a.PaymentMethod,
		PaymentStatus:   a.PaymentStatus,
		CreatedAt:       a.CreatedAt,
	}
}

func toBookingResponse(b db.HomeVisitBooking) entities.HomeVisitBookingResponse {
	return entities.HomeVisitBookingResponse{
		ID:               entities.FormatID(b.ID),
		HomeVisitID:      entities.FormatID(b.HomeVisitID),
		ProviderID:       b.ProviderID,
		ProviderName:     b.ProviderName,
		ProviderType:     b.ProviderType,
		PatientID:        entities.FormatID(b.UserID),
		PatientName:      b.PatientName,
		PatientPhone:     b.PatientPhone,
		PatientAddress:   b.PatientAddress,
		PatientLatitude:  b.PatientLatitude,
		PatientLongitude: b.PatientLongitude,
		ScheduledDate:    b.ScheduledDate,
		TimeSlot:         b.TimeSlot,
		VisitReason:      b.VisitReason,
		Symptoms:         stringPtr(b.Symptoms),
		Amount:           b.Amount,
		Currency:         b.Currency,
		Status:           b.Status,
		PaymentStatus:    b.PaymentStatus,
		Notes:            stringPtr(b.Notes),
		ActualVisitTime:  timePtr(b.ActualVisitTime),
		CompletedTime:    timePtr(b.CompletedTime),
		CreatedAt:        b.CreatedAt,
	}
}
