package services

import (
	"MediCare/cache"
	"MediCare/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

var (
	ErrConsultationNotFound = errors.New("consultation not found")
	ErrConsultationState    = errors.New("consultation is not in the right state for this step")
)

type ConsultationStatus string

const (
	ConsultationPaid   ConsultationStatus = "paid"
	ConsultationInCall ConsultationStatus = "in_call"
	ConsultationEnded  ConsultationStatus = "ended"
)

const consultationTTL = 2 * time.Hour

// Consultation is a video consultation in progress. It lives in the cache
// only; the durable record is the video appointment written on connect.
type Consultation struct {
	ID            string             `json:"id"`
	DoctorID      int                `json:"doctorId"`
	DoctorName    string             `json:"doctorName"`
	PatientID     string             `json:"patientId"`
	Status        ConsultationStatus `json:"status"`
	ChargeID      string             `json:"chargeId"`
	Fee           FeeBreakdown       `json:"fee"`
	Session       *VideoSession      `json:"session,omitempty"`
	AppointmentID string             `json:"appointmentId,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

type ConsultationService struct {
	booking *BookingService
	video   VideoGateway
	store   cache.Store
	locker  cache.Locker
}

func NewConsultationService(booking *BookingService, video VideoGateway, store cache.Store, locker cache.Locker) *ConsultationService {
	return &ConsultationService{booking: booking, video: video, store: store, locker: locker}
}

// Start charges the video fee and opens a consultation in the paid state.
func (s *ConsultationService) Start(ctx context.Context, session Session, doctorID int) (*Consultation, error) {
	doctor, err := s.booking.doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	fee, err := ComputeFee(doctor.Price, models.TypeVideo)
	if err != nil {
		return nil, err
	}
	chargeID, err := s.booking.charge(ctx, session.UID, fee.Total, "Video consultation with "+doctor.Name)
	if err != nil {
		return nil, err
	}

	consultation := &Consultation{
		ID:         uuid.New().String(),
		DoctorID:   doctor.DoctorID,
		DoctorName: doctor.Name,
		PatientID:  session.UID,
		Status:     ConsultationPaid,
		ChargeID:   chargeID,
		Fee:        fee,
		CreatedAt:  s.booking.now(),
	}
	if err := s.save(ctx, consultation); err != nil {
		return nil, err
	}
	return consultation, nil
}

// Connect opens the video session and records the consultation as a video
// appointment for the current day and time.
func (s *ConsultationService) Connect(ctx context.Context, session Session, id string) (*Consultation, error) {
	var consultation *Consultation
	err := cache.WithLock(ctx, s.locker, "consultation_lock:"+id, cache.LockOptions{TTL: time.Minute}, func(ctx context.Context) error {
		c, err := s.Get(ctx, session.UID, id)
		if err != nil {
			return err
		}
		if c.Status != ConsultationPaid {
			return fmt.Errorf("%w: consultation is %s", ErrConsultationState, c.Status)
		}

		videoSession, err := s.video.EstablishSession(ctx, VideoSessionRequest{ConsultationID: c.ID, DoctorID: c.DoctorID, PatientID: c.PatientID})
		if err != nil {
			return fmt.Errorf("failed to connect to the doctor: %w", err)
		}

		now := s.booking.now()
		appointment := models.Appointment{
			ID:          uuid.New().String(),
			DoctorID:    c.DoctorID,
			DoctorName:  c.DoctorName,
			PatientID:   c.PatientID,
			PatientName: s.booking.patientName(ctx, session),
			Date:        now.Format(DateLayout),
			Time:        now.Format("15:04"),
			Status:      models.StatusConfirmed,
			Type:        models.TypeVideo,
			Paid:        true,
			Amount:      c.Fee.Price,
			BookingFee:  c.Fee.BookingFee,
			Tax:         c.Fee.Tax,
			Total:       c.Fee.Total,
			ChargeID:    c.ChargeID,
			CreatedAt:   now,
		}
		if err := s.booking.appointments.Create(ctx, &appointment); err != nil {
			if tearErr := s.video.TearDownSession(context.WithoutCancel(ctx), videoSession.ID); tearErr != nil {
				log.Printf("Failed to tear down video session %s: %v", videoSession.ID, tearErr)
			}
			return fmt.Errorf("failed to save appointment: %w", err)
		}

		c.Status = ConsultationInCall
		c.Session = &videoSession
		c.AppointmentID = appointment.ID
		if err := s.save(ctx, c); err != nil {
			return err
		}
		consultation = c
		return nil
	})
	if errors.Is(err, cache.ErrLockNotAcquired) {
		return nil, fmt.Errorf("%w: already connecting", ErrConsultationState)
	}
	if err != nil {
		return nil, err
	}
	return consultation, nil
}

// End tears the session down and forgets the consultation.
func (s *ConsultationService) End(ctx context.Context, session Session, id string) (*Consultation, error) {
	c, err := s.Get(ctx, session.UID, id)
	if err != nil {
		return nil, err
	}
	if c.Status != ConsultationInCall {
		return nil, fmt.Errorf("%w: consultation is %s", ErrConsultationState, c.Status)
	}
	if err := s.video.TearDownSession(ctx, c.Session.ID); err != nil && !errors.Is(err, ErrVideoSessionNotFound) {
		return nil, fmt.Errorf("failed to end the call: %w", err)
	}
	if err := s.store.Delete(ctx, consultationKey(id)); err != nil {
		return nil, fmt.Errorf("failed to clear consultation: %w", err)
	}
	c.Status = ConsultationEnded
	return c, nil
}

// Get returns a consultation owned by patientID.
func (s *ConsultationService) Get(ctx context.Context, patientID, id string) (*Consultation, error) {
	raw, err := s.store.Get(ctx, consultationKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to load consultation: %w", err)
	}
	if raw == "" {
		return nil, ErrConsultationNotFound
	}
	var c Consultation
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, fmt.Errorf("failed to decode consultation: %w", err)
	}
	if c.PatientID != patientID {
		return nil, ErrConsultationNotFound
	}
	return &c, nil
}

func (s *ConsultationService) save(ctx context.Context, c *Consultation) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode consultation: %w", err)
	}
	if err := s.store.Set(ctx, consultationKey(c.ID), data, consultationTTL); err != nil {
		return fmt.Errorf("failed to save consultation: %w", err)
	}
	return nil
}

func consultationKey(id string) string {
	return "consultation:" + id
}
