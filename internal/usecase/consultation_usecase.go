package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ManelMostefaoui/E-Doc-sub002/config"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/converter"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/repository"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/service"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/apperror"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/metrics"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Accepted scheduled_at layouts. Values without an offset are read as UTC.
var scheduleLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

const scheduleDisplayLayout = "2006-01-02 15:04"

type ConsultationUsecase interface {
	Create(ctx context.Context, patient *entity.User, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error)
	Schedule(ctx context.Context, doctor *entity.User, requestID uuid.UUID, req *dto.ScheduleConsultationRequest) (*dto.ConsultationResponse, error)
	Confirm(ctx context.Context, patient *entity.User, requestID uuid.UUID) (*dto.ConsultationResponse, error)
	Cancel(ctx context.Context, actor *entity.User, requestID uuid.UUID, req *dto.CancelConsultationRequest) (*dto.ConsultationResponse, error)
	ListForPatient(ctx context.Context, patient *entity.User, query dto.ConsultationQuery) (*dto.ConsultationListResponse, error)
	ListForDoctor(ctx context.Context, doctor *entity.User, query dto.ConsultationQuery) (*dto.ConsultationListResponse, error)
}

type consultationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	cfg              config.WorkflowConfig
	validator        *validator.CustomValidator
	consultationRepo repository.ConsultationRepository
	appointmentRepo  repository.AppointmentRepository
	userRepo         repository.UserRepository
	notifier         service.Notifier
	auditService     service.AuditService
	metrics          *metrics.Collector
	now              func() time.Time
}

func NewConsultationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.WorkflowConfig,
	validator *validator.CustomValidator,
	consultationRepo repository.ConsultationRepository,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	notifier service.Notifier,
	auditService service.AuditService,
	collector *metrics.Collector,
) ConsultationUsecase {
	return &consultationUsecase{
		db:               db,
		log:              log,
		cfg:              cfg,
		validator:        validator,
		consultationRepo: consultationRepo,
		appointmentRepo:  appointmentRepo,
		userRepo:         userRepo,
		notifier:         notifier,
		auditService:     auditService,
		metrics:          collector,
		now:              time.Now,
	}
}

func (u *consultationUsecase) Create(ctx context.Context, patient *entity.User, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	if !patient.RoleID.IsPatient() {
		return nil, ErrActionNotAllowed
	}
	req.Message = u.validator.PlainText(req.Message)
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request := &entity.ConsultationRequest{
		ID:        uuid.New(),
		PatientID: patient.ID,
		Message:   req.Message,
		Status:    entity.ConsultationStatusPending,
	}
	if err := u.consultationRepo.Create(tx, request); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create consultation request: %+v", err)
		return nil, err
	}
	request.Patient = patient

	doctors, err := u.userRepo.FindActiveByRole(tx, entity.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to load doctors: %+v", err)
		return nil, err
	}

	if err := u.notifier.Notify(tx, service.Event{
		Type:       entity.NotificationConsultationRequested,
		Actor:      patient,
		Request:    request,
		Message:    fmt.Sprintf("%s requested a consultation", patient.Name),
		Payload:    entity.JSON{"message": request.Message},
		Recipients: userIDs(doctors),
	}); err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &patient.ID, entity.AuditActionConsultationCreate, "consultation_request", request.ID.String(), converter.ConsultationToResponse(request)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.metrics.RecordTransition(string(entity.ConsultationStatusPending), "ok")
	return converter.ConsultationToResponse(request), nil
}

func (u *consultationUsecase) Schedule(ctx context.Context, doctor *entity.User, requestID uuid.UUID, req *dto.ScheduleConsultationRequest) (resp *dto.ConsultationResponse, err error) {
	defer func() { u.record(entity.ConsultationStatusScheduled, err) }()

	if doctor.RoleID != entity.RoleDoctor {
		return nil, ErrActionNotAllowed
	}
	scheduledAt, err := u.parseScheduledAt(req.ScheduledAt)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.findRequest(tx, requestID)
	if err != nil {
		return nil, err
	}
	if err := u.checkCaseload(doctor, request); err != nil {
		return nil, err
	}
	if !request.IsPending() {
		return nil, ErrInvalidTransition
	}

	appointment := &entity.Appointment{
		ID:                    uuid.New(),
		ConsultationRequestID: request.ID,
		DoctorID:              doctor.ID,
		PatientID:             request.PatientID,
		ScheduledAt:           scheduledAt,
	}
	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "consultation_request") {
			return nil, ErrInvalidTransition
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.transition(tx, request, entity.ConsultationStatusScheduled, map[string]interface{}{
		"doctor_id":      doctor.ID,
		"appointment_id": appointment.ID,
	}); err != nil {
		return nil, err
	}

	before := converter.ConsultationToResponse(request)
	request.Status = entity.ConsultationStatusScheduled
	request.DoctorID = &doctor.ID
	request.Doctor = doctor
	request.AppointmentID = &appointment.ID
	request.Appointment = appointment

	if err := u.notifier.Notify(tx, service.Event{
		Type:    entity.NotificationConsultationScheduled,
		Actor:   doctor,
		Request: request,
		Message: fmt.Sprintf("Dr. %s scheduled your consultation for %s", doctor.Name, scheduledAt.Format(scheduleDisplayLayout)),
		Payload: entity.JSON{
			"appointment_id": appointment.ID.String(),
			"scheduled_at":   scheduledAt.Format(time.RFC3339),
		},
		Recipients: []uuid.UUID{request.PatientID},
	}); err != nil {
		return nil, err
	}

	after := converter.ConsultationToResponse(request)
	if err := u.auditService.LogUpdate(tx, &doctor.ID, entity.AuditActionConsultationSchedule, "consultation_request", request.ID.String(), before, after); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Consultation %s scheduled by %s for %s", request.ID, doctor.ID, scheduledAt.Format(time.RFC3339))
	return after, nil
}

func (u *consultationUsecase) Confirm(ctx context.Context, patient *entity.User, requestID uuid.UUID) (resp *dto.ConsultationResponse, err error) {
	defer func() { u.record(entity.ConsultationStatusConfirmed, err) }()

	if !patient.RoleID.IsPatient() {
		return nil, ErrActionNotAllowed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.findRequest(tx, requestID)
	if err != nil {
		return nil, err
	}
	if request.PatientID != patient.ID {
		return nil, ErrNotConsultationOwner
	}
	if !request.Confirmable() {
		return nil, ErrInvalidTransition
	}

	if err := u.transition(tx, request, entity.ConsultationStatusConfirmed, nil); err != nil {
		return nil, err
	}
	if err := u.appointmentRepo.MarkConfirmed(tx, *request.AppointmentID); err != nil {
		u.log.Warnf("Failed to confirm appointment: %+v", err)
		return nil, err
	}

	before := converter.ConsultationToResponse(request)
	request.Status = entity.ConsultationStatusConfirmed
	if request.Appointment != nil {
		request.Appointment.IsConfirmed = true
	}

	var recipients []uuid.UUID
	if request.DoctorID != nil {
		recipients = append(recipients, *request.DoctorID)
	}
	if err := u.notifier.Notify(tx, service.Event{
		Type:       entity.NotificationConsultationConfirmed,
		Actor:      patient,
		Request:    request,
		Message:    fmt.Sprintf("%s confirmed the appointment", patient.Name),
		Payload:    entity.JSON{"appointment_id": request.AppointmentID.String()},
		Recipients: recipients,
	}); err != nil {
		return nil, err
	}

	after := converter.ConsultationToResponse(request)
	if err := u.auditService.LogUpdate(tx, &patient.ID, entity.AuditActionConsultationConfirm, "consultation_request", request.ID.String(), before, after); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return after, nil
}

func (u *consultationUsecase) Cancel(ctx context.Context, actor *entity.User, requestID uuid.UUID, req *dto.CancelConsultationRequest) (resp *dto.ConsultationResponse, err error) {
	defer func() { u.record(entity.ConsultationStatusCancelled, err) }()

	if !actor.RoleID.IsPatient() && actor.RoleID != entity.RoleDoctor {
		return nil, ErrActionNotAllowed
	}
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}
	if req.Reason != nil {
		clean := u.validator.PlainText(*req.Reason)
		req.Reason = &clean
	}
	reason := trimmed(req.Reason)
	if reason == nil && u.cfg.CancelReasonRequired {
		return nil, apperror.FieldError("reason", "reason is required")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.findRequest(tx, requestID)
	if err != nil {
		return nil, err
	}

	if actor.RoleID == entity.RoleDoctor {
		if err := u.checkCaseload(actor, request); err != nil {
			return nil, err
		}
	} else if request.PatientID != actor.ID {
		return nil, ErrNotConsultationOwner
	}
	if !request.Status.CanTransitionTo(entity.ConsultationStatusCancelled) {
		return nil, ErrInvalidTransition
	}

	if err := u.transition(tx, request, entity.ConsultationStatusCancelled, map[string]interface{}{
		"cancel_reason": reason,
		"cancelled_by":  actor.ID,
	}); err != nil {
		return nil, err
	}

	before := converter.ConsultationToResponse(request)
	request.Status = entity.ConsultationStatusCancelled
	request.CancelReason = reason
	request.CancelledBy = &actor.ID

	recipients, err := u.counterparty(tx, actor, request)
	if err != nil {
		return nil, err
	}
	payload := entity.JSON{"cancelled_by": actor.ID.String()}
	if reason != nil {
		payload["reason"] = *reason
	}
	if err := u.notifier.Notify(tx, service.Event{
		Type:       entity.NotificationConsultationCancelled,
		Actor:      actor,
		Request:    request,
		Message:    fmt.Sprintf("%s cancelled the consultation request", actor.Name),
		Payload:    payload,
		Recipients: recipients,
	}); err != nil {
		return nil, err
	}

	after := converter.ConsultationToResponse(request)
	if err := u.auditService.LogUpdate(tx, &actor.ID, entity.AuditActionConsultationCancel, "consultation_request", request.ID.String(), before, after); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return after, nil
}

func (u *consultationUsecase) ListForPatient(ctx context.Context, patient *entity.User, query dto.ConsultationQuery) (*dto.ConsultationListResponse, error) {
	filter, err := buildConsultationFilter(query)
	if err != nil {
		return nil, err
	}
	filter.PatientID = &patient.ID

	return u.list(ctx, filter)
}

func (u *consultationUsecase) ListForDoctor(ctx context.Context, doctor *entity.User, query dto.ConsultationQuery) (*dto.ConsultationListResponse, error) {
	filter, err := buildConsultationFilter(query)
	if err != nil {
		return nil, err
	}
	if u.cfg.DoctorCaseload == config.CaseloadAssigned {
		filter.DoctorID = &doctor.ID
	}

	return u.list(ctx, filter)
}

func (u *consultationUsecase) list(ctx context.Context, filter entity.ConsultationFilter) (*dto.ConsultationListResponse, error) {
	requests, err := u.consultationRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list consultation requests: %+v", err)
		return nil, err
	}

	return &dto.ConsultationListResponse{
		Consultations: converter.ConsultationsToResponses(requests),
		Total:         len(requests),
	}, nil
}

func buildConsultationFilter(query dto.ConsultationQuery) (entity.ConsultationFilter, error) {
	filter := entity.ConsultationFilter{Search: strings.TrimSpace(query.Search)}
	if query.Status != "" {
		status, ok := entity.ParseConsultationStatus(strings.ToLower(query.Status))
		if !ok {
			return filter, apperror.FieldError("status", "status must be one of: pending, scheduled, confirmed, cancelled")
		}
		filter.Status = &status
	}
	return filter, nil
}

func (u *consultationUsecase) parseScheduledAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, apperror.FieldError("scheduled_at", "scheduled_at is required")
	}

	for _, layout := range scheduleLayouts {
		if scheduledAt, err := time.Parse(layout, raw); err == nil {
			scheduledAt = scheduledAt.UTC()
			if !scheduledAt.After(u.now()) {
				return time.Time{}, apperror.FieldError("scheduled_at", "scheduled_at must be in the future")
			}
			return scheduledAt, nil
		}
	}
	return time.Time{}, apperror.FieldError("scheduled_at", "scheduled_at must be an RFC 3339 or YYYY-MM-DDTHH:MM timestamp")
}

func (u *consultationUsecase) findRequest(tx *gorm.DB, id uuid.UUID) (*entity.ConsultationRequest, error) {
	request, err := u.consultationRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find consultation request %s: %+v", id, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrConsultationNotFound
	}
	return request, nil
}

// checkCaseload enforces the assigned policy: a doctor may act on requests that
// are unassigned or assigned to them.
func (u *consultationUsecase) checkCaseload(doctor *entity.User, request *entity.ConsultationRequest) error {
	if u.cfg.DoctorCaseload != config.CaseloadAssigned {
		return nil
	}
	if request.DoctorID != nil && !request.AssignedTo(doctor.ID) {
		return ErrNotAssignedDoctor
	}
	return nil
}

// transition applies the status change as a compare-and-swap against the state
// the caller read. A miss means the row vanished or another writer changed it first.
func (u *consultationUsecase) transition(tx *gorm.DB, request *entity.ConsultationRequest, status entity.ConsultationStatus, fields map[string]interface{}) error {
	id := request.ID
	affected, err := u.consultationRepo.TransitionStatus(tx, id, request.State(), status, fields)
	if err != nil {
		u.log.Warnf("Failed to move consultation request %s to %s: %+v", id, status, err)
		return err
	}
	if affected > 0 {
		return nil
	}

	current, err := u.consultationRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to re-read consultation request %s: %+v", id, err)
		return err
	}
	if current == nil {
		return ErrConsultationNotFound
	}
	return ErrInvalidTransition
}

// counterparty picks who hears about a cancellation: the patient when a doctor
// cancels, otherwise the assigned doctor or, while unassigned, the doctor pool.
func (u *consultationUsecase) counterparty(tx *gorm.DB, actor *entity.User, request *entity.ConsultationRequest) ([]uuid.UUID, error) {
	if actor.ID != request.PatientID {
		return []uuid.UUID{request.PatientID}, nil
	}
	if request.DoctorID != nil {
		return []uuid.UUID{*request.DoctorID}, nil
	}

	doctors, err := u.userRepo.FindActiveByRole(tx, entity.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to load doctors: %+v", err)
		return nil, err
	}
	return userIDs(doctors), nil
}

func (u *consultationUsecase) record(status entity.ConsultationStatus, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrInvalidState):
		outcome = "invalid_state"
	case errors.Is(err, apperror.ErrNotFound):
		outcome = "not_found"
	case errors.Is(err, apperror.ErrForbidden):
		outcome = "forbidden"
	case errors.Is(err, apperror.ErrValidation):
		outcome = "invalid"
	default:
		outcome = "error"
	}
	u.metrics.RecordTransition(string(status), outcome)
}

func userIDs(users []entity.User) []uuid.UUID {
	ids := make([]uuid.UUID, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}
	return ids
}
