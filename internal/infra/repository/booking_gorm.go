package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// wrapErr maps driver-level outcomes onto the business taxonomy: missing
// rows and exhausted deadlines are expected conditions, everything else
// bubbles up untouched.
func wrapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return domain.ErrTimeout
	default:
		return err
	}
}

// --------------------------------------------------
// User directory
// --------------------------------------------------

func (r *BookingGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &svc, nil
}

func (r *BookingGormRepository) ListServicesForSeller(
	ctx context.Context,
	sellerID uint,
) ([]models.Service, error) {

	var svcs []models.Service
	if err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("id ASC").
		Find(&svcs).Error; err != nil {
		return nil, wrapErr(err)
	}
	return svcs, nil
}

func (r *BookingGormRepository) CreateService(
	ctx context.Context,
	svc *models.Service,
) error {
	return wrapErr(r.db.WithContext(ctx).Create(svc).Error)
}

func (r *BookingGormRepository) UpdateService(
	ctx context.Context,
	svc *models.Service,
) error {
	return wrapErr(r.db.WithContext(ctx).Save(svc).Error)
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) LoadAvailability(
	ctx context.Context,
	sellerID uint,
) ([]models.AvailabilityWindow, error) {

	var windows []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("weekday ASC").
		Find(&windows).Error; err != nil {
		return nil, wrapErr(err)
	}
	return windows, nil
}

// ReplaceAvailability swaps the full weekly schedule in one transaction so
// a half-written week can never be observed.
func (r *BookingGormRepository) ReplaceAvailability(
	ctx context.Context,
	sellerID uint,
	windows []models.AvailabilityWindow,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("seller_id = ?", sellerID).
			Delete(&models.AvailabilityWindow{}).Error; err != nil {
			return err
		}
		for i := range windows {
			windows[i].ID = 0
			windows[i].SellerID = sellerID
		}
		if len(windows) == 0 {
			return nil
		}
		return tx.Create(&windows).Error
	})

	return wrapErr(err)
}

// --------------------------------------------------
// Appointment ledger
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &ap, nil
}

func (r *BookingGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	sellerID uint,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "seller_id", "date", "start_time", "status").
		Where("seller_id = ? AND date = ?", sellerID, date).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, wrapErr(err)
	}
	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID uint,
	role string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Preload("Service")
	if role == models.RoleSeller {
		q = q.Where("seller_id = ?", userID)
	} else {
		q = q.Where("buyer_id = ?", userID)
	}

	var aps []models.Appointment
	if err := q.
		Order("date ASC, start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, wrapErr(err)
	}
	return aps, nil
}

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return wrapErr(r.db.WithContext(ctx).Create(ap).Error)
}

func (r *BookingGormRepository) CountSlotClaims(
	ctx context.Context,
	sellerID uint,
	date string,
	start string,
	statuses []domain.Status,
	excludeID uint,
) (int64, error) {

	var count int64
	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"seller_id = ? AND date = ? AND start_time = ? AND status IN ?",
			sellerID, date, start, statuses,
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, wrapErr(err)
	}
	return count, nil
}

// CompareAndSwapStatus is the serialization point for every lifecycle
// write: a single guarded UPDATE whose WHERE clause re-checks the expected
// status. Zero rows affected on an existing row means another writer won.
func (r *BookingGormRepository) CompareAndSwapStatus(
	ctx context.Context,
	id uint,
	expected domain.Status,
	next domain.Status,
	fields map[string]any,
) error {

	values := map[string]any{"status": string(next)}
	for k, v := range fields {
		values[k] = v
	}

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(values)

	if res.Error != nil {
		return wrapErr(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var exists int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Count(&exists).Error; err != nil {
		return wrapErr(err)
	}
	if exists == 0 {
		return domain.ErrNotFound
	}
	return domain.ErrConcurrentModification
}

// --------------------------------------------------
// Earnings (read-side)
// --------------------------------------------------

func (r *BookingGormRepository) ListSettledForSeller(
	ctx context.Context,
	sellerID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"seller_id = ? AND status IN ? AND amount_cents IS NOT NULL",
			sellerID,
			[]string{string(domain.StatusConfirmed), string(domain.StatusCompleted)},
		).
		Order("paid_at ASC").
		Find(&aps).Error; err != nil {
		return nil, wrapErr(err)
	}
	return aps, nil
}

func (r *BookingGormRepository) ListSettled(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"status IN ? AND amount_cents IS NOT NULL",
			[]string{string(domain.StatusConfirmed), string(domain.StatusCompleted)},
		).
		Order("paid_at ASC").
		Find(&aps).Error; err != nil {
		return nil, wrapErr(err)
	}
	return aps, nil
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

func (r *BookingGormRepository) CreateReview(
	ctx context.Context,
	rv *models.Review,
) error {
	return wrapErr(r.db.WithContext(ctx).Create(rv).Error)
}

func (r *BookingGormRepository) HasReview(
	ctx context.Context,
	appointmentID uint,
	authorID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("appointment_id = ? AND author_id = ?", appointmentID, authorID).
		Count(&count).Error; err != nil {
		return false, wrapErr(err)
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
