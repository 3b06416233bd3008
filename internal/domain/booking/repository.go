package booking

import (
	"context"

	"github.com/bookora/marketplace-api/internal/models"
)

// Repository is the persistence boundary of the booking core. All
// serialization of concurrent writers happens behind this interface;
// CompareAndSwapStatus is the only way a status ever changes.
type Repository interface {
	// -------- User directory --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	ListServicesForSeller(
		ctx context.Context,
		sellerID uint,
	) ([]models.Service, error)

	CreateService(
		ctx context.Context,
		svc *models.Service,
	) error

	UpdateService(
		ctx context.Context,
		svc *models.Service,
	) error

	// -------- Availability --------
	LoadAvailability(
		ctx context.Context,
		sellerID uint,
	) ([]models.AvailabilityWindow, error)

	ReplaceAvailability(
		ctx context.Context,
		sellerID uint,
		windows []models.AvailabilityWindow,
	) error

	// -------- Appointment ledger --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointmentsForDay(
		ctx context.Context,
		sellerID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForUser(
		ctx context.Context,
		userID uint,
		role string,
	) ([]models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// CountSlotClaims counts appointments other than excludeID on the same
	// seller/date/start whose status is one of the given set.
	CountSlotClaims(
		ctx context.Context,
		sellerID uint,
		date string,
		start string,
		statuses []Status,
		excludeID uint,
	) (int64, error)

	// CompareAndSwapStatus atomically moves id from expected to next and
	// applies extra fields in the same write. It returns
	// ErrConcurrentModification when the row exists but its status no
	// longer matches expected, and ErrNotFound when it does not exist.
	CompareAndSwapStatus(
		ctx context.Context,
		id uint,
		expected Status,
		next Status,
		fields map[string]any,
	) error

	// -------- Earnings (read-side) --------
	ListSettledForSeller(
		ctx context.Context,
		sellerID uint,
	) ([]models.Appointment, error)

	ListSettled(
		ctx context.Context,
	) ([]models.Appointment, error)

	// -------- Reviews --------
	CreateReview(
		ctx context.Context,
		rv *models.Review,
	) error

	HasReview(
		ctx context.Context,
		appointmentID uint,
		authorID uint,
	) (bool, error)
}
