package booking

import (
	"context"
	"sort"
	"time"

	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/models"
)

// memRepo is an in-memory Repository for usecase tests. beforeCAS lets a
// test mutate state between an Execute's read and its compare-and-swap,
// simulating a concurrent writer winning the race.
type memRepo struct {
	users        map[uint]*models.User
	services     map[uint]*models.Service
	windows      map[uint][]models.AvailabilityWindow
	appointments map[uint]*models.Appointment
	reviews      []models.Review

	nextID    uint
	beforeCAS func()
}

func newMemRepo() *memRepo {
	return &memRepo{
		users:        map[uint]*models.User{},
		services:     map[uint]*models.Service{},
		windows:      map[uint][]models.AvailabilityWindow{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (r *memRepo) addUser(id uint, role string) {
	r.users[id] = &models.User{ID: id, Role: role}
}

func (r *memRepo) addService(id, sellerID uint, priceCents int64, durationMin int) {
	r.services[id] = &models.Service{
		ID:          id,
		SellerID:    sellerID,
		PriceCents:  priceCents,
		DurationMin: durationMin,
		Active:      true,
	}
}

func (r *memRepo) setWeek(sellerID uint, windows ...models.AvailabilityWindow) {
	r.windows[sellerID] = windows
}

func (r *memRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memRepo) ListServicesForSeller(ctx context.Context, sellerID uint) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.SellerID == sellerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memRepo) CreateService(ctx context.Context, svc *models.Service) error {
	r.nextID++
	svc.ID = r.nextID
	r.services[svc.ID] = svc
	return nil
}

func (r *memRepo) UpdateService(ctx context.Context, svc *models.Service) error {
	r.services[svc.ID] = svc
	return nil
}

func (r *memRepo) LoadAvailability(ctx context.Context, sellerID uint) ([]models.AvailabilityWindow, error) {
	return r.windows[sellerID], nil
}

func (r *memRepo) ReplaceAvailability(ctx context.Context, sellerID uint, windows []models.AvailabilityWindow) error {
	r.windows[sellerID] = windows
	return nil
}

func (r *memRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *ap
	if svc, ok := r.services[ap.ServiceID]; ok {
		cp.Service = *svc
	}
	return &cp, nil
}

func (r *memRepo) ListAppointmentsForDay(ctx context.Context, sellerID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.SellerID == sellerID && ap.Date == date {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (r *memRepo) ListAppointmentsForUser(ctx context.Context, userID uint, role string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if (role == models.RoleSeller && ap.SellerID == userID) ||
			(role != models.RoleSeller && ap.BuyerID == userID) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *memRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.nextID++
	ap.ID = r.nextID
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *memRepo) CountSlotClaims(
	ctx context.Context,
	sellerID uint,
	date string,
	start string,
	statuses []domain.Status,
	excludeID uint,
) (int64, error) {
	var count int64
	for _, ap := range r.appointments {
		if ap.ID == excludeID || ap.SellerID != sellerID || ap.Date != date || ap.StartTime != start {
			continue
		}
		for _, s := range statuses {
			if domain.Status(ap.Status) == s {
				count++
				break
			}
		}
	}
	return count, nil
}

func (r *memRepo) CompareAndSwapStatus(
	ctx context.Context,
	id uint,
	expected domain.Status,
	next domain.Status,
	fields map[string]any,
) error {
	if r.beforeCAS != nil {
		hook := r.beforeCAS
		r.beforeCAS = nil
		hook()
	}

	ap, ok := r.appointments[id]
	if !ok {
		return domain.ErrNotFound
	}
	if domain.Status(ap.Status) != expected {
		return domain.ErrConcurrentModification
	}

	ap.Status = string(next)
	for k, v := range fields {
		switch k {
		case "approved_at":
			ap.ApprovedAt = v.(*time.Time)
		case "rejected_at":
			ap.RejectedAt = v.(*time.Time)
		case "cancelled_at":
			ap.CancelledAt = v.(*time.Time)
		case "completed_at":
			ap.CompletedAt = v.(*time.Time)
		case "paid_at":
			ap.PaidAt = v.(*time.Time)
		case "amount_cents":
			n := v.(int64)
			ap.AmountCents = &n
		case "platform_fee_cents":
			n := v.(int64)
			ap.PlatformFeeCents = &n
		case "seller_earnings_cents":
			n := v.(int64)
			ap.SellerEarningsCents = &n
		case "payment_ref":
			s := v.(string)
			ap.PaymentRef = &s
		}
	}
	return nil
}

func (r *memRepo) ListSettledForSeller(ctx context.Context, sellerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.SellerID != sellerID {
			continue
		}
		st := domain.Status(ap.Status)
		if (st == domain.StatusConfirmed || st == domain.StatusCompleted) && ap.AmountCents != nil {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *memRepo) ListSettled(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		st := domain.Status(ap.Status)
		if (st == domain.StatusConfirmed || st == domain.StatusCompleted) && ap.AmountCents != nil {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *memRepo) CreateReview(ctx context.Context, rv *models.Review) error {
	r.nextID++
	rv.ID = r.nextID
	r.reviews = append(r.reviews, *rv)
	return nil
}

func (r *memRepo) HasReview(ctx context.Context, appointmentID uint, authorID uint) (bool, error) {
	for _, rv := range r.reviews {
		if rv.AppointmentID == appointmentID && rv.AuthorID == authorID {
			return true, nil
		}
	}
	return false, nil
}

var _ domain.Repository = (*memRepo)(nil)

// failingGateway simulates a declined capture.
type failingGateway struct{ err error }

func (g failingGateway) Capture(ctx context.Context, amountCents int64) (string, error) {
	return "", g.err
}
