package admin

import (
	"context"
	"sort"

	"antalyahotel/internal/domain"
	"antalyahotel/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	store        AdminStore
	tokens       *jwt.Service
	username     string
	passwordHash []byte
}

// NewService hashes the configured password once so login never
// compares plaintext.
func NewService(store AdminStore, tokens *jwt.Service, username, password string) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{
		store:        store,
		tokens:       tokens,
		username:     username,
		passwordHash: hash,
	}, nil
}

// Login checks the credentials, flips the persisted session flag and
// issues a token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	if req.Username != s.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if err := s.store.Login(ctx); err != nil {
		return "", err
	}
	return s.tokens.GenerateToken(s.username, "admin")
}

func (s *Service) Logout(ctx context.Context) error {
	return s.store.Logout(ctx)
}

// SessionActive reports the persisted flag, which survives restarts
// independently of token expiry.
func (s *Service) SessionActive(_ context.Context) bool {
	return s.store.AdminAuthenticated()
}

// Stats aggregates the dashboard numbers. Cancelled bookings count
// toward volume but never toward revenue.
func (s *Service) Stats(_ context.Context) Stats {
	rooms := s.store.ListRooms()
	bookings := s.store.ListBookings()

	st := Stats{
		TotalRooms:    len(rooms),
		TotalBookings: len(bookings),
		ByStatus: map[string]int{
			string(domain.BookingPending):   0,
			string(domain.BookingConfirmed): 0,
			string(domain.BookingCancelled): 0,
		},
	}

	for _, r := range rooms {
		if r.Available {
			st.AvailableRooms++
		}
	}

	monthly := map[string]*MonthlyStat{}
	for _, b := range bookings {
		st.ByStatus[string(b.Status)]++
		if b.Status == domain.BookingPending {
			st.PendingBookings++
		}
		if b.Status == domain.BookingCancelled {
			continue
		}
		st.Revenue += b.TotalPrice

		if len(b.CreatedAt) >= 7 {
			month := b.CreatedAt[:7]
			m, ok := monthly[month]
			if !ok {
				m = &MonthlyStat{Month: month}
				monthly[month] = m
			}
			m.Bookings++
			m.Revenue += b.TotalPrice
		}
	}

	st.Monthly = make([]MonthlyStat, 0, len(monthly))
	for _, m := range monthly {
		st.Monthly = append(st.Monthly, *m)
	}
	sort.Slice(st.Monthly, func(i, j int) bool {
		return st.Monthly[i].Month < st.Monthly[j].Month
	})

	return st
}

// Reset wipes bookings and restores the seed catalog. The session flag
// stays: resetting data does not log the admin out.
func (s *Service) Reset(ctx context.Context, req ResetRequest) error {
	if !req.Confirm {
		return ErrNotConfirmed
	}
	return s.store.ResetAll(ctx)
}
