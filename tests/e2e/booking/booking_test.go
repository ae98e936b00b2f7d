//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"campreserve/internal/domain/user"
	"campreserve/internal/handler/dto/response"
	"campreserve/internal/pkg/dateutil"
	"campreserve/internal/pkg/ptr"
	"campreserve/tests/common/authtest"
	"campreserve/tests/common/builder"
	"campreserve/tests/common/dbtest"
	"campreserve/tests/common/httptest"
	"campreserve/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	quoteURL        = "/api/bookings/quote"
	availabilityURL = "/api/campgrounds/%s/availability?from=%s&to=%s"
	occupancyURL    = "/api/events/%s/occupancy"
	adminBookingURL = "/api/admin/bookings/%s"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type inventory struct {
	campgroundID uuid.UUID
	eventID      uuid.UUID
	siteA        uuid.UUID
	siteB        uuid.UUID
}

// Two sites: A with full rate card, B nightly-only.
func (s *BookingSuite) seedInventory(t *testing.T) inventory {
	campgroundID := dbtest.CreateTestCampground(t, s.DB, "Pine Ridge")
	eventID := dbtest.CreateTestEvent(t, s.DB, "Summer Rally",
		dateutil.NewDate(2026, time.July, 10), dateutil.NewDate(2026, time.July, 15))

	siteA := dbtest.CreateTestCampsite(t, s.DB, campgroundID, dbtest.CampsiteFixture{
		Label:                   "Site 1",
		Powered:                 true,
		NightlyCents:            5000,
		FullStayCents:           ptr.To(int64(20000)),
		ExtraAdultNightlyCents:  ptr.To(int64(1000)),
		ExtraAdultFullStayCents: ptr.To(int64(4000)),
	})
	siteB := dbtest.CreateTestCampsite(t, s.DB, campgroundID, dbtest.CampsiteFixture{
		Label:        "Site 2",
		NightlyCents: 4000,
	})

	return inventory{campgroundID: campgroundID, eventID: eventID, siteA: siteA, siteB: siteB}
}

// =============================================================================
// TestCreateBooking - Booking creation API tests
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: camper books an open campsite", func() {
		t := s.T()
		inv := s.seedInventory(t)

		dbtest.CreateTestUser(t, s.DB, "camper@example.com", string(user.RoleCamper))
		token := authtest.LoginUser(t, s.Router, "camper@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithEventID(inv.eventID).
			WithOwner("Jane Camper", "jane@example.com").
			WithStay(dateutil.NewDate(2026, time.July, 10), dateutil.NewDate(2026, time.July, 13)).
			WithGuests(2, 1).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingCreatedResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.NotEmpty(t, created.BookingID)
		// 3 nights x 5000 base + 3 x 1000 for the second adult
		require.Equal(t, int64(18000), created.TotalCents)

		detailURL := bookingsURL + "/" + created.BookingID
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, token)
		require.Equal(t, http.StatusOK, dw.Code, dw.Body.String())

		var actual response.BookingResponse
		err = httptest.DecodeResponseBody(t, dw.Body, &actual)
		require.NoError(t, err)

		expected := &response.BookingResponse{
			CampsiteID:     inv.siteA.String(),
			CampsiteLabel:  "Site 1",
			EventID:        inv.eventID.String(),
			OwnerName:      "Jane Camper",
			OwnerEmail:     "jane@example.com",
			CheckIn:        "2026-07-10",
			CheckOut:       "2026-07-13",
			Adults:         2,
			Children:       1,
			UnitPriceCents: 18000,
			OrderStatus:    "pending",
			OrderSource:    "normal",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "OrderID", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}

		// The walk-in owner gets a placeholder account pending verification.
		var pending bool
		err = s.DB.QueryRow(context.Background(),
			"SELECT pending_verify FROM users WHERE email = $1", "jane@example.com").Scan(&pending)
		require.NoError(t, err)
		require.True(t, pending)
	})

	s.Run("Error case: overlapping stay on the same site is rejected", func() {
		t := s.T()
		inv := s.seedInventory(t)

		dbtest.CreateTestUser(t, s.DB, "camper@example.com", string(user.RoleCamper))
		token := authtest.LoginUser(t, s.Router, "camper@example.com", "password123")

		first := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithEventID(inv.eventID).
			WithStay(dateutil.NewDate(2026, time.July, 10), dateutil.NewDate(2026, time.July, 13)).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, first, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		second := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithEventID(inv.eventID).
			WithOwner("Other Camper", "other@example.com").
			WithStay(dateutil.NewDate(2026, time.July, 12), dateutil.NewDate(2026, time.July, 14)).
			BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, second, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Normal case: dates freed by a cancellation can be rebooked", func() {
		t := s.T()
		inv := s.seedInventory(t)

		dbtest.CreateTestUser(t, s.DB, "camper@example.com", string(user.RoleCamper))
		token := authtest.LoginUser(t, s.Router, "camper@example.com", "password123")

		first := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithEventID(inv.eventID).
			WithStay(dateutil.NewDate(2026, time.July, 10), dateutil.NewDate(2026, time.July, 13)).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, first, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingCreatedResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)

		// The payment collaborator cancels the order; the trigger must retire
		// the booking from the exclusion constraint, not just from the scan.
		_, err = s.DB.Exec(context.Background(),
			"UPDATE orders SET payment_status = 'cancelled' WHERE id = $1", created.OrderID)
		require.NoError(t, err)

		second := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithEventID(inv.eventID).
			WithOwner("Other Camper", "other@example.com").
			WithStay(dateutil.NewDate(2026, time.July, 11), dateutil.NewDate(2026, time.July, 14)).
			BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, second, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Normal case: concurrent overlapping creates admit exactly one", func() {
		t := s.T()
		inv := s.seedInventory(t)

		dbtest.CreateTestUser(t, s.DB, "camper@example.com", string(user.RoleCamper))
		token := authtest.LoginUser(t, s.Router, "camper@example.com", "password123")

		requests := []struct{ name, email string }{
			{"First Camper", "first@example.com"},
			{"Second Camper", "second@example.com"},
		}

		codes := make([]int, len(requests))
		var wg sync.WaitGroup
		for i, r := range requests {
			wg.Add(1)
			go func(i int, name, email string) {
				defer wg.Done()
				reqBody := builder.NewBookingBuilder().
					WithCampsiteID(inv.siteA).
					WithEventID(inv.eventID).
					WithOwner(name, email).
					WithStay(dateutil.NewDate(2026, time.July, 10), dateutil.NewDate(2026, time.July, 13)).
					BuildCreateRequestDTO()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
				codes[i] = w.Code
			}(i, r.name, r.email)
		}
		wg.Wait()

		sort.Ints(codes)
		require.Equal(t, []int{http.StatusCreated, http.StatusConflict}, codes,
			"one booking wins the dates, the other is turned away")

		var active int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM campsite_bookings WHERE campsite_id = $1 AND active", inv.siteA).Scan(&active)
		require.NoError(t, err)
		require.Equal(t, 1, active)
	})

	s.Run("Normal case: back-to-back stays share a boundary date", func() {
		t := s.T()
		inv := s.seedInventory(t)

		dbtest.CreateTestUser(t, s.DB, "camper@example.com", string(user.RoleCamper))
		token := authtest.LoginUser(t, s.Router, "camper@example.com", "password123")

		first := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithEventID(inv.eventID).
			WithStay(dateutil.NewDate(2026, time.July, 10), dateutil.NewDate(2026, time.July, 13)).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, first, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// Check-out day equals the next party's check-in day.
		second := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithEventID(inv.eventID).
			WithOwner("Other Camper", "other@example.com").
			WithStay(dateutil.NewDate(2026, time.July, 13), dateutil.NewDate(2026, time.July, 15)).
			BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, second, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: unauthenticated request is rejected", func() {
		t := s.T()
		inv := s.seedInventory(t)

		reqBody := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithEventID(inv.eventID).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestQuote - Public pricing API tests
// =============================================================================

func (s *BookingSuite) TestQuote() {
	s.Run("Normal case: nightly quote with an extra adult", func() {
		t := s.T()
		inv := s.seedInventory(t)

		reqBody := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithStay(dateutil.NewDate(2026, time.July, 10), dateutil.NewDate(2026, time.July, 13)).
			WithGuests(2, 0).
			BuildQuoteRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var quote response.QuoteResponse
		err := httptest.DecodeResponseBody(t, w.Body, &quote)
		require.NoError(t, err)
		require.Equal(t, int64(15000), quote.BaseCents)
		require.Equal(t, int64(3000), quote.ExtraCents)
		require.Equal(t, int64(18000), quote.TotalCents)
		require.Equal(t, 3, quote.Nights)
		require.False(t, quote.FullStay)
	})

	s.Run("Normal case: full-stay package applies at five nights", func() {
		t := s.T()
		inv := s.seedInventory(t)

		reqBody := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithStay(dateutil.NewDate(2026, time.July, 10), dateutil.NewDate(2026, time.July, 15)).
			WithGuests(2, 0).
			WithFullStay().
			BuildQuoteRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var quote response.QuoteResponse
		err := httptest.DecodeResponseBody(t, w.Body, &quote)
		require.NoError(t, err)
		require.Equal(t, int64(20000), quote.BaseCents)
		require.Equal(t, int64(4000), quote.ExtraCents)
		require.Equal(t, int64(24000), quote.TotalCents)
		require.True(t, quote.FullStay)
	})

	s.Run("Normal case: full-stay request falls back to nightly below five nights", func() {
		t := s.T()
		inv := s.seedInventory(t)

		reqBody := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithStay(dateutil.NewDate(2026, time.July, 10), dateutil.NewDate(2026, time.July, 13)).
			WithGuests(1, 0).
			WithFullStay().
			BuildQuoteRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var quote response.QuoteResponse
		err := httptest.DecodeResponseBody(t, w.Body, &quote)
		require.NoError(t, err)
		require.Equal(t, int64(15000), quote.TotalCents)
		require.False(t, quote.FullStay)
	})

	s.Run("Normal case: edit quote keeps the full-stay package with a frozen base", func() {
		t := s.T()
		inv := s.seedInventory(t)

		dbtest.CreateTestUser(t, s.DB, "camper@example.com", string(user.RoleCamper))
		token := authtest.LoginUser(t, s.Router, "camper@example.com", "password123")

		// Five nights on the package: base 20000, one extra adult 4000.
		createBody := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithEventID(inv.eventID).
			WithStay(dateutil.NewDate(2026, time.July, 10), dateutil.NewDate(2026, time.July, 15)).
			WithGuests(2, 0).
			WithFullStay().
			BuildCreateRequestDTO()
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, createBody, token)
		require.Equal(t, http.StatusCreated, cw.Code, cw.Body.String())

		var created response.BookingCreatedResponse
		err := httptest.DecodeResponseBody(t, cw.Body, &created)
		require.NoError(t, err)
		bookingID, err := uuid.Parse(created.BookingID)
		require.NoError(t, err)

		reqBody := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithStay(dateutil.NewDate(2026, time.July, 10), dateutil.NewDate(2026, time.July, 15)).
			WithGuests(2, 0).
			WithFullStay().
			WithExistingBooking(bookingID).
			BuildQuoteRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var quote response.QuoteResponse
		err = httptest.DecodeResponseBody(t, w.Body, &quote)
		require.NoError(t, err)
		// The stored base carries over and the package still shows as applied.
		require.Equal(t, int64(20000), quote.BaseCents)
		require.Equal(t, int64(4000), quote.ExtraCents)
		require.True(t, quote.FullStay)
	})

	s.Run("Error case: unknown campsite returns 404", func() {
		t := s.T()
		s.seedInventory(t)

		reqBody := builder.NewBookingBuilder().BuildQuoteRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestAvailability - Public availability API tests
// =============================================================================

func (s *BookingSuite) TestAvailability() {
	s.Run("Normal case: booked site is flagged, open site is not", func() {
		t := s.T()
		inv := s.seedInventory(t)

		dbtest.CreateTestUser(t, s.DB, "camper@example.com", string(user.RoleCamper))
		token := authtest.LoginUser(t, s.Router, "camper@example.com", "password123")

		booking := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithEventID(inv.eventID).
			WithStay(dateutil.NewDate(2026, time.July, 10), dateutil.NewDate(2026, time.July, 13)).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, booking, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		url := fmt.Sprintf(availabilityURL, inv.campgroundID, "2026-07-11", "2026-07-14")
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, aw.Code, aw.Body.String())

		var sites []response.SiteAvailabilityResponse
		err := httptest.DecodeResponseBody(t, aw.Body, &sites)
		require.NoError(t, err)
		require.Len(t, sites, 2)
		require.Equal(t, "Site 1", sites[0].Label)
		require.True(t, sites[0].IsBooked)
		require.Equal(t, "Site 2", sites[1].Label)
		require.False(t, sites[1].IsBooked)
	})

	s.Run("Normal case: window after check-out shows the site open", func() {
		t := s.T()
		inv := s.seedInventory(t)

		dbtest.CreateTestUser(t, s.DB, "camper@example.com", string(user.RoleCamper))
		token := authtest.LoginUser(t, s.Router, "camper@example.com", "password123")

		booking := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithEventID(inv.eventID).
			WithStay(dateutil.NewDate(2026, time.July, 10), dateutil.NewDate(2026, time.July, 13)).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, booking, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		url := fmt.Sprintf(availabilityURL, inv.campgroundID, "2026-07-13", "2026-07-15")
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, aw.Code, aw.Body.String())

		var sites []response.SiteAvailabilityResponse
		err := httptest.DecodeResponseBody(t, aw.Body, &sites)
		require.NoError(t, err)
		require.Len(t, sites, 2)
		require.False(t, sites[0].IsBooked)
	})

	s.Run("Error case: unknown campground returns 404", func() {
		t := s.T()
		s.seedInventory(t)

		url := fmt.Sprintf(availabilityURL, uuid.New(), "2026-07-11", "2026-07-14")
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusNotFound, aw.Code, aw.Body.String())
	})
}

// =============================================================================
// TestOccupancy - Staff reporting API tests
// =============================================================================

func (s *BookingSuite) TestOccupancy() {
	s.Run("Normal case: staff sees per-site occupancy over the event window", func() {
		t := s.T()
		inv := s.seedInventory(t)

		dbtest.CreateTestUser(t, s.DB, "staff@example.com", string(user.RoleStaff))
		dbtest.CreateTestUser(t, s.DB, "camper@example.com", string(user.RoleCamper))
		camperToken := authtest.LoginUser(t, s.Router, "camper@example.com", "password123")

		booking := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithEventID(inv.eventID).
			WithStay(dateutil.NewDate(2026, time.July, 10), dateutil.NewDate(2026, time.July, 13)).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, booking, camperToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		staffToken := authtest.LoginUser(t, s.Router, "staff@example.com", "password123")
		url := fmt.Sprintf(occupancyURL, inv.eventID)
		rw := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, staffToken)
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		var report response.OccupancyReportResponse
		err := httptest.DecodeResponseBody(t, rw.Body, &report)
		require.NoError(t, err)
		require.Equal(t, inv.eventID.String(), report.EventID)
		// Event runs Jul 10-15; the reporting window pads a day either side.
		require.Equal(t, "2026-07-09", report.WindowStart)
		require.Equal(t, "2026-07-16", report.WindowEnd)
		require.Equal(t, 7, report.TotalNights)
		require.Len(t, report.Sites, 2)

		require.Equal(t, "Site 1", report.Sites[0].Label)
		require.Equal(t, "partial", report.Sites[0].Status)
		require.Equal(t, 3, report.Sites[0].BookedNights)
		require.Len(t, report.Sites[0].Nights, 7)

		require.Equal(t, "Site 2", report.Sites[1].Label)
		require.Equal(t, "available", report.Sites[1].Status)
		require.Equal(t, 0, report.Sites[1].BookedNights)
	})

	s.Run("Error case: camper role is refused", func() {
		t := s.T()
		inv := s.seedInventory(t)

		dbtest.CreateTestUser(t, s.DB, "camper@example.com", string(user.RoleCamper))
		token := authtest.LoginUser(t, s.Router, "camper@example.com", "password123")

		url := fmt.Sprintf(occupancyURL, inv.eventID)
		rw := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusForbidden, rw.Code, rw.Body.String())
	})
}

// =============================================================================
// TestAdminUpdate - Admin booking move API tests
// =============================================================================

func (s *BookingSuite) TestAdminUpdate() {
	s.Run("Normal case: admin moves a booking to open dates", func() {
		t := s.T()
		inv := s.seedInventory(t)

		dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
		dbtest.CreateTestUser(t, s.DB, "camper@example.com", string(user.RoleCamper))
		camperToken := authtest.LoginUser(t, s.Router, "camper@example.com", "password123")

		createReq := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithEventID(inv.eventID).
			WithStay(dateutil.NewDate(2026, time.July, 10), dateutil.NewDate(2026, time.July, 13)).
			WithGuests(2, 0).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, createReq, camperToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingCreatedResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)

		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")
		updateReq := builder.NewBookingBuilder().
			WithStay(dateutil.NewDate(2026, time.July, 12), dateutil.NewDate(2026, time.July, 14)).
			WithGuests(2, 0).
			BuildUpdateRequestDTO()

		url := fmt.Sprintf(adminBookingURL, created.BookingID)
		uw := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, updateReq, adminToken)
		require.Equal(t, http.StatusOK, uw.Code, uw.Body.String())

		var updated response.BookingUpdatedResponse
		err = httptest.DecodeResponseBody(t, uw.Body, &updated)
		require.NoError(t, err)
		require.Equal(t, created.BookingID, updated.BookingID)
		// Base stays frozen at the original 15000; the second adult's fee is
		// recomputed for the new 2-night stay.
		require.Equal(t, int64(17000), updated.TotalCents)
	})

	s.Run("Error case: non-admin caller is refused", func() {
		t := s.T()
		inv := s.seedInventory(t)

		dbtest.CreateTestUser(t, s.DB, "camper@example.com", string(user.RoleCamper))
		token := authtest.LoginUser(t, s.Router, "camper@example.com", "password123")

		createReq := builder.NewBookingBuilder().
			WithCampsiteID(inv.siteA).
			WithEventID(inv.eventID).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, createReq, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingCreatedResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)

		updateReq := builder.NewBookingBuilder().BuildUpdateRequestDTO()
		url := fmt.Sprintf(adminBookingURL, created.BookingID)
		uw := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, updateReq, token)
		require.Equal(t, http.StatusForbidden, uw.Code, uw.Body.String())
	})
}
