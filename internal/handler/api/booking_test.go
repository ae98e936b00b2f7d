//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"campreserve/internal/domain/user"
	"campreserve/internal/handler/api"
	resdto "campreserve/internal/handler/dto/response"
	"campreserve/internal/pkg/errs"
	"campreserve/internal/usecase/commands"
	"campreserve/internal/usecase/queries"
	"campreserve/tests/common/builder"
	"campreserve/tests/common/httptest"
	"campreserve/tests/common/testutil"
	commandsmock "campreserve/tests/mock/commands"
	queriesmock "campreserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	authedUserID uuid.UUID
	authedRole   user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.authedUserID = uuid.New()
	s.authedRole = user.RoleCamper

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.authedUserID)
		c.Set("user_role", s.authedRole)
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.POST("/bookings/quote", s.handler.Quote)
	s.router.GET("/bookings", authMiddleware, s.handler.ListMine)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/admin/bookings/:id", authMiddleware, s.handler.Update)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	expectedResult := b.BuildCreateResult()

	validationCases := []testCaseBooking{
		{name: "missing field: owner_name", mutate: testutil.Field("owner_name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
		{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "missing field: campsite_id", mutate: testutil.Field("campsite_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: event_id", mutate: testutil.Field("event_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: check_in", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest},
		{name: "malformed check_in", mutate: testutil.Field("check_in", "07/10/2026"), expectCode: http.StatusBadRequest},
		{name: "malformed check_out", mutate: testutil.Field("check_out", "2026-13-40"), expectCode: http.StatusBadRequest},
		{name: "negative adults", mutate: testutil.Field("adults", -1), expectCode: http.StatusBadRequest},
		{name: "negative children", mutate: testutil.Field("children", -1), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(expectedResult.BookingID.String(), response.BookingID)
		s.Equal(expectedResult.OrderID.String(), response.OrderID)
		s.Equal(expectedResult.TotalCents, response.TotalCents)
		s.Equal("created", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "overlapping stay",
				commandsError:  errs.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Campsite unavailable for selected dates",
			},
			{
				name:           "campsite not found",
				commandsError:  errs.ErrCampsiteNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Campsite not found",
			},
			{
				name:           "event not found",
				commandsError:  errs.ErrEventNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Event not found",
			},
			{
				name:           "admin import without admin role",
				commandsError:  errs.ErrForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Insufficient permissions",
			},
			{
				name:           "domain validation error",
				commandsError:  errs.ErrValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid request",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *BookingHandlerTestSuite) TestQuote() {
	url := "/bookings/quote"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildQuoteRequestDTO()

	s.Run("success: returns 200 OK without authentication", func() {
		expected := &commands.QuoteResult{BaseCents: 15000, ExtraCents: 3000, TotalCents: 18000, Nights: 3}
		s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(15000), response.BaseCents)
		s.Equal(int64(3000), response.ExtraCents)
		s.Equal(int64(18000), response.TotalCents)
		s.Equal(3, response.Nights)
		s.False(response.FullStay)
	})

	s.Run("error: 400 Bad Request for malformed dates", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("check_out", "next tuesday"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: 404 Not Found for unknown campsite", func() {
		s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrCampsiteNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Campsite not found")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	b := builder.NewBookingBuilder()
	returnView := b.BuildView()
	url := "/bookings/" + returnView.ID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID.String(), response.ID)
		s.Equal(returnView.CampsiteLabel, response.CampsiteLabel)
		s.Equal(returnView.CheckIn.String(), response.CheckIn)
		s.Equal(returnView.CheckOut.String(), response.CheckOut)
		s.Equal(returnView.Adults, response.Adults)
		s.Equal(returnView.UnitPriceCents, response.UnitPriceCents)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), returnView.ID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMine() {
	url := "/bookings"

	s.Run("success: returns 200 OK with the caller's bookings", func() {
		listItems := []*queries.BookingListItem{
			builder.NewBookingBuilder().BuildListItem(),
			builder.NewBookingBuilder().BuildListItem(),
		}
		s.mockQueries.EXPECT().GetUserBookings(gomock.Any(), s.authedUserID).
			Return(listItems, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(listItems[0].ID.String(), response[0].ID)
	})

	s.Run("success: empty list for new user", func() {
		s.mockQueries.EXPECT().GetUserBookings(gomock.Any(), s.authedUserID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdate() {
	b := builder.NewBookingBuilder()
	reqBody := b.BuildUpdateRequestDTO()
	expectedResult := b.BuildUpdateResult()
	url := "/admin/bookings/" + b.BookingID.String()

	s.Run("success: returns 200 OK for admin", func() {
		s.authedRole = user.RoleAdmin
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), gomock.Any(), b.BookingID, gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.BookingUpdatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(expectedResult.BookingID.String(), response.BookingID)
		s.Equal(expectedResult.TotalCents, response.TotalCents)
	})

	s.Run("error: 403 Forbidden for non-admin caller", func() {
		s.authedRole = user.RoleCamper
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), gomock.Any(), b.BookingID, gomock.Any()).
			Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 409 Conflict when new dates overlap another booking", func() {
		s.authedRole = user.RoleAdmin
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), gomock.Any(), b.BookingID, gomock.Any()).
			Return(nil, errs.ErrBookingConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Campsite unavailable for selected dates")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.authedRole = user.RoleAdmin
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), gomock.Any(), b.BookingID, gomock.Any()).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
