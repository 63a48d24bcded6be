package handlers_test

import (
	"net/http"
	"testing"

	"teamup-backend/internal/api/handlers"
	"teamup-backend/internal/database/models"
	apperrors "teamup-backend/internal/errors"
	"teamup-backend/internal/mocks"
	"teamup-backend/internal/service"
	"teamup-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTeams       *mocks.MockTeamServiceInterface
	mockMemberships *mocks.MockMembershipServiceInterface
	handler         *handlers.TeamHandler
	httpSuite       *testutils.HTTPTestSuite
	userID          uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeams = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.mockMemberships = mocks.NewMockMembershipServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockTeams, suite.mockMemberships)
	suite.userID = uuid.New()

	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(suite.userID, false)

	teams := suite.httpSuite.Router.Group("/api/v1/teams")
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("", suite.handler.ListTeams)
		teams.GET("/mine/created", suite.handler.ListMyCreatedTeams)
		teams.GET("/mine/joined", suite.handler.ListMyJoinedTeams)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PATCH("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
		teams.POST("/:id/join", suite.handler.JoinTeam)
		teams.POST("/:id/quit", suite.handler.QuitTeam)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) me() service.Requester {
	return service.Requester{UserID: suite.userID}
}

// TestCreateTeam tests the CreateTeam handler
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		requestBody := map[string]interface{}{
			"name":     "hackers",
			"max_num":  4,
			"status":   "secret",
			"password": "pw",
		}

		suite.mockTeams.EXPECT().
			Create(gomock.Any(), gomock.Any(), suite.me()).
			DoAndReturn(func(_ interface{}, req *service.CreateTeamRequest, _ service.Requester) (*service.TeamResponse, error) {
				assert.Equal(t, "hackers", req.Name)
				assert.Equal(t, 4, req.MaxNum)
				assert.Equal(t, "pw", req.Password)
				return &service.TeamResponse{ID: teamID, Name: req.Name, MaxNum: req.MaxNum, Status: models.TeamStatusSecret, OwnerID: suite.userID}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", requestBody)

		var response service.TeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, teamID, response.ID)
		assert.NotContains(t, recorder.Body.String(), "pw")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", "invalid json")
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid_argument", "")
	})

	suite.T().Run("Validation error", func(t *testing.T) {
		suite.mockTeams.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("max_num", "must be at most 20"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{"name": "x", "max_num": 21})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid_argument", "max_num")
	})

	suite.T().Run("Owner quota", func(t *testing.T) {
		suite.mockTeams.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrOwnedTeamsQuota)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{"name": "x", "max_num": 2})
		testutils.AssertErrorResponse(t, recorder, http.StatusTooManyRequests, "quota_exceeded", "")
	})
}

// TestGetTeam tests the GetTeam handler
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockTeams.EXPECT().GetByID(gomock.Any(), teamID).Return(&service.TeamResponse{ID: teamID, Name: "t"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/"+teamID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/not-a-uuid", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid_argument", "invalid id")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockTeams.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/"+uuid.NewString(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not_found", "team not found")
	})
}

// TestUpdateTeam tests the UpdateTeam handler
func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	teamID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockTeams.EXPECT().
			Update(gomock.Any(), teamID, gomock.Any(), suite.me()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.UpdateTeamRequest, _ service.Requester) (*service.TeamResponse, error) {
				assert.NotNil(t, req.Name)
				assert.Nil(t, req.Status)
				return &service.TeamResponse{ID: teamID, Name: *req.Name}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/teams/"+teamID.String(), map[string]interface{}{"name": "renamed"})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Forbidden", func(t *testing.T) {
		suite.mockTeams.EXPECT().Update(gomock.Any(), teamID, gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrNotOwnerOrAdmin)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/teams/"+teamID.String(), map[string]interface{}{})
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "forbidden", "")
	})
}

// TestDeleteTeam tests the DeleteTeam handler
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	teamID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockTeams.EXPECT().Delete(gomock.Any(), teamID, suite.me()).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/"+teamID.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Storage unavailable hides details", func(t *testing.T) {
		suite.mockTeams.EXPECT().Delete(gomock.Any(), teamID, gomock.Any()).Return(apperrors.NewStorageError(assert.AnError))

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/"+teamID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusServiceUnavailable, "storage_unavailable", "")
		assert.NotContains(t, recorder.Body.String(), assert.AnError.Error())
	})
}

// TestListTeams tests the list handlers and query parsing
func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.T().Run("Parses filters", func(t *testing.T) {
		ownerID := uuid.New()
		suite.mockTeams.EXPECT().
			List(gomock.Any(), gomock.Any(), suite.me()).
			DoAndReturn(func(_ interface{}, f *service.TeamListFilter, _ service.Requester) ([]service.TeamView, error) {
				assert.Equal(t, "hack", f.SearchText)
				assert.Equal(t, "secret", f.Status)
				assert.Equal(t, ownerID, *f.OwnerID)
				assert.Equal(t, 4, *f.MaxNum)
				assert.Equal(t, 2, f.Page)
				assert.Equal(t, 10, f.PageSize)
				return []service.TeamView{{TeamResponse: service.TeamResponse{Name: "t"}, MemberCount: 2, HasJoined: true}}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodGet,
			"/api/v1/teams?search_text=hack&status=secret&owner_id="+ownerID.String()+"&max_num=4&page=2&page_size=10", nil)

		var response []service.TeamView
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 1)
		assert.True(t, response[0].HasJoined)
		assert.Equal(t, int64(2), response[0].MemberCount)
	})

	suite.T().Run("Invalid owner id", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams?owner_id=abc", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid_argument", "owner_id")
	})

	suite.T().Run("Invalid page", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams?page=first", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid_argument", "page")
	})

	suite.T().Run("Private listing forbidden", func(t *testing.T) {
		suite.mockTeams.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrPrivateListing)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams?status=private", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "forbidden", "")
	})

	suite.T().Run("Mine created", func(t *testing.T) {
		suite.mockTeams.EXPECT().ListMyCreated(gomock.Any(), gomock.Any(), suite.me()).Return([]service.TeamView{}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/mine/created", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Mine joined", func(t *testing.T) {
		suite.mockTeams.EXPECT().ListMyJoined(gomock.Any(), gomock.Any(), suite.me()).Return([]service.TeamView{}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/mine/joined", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestJoinTeam tests the JoinTeam handler
func (suite *TeamHandlerTestSuite) TestJoinTeam() {
	teamID := uuid.New()

	suite.T().Run("Without body", func(t *testing.T) {
		suite.mockMemberships.EXPECT().
			Join(gomock.Any(), teamID, gomock.Any(), suite.me()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.JoinTeamRequest, _ service.Requester) error {
				assert.Empty(t, req.Password)
				return nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/"+teamID.String()+"/join", nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("With password", func(t *testing.T) {
		suite.mockMemberships.EXPECT().
			Join(gomock.Any(), teamID, &service.JoinTeamRequest{Password: "pw"}, suite.me()).
			Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/"+teamID.String()+"/join", map[string]string{"password": "pw"})
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	errorCases := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"Team full", apperrors.ErrTeamFull, http.StatusConflict, "conflict"},
		{"Already member", apperrors.ErrAlreadyMember, http.StatusConflict, "conflict"},
		{"Wrong password", apperrors.ErrWrongPassword, http.StatusConflict, "conflict"},
		{"Private team", apperrors.ErrPrivateTeam, http.StatusForbidden, "forbidden"},
		{"Join quota", apperrors.ErrJoinedTeamsQuota, http.StatusTooManyRequests, "quota_exceeded"},
		{"Lock busy", apperrors.ErrLockUnavailable, http.StatusServiceUnavailable, "lock_unavailable"},
		{"Not found", apperrors.ErrTeamNotFound, http.StatusNotFound, "not_found"},
	}
	for _, tc := range errorCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockMemberships.EXPECT().Join(gomock.Any(), teamID, gomock.Any(), gomock.Any()).Return(tc.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/"+teamID.String()+"/join", nil)
			testutils.AssertErrorResponse(t, recorder, tc.status, tc.kind, "")
		})
	}
}

// TestQuitTeam tests the QuitTeam handler
func (suite *TeamHandlerTestSuite) TestQuitTeam() {
	teamID := uuid.New()

	suite.T().Run("Leadership transferred", func(t *testing.T) {
		successor := uuid.New()
		suite.mockMemberships.EXPECT().Quit(gomock.Any(), teamID, suite.me()).Return(&service.QuitResult{NewOwnerID: &successor}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/"+teamID.String()+"/quit", nil)

		var response service.QuitResult
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, successor, *response.NewOwnerID)
		assert.False(t, response.TeamDissolved)
	})

	suite.T().Run("Not a member", func(t *testing.T) {
		suite.mockMemberships.EXPECT().Quit(gomock.Any(), teamID, gomock.Any()).Return(nil, apperrors.ErrNotMember)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/"+teamID.String()+"/quit", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "conflict", "not a member")
	})

	suite.T().Run("No successor", func(t *testing.T) {
		suite.mockMemberships.EXPECT().Quit(gomock.Any(), teamID, gomock.Any()).Return(nil, apperrors.ErrNoSuccessor)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/"+teamID.String()+"/quit", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "system_error", "internal server error")
	})
}

// TestMissingRequester checks that handlers refuse calls without an authenticated user
func TestMissingRequester(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := handlers.NewTeamHandler(mocks.NewMockTeamServiceInterface(ctrl), mocks.NewMockMembershipServiceInterface(ctrl))
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.POST("/teams/:id/join", handler.JoinTeam)

	recorder := httpSuite.MakeRequest(http.MethodPost, "/teams/"+uuid.NewString()+"/join", nil)

	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "unauthenticated", "")
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
