package handlers_test

import (
	"bytes"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/project_finance_app/internal/core/ports/services"
	"github.com/SscSPs/project_finance_app/internal/handlers"
	"github.com/SscSPs/project_finance_app/internal/platform/config"
	"github.com/SscSPs/project_finance_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// handlerSuite wires the real router, auth middleware and role gates around mocked services.
type handlerSuite struct {
	suite.Suite
	router        *gin.Engine
	jwtSecret     string
	userID        string
	assignments   *MockAssignmentService
	analytics     *MockAnalyticsService
	expenseReview *MockExpenseReviewService
	projects      *MockProjectService
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.jwtSecret = "test-secret-key-that-is-long-enough"
	s.userID = uuid.NewString()

	s.assignments = new(MockAssignmentService)
	s.analytics = new(MockAnalyticsService)
	s.expenseReview = new(MockExpenseReviewService)
	s.projects = new(MockProjectService)

	cfg := &config.Config{
		JWTSecret:    s.jwtSecret,
		IsProduction: true,
	}
	s.router = gin.New()
	s.Require().NoError(handlers.RegisterRoutes(s.router, cfg, &portssvc.ServiceContainer{
		Assignment:    s.assignments,
		Analytics:     s.analytics,
		ExpenseReview: s.expenseReview,
		Project:       s.projects,
	}))
}

func (s *handlerSuite) TearDownTest() {
	s.assignments.AssertExpectations(s.T())
	s.analytics.AssertExpectations(s.T())
	s.expenseReview.AssertExpectations(s.T())
	s.projects.AssertExpectations(s.T())
}

// generateTestToken signs a token for the suite's user carrying the given role.
func (s *handlerSuite) generateTestToken(role domain.Role) string {
	token, err := utils.GenerateJWT(s.userID, string(role), s.jwtSecret, time.Hour, "pfa-test")
	if err != nil {
		s.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

// do sends a request through the router. An empty role sends no Authorization header.
func (s *handlerSuite) do(method, path, body string, role domain.Role) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("Authorization", "Bearer "+s.generateTestToken(role))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}
