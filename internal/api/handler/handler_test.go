package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Msahu05/smart-campus-comms/internal/dto"
	"github.com/Msahu05/smart-campus-comms/internal/service"
	"github.com/Msahu05/smart-campus-comms/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	registerResult   *dto.RegisterResponse
	registerErr      error
	loginResult      *dto.TokenResponse
	loginErr         error
	refreshResult    *dto.TokenResponse
	refreshErr       error
	logoutErr        error
	getCurrentResult *dto.UserResponse
	getCurrentErr    error
	changePassErr    error
}

func (m *mockAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return m.registerResult, m.registerErr
}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) RefreshToken(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Time) error {
	return m.logoutErr
}
func (m *mockAuthService) GetCurrentUser(_ context.Context, _ string) (*dto.UserResponse, error) {
	return m.getCurrentResult, m.getCurrentErr
}
func (m *mockAuthService) ChangePassword(_ context.Context, _ string, _ *dto.ChangePasswordRequest) error {
	return m.changePassErr
}

// ── Mock QueryService ──

type mockQueryService struct {
	askResult     *dto.QueryResponse
	askErr        error
	listResult    []dto.QueryResponse
	listErr       error
	inboxResult   []dto.QueryResponse
	inboxErr      error
	respondResult *dto.QueryResponse
	respondErr    error
}

func (m *mockQueryService) Ask(_ context.Context, _ string, _ *dto.AskQueryRequest) (*dto.QueryResponse, error) {
	return m.askResult, m.askErr
}
func (m *mockQueryService) ListMine(_ context.Context, _ string) ([]dto.QueryResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockQueryService) Inbox(_ context.Context, _ string) ([]dto.QueryResponse, error) {
	return m.inboxResult, m.inboxErr
}
func (m *mockQueryService) Respond(_ context.Context, _, _ string, _ *dto.RespondQueryRequest) (*dto.QueryResponse, error) {
	return m.respondResult, m.respondErr
}

// ── Mock AppointmentService ──

type mockAppointmentService struct {
	bookResult    *dto.AppointmentResponse
	bookErr       error
	studentList   []dto.AppointmentResponse
	professorList []dto.AppointmentResponse
	pendingList   []dto.AppointmentResponse
	listErr       error
	approveErr    error
	rejectErr     error
}

func (m *mockAppointmentService) Book(_ context.Context, _ string, _ *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.bookResult, m.bookErr
}
func (m *mockAppointmentService) ListForStudent(_ context.Context, _ string) ([]dto.AppointmentResponse, error) {
	return m.studentList, m.listErr
}
func (m *mockAppointmentService) ListForProfessor(_ context.Context, _ string) ([]dto.AppointmentResponse, error) {
	return m.professorList, m.listErr
}
func (m *mockAppointmentService) ListPending(_ context.Context, _ string) ([]dto.AppointmentResponse, error) {
	return m.pendingList, m.listErr
}
func (m *mockAppointmentService) Approve(_ context.Context, _, _ string) error {
	return m.approveErr
}
func (m *mockAppointmentService) Reject(_ context.Context, _, _ string) error {
	return m.rejectErr
}

// ── Mock OfficeHoursService ──

type mockOfficeHoursService struct {
	createResult *dto.OfficeHourResponse
	createErr    error
	listResult   []dto.OfficeHourResponse
	listErr      error
	deleteErr    error
	slotsResult  []dto.OfficeHourResponse
	slotsErr     error
}

func (m *mockOfficeHoursService) Create(_ context.Context, _ string, _ *dto.CreateOfficeHourRequest) (*dto.OfficeHourResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockOfficeHoursService) ListMine(_ context.Context, _ string) ([]dto.OfficeHourResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockOfficeHoursService) Delete(_ context.Context, _, _ string) error {
	return m.deleteErr
}
func (m *mockOfficeHoursService) ListAvailableSlots(_ context.Context, _, _ string) ([]dto.OfficeHourResponse, error) {
	return m.slotsResult, m.slotsErr
}

// ── Mock UserService ──

type mockUserService struct {
	listResult *dto.UserManagementResponse
	listErr    error
	deleteErr  error
}

func (m *mockUserService) ListManaged(_ context.Context) (*dto.UserManagementResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockUserService) DeleteUser(_ context.Context, _, _ string) error {
	return m.deleteErr
}

// ── Mock RegistrationKeyService ──

type mockKeyService struct {
	generateResult *dto.RegistrationKeyResponse
	generateErr    error
	listResult     []dto.RegistrationKeyResponse
	listErr        error
}

func (m *mockKeyService) Generate(_ context.Context, _ string, _ *dto.GenerateKeyRequest) (*dto.RegistrationKeyResponse, error) {
	return m.generateResult, m.generateErr
}
func (m *mockKeyService) ListMine(_ context.Context, _ string) ([]dto.RegistrationKeyResponse, error) {
	return m.listResult, m.listErr
}

// ── Mock DetailService ──

type mockDetailService struct {
	viewResult *dto.DetailResponse
	viewErr    error
}

func (m *mockDetailService) View(_ context.Context, _ dto.DetailKind) (*dto.DetailResponse, error) {
	return m.viewResult, m.viewErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) AnalyticsWorkbook(_ context.Context) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) OfficeHoursCalendar(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) AppointmentsCalendar(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func setAuth(c *gin.Context) {
	c.Set("user_id", "test-user-id")
	c.Set("role", "student")
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Register_Success(t *testing.T) {
	mock := &mockAuthService{
		registerResult: &dto.RegisterResponse{
			ID:       "u-1",
			FullName: "张三",
			Email:    "zhang@example.edu",
			Role:     "student",
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		Role:     "student",
		FullName: "张三",
		Email:    "zhang@example.edu",
		Password: "Passw0rd123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Register_EmailExists(t *testing.T) {
	mock := &mockAuthService{registerErr: service.ErrEmailExists}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		Role:     "student",
		FullName: "张三",
		Email:    "zhang@example.edu",
		Password: "Passw0rd123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11002 {
		t.Errorf("expected error code 11002, got %d", resp.Code)
	}
}

func TestAuthHandler_Register_BadKey(t *testing.T) {
	mock := &mockAuthService{registerErr: service.ErrKeyExpired}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		Role:            "professor",
		FullName:        "王教授",
		Email:           "wang@example.edu",
		Password:        "Passw0rd123",
		RegistrationKey: "PROF-EXPIRED1",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11003 {
		t.Errorf("expected error code 11003, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "test-access-token",
			RefreshToken: "test-refresh-token",
			ExpiresIn:    900,
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "zhang@example.edu",
		Password: "Passw0rd123",
		Role:     "student",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mock := &mockAuthService{loginErr: service.ErrInvalidCredentials}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "zhang@example.edu",
		Password: "wrong-password",
		Role:     "student",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_RoleNotHeld(t *testing.T) {
	mock := &mockAuthService{loginErr: service.ErrRoleNotHeld}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "zhang@example.edu",
		Password: "Passw0rd123",
		Role:     "hod",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11004 {
		t.Errorf("expected error code 11004, got %d", resp.Code)
	}
}

func TestAuthHandler_RefreshToken_Invalid(t *testing.T) {
	mock := &mockAuthService{refreshErr: service.ErrRefreshInvalid}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/refresh", jsonBody(dto.RefreshTokenRequest{
		RefreshToken: "stale-refresh",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/refresh", h.RefreshToken)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11005 {
		t.Errorf("expected error code 11005, got %d", resp.Code)
	}
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/me", nil)

	r := gin.New()
	r.GET("/auth/me", h.Me)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthHandler_ChangePassword_WrongOldPassword(t *testing.T) {
	mock := &mockAuthService{changePassErr: service.ErrOldPasswordWrong}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/auth/password", jsonBody(dto.ChangePasswordRequest{
		OldPassword: "Wrong12345",
		NewPassword: "New1234567",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/auth/password", func(c *gin.Context) {
		setAuth(c)
		h.ChangePassword(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11006 {
		t.Errorf("expected error code 11006, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// QueryHandler Tests
// ═══════════════════════════════════════════════════════════

func TestQueryHandler_Ask_Success(t *testing.T) {
	mock := &mockQueryService{
		askResult: &dto.QueryResponse{ID: "q-1", Status: "pending"},
	}
	h := NewQueryHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/student/queries", jsonBody(dto.AskQueryRequest{
		ProfessorID: "550e8400-e29b-41d4-a716-446655440000",
		Subject:     "数据结构",
		Question:    "红黑树的删除怎么理解？",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/student/queries", func(c *gin.Context) {
		setAuth(c)
		h.Ask(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestQueryHandler_Respond_NotFound(t *testing.T) {
	mock := &mockQueryService{respondErr: service.ErrQueryNotFound}
	h := NewQueryHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/professor/queries/q-404/response", jsonBody(dto.RespondQueryRequest{
		Response: "见教材第八章",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/professor/queries/:id/response", func(c *gin.Context) {
		setAuth(c)
		h.Respond(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 13002 {
		t.Errorf("expected error code 13002, got %d", resp.Code)
	}
}

func TestQueryHandler_Respond_NotYours(t *testing.T) {
	mock := &mockQueryService{respondErr: service.ErrNotYourQuery}
	h := NewQueryHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/professor/queries/q-1/response", jsonBody(dto.RespondQueryRequest{
		Response: "见教材第八章",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/professor/queries/:id/response", func(c *gin.Context) {
		setAuth(c)
		h.Respond(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 13003 {
		t.Errorf("expected error code 13003, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// AppointmentHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAppointmentHandler_Book_DateMismatch(t *testing.T) {
	mock := &mockAppointmentService{bookErr: service.ErrDateMismatch}
	h := NewAppointmentHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/student/appointments", jsonBody(dto.BookAppointmentRequest{
		ProfessorID:  "550e8400-e29b-41d4-a716-446655440000",
		OfficeHourID: "550e8400-e29b-41d4-a716-446655440001",
		Date:         "2026-09-01",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/student/appointments", func(c *gin.Context) {
		setAuth(c)
		h.Book(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 15005 {
		t.Errorf("expected error code 15005, got %d", resp.Code)
	}
}

func TestAppointmentHandler_Approve_Success(t *testing.T) {
	mock := &mockAppointmentService{}
	h := NewAppointmentHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/professor/appointments/a-1/approve", nil)

	r := gin.New()
	r.PUT("/professor/appointments/:id/approve", func(c *gin.Context) {
		setAuth(c)
		h.Approve(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("已批准预约")) {
		t.Errorf("期望响应包含批准文案，实际=%s", w.Body.String())
	}
}

func TestAppointmentHandler_Reject_NotYours(t *testing.T) {
	mock := &mockAppointmentService{rejectErr: service.ErrNotYourAppointment}
	h := NewAppointmentHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/professor/appointments/a-1/reject", nil)

	r := gin.New()
	r.PUT("/professor/appointments/:id/reject", func(c *gin.Context) {
		setAuth(c)
		h.Reject(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 15004 {
		t.Errorf("expected error code 15004, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// OfficeHoursHandler Tests
// ═══════════════════════════════════════════════════════════

func TestOfficeHoursHandler_Create_Success(t *testing.T) {
	mock := &mockOfficeHoursService{
		createResult: &dto.OfficeHourResponse{ID: "oh-1", DayOfWeek: "Monday"},
	}
	h := NewOfficeHoursHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/professor/office-hours", jsonBody(dto.CreateOfficeHourRequest{
		DayOfWeek: "Monday",
		StartTime: "10:00",
		EndTime:   "11:00",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/professor/office-hours", func(c *gin.Context) {
		setAuth(c)
		h.Create(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestOfficeHoursHandler_AvailableSlots_MissingDate(t *testing.T) {
	h := NewOfficeHoursHandler(&mockOfficeHoursService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/student/professors/p-1/office-hours", nil)

	r := gin.New()
	r.GET("/student/professors/:id/office-hours", func(c *gin.Context) {
		setAuth(c)
		h.AvailableSlots(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestOfficeHoursHandler_Delete_NotYours(t *testing.T) {
	mock := &mockOfficeHoursService{deleteErr: service.ErrNotYourOfficeHour}
	h := NewOfficeHoursHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/professor/office-hours/oh-1", nil)

	r := gin.New()
	r.DELETE("/professor/office-hours/:id", func(c *gin.Context) {
		setAuth(c)
		h.Delete(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 14002 {
		t.Errorf("expected error code 14002, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// UserHandler Tests
// ═══════════════════════════════════════════════════════════

func TestUserHandler_Delete_Self(t *testing.T) {
	mock := &mockUserService{deleteErr: service.ErrUserSelfDelete}
	h := NewUserHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/hod/users/test-user-id", nil)

	r := gin.New()
	r.DELETE("/hod/users/:id", func(c *gin.Context) {
		setAuth(c)
		h.Delete(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 16002 {
		t.Errorf("expected error code 16002, got %d", resp.Code)
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	mock := &mockUserService{deleteErr: service.ErrUserNotFound}
	h := NewUserHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/hod/users/u-404", nil)

	r := gin.New()
	r.DELETE("/hod/users/:id", func(c *gin.Context) {
		setAuth(c)
		h.Delete(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// RegistrationKeyHandler Tests
// ═══════════════════════════════════════════════════════════

func TestKeyHandler_Generate_CollegeMissing(t *testing.T) {
	mock := &mockKeyService{generateErr: service.ErrHodCollegeMissing}
	h := NewRegistrationKeyHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/hod/registration-keys", jsonBody(dto.GenerateKeyRequest{
		Department: "计算机系",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/hod/registration-keys", func(c *gin.Context) {
		setAuth(c)
		h.Generate(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 17001 {
		t.Errorf("expected error code 17001, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// DetailHandler Tests
// ═══════════════════════════════════════════════════════════

func TestDetailHandler_View_UnknownKind(t *testing.T) {
	h := NewDetailHandler(&mockDetailService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/hod/details/nonsense", nil)

	r := gin.New()
	r.GET("/hod/details/:kind", func(c *gin.Context) {
		setAuth(c)
		h.View(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 18001 {
		t.Errorf("expected error code 18001, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_Analytics_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("fake-xlsx-bytes"),
		filename: "analytics-20260830.xlsx",
	}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/hod/export/analytics", nil)

	r := gin.New()
	r.GET("/hod/export/analytics", func(c *gin.Context) {
		setAuth(c)
		h.Analytics(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	disposition := w.Header().Get("Content-Disposition")
	if disposition == "" {
		t.Error("期望设置 Content-Disposition 头")
	}
	if w.Body.String() != "fake-xlsx-bytes" {
		t.Errorf("期望响应体为导出内容，实际=%s", w.Body.String())
	}
}

func TestExportHandler_OfficeHoursCalendar_Empty(t *testing.T) {
	mock := &mockExportService{err: service.ErrExportNoOfficeHours}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/professor/office-hours/calendar.ics", nil)

	r := gin.New()
	r.GET("/professor/office-hours/calendar.ics", func(c *gin.Context) {
		setAuth(c)
		h.OfficeHoursCalendar(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 19001 {
		t.Errorf("expected error code 19001, got %d", resp.Code)
	}
}
