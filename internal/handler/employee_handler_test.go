package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"agriconnect/internal/auth"
	"agriconnect/internal/model"
)

func newTestEmployeeHandler(employeeService *MockEmployeeService, authService *MockAuthService) *EmployeeHandler {
	return NewEmployeeHandler(employeeService, nil, nil, authService)
}

func TestEmployeeHandler_ListEmployees(t *testing.T) {
	t.Run("lists the whole directory", func(t *testing.T) {
		employeeService := new(MockEmployeeService)
		employeeService.On("List", mock.Anything).Return([]model.Employee{{ID: 1}, {ID: 2}}, nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/employee/employees", nil)
		rec := httptest.NewRecorder()

		h := newTestEmployeeHandler(employeeService, nil)
		err := h.ListEmployees(e.NewContext(req, rec))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		employeeService.AssertExpectations(t)
	})

	t.Run("narrows to a department", func(t *testing.T) {
		employeeService := new(MockEmployeeService)
		employeeService.On("ListByDepartment", mock.Anything, "Extension Services").
			Return([]model.Employee{{ID: 3, Department: "Extension Services"}}, nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/employee/employees?department=Extension+Services", nil)
		rec := httptest.NewRecorder()

		h := newTestEmployeeHandler(employeeService, nil)
		err := h.ListEmployees(e.NewContext(req, rec))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		employeeService.AssertNotCalled(t, "List", mock.Anything)
		employeeService.AssertExpectations(t)
	})
}

func TestEmployeeHandler_RegisterEmployee(t *testing.T) {
	authService := new(MockAuthService)
	authService.On("Register", mock.Anything, mock.AnythingOfType("*model.User"), "s3cret-pass", auth.RoleEmployee.String()).
		Return(&model.User{ID: 9, Username: "naledi"}, nil)

	employeeService := new(MockEmployeeService)
	employeeService.On("Create", mock.Anything, mock.MatchedBy(func(emp *model.Employee) bool {
		return emp.UserID == 9 && emp.Department == "Field Support" && emp.Active
	})).Return(nil)

	e := echo.New()
	e.Validator = newTestValidator()
	body := `{"username":"naledi","email":"naledi@example.com","password":"s3cret-pass","profile":{"department":"Field Support","position":"Agronomist"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/employee/employees", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	h := newTestEmployeeHandler(employeeService, authService)
	err := h.RegisterEmployee(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	authService.AssertExpectations(t)
	employeeService.AssertExpectations(t)
}

func TestEmployeeHandler_UpdateEmployee(t *testing.T) {
	employeeService := new(MockEmployeeService)
	employeeService.On("GetByID", mock.Anything, uint(4)).
		Return(&model.Employee{ID: 4, UserID: 9, Department: "Field Support"}, nil)
	employeeService.On("Update", mock.Anything, mock.MatchedBy(func(emp *model.Employee) bool {
		return emp.ID == 4 && emp.UserID == 9 && emp.Department == "Operations"
	})).Return(nil)

	e := echo.New()
	e.Validator = newTestValidator()
	req := httptest.NewRequest(http.MethodPut, "/api/employee/employees/4", strings.NewReader(`{"department":"Operations"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("4")

	h := newTestEmployeeHandler(employeeService, nil)
	err := h.UpdateEmployee(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	employeeService.AssertExpectations(t)
}
