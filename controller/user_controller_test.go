// api/controller/user_controller_test.go
package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	"github.com/dev-anuragv/skillboard/api/model"
	"github.com/dev-anuragv/skillboard/api/test/mock"
)

func userRouter(svc *mock.MockUserService) *gin.Engine {
	controller := NewUserController(svc)
	router := gin.New()
	router.POST("/users", controller.CreateUser)
	router.GET("/users/:id", controller.GetUser)
	router.DELETE("/users/:id", controller.DeleteUser)
	router.POST("/users/:id/skills", controller.AddSkill)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateUserValidation(t *testing.T) {
	svc := new(mock.MockUserService)
	router := userRouter(svc)

	for name, body := range map[string]string{
		"short name":       `{"name":"al","age":30,"password":"Passw0rd","city":"London"}`,
		"missing city":     `{"name":"alice","age":30,"password":"Passw0rd"}`,
		"age out of range": `{"name":"alice","age":120,"password":"Passw0rd","city":"London"}`,
		"weak password":    `{"name":"alice","age":30,"password":"short","city":"London"}`,
		"no digit":         `{"name":"alice","age":30,"password":"Password","city":"London"}`,
		"no uppercase":     `{"name":"alice","age":30,"password":"passw0rd","city":"London"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := postJSON(router, "/users", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	svc.AssertNotCalled(t, "Register")
}

func TestCreateUserStatusCodes(t *testing.T) {
	valid := `{"name":"alice","age":30,"password":"Passw0rd","city":"London"}`

	t.Run("created", func(t *testing.T) {
		svc := new(mock.MockUserService)
		svc.On("Register", testifymock.Anything, testifymock.Anything).
			Return(&model.User{ID: 1, Name: "alice"}, nil)
		rec := postJSON(userRouter(svc), "/users", valid)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"alice"`)
	})

	t.Run("conflict", func(t *testing.T) {
		svc := new(mock.MockUserService)
		svc.On("Register", testifymock.Anything, testifymock.Anything).
			Return(nil, board_errors.ErrUserConflict)
		rec := postJSON(userRouter(svc), "/users", valid)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown city", func(t *testing.T) {
		svc := new(mock.MockUserService)
		svc.On("Register", testifymock.Anything, testifymock.Anything).
			Return(nil, board_errors.ErrCityNotFound)
		rec := postJSON(userRouter(svc), "/users", valid)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetUserStatusCodes(t *testing.T) {
	svc := new(mock.MockUserService)
	svc.On("GetUser", testifymock.Anything, uint(7)).Return(&model.User{ID: 7, Name: "alice"}, nil)
	svc.On("GetUser", testifymock.Anything, uint(42)).Return(nil, board_errors.ErrUserNotFound)
	router := userRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/7", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/42", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/not-a-number", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteUserStatusCodes(t *testing.T) {
	svc := new(mock.MockUserService)
	svc.On("DeleteUser", testifymock.Anything, uint(7)).Return(nil)
	svc.On("DeleteUser", testifymock.Anything, uint(42)).Return(board_errors.ErrUserNotFound)
	router := userRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/users/7", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/users/42", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddSkillStatusCodes(t *testing.T) {
	svc := new(mock.MockUserService)
	svc.On("AddSkill", testifymock.Anything, uint(7), "go").
		Return(&model.User{ID: 7, Name: "alice", Skills: []model.Skill{{ID: 1, Name: "go"}}}, nil)
	svc.On("AddSkill", testifymock.Anything, uint(7), "cobol").
		Return(nil, board_errors.ErrSkillNotFound)
	svc.On("AddSkill", testifymock.Anything, uint(7), "sql").
		Return(nil, board_errors.ErrSkillConflict)
	router := userRouter(svc)

	rec := postJSON(router, "/users/7/skills", `{"skill":"go"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"go"`)

	rec = postJSON(router, "/users/7/skills", `{"skill":"cobol"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = postJSON(router, "/users/7/skills", `{"skill":"sql"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = postJSON(router, "/users/7/skills", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
