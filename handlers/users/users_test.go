package users

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"land-survey-crm-server/models"
	"land-survey-crm-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.UserCustomerData{}, &models.UserLeave{}))
	utils.DB = db

	r := gin.New()
	RegisterUsersRoutes(r.Group("/"))
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedUser(t *testing.T, username string, joined time.Time) models.User {
	user := models.User{Username: username, Email: username + "@example.com", Password: "x", IsActive: true, DateJoined: joined}
	require.NoError(t, utils.DB.Create(&user).Error)
	return user
}

func TestListUsersNewestJoinedFirst(t *testing.T) {
	r := setupRouter(t)

	base := time.Now().Add(-time.Hour)
	seedUser(t, "older", base)
	seedUser(t, "newer", base.Add(time.Minute))

	w := doRequest(r, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "newer", listed[0]["username"])
	assert.Equal(t, "older", listed[1]["username"])
	// The mapped shape, not the raw row.
	assert.Contains(t, listed[0], "isActive")
	assert.Contains(t, listed[0], "createdAt")
	assert.NotContains(t, listed[0], "password")
}

func TestRetrieveUserNotFound(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/users/999", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, w.Body.String())
}

func TestUpdateUserRoleTogglesStaffFlag(t *testing.T) {
	r := setupRouter(t)
	user := seedUser(t, "ravi", time.Now())

	w := doRequest(r, http.MethodPatch, fmt.Sprintf("/users/%d", user.ID), `{"role":"admin"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/users/%d", user.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "admin", payload["role"])

	// Any non-admin value reverts the flag.
	w = doRequest(r, http.MethodPatch, fmt.Sprintf("/users/%d", user.ID), `{"role":"user"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "user", payload["role"])
}

func TestUpdateUserPartialFields(t *testing.T) {
	r := setupRouter(t)
	user := seedUser(t, "ravi", time.Now())

	w := doRequest(r, http.MethodPatch, fmt.Sprintf("/users/%d", user.ID), `{"isActive":false}`)
	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, false, payload["isActive"])
	assert.Equal(t, "ravi", payload["username"])
}

func TestDeleteUserHandlesDependents(t *testing.T) {
	r := setupRouter(t)
	applicant := seedUser(t, "applicant", time.Now())
	approver := seedUser(t, "approver", time.Now())

	profile := models.UserCustomerData{UserID: applicant.ID, Name: "Applicant", Email: "applicant@example.com"}
	require.NoError(t, utils.DB.Create(&profile).Error)
	leave := models.UserLeave{
		UserID:       applicant.ID,
		LeaveType:    "casual",
		StartDate:    time.Now(),
		EndDate:      time.Now().AddDate(0, 0, 2),
		TotalDays:    2,
		Reason:       "family function",
		AppliedAt:    time.Now(),
		ApprovedByID: &approver.ID,
	}
	require.NoError(t, utils.DB.Create(&leave).Error)

	// Deleting the approver detaches, deleting the applicant cascades.
	w := doRequest(r, http.MethodDelete, fmt.Sprintf("/users/%d", approver.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var remaining models.UserLeave
	require.NoError(t, utils.DB.First(&remaining, leave.ID).Error)
	assert.Nil(t, remaining.ApprovedByID)

	w = doRequest(r, http.MethodDelete, fmt.Sprintf("/users/%d", applicant.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var leaveCount, profileCount int64
	utils.DB.Model(&models.UserLeave{}).Count(&leaveCount)
	utils.DB.Model(&models.UserCustomerData{}).Count(&profileCount)
	assert.Zero(t, leaveCount)
	assert.Zero(t, profileCount)
}
