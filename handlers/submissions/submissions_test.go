package submissions

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
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
	require.NoError(t, db.AutoMigrate(
		&models.AdminUser{},
		&models.LdrContact{},
		&models.LdrCareer{},
		&models.ClientRegister{},
	))
	utils.DB = db

	r := gin.New()
	RegisterSubmissionsRoutes(r.Group("/"))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListAdminUsersHidesPassword(t *testing.T) {
	r := setupRouter(t)

	admin := models.AdminUser{Name: "Office", Email: "office@example.com", Password: "plaintext"}
	require.NoError(t, utils.DB.Create(&admin).Error)

	w := get(r, "/admin")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Office", listed[0]["name"])
	assert.NotContains(t, listed[0], "password")
}

func TestListContactsNewestFirst(t *testing.T) {
	r := setupRouter(t)

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"first", "second"} {
		contact := models.LdrContact{Name: name, Email: name + "@example.com", PhoneNumber: "12345", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, utils.DB.Create(&contact).Error)
	}

	w := get(r, "/ldr-contacts")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.LdrContact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "second", listed[0].Name)
}

func TestListCareersAndClientRegisters(t *testing.T) {
	r := setupRouter(t)

	career := models.LdrCareer{Name: "Applicant", Email: "applicant@example.com", PhoneNumber: "54321"}
	require.NoError(t, utils.DB.Create(&career).Error)
	register := models.ClientRegister{UserName: "client1", Password: "secret", PhoneNumber: "99999", Email: "client1@example.com"}
	require.NoError(t, utils.DB.Create(&register).Error)

	w := get(r, "/ldr-careers")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Applicant")

	w = get(r, "/client-registers")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "client1", listed[0]["user_name"])
	assert.NotContains(t, listed[0], "password")
}
