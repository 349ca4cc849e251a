package surveyrecords

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Project{}, &models.SurveyRecord{}))
	utils.DB = db

	r := gin.New()
	RegisterSurveyRecordsRoutes(r.Group("/"))
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

func TestCreateSurveyRecordAppliesDefaults(t *testing.T) {
	r := setupRouter(t)

	body := `{"survey_type":"boundary","measurements":{"north":"120ft","south":"118ft"}}`
	w := doRequest(r, http.MethodPost, "/survey-records", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.SurveyRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Tamil Nadu", created.State)
	assert.Equal(t, "in_progress", created.Status)
}

func TestCreateSurveyRecordRequiresSurveyType(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/survey-records", `{"plot_number":"42A"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "survey_type")
}

func TestUpdateSurveyRecordKeepsBlobs(t *testing.T) {
	r := setupRouter(t)

	body := `{"survey_type":"boundary","measurements":{"north":"120ft"}}`
	w := doRequest(r, http.MethodPost, "/survey-records", body)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.SurveyRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(r, http.MethodPatch, "/survey-records/"+created.ID, `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "completed", payload["status"])
	measurements, ok := payload["measurements"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "120ft", measurements["north"])
}

func TestRetrieveSurveyRecordNotFound(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/survey-records/missing", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, w.Body.String())
}
