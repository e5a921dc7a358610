package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/middleware"
	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/session"
)

func adminRouter() *gin.Engine {
	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/applications", ListAllApplications)
		admin.PUT("/applications/:id/status", UpdateApplicationStatus)
		admin.GET("/partners/pending", ListPendingPartners)
		admin.PUT("/partners/:id/approve", ApprovePartner)
	}
	return r
}

func adminIdentity() session.Identity {
	return session.Identity{UserID: 1, Name: "Admin", Email: "admin@example.com", UserType: "normal", IsAdmin: true}
}

func applicationColumns() []string {
	return []string{"id", "submitted_by_user_id", "submitted_by_user_type", "status", "created_at"}
}

func TestAdminRoutes_RejectNonAdmin(t *testing.T) {
	setupMockDB(t)

	asUser := performJSON(t, adminRouter(), http.MethodGet, "/admin/applications",
		nil, sessionCookies(t, userIdentity()))
	assert.Equal(t, http.StatusForbidden, asUser.Code)

	anonymous := performJSON(t, adminRouter(), http.MethodGet, "/admin/applications", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)
}

func TestListAllApplications_MergedNewestFirst(t *testing.T) {
	mock := setupMockDB(t)
	mock.MatchExpectationsInOrder(false)

	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)
	t3 := t1.Add(48 * time.Hour)

	mock.ExpectQuery(`SELECT \* FROM "loan_applications"`).
		WillReturnRows(sqlmock.NewRows(applicationColumns()).AddRow(1, 7, "normal", "submitted", t1))
	mock.ExpectQuery(`SELECT \* FROM "ca_service_applications"`).
		WillReturnRows(sqlmock.NewRows(applicationColumns()).AddRow(2, 7, "normal", "submitted", t3))
	mock.ExpectQuery(`SELECT \* FROM "government_scheme_applications"`).
		WillReturnRows(sqlmock.NewRows(applicationColumns()).AddRow(3, 7, "normal", "submitted", t2))

	w := performJSON(t, adminRouter(), http.MethodGet, "/admin/applications",
		nil, sessionCookies(t, adminIdentity()))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	apps := decodeBody(t, w)["applications"].([]interface{})
	require.Len(t, apps, 3)

	var order []float64
	var categories []string
	for _, raw := range apps {
		app := raw.(map[string]interface{})
		order = append(order, app["id"].(float64))
		categories = append(categories, app["serviceCategory"].(string))
	}
	// T3 > T2 > T1 regardless of source collection.
	assert.Equal(t, []float64{2, 3, 1}, order)
	assert.Equal(t, []string{"caService", "governmentScheme", "loan"}, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPendingPartners(t *testing.T) {
	mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "partners" WHERE is_approved`).
		WillReturnRows(sqlmock.NewRows(partnerColumns()).
			AddRow(5, "Vikram Shah", "vikram@example.com", "9876543210", "x", "dsa", false, false, time.Now()))

	w := performJSON(t, adminRouter(), http.MethodGet, "/admin/partners/pending",
		nil, sessionCookies(t, adminIdentity()))

	require.Equal(t, http.StatusOK, w.Code)
	partners := decodeBody(t, w)["partners"].([]interface{})
	assert.Len(t, partners, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprovePartner_FlipsFlag(t *testing.T) {
	mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "partners" WHERE id`).
		WillReturnRows(sqlmock.NewRows(partnerColumns()).
			AddRow(5, "Vikram Shah", "vikram@example.com", "9876543210", "x", "dsa", false, false, time.Now()))
	mock.ExpectExec(`UPDATE "partners" SET "is_approved"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := performJSON(t, adminRouter(), http.MethodPut, "/admin/partners/5/approve",
		nil, sessionCookies(t, adminIdentity()))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	partner := decodeBody(t, w)["partner"].(map[string]interface{})
	assert.Equal(t, true, partner["isApproved"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprovePartner_AlreadyApprovedIsNoOp(t *testing.T) {
	mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "partners" WHERE id`).
		WillReturnRows(sqlmock.NewRows(partnerColumns()).
			AddRow(5, "Vikram Shah", "vikram@example.com", "9876543210", "x", "dsa", true, false, time.Now()))

	w := performJSON(t, adminRouter(), http.MethodPut, "/admin/partners/5/approve",
		nil, sessionCookies(t, adminIdentity()))

	assert.Equal(t, http.StatusOK, w.Code)
	// No UPDATE was expected; a second approval must not touch the row.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprovePartner_NotFound(t *testing.T) {
	mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "partners" WHERE id`).
		WillReturnRows(sqlmock.NewRows(partnerColumns()))

	w := performJSON(t, adminRouter(), http.MethodPut, "/admin/partners/99/approve",
		nil, sessionCookies(t, adminIdentity()))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateApplicationStatus_Valid(t *testing.T) {
	mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "loan_applications" WHERE id`).
		WillReturnRows(sqlmock.NewRows(applicationColumns()).
			AddRow(11, 7, "normal", "submitted", time.Now()))
	mock.ExpectExec(`UPDATE "loan_applications" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := performJSON(t, adminRouter(), http.MethodPut, "/admin/applications/11/status?category=loan",
		gin.H{"status": "In Review"}, sessionCookies(t, adminIdentity()))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	app := decodeBody(t, w)["application"].(map[string]interface{})
	assert.Equal(t, "in review", app["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateApplicationStatus_IllegalTransition(t *testing.T) {
	mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "loan_applications" WHERE id`).
		WillReturnRows(sqlmock.NewRows(applicationColumns()).
			AddRow(11, 7, "normal", "approved", time.Now()))

	w := performJSON(t, adminRouter(), http.MethodPut, "/admin/applications/11/status?category=loan",
		gin.H{"status": "in review"}, sessionCookies(t, adminIdentity()))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateApplicationStatus_UnknownStatus(t *testing.T) {
	setupMockDB(t)

	w := performJSON(t, adminRouter(), http.MethodPut, "/admin/applications/11/status?category=loan",
		gin.H{"status": "archived"}, sessionCookies(t, adminIdentity()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
