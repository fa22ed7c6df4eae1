package controller

import (
	"bytes"
	"mime/multipart"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"nurastays_backend/internal/model"
)

func seedTeamMember(t *testing.T, db *gorm.DB, name string, order int) model.TeamMember {
	t.Helper()
	m := model.TeamMember{
		Name:       name,
		Role:       "Host",
		Bio:        "Welcomes guests",
		OrderIndex: order,
		SocialLinks: datatypes.JSONMap{
			"instagram": "https://instagram.com/" + name,
		},
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func TestListTeamMembersOrdered(t *testing.T) {
	app, db := setupApp(t)

	seedTeamMember(t, db, "Zelia", 0)
	seedTeamMember(t, db, "Alba", 1)
	seedTeamMember(t, db, "Bruno", 0)

	resp := request(t, app, "GET", "/api/team/", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	results := decodeList(t, resp)
	require.Len(t, results, 3)
	// order_index first, name breaks ties.
	assert.Equal(t, "Bruno", results[0]["name"])
	assert.Equal(t, "Zelia", results[1]["name"])
	assert.Equal(t, "Alba", results[2]["name"])

	assert.Nil(t, results[0]["photo_url"], "no photo uploaded yet")
	links := results[0]["social_links"].(map[string]interface{})
	assert.Contains(t, links["instagram"], "instagram.com")
}

func TestAdminCreateTeamMember(t *testing.T) {
	app, db := setupApp(t)
	_, token := createStaff(t, db, "admin@example.com")

	t.Run("missing required fields", func(t *testing.T) {
		resp := request(t, app, "POST", "/api/admin/team/", fiber.Map{"bio": "x"}, token)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		errs := decode(t, resp)["errors"].(map[string]interface{})
		assert.Contains(t, errs, "name")
		assert.Contains(t, errs, "role")
	})

	t.Run("created", func(t *testing.T) {
		resp := request(t, app, "POST", "/api/admin/team/", fiber.Map{
			"name": "Marta", "role": "Manager", "order_index": 3,
			"social_links": fiber.Map{"linkedin": "https://linkedin.com/in/marta"},
		}, token)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		body := decode(t, resp)
		assert.Equal(t, "Marta", body["name"])
		assert.Equal(t, float64(3), body["order_index"])
	})
}

func TestAdminUpdateTeamMember(t *testing.T) {
	app, db := setupApp(t)
	_, token := createStaff(t, db, "admin@example.com")
	m := seedTeamMember(t, db, "Rui", 2)
	path := "/api/admin/team/" + strconv.FormatUint(uint64(m.ID), 10) + "/"

	resp := request(t, app, "PUT", path, fiber.Map{
		"name": "Rui Santos", "role": "Head Host", "order_index": 0,
	}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reloaded model.TeamMember
	require.NoError(t, db.First(&reloaded, m.ID).Error)
	assert.Equal(t, "Rui Santos", reloaded.Name)
	assert.Equal(t, 0, reloaded.OrderIndex)
	// Absent social_links leaves the stored ones alone.
	assert.Contains(t, reloaded.SocialLinks, "instagram")
}

func TestAdminDeleteTeamMember(t *testing.T) {
	app, db := setupApp(t)
	_, token := createStaff(t, db, "admin@example.com")
	m := seedTeamMember(t, db, "Gone", 0)
	path := "/api/admin/team/" + strconv.FormatUint(uint64(m.ID), 10) + "/"

	resp := request(t, app, "DELETE", path, nil, token)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = request(t, app, "DELETE", path, nil, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAdminUploadTeamMemberPhoto(t *testing.T) {
	app, db := setupApp(t)
	_, token := createStaff(t, db, "admin@example.com")
	m := seedTeamMember(t, db, "Pictured", 0)
	path := "/api/admin/team/" + strconv.FormatUint(uint64(m.ID), 10) + "/photo/"

	t.Run("no file", func(t *testing.T) {
		body, contentType := photoForm(t, nil)
		resp := uploadRequest(t, app, path, body, contentType, token)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("uploaded", func(t *testing.T) {
		body, contentType := photoForm(t, pngBytes(t))
		resp := uploadRequest(t, app, path, body, contentType, token)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		view := decode(t, resp)
		assert.NotEmpty(t, view["photo"])
		assert.Contains(t, view["photo_url"], "/media/team/")

		var reloaded model.TeamMember
		require.NoError(t, db.First(&reloaded, m.ID).Error)
		assert.Equal(t, view["photo"], reloaded.Photo)
	})
}

func photoForm(t *testing.T, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if data != nil {
		part, err := writer.CreateFormFile("photo", "portrait.png")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestDashboardStats(t *testing.T) {
	app, db := setupApp(t)
	_, token := createStaff(t, db, "admin@example.com")

	active := createTestProperty(t, db, "Active", true)
	createTestProperty(t, db, "Inactive", false)
	seedTeamMember(t, db, "Host", 0)

	seedReview(t, db, &active.ID, 5, true)
	seedReview(t, db, &active.ID, 4, true)
	seedReview(t, db, &active.ID, 1, false)

	resp := request(t, app, "GET", "/api/admin/dashboard/stats/", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, float64(2), body["total_properties"])
	assert.Equal(t, float64(1), body["active_properties"])
	assert.Equal(t, float64(3), body["total_reviews"])
	assert.Equal(t, float64(2), body["approved_reviews"])
	assert.Equal(t, 4.5, body["average_rating"])
	assert.Equal(t, float64(1), body["total_team_members"])
}

func TestDashboardStatsEmpty(t *testing.T) {
	app, db := setupApp(t)
	_, token := createStaff(t, db, "admin@example.com")

	resp := request(t, app, "GET", "/api/admin/dashboard/stats/", nil, token)
	body := decode(t, resp)
	assert.Nil(t, body["average_rating"])
	assert.Equal(t, float64(0), body["total_properties"])
}
