package controller

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nurastays_backend/internal/model"
)

func TestListPropertiesSkipsInactive(t *testing.T) {
	app, db := setupApp(t)
	createTestProperty(t, db, "Visible", true)
	createTestProperty(t, db, "Hidden", false)

	resp := request(t, app, "GET", "/api/properties/", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, float64(12), body["page_size"])

	results := body["results"].([]interface{})
	require.Len(t, results, 1)
	item := results[0].(map[string]interface{})
	assert.Equal(t, "Visible", item["name"])
	assert.Equal(t, "visible", item["slug"])
	assert.Nil(t, item["average_rating"])
	assert.Nil(t, item["primary_image"])
}

func TestListPropertiesPagination(t *testing.T) {
	app, db := setupApp(t)
	for i := 0; i < 15; i++ {
		createTestProperty(t, db, fmt.Sprintf("Listing %02d", i), true)
	}

	resp := request(t, app, "GET", "/api/properties/", nil, "")
	body := decode(t, resp)
	assert.Equal(t, float64(15), body["count"])
	assert.Equal(t, float64(2), body["total_pages"])
	assert.Len(t, body["results"].([]interface{}), 12)

	resp = request(t, app, "GET", "/api/properties/?page=2", nil, "")
	body = decode(t, resp)
	assert.Equal(t, float64(2), body["page"])
	assert.Len(t, body["results"].([]interface{}), 3)
}

func TestListPropertiesFilterAndOrder(t *testing.T) {
	app, db := setupApp(t)

	cheap := createTestProperty(t, db, "Budget Flat", true)
	require.NoError(t, db.Model(&cheap).Update("price_per_night", 50).Error)
	createTestProperty(t, db, "Mid Flat", true)
	dear := createTestProperty(t, db, "Grand Flat", true)
	require.NoError(t, db.Model(&dear).Update("price_per_night", 400).Error)

	resp := request(t, app, "GET", "/api/properties/?min_price=60&max_price=200", nil, "")
	body := decode(t, resp)
	results := body["results"].([]interface{})
	require.Len(t, results, 1)
	assert.Equal(t, "Mid Flat", results[0].(map[string]interface{})["name"])

	resp = request(t, app, "GET", "/api/properties/?ordering=-price_per_night", nil, "")
	results = decode(t, resp)["results"].([]interface{})
	require.Len(t, results, 3)
	assert.Equal(t, "Grand Flat", results[0].(map[string]interface{})["name"])
	assert.Equal(t, "Budget Flat", results[2].(map[string]interface{})["name"])
}

func TestListPropertiesIncludesRatingAggregates(t *testing.T) {
	app, db := setupApp(t)
	p := createTestProperty(t, db, "Reviewed Flat", true)

	for _, rating := range []int{5, 4} {
		require.NoError(t, db.Create(&model.Review{
			PropertyID: &p.ID, GuestName: "G", Rating: rating, IsApproved: true,
		}).Error)
	}
	require.NoError(t, db.Create(&model.Review{
		PropertyID: &p.ID, GuestName: "G", Rating: 1, IsApproved: false,
	}).Error)

	resp := request(t, app, "GET", "/api/properties/", nil, "")
	item := decode(t, resp)["results"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, 4.5, item["average_rating"])
	assert.Equal(t, float64(2), item["review_count"])
}

func TestFeaturedPropertiesCapped(t *testing.T) {
	app, db := setupApp(t)

	for i := 0; i < 8; i++ {
		p := createTestProperty(t, db, fmt.Sprintf("Featured %d", i), true)
		require.NoError(t, db.Model(&p).Update("is_featured", true).Error)
	}
	createTestProperty(t, db, "Ordinary", true)

	inactive := createTestProperty(t, db, "Featured Inactive", false)
	require.NoError(t, db.Model(&inactive).Update("is_featured", true).Error)

	resp := request(t, app, "GET", "/api/properties/featured/", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	results := decodeList(t, resp)
	assert.Len(t, results, FeaturedLimit)
	for _, item := range results {
		assert.Equal(t, true, item["is_featured"])
	}
}

func TestGetPropertyBySlug(t *testing.T) {
	app, db := setupApp(t)
	p := createTestProperty(t, db, "Slug Target", true)

	require.NoError(t, db.Create(&model.PropertyImage{
		PropertyID: p.ID, Image: "media/properties/a.jpg", IsPrimary: true, OrderIndex: 0,
	}).Error)

	resp := request(t, app, "GET", "/api/properties/slug-target/", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "Slug Target", body["name"])
	assert.Equal(t, "A place to stay", body["description"])

	images := body["images"].([]interface{})
	require.Len(t, images, 1)
	img := images[0].(map[string]interface{})
	assert.Equal(t, "media/properties/a.jpg", img["image"])
	assert.Contains(t, img["image_url"], "/media/properties/a.jpg")
}

func TestGetPropertyBySlugNotFound(t *testing.T) {
	app, db := setupApp(t)
	createTestProperty(t, db, "Hidden Slug", false)

	resp := request(t, app, "GET", "/api/properties/no-such-slug/", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Inactive properties look like missing ones.
	resp = request(t, app, "GET", "/api/properties/hidden-slug/", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
