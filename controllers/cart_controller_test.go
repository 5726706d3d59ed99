package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodrush/cart"
	"foodrush/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMenu struct {
	items map[int]*models.MenuItem
}

func (s *stubMenu) GetItem(id int) (*models.MenuItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return item, nil
}

func testMenu() *stubMenu {
	return &stubMenu{items: map[int]*models.MenuItem{
		3: {ID: 3, RestaurantID: 1, Name: "Pad Thai", Price: 10, IsAvailable: true},
		5: {ID: 5, RestaurantID: 1, Name: "Spring Rolls", Price: 5, IsAvailable: true},
		9: {ID: 9, RestaurantID: 2, Name: "Sushi Set", Price: 20, IsAvailable: true},
	}}
}

func newCartTestRouter(carts *cart.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", 1)
		c.Set("user_role", models.RoleCustomer)
	})

	ctrl := &CartController{Carts: carts, Menu: testMenu()}
	router.GET("/cart", ctrl.GetCart)
	router.DELETE("/cart", ctrl.ClearCart)
	router.POST("/cart/items", ctrl.AddItem)
	router.PATCH("/cart/items", ctrl.UpdateItem)
	router.DELETE("/cart/items", ctrl.RemoveItem)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func cartData(t *testing.T, w *httptest.ResponseRecorder) cart.Summary {
	t.Helper()

	var resp struct {
		Success bool         `json:"success"`
		Data    cart.Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestCartAddItem_MergesRepeatedAdds(t *testing.T) {
	router := newCartTestRouter(cart.NewManager())

	w := doJSON(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{MenuItemID: 3, Quantity: 1})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{MenuItemID: 3, Quantity: 2})
	require.Equal(t, http.StatusOK, w.Code)

	data := cartData(t, w)
	require.Len(t, data.Lines, 1)
	assert.Equal(t, 3, data.Lines[0].Quantity)
	assert.Equal(t, 3, data.TotalItems)
	assert.Equal(t, 30.0, data.TotalPrice)
}

func TestCartAddItem_DistinctCustomizations(t *testing.T) {
	router := newCartTestRouter(cart.NewManager())

	doJSON(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{
		MenuItemID: 3, Customizations: map[string]string{"spice": "hot"},
	})
	w := doJSON(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{
		MenuItemID: 3, Customizations: map[string]string{"spice": "mild"},
	})

	data := cartData(t, w)
	assert.Len(t, data.Lines, 2)
	assert.Equal(t, 2, data.TotalItems)
}

func TestCartAddItem_UnknownItem(t *testing.T) {
	router := newCartTestRouter(cart.NewManager())

	w := doJSON(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{MenuItemID: 404})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartAddItem_RejectsSecondRestaurant(t *testing.T) {
	router := newCartTestRouter(cart.NewManager())

	doJSON(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{MenuItemID: 3})
	w := doJSON(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{MenuItemID: 9})

	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodGet, "/cart", nil)
	data := cartData(t, w)
	require.Len(t, data.Lines, 1)
	assert.Equal(t, "3", data.Lines[0].ItemID)
}

func TestCartUpdateItem_DecreaseFloorsAtOne(t *testing.T) {
	router := newCartTestRouter(cart.NewManager())
	doJSON(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{MenuItemID: 3})

	w := doJSON(t, router, http.MethodPatch, "/cart/items", models.UpdateCartItemRequest{
		ItemID: "3", Action: "decrease",
	})

	data := cartData(t, w)
	require.Len(t, data.Lines, 1)
	assert.Equal(t, 1, data.Lines[0].Quantity)
}

func TestCartUpdateItem_ZeroQuantityRemovesLine(t *testing.T) {
	router := newCartTestRouter(cart.NewManager())
	doJSON(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{MenuItemID: 3, Quantity: 2})

	zero := 0
	w := doJSON(t, router, http.MethodPatch, "/cart/items", models.UpdateCartItemRequest{
		ItemID: "3", Quantity: &zero,
	})

	data := cartData(t, w)
	assert.Empty(t, data.Lines)
	assert.Equal(t, 0, data.TotalItems)
}

func TestCartUpdateItem_RequiresQuantityOrAction(t *testing.T) {
	router := newCartTestRouter(cart.NewManager())
	doJSON(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{MenuItemID: 3})

	w := doJSON(t, router, http.MethodPatch, "/cart/items", models.UpdateCartItemRequest{ItemID: "3"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartRemoveItem_UsesCompoundKey(t *testing.T) {
	router := newCartTestRouter(cart.NewManager())
	doJSON(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{
		MenuItemID: 3, Customizations: map[string]string{"spice": "hot"},
	})
	doJSON(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{
		MenuItemID: 3, Customizations: map[string]string{"spice": "mild"},
	})

	w := doJSON(t, router, http.MethodDelete, "/cart/items", models.RemoveCartItemRequest{
		ItemID: "3", Customizations: map[string]string{"spice": "hot"},
	})

	data := cartData(t, w)
	require.Len(t, data.Lines, 1)
	assert.Equal(t, map[string]string{"spice": "mild"}, data.Lines[0].Customizations)
}

func TestCartClear(t *testing.T) {
	router := newCartTestRouter(cart.NewManager())
	doJSON(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{MenuItemID: 3})
	doJSON(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{MenuItemID: 5})

	w := doJSON(t, router, http.MethodDelete, "/cart", nil)

	data := cartData(t, w)
	assert.Empty(t, data.Lines)
	assert.Equal(t, 0, data.TotalItems)
	assert.Equal(t, 0.0, data.TotalPrice)
}
