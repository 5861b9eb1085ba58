package petstoreserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds routes to an existing gin engine.
// Unknown paths answer with the URL-not-found problem.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	router.NoRoute(respondURLNotFound)
	return router
}

// DefaultHandleFunc answers routes without a handler.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

type ApiHandleFunctions struct {

	// Routes for the PetAPI part of the API
	PetAPI PetAPI
	// Routes for the StoreAPI part of the API
	StoreAPI StoreAPI
	// Routes for the UserAPI part of the API
	UserAPI UserAPI
	// Routes for the ServiceAPI part of the API
	ServiceAPI ServiceAPI
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"AddPet",
			http.MethodPost,
			"/pet",
			handleFunctions.PetAPI.AddPet,
		},
		{
			"FindPetsByStatus",
			http.MethodGet,
			"/pet/findByStatus",
			handleFunctions.PetAPI.FindPetsByStatus,
		},
		{
			"GetPetById",
			http.MethodGet,
			"/pet/:petId",
			handleFunctions.PetAPI.GetPetById,
		},
		{
			"UpdatePet",
			http.MethodPut,
			"/pet/:petId",
			handleFunctions.PetAPI.UpdatePet,
		},
		{
			"DeletePet",
			http.MethodDelete,
			"/pet/:petId",
			handleFunctions.PetAPI.DeletePet,
		},
		{
			"UploadFile",
			http.MethodPost,
			"/pet/:petId/uploadImage",
			handleFunctions.PetAPI.UploadFile,
		},
		{
			"GetInventory",
			http.MethodGet,
			"/store/inventory",
			handleFunctions.StoreAPI.GetInventory,
		},
		{
			"StockInventory",
			http.MethodPut,
			"/store/inventory/:petId",
			handleFunctions.StoreAPI.StockInventory,
		},
		{
			"AddInventory",
			http.MethodPost,
			"/store/inventory/add",
			handleFunctions.StoreAPI.AddInventory,
		},
		{
			"RemoveInventory",
			http.MethodPost,
			"/store/inventory/remove",
			handleFunctions.StoreAPI.RemoveInventory,
		},
		{
			"PlaceOrder",
			http.MethodPost,
			"/store/order",
			handleFunctions.StoreAPI.PlaceOrder,
		},
		{
			"GetOrderById",
			http.MethodGet,
			"/store/order/:orderId",
			handleFunctions.StoreAPI.GetOrderById,
		},
		{
			"DeleteOrder",
			http.MethodDelete,
			"/store/order/:orderId",
			handleFunctions.StoreAPI.DeleteOrder,
		},
		{
			"ListOrders",
			http.MethodGet,
			"/store/orders",
			handleFunctions.StoreAPI.ListOrders,
		},
		{
			"CreateUser",
			http.MethodPost,
			"/user",
			handleFunctions.UserAPI.CreateUser,
		},
		{
			"LoginUser",
			http.MethodGet,
			"/user/login",
			handleFunctions.UserAPI.LoginUser,
		},
		{
			"GetUserByName",
			http.MethodGet,
			"/user/:username",
			handleFunctions.UserAPI.GetUserByName,
		},
		{
			"UpdateUser",
			http.MethodPut,
			"/user/:username",
			handleFunctions.UserAPI.UpdateUser,
		},
		{
			"DeleteUser",
			http.MethodDelete,
			"/user/:username",
			handleFunctions.UserAPI.DeleteUser,
		},
		{
			"Healthz",
			http.MethodGet,
			"/healthz",
			handleFunctions.ServiceAPI.Healthz,
		},
		{
			"Metrics",
			http.MethodGet,
			"/metrics",
			handleFunctions.ServiceAPI.Metrics,
		},
	}
}
