// Package http exposes the application over REST. Handlers translate
// requests into commands and queries; every failure funnels through the
// problem translation layer installed as the echo error handler.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
	"golang.org/x/crypto/bcrypt"

	"github.com/hmucanze19/algafood-api/internal/core/application/usecases/commands"
	"github.com/hmucanze19/algafood-api/internal/core/application/usecases/queries"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/account"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/kernel"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/order"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/restaurant"
	"github.com/hmucanze19/algafood-api/internal/core/ports"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
)

// userDirectory is the read access the auth endpoints need on users.
type userDirectory interface {
	GetByID(ctx context.Context, id int64) (*account.User, error)
	GetByEmail(ctx context.Context, email string) (*account.User, error)
}

// ServerDeps carries everything the server needs, injected by the
// composition root.
type ServerDeps struct {
	// Command handlers
	PlaceOrder           commands.PlaceOrderCommandHandler
	ConfirmOrder         commands.ConfirmOrderCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	DeliverOrder         commands.DeliverOrderCommandHandler
	CreateRestaurant     commands.CreateRestaurantCommandHandler
	SetRestaurantActive  commands.SetRestaurantActivationCommandHandler
	SetRestaurantOpening commands.SetRestaurantOpeningCommandHandler
	AddProduct           commands.AddProductCommandHandler
	SetProductPhoto      commands.SetProductPhotoCommandHandler
	RegisterUser         commands.RegisterUserCommandHandler

	// Query handlers
	GetOrders         queries.GetOrdersQueryHandler
	GetOrderByCode    queries.GetOrderByCodeQueryHandler
	GetRestaurants    queries.GetRestaurantsQueryHandler
	GetRestaurantMenu queries.GetRestaurantMenuQueryHandler
	GetPaymentMethods queries.GetPaymentMethodsQueryHandler
	GetProductPhoto   queries.GetProductPhotoQueryHandler

	Users userDirectory

	// PhotoStorage serves the bytes behind product photo metadata.
	PhotoStorage ports.PhotoStorage

	JWTSecret string
	JWTTTL    time.Duration

	// TrackingBaseURL is the public URL prefix encoded into order QR codes.
	TrackingBaseURL string
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	deps ServerDeps
}

// NewServer creates the HTTP server from its injected dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

// RegisterRoutes wires all routes onto the echo instance. Write operations
// and order reads require a bearer token; catalog reads, order tracking QR
// codes and the service endpoints are public.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/openapi.json", s.GetOpenAPI)

	e.POST("/auth/register", s.Register)
	e.POST("/auth/login", s.Login)

	e.GET("/restaurants", s.GetRestaurants)
	e.GET("/restaurants/:id/products", s.GetRestaurantMenu)
	e.GET("/restaurants/:id/products/:productId/photo", s.GetProductPhoto)
	e.GET("/payment-methods", s.GetPaymentMethods)
	e.GET("/orders/:code/qr", s.GetOrderQR)

	// authJWT is attached per route rather than through a catch-all group so
	// unmatched paths still fall through to the router's not-found handling.
	auth := authJWT(s.deps.JWTSecret)
	e.GET("/users/me", s.GetCurrentUser, auth)

	e.POST("/restaurants", s.CreateRestaurant, auth)
	e.PUT("/restaurants/:id/active", s.ActivateRestaurant, auth)
	e.PUT("/restaurants/:id/inactive", s.DeactivateRestaurant, auth)
	e.PUT("/restaurants/:id/open", s.OpenRestaurant, auth)
	e.PUT("/restaurants/:id/closed", s.CloseRestaurant, auth)
	e.POST("/restaurants/:id/products", s.AddProduct, auth)
	e.PUT("/restaurants/:id/products/:productId/photo", s.SetProductPhoto, auth)

	e.GET("/orders", s.GetOrders, auth)
	e.POST("/orders", s.PlaceOrder, auth)
	e.GET("/orders/:code", s.GetOrderByCode, auth)
	e.PUT("/orders/:code/confirm", s.ConfirmOrder, auth)
	e.PUT("/orders/:code/cancel", s.CancelOrder, auth)
	e.PUT("/orders/:code/deliver", s.DeliverOrder, auth)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "UP"})
}

// Register handles POST /auth/register.
func (s *Server) Register(c echo.Context) error {
	var req registerRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	user, err := s.deps.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userFromDomain(user))
}

// Login handles POST /auth/login. Failed lookups and bad passwords produce
// the same unauthorized response so the endpoint does not reveal which
// emails are registered.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := s.deps.Users.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrEntityNotFound) {
			return errUnauthorized
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(req.Password)) != nil {
		return errUnauthorized
	}

	token, err := issueToken(s.deps.JWTSecret, s.deps.JWTTTL, user.ID())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		ExpiresIn:   int(s.deps.JWTTTL.Seconds()),
	})
}

// GetCurrentUser handles GET /users/me.
func (s *Server) GetCurrentUser(c echo.Context) error {
	user, err := s.deps.Users.GetByID(c.Request().Context(), authenticatedUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userFromDomain(user))
}

// GetRestaurants handles GET /restaurants.
func (s *Server) GetRestaurants(c echo.Context) error {
	summaries, err := s.deps.GetRestaurants.Handle(
		c.Request().Context(), queries.NewGetRestaurantsQuery())
	if err != nil {
		return err
	}

	response := make([]restaurantSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = restaurantSummary{
			ID:          summary.ID,
			Name:        summary.Name,
			CuisineName: summary.CuisineName,
			ShippingFee: summary.ShippingFee,
			Active:      summary.Active,
			Open:        summary.Open,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// CreateRestaurant handles POST /restaurants.
func (s *Server) CreateRestaurant(c echo.Context) error {
	var req createRestaurantRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	fee, err := kernel.MoneyFromString(req.ShippingFee)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateRestaurantCommand(
		req.Name, req.CuisineName, fee, req.PaymentMethodIDs)
	if err != nil {
		return err
	}

	created, err := s.deps.CreateRestaurant.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, restaurantFromDomain(created))
}

// ActivateRestaurant handles PUT /restaurants/:id/active.
func (s *Server) ActivateRestaurant(c echo.Context) error {
	return s.setRestaurantActivation(c, true)
}

// DeactivateRestaurant handles PUT /restaurants/:id/inactive.
func (s *Server) DeactivateRestaurant(c echo.Context) error {
	return s.setRestaurantActivation(c, false)
}

func (s *Server) setRestaurantActivation(c echo.Context, active bool) error {
	id, err := pathParamInt64(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetRestaurantActivationCommand(id, active)
	if err != nil {
		return err
	}

	if err := s.deps.SetRestaurantActive.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// OpenRestaurant handles PUT /restaurants/:id/open.
func (s *Server) OpenRestaurant(c echo.Context) error {
	return s.setRestaurantOpening(c, true)
}

// CloseRestaurant handles PUT /restaurants/:id/closed.
func (s *Server) CloseRestaurant(c echo.Context) error {
	return s.setRestaurantOpening(c, false)
}

func (s *Server) setRestaurantOpening(c echo.Context, open bool) error {
	id, err := pathParamInt64(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetRestaurantOpeningCommand(id, open)
	if err != nil {
		return err
	}

	if err := s.deps.SetRestaurantOpening.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetRestaurantMenu handles GET /restaurants/:id/products.
func (s *Server) GetRestaurantMenu(c echo.Context) error {
	id, err := pathParamInt64(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetRestaurantMenuQuery(id)
	if err != nil {
		return err
	}

	items, err := s.deps.GetRestaurantMenu.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// AddProduct handles POST /restaurants/:id/products.
func (s *Server) AddProduct(c echo.Context) error {
	id, err := pathParamInt64(c, "id")
	if err != nil {
		return err
	}

	var req addProductRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddProductCommand(id, req.Name, req.Description, price)
	if err != nil {
		return err
	}

	product, err := s.deps.AddProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, productFromDomain(product))
}

// SetProductPhoto handles PUT /restaurants/:id/products/:productId/photo.
// The body is multipart form data with the photo under "file" and an
// optional "description" value. Uploading replaces any existing photo.
func (s *Server) SetProductPhoto(c echo.Context) error {
	restaurantID, err := pathParamInt64(c, "id")
	if err != nil {
		return err
	}
	productID, err := pathParamInt64(c, "productId")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("file", err)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	cmd, err := commands.NewSetProductPhotoCommand(
		restaurantID, productID,
		fileHeader.Filename, c.FormValue("description"),
		fileHeader.Header.Get(echo.HeaderContentType), fileHeader.Size, file)
	if err != nil {
		return err
	}

	photo, err := s.deps.SetProductPhoto.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productPhotoFromDomain(photo))
}

// GetProductPhoto handles GET /restaurants/:id/products/:productId/photo.
// The Accept header picks the representation: the photo bytes when it admits
// the stored media type, the metadata document when it asks for JSON.
// Anything else is not acceptable and gets an empty 406.
func (s *Server) GetProductPhoto(c echo.Context) error {
	restaurantID, err := pathParamInt64(c, "id")
	if err != nil {
		return err
	}
	productID, err := pathParamInt64(c, "productId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetProductPhotoQuery(restaurantID, productID)
	if err != nil {
		return err
	}
	photo, err := s.deps.GetProductPhoto.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	accept := c.Request().Header.Get(echo.HeaderAccept)
	if mediaTypeAccepted(accept, photo.ContentType) {
		content, retrieveErr := s.deps.PhotoStorage.Retrieve(c.Request().Context(), photo.StoredName)
		if retrieveErr != nil {
			return retrieveErr
		}
		defer content.Close()
		return c.Stream(http.StatusOK, photo.ContentType, content)
	}
	if mediaTypeAccepted(accept, echo.MIMEApplicationJSON) {
		return c.JSON(http.StatusOK, photo)
	}
	return errs.NewNotAcceptableError(accept)
}

// mediaTypeAccepted reports whether the Accept header admits the given media
// type. An absent header accepts everything.
func mediaTypeAccepted(accept, mediaType string) bool {
	if accept == "" {
		return true
	}
	for _, part := range strings.Split(accept, ",") {
		tag := strings.TrimSpace(part)
		if i := strings.Index(tag, ";"); i >= 0 {
			tag = strings.TrimSpace(tag[:i])
		}
		if tag == "*/*" || strings.EqualFold(tag, mediaType) {
			return true
		}
		if prefix, ok := strings.CutSuffix(tag, "/*"); ok &&
			strings.HasPrefix(strings.ToLower(mediaType), strings.ToLower(prefix)+"/") {
			return true
		}
	}
	return false
}

// GetPaymentMethods handles GET /payment-methods.
func (s *Server) GetPaymentMethods(c echo.Context) error {
	methods, err := s.deps.GetPaymentMethods.Handle(
		c.Request().Context(), queries.NewGetPaymentMethodsQuery())
	if err != nil {
		return err
	}

	response := make([]paymentMethodResponse, len(methods))
	for i, method := range methods {
		response[i] = paymentMethodResponse{ID: method.ID, Description: method.Description}
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrders handles GET /orders with limit/offset pagination.
func (s *Server) GetOrders(c echo.Context) error {
	var limit, offset int
	params := c.QueryParams()
	if err := runtime.BindQueryParameter("form", true, false, "limit", params, &limit); err != nil {
		return errs.NewParamTypeMismatchError("limit", c.QueryParam("limit"), "int")
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", params, &offset); err != nil {
		return errs.NewParamTypeMismatchError("offset", c.QueryParam("offset"), "int")
	}

	query, err := queries.NewGetOrdersQuery(limit, offset)
	if err != nil {
		return err
	}

	summaries, err := s.deps.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]orderSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = orderSummary{
			Code:           summary.Code,
			Status:         summary.Status,
			Total:          summary.Total,
			RestaurantName: summary.RestaurantName,
			CreatedAt:      summary.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /orders. The customer is the authenticated user;
// the body never names a customer id.
func (s *Server) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	address, err := kernel.NewAddress(
		req.DeliveryAddress.Street,
		req.DeliveryAddress.Number,
		req.DeliveryAddress.Complement,
		req.DeliveryAddress.District,
		req.DeliveryAddress.City,
		req.DeliveryAddress.State,
		req.DeliveryAddress.PostalCode,
	)
	if err != nil {
		return err
	}

	items := make([]commands.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.OrderItemInput{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			Observation: item.Observation,
		}
	}

	cmd, err := commands.NewPlaceOrderCommand(
		authenticatedUserID(c), req.RestaurantID, req.PaymentMethodID, address, items)
	if err != nil {
		return err
	}

	placed, err := s.deps.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, orderFromDomain(placed))
}

// GetOrderByCode handles GET /orders/:code.
func (s *Server) GetOrderByCode(c echo.Context) error {
	details, err := s.fetchOrderDetails(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderDetailsFromQuery(details))
}

// ConfirmOrder handles PUT /orders/:code/confirm.
func (s *Server) ConfirmOrder(c echo.Context) error {
	cmd, err := commands.NewConfirmOrderCommand(c.Param("code"))
	if err != nil {
		return err
	}
	if _, err := s.deps.ConfirmOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles PUT /orders/:code/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	cmd, err := commands.NewCancelOrderCommand(c.Param("code"))
	if err != nil {
		return err
	}
	if _, err := s.deps.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeliverOrder handles PUT /orders/:code/deliver.
func (s *Server) DeliverOrder(c echo.Context) error {
	cmd, err := commands.NewDeliverOrderCommand(c.Param("code"))
	if err != nil {
		return err
	}
	if _, err := s.deps.DeliverOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetOrderQR handles GET /orders/:code/qr, serving a PNG QR code pointing at
// the order's tracking URL. The order must exist.
func (s *Server) GetOrderQR(c echo.Context) error {
	details, err := s.fetchOrderDetails(c)
	if err != nil {
		return err
	}

	trackingURL := fmt.Sprintf("%s/orders/%s", s.deps.TrackingBaseURL, details.Code)
	png, err := qrcode.Encode(trackingURL, qrcode.Medium, 256)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

func (s *Server) fetchOrderDetails(c echo.Context) (*queries.OrderDetailsResponse, error) {
	query, err := queries.NewGetOrderByCodeQuery(c.Param("code"))
	if err != nil {
		return nil, err
	}
	return s.deps.GetOrderByCode.Handle(c.Request().Context(), query)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func userFromDomain(user *account.User) userResponse {
	return userResponse{
		ID:        user.ID(),
		Name:      user.Name(),
		Email:     user.Email(),
		CreatedAt: user.CreatedAt(),
	}
}

type createRestaurantRequest struct {
	Name             string  `json:"name"`
	CuisineName      string  `json:"cuisineName"`
	ShippingFee      string  `json:"shippingFee"`
	PaymentMethodIDs []int64 `json:"paymentMethodIds"`
}

type restaurantSummary struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	CuisineName string          `json:"cuisineName"`
	ShippingFee decimal.Decimal `json:"shippingFee"`
	Active      bool            `json:"active"`
	Open        bool            `json:"open"`
}

func restaurantFromDomain(r *restaurant.Restaurant) restaurantSummary {
	return restaurantSummary{
		ID:          r.ID(),
		Name:        r.Name(),
		CuisineName: r.CuisineName(),
		ShippingFee: r.ShippingFee().Amount(),
		Active:      r.IsActive(),
		Open:        r.IsOpen(),
	}
}

type addProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type productResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
}

func productFromDomain(p *restaurant.Product) productResponse {
	return productResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().Amount(),
		Active:      p.IsActive(),
	}
}

type productPhotoResponse struct {
	FileName    string `json:"fileName"`
	Description string `json:"description,omitempty"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

func productPhotoFromDomain(photo *restaurant.ProductPhoto) productPhotoResponse {
	return productPhotoResponse{
		FileName:    photo.FileName(),
		Description: photo.Description(),
		ContentType: photo.ContentType(),
		Size:        photo.Size(),
	}
}

type paymentMethodResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

type addressJSON struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type orderItemRequest struct {
	ProductID   int64  `json:"productId"`
	Quantity    int    `json:"quantity"`
	Observation string `json:"observation,omitempty"`
}

type placeOrderRequest struct {
	RestaurantID    int64              `json:"restaurantId"`
	PaymentMethodID int64              `json:"paymentMethodId"`
	DeliveryAddress addressJSON        `json:"deliveryAddress"`
	Items           []orderItemRequest `json:"items"`
}

type orderItemResponse struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
	Observation string          `json:"observation,omitempty"`
}

type orderSummary struct {
	Code           string          `json:"code"`
	Status         string          `json:"status"`
	Total          decimal.Decimal `json:"total"`
	RestaurantName string          `json:"restaurantName"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type orderResponse struct {
	Code            string              `json:"code"`
	Status          string              `json:"status"`
	CustomerID      int64               `json:"customerId"`
	RestaurantID    int64               `json:"restaurantId"`
	RestaurantName  string              `json:"restaurantName,omitempty"`
	PaymentMethodID int64               `json:"paymentMethodId"`
	DeliveryAddress addressJSON         `json:"deliveryAddress"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	ShippingFee     decimal.Decimal     `json:"shippingFee"`
	Total           decimal.Decimal     `json:"total"`
	CreatedAt       time.Time           `json:"createdAt"`
	ConfirmedAt     *time.Time          `json:"confirmedAt,omitempty"`
	CancelledAt     *time.Time          `json:"cancelledAt,omitempty"`
	DeliveredAt     *time.Time          `json:"deliveredAt,omitempty"`
	Items           []orderItemResponse `json:"items"`
}

func orderFromDomain(o *order.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = orderItemResponse{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			Total:       item.Total().Amount(),
			Observation: item.Observation(),
		}
	}

	address := o.DeliveryAddress()
	return orderResponse{
		Code:            o.Code(),
		Status:          string(o.Status()),
		CustomerID:      o.CustomerID(),
		RestaurantID:    o.RestaurantID(),
		PaymentMethodID: o.PaymentMethodID(),
		DeliveryAddress: addressJSON{
			Street:     address.Street(),
			Number:     address.Number(),
			Complement: address.Complement(),
			District:   address.District(),
			City:       address.City(),
			State:      address.State(),
			PostalCode: address.PostalCode(),
		},
		Subtotal:    o.Subtotal().Amount(),
		ShippingFee: o.ShippingFee().Amount(),
		Total:       o.Total().Amount(),
		CreatedAt:   o.CreatedAt(),
		ConfirmedAt: o.ConfirmedAt(),
		CancelledAt: o.CancelledAt(),
		DeliveredAt: o.DeliveredAt(),
		Items:       items,
	}
}

func orderDetailsFromQuery(details *queries.OrderDetailsResponse) orderResponse {
	items := make([]orderItemResponse, len(details.Items))
	for i, item := range details.Items {
		items[i] = orderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
			Observation: item.Observation,
		}
	}

	return orderResponse{
		Code:            details.Code,
		Status:          details.Status,
		CustomerID:      details.CustomerID,
		RestaurantID:    details.RestaurantID,
		RestaurantName:  details.RestaurantName,
		PaymentMethodID: details.PaymentMethodID,
		DeliveryAddress: addressJSON{
			Street:     details.Street,
			Number:     details.Number,
			Complement: details.Complement,
			District:   details.District,
			City:       details.City,
			State:      details.State,
			PostalCode: details.PostalCode,
		},
		Subtotal:    details.Subtotal,
		ShippingFee: details.ShippingFee,
		Total:       details.Total,
		CreatedAt:   details.CreatedAt,
		ConfirmedAt: details.ConfirmedAt,
		CancelledAt: details.CancelledAt,
		DeliveredAt: details.DeliveredAt,
		Items:       items,
	}
}
