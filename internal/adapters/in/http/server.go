// Package http exposes the REST surface. Handlers translate wire contracts
// into commands and queries, and the role gates live here at the edge: the
// core trusts the identity the middleware resolved.
package http

import (
	"net/http"

	"darkstore/internal/core/application/usecases/commands"
	"darkstore/internal/core/application/usecases/queries"
	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/order"
	"darkstore/internal/core/domain/model/product"
	"darkstore/internal/core/domain/model/user"
	"darkstore/internal/core/ports"
	"darkstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	gateway ports.AuthGateway
	users   ports.UserRepository

	createOrderHandler   commands.CreateOrderCommandHandler
	claimOrderHandler    commands.ClaimOrderCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler

	createProductHandler commands.CreateProductCommandHandler
	updateProductHandler commands.UpdateProductCommandHandler
	deleteProductHandler commands.DeleteProductCommandHandler

	registerUserHandler   commands.RegisterUserCommandHandler
	updateProfileHandler  commands.UpdateProfileCommandHandler
	submitFeedbackHandler commands.SubmitFeedbackCommandHandler
	reportBugHandler      commands.ReportBugCommandHandler

	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getProductsHandler       queries.GetProductsQueryHandler
	getProfileHandler        queries.GetProfileQueryHandler
	getAnalyticsHandler      queries.GetAnalyticsQueryHandler
	getBugReportsHandler     queries.GetBugReportsQueryHandler
}

// ServerParams carries the dependencies for NewServer.
type ServerParams struct {
	Gateway ports.AuthGateway
	Users   ports.UserRepository

	CreateOrder   commands.CreateOrderCommandHandler
	ClaimOrder    commands.ClaimOrderCommandHandler
	CompleteOrder commands.CompleteOrderCommandHandler
	CancelOrder   commands.CancelOrderCommandHandler

	CreateProduct commands.CreateProductCommandHandler
	UpdateProduct commands.UpdateProductCommandHandler
	DeleteProduct commands.DeleteProductCommandHandler

	RegisterUser   commands.RegisterUserCommandHandler
	UpdateProfile  commands.UpdateProfileCommandHandler
	SubmitFeedback commands.SubmitFeedbackCommandHandler
	ReportBug      commands.ReportBugCommandHandler

	GetCustomerOrders queries.GetCustomerOrdersQueryHandler
	GetAllOrders      queries.GetAllOrdersQueryHandler
	GetProducts       queries.GetProductsQueryHandler
	GetProfile        queries.GetProfileQueryHandler
	GetAnalytics      queries.GetAnalyticsQueryHandler
	GetBugReports     queries.GetBugReportsQueryHandler
}

// NewServer creates a new HTTP server.
func NewServer(params ServerParams) *Server {
	return &Server{
		gateway:                  params.Gateway,
		users:                    params.Users,
		createOrderHandler:       params.CreateOrder,
		claimOrderHandler:        params.ClaimOrder,
		completeOrderHandler:     params.CompleteOrder,
		cancelOrderHandler:       params.CancelOrder,
		createProductHandler:     params.CreateProduct,
		updateProductHandler:     params.UpdateProduct,
		deleteProductHandler:     params.DeleteProduct,
		registerUserHandler:      params.RegisterUser,
		updateProfileHandler:     params.UpdateProfile,
		submitFeedbackHandler:    params.SubmitFeedback,
		reportBugHandler:         params.ReportBug,
		getCustomerOrdersHandler: params.GetCustomerOrders,
		getAllOrdersHandler:      params.GetAllOrders,
		getProductsHandler:       params.GetProducts,
		getProfileHandler:        params.GetProfile,
		getAnalyticsHandler:      params.GetAnalytics,
		getBugReportsHandler:     params.GetBugReports,
	}
}

// RegisterRoutes wires the REST surface onto the echo instance. Everything
// except /health and /signup sits behind the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/signup", s.Signup)

	authed := e.Group("", authenticate(s.gateway, s.users))
	authed.GET("/profile", s.GetProfile)
	authed.PUT("/profile", s.UpdateProfile)

	authed.GET("/products", s.GetProducts)
	authed.POST("/products", s.CreateProduct)
	authed.PUT("/products/:id", s.UpdateProduct)
	authed.DELETE("/products/:id", s.DeleteProduct)

	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders", s.GetOrders)
	authed.GET("/orders/all", s.GetAllOrders)
	authed.PUT("/orders/:id", s.UpdateOrder)
	authed.POST("/orders/:id/verify-otp", s.VerifyOtp)

	authed.POST("/feedback", s.SubmitFeedback)
	authed.POST("/bugs", s.ReportBug)
	authed.GET("/bugs", s.GetBugReports)
	authed.GET("/analytics", s.GetAnalytics)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Signup handles POST /signup. With a bearer token present the profile is
// keyed by the gateway-resolved identity; without one a fresh identity is
// minted, which is the dev-mode path where the returned ID doubles as the
// token.
func (s *Server) Signup(ctx echo.Context) error {
	var req SignupRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	userID := kernel.NewUUID()
	if token := bearerToken(ctx); token != "" {
		resolved, err := s.gateway.ResolveToken(ctx.Request().Context(), token)
		if err != nil {
			return writeError(ctx, err)
		}
		userID = resolved
	}

	cmd, err := commands.NewRegisterUserCommand(userID, req.Email, req.Name, user.Role(req.Role))
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ProfileResponse{
		ID:        created.ID().String(),
		Email:     created.Email(),
		Name:      created.Name(),
		Role:      created.Role().String(),
		CreatedAt: created.CreatedAt(),
	})
}

// GetProfile handles GET /profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	caller := principal(ctx)

	query, err := queries.NewGetProfileQuery(caller.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	profile, err := s.getProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProfileResponse{
		ID:        profile.ID.String(),
		Email:     profile.Email,
		Name:      profile.Name,
		Role:      profile.Role.String(),
		CreatedAt: profile.CreatedAt,
	})
}

// UpdateProfile handles PUT /profile.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	caller := principal(ctx)

	var req UpdateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewUpdateProfileCommand(caller.ID(), req.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateProfileHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProfileResponse{
		ID:        updated.ID().String(),
		Email:     updated.Email(),
		Name:      updated.Name(),
		Role:      updated.Role().String(),
		CreatedAt: updated.CreatedAt(),
	})
}

// GetProducts handles GET /products.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, ProductResponse{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
			Image:       p.Image,
			Stock:       p.Stock,
			CreatedAt:   p.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /products. Manager only.
func (s *Server) CreateProduct(ctx echo.Context) error {
	caller := principal(ctx)
	if !caller.Role().CanAdministrate() {
		return writeError(ctx, errs.NewForbiddenError(caller.Role().String(), "manage the catalog"))
	}

	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewCreateProductCommand(productDetails(req))
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toProductResponse(created))
}

// UpdateProduct handles PUT /products/:id. Manager only.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	caller := principal(ctx)
	if !caller.Role().CanAdministrate() {
		return writeError(ctx, errs.NewForbiddenError(caller.Role().String(), "manage the catalog"))
	}

	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req ProductRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewUpdateProductCommand(productID, productDetails(req))
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(updated))
}

// DeleteProduct handles DELETE /products/:id. Manager only.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	caller := principal(ctx)
	if !caller.Role().CanAdministrate() {
		return writeError(ctx, errs.NewForbiddenError(caller.Role().String(), "manage the catalog"))
	}

	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /orders. Consumer only. The response is the one
// read path that carries the raw one-time code.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller := principal(ctx)
	if !caller.Role().CanPlaceOrders() {
		return writeError(ctx, errs.NewForbiddenError(caller.Role().String(), "place orders"))
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	items := make([]order.LineItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		productID, err := kernel.UUIDFromString(itemReq.ProductID)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("productId", err))
		}

		item, err := order.NewLineItem(productID, itemReq.Price, itemReq.Quantity)
		if err != nil {
			return writeError(ctx, err)
		}
		items = append(items, item)
	}

	point, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	location, err := order.NewDeliveryLocation(point, req.Address)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(caller.ID(), items, location, req.Total)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		Order: toOrderResponse(queries.NewOrderResponse(created)),
		Otp:   created.Otp().Code(),
	})
}

// GetOrders handles GET /orders - the caller's own orders. Consumer only.
func (s *Server) GetOrders(ctx echo.Context) error {
	caller := principal(ctx)
	if !caller.Role().CanPlaceOrders() {
		return writeError(ctx, errs.NewForbiddenError(caller.Role().String(), "list own orders"))
	}

	query, err := queries.NewGetCustomerOrdersQuery(caller.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetAllOrders handles GET /orders/all. Fulfillment agents and managers.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	caller := principal(ctx)
	if !caller.Role().CanViewAllOrders() {
		return writeError(ctx, errs.NewForbiddenError(caller.Role().String(), "list all orders"))
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// UpdateOrder handles PUT /orders/:id. The requested status selects the
// transition: "on_the_way" claims for the calling agent, "cancelled" aborts
// with the given reason.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	caller := principal(ctx)

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	switch order.Status(req.Status) {
	case order.OnTheWay:
		if !caller.Role().CanClaimOrders() {
			return writeError(ctx, errs.NewForbiddenError(caller.Role().String(), "claim orders"))
		}

		cmd, cmdErr := commands.NewClaimOrderCommand(orderID, caller.ID())
		if cmdErr != nil {
			return writeError(ctx, cmdErr)
		}

		claimed, handleErr := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd)
		if handleErr != nil {
			return writeError(ctx, handleErr)
		}

		return ctx.JSON(http.StatusOK, toOrderResponse(queries.NewOrderResponse(claimed)))

	case order.Cancelled:
		if !caller.Role().CanAdministrate() {
			return writeError(ctx, errs.NewForbiddenError(caller.Role().String(), "cancel orders"))
		}

		cmd, cmdErr := commands.NewCancelOrderCommand(orderID, req.CancellationReason)
		if cmdErr != nil {
			return writeError(ctx, cmdErr)
		}

		cancelled, handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
		if handleErr != nil {
			return writeError(ctx, handleErr)
		}

		return ctx.JSON(http.StatusOK, toOrderResponse(queries.NewOrderResponse(cancelled)))

	default:
		return writeError(ctx, errs.NewValueIsInvalidError("status"))
	}
}

// VerifyOtp handles POST /orders/:id/verify-otp. Fulfillment agents only.
func (s *Server) VerifyOtp(ctx echo.Context) error {
	caller := principal(ctx)
	if !caller.Role().CanClaimOrders() {
		return writeError(ctx, errs.NewForbiddenError(caller.Role().String(), "verify hand-off codes"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req VerifyOtpRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, caller.ID(), req.Otp)
	if err != nil {
		return writeError(ctx, err)
	}

	delivered, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(queries.NewOrderResponse(delivered)))
}

// SubmitFeedback handles POST /feedback. Any authenticated user.
func (s *Server) SubmitFeedback(ctx echo.Context) error {
	caller := principal(ctx)

	var req FeedbackRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewSubmitFeedbackCommand(caller.ID(), req.Rating, req.Comment)
	if err != nil {
		return writeError(ctx, err)
	}

	feedback, err := s.submitFeedbackHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, FeedbackResponse{
		ID:        feedback.ID.String(),
		Rating:    feedback.Rating,
		Comment:   feedback.Comment,
		CreatedAt: feedback.CreatedAt,
	})
}

// ReportBug handles POST /bugs. Any authenticated user.
func (s *Server) ReportBug(ctx echo.Context) error {
	caller := principal(ctx)

	var req BugReportRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewReportBugCommand(caller.ID(), req.Title, req.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	report, err := s.reportBugHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, BugReportResponse{
		ID:          report.ID.String(),
		UserID:      report.UserID.String(),
		Title:       report.Title,
		Description: report.Description,
		Status:      string(report.Status),
		CreatedAt:   report.CreatedAt,
	})
}

// GetBugReports handles GET /bugs. Manager only.
func (s *Server) GetBugReports(ctx echo.Context) error {
	caller := principal(ctx)
	if !caller.Role().CanAdministrate() {
		return writeError(ctx, errs.NewForbiddenError(caller.Role().String(), "read bug reports"))
	}

	reports, err := s.getBugReportsHandler.Handle(ctx.Request().Context(), queries.NewGetBugReportsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]BugReportResponse, 0, len(reports))
	for _, report := range reports {
		response = append(response, BugReportResponse{
			ID:          report.ID.String(),
			UserID:      report.UserID.String(),
			Title:       report.Title,
			Description: report.Description,
			Status:      report.Status,
			CreatedAt:   report.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAnalytics handles GET /analytics. Manager only.
func (s *Server) GetAnalytics(ctx echo.Context) error {
	caller := principal(ctx)
	if !caller.Role().CanAdministrate() {
		return writeError(ctx, errs.NewForbiddenError(caller.Role().String(), "read analytics"))
	}

	rollup, err := s.getAnalyticsHandler.Handle(ctx.Request().Context(), queries.NewGetAnalyticsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AnalyticsResponse{
		TotalOrders:     rollup.TotalOrders,
		TotalRevenue:    rollup.TotalRevenue,
		DeliveredOrders: rollup.DeliveredOrders,
		CancelledOrders: rollup.CancelledOrders,
		PendingOrders:   rollup.PendingOrders,
		OnTheWayOrders:  rollup.OnTheWayOrders,
		TotalCustomers:  rollup.TotalCustomers,
	})
}

func productDetails(req ProductRequest) product.Details {
	return product.Details{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Stock:       req.Stock,
	}
}

func toProductResponse(aggregate *product.Product) ProductResponse {
	return ProductResponse{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		Category:    aggregate.Category(),
		Image:       aggregate.Image(),
		Stock:       aggregate.Stock(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toOrderResponses(models []queries.OrderResponse) []OrderResponse {
	responses := make([]OrderResponse, 0, len(models))
	for _, model := range models {
		responses = append(responses, toOrderResponse(model))
	}
	return responses
}
