package httpserver

import (
	"context"
	"database/sql"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sevencake/internal/domain"
	cartsvc "sevencake/internal/service/cart"
	ordersvc "sevencake/internal/service/order"
	productsvc "sevencake/internal/service/product"
)

// Deps carries the services the router needs. Fields are interfaces so
// handler tests can plug in stubs.
type Deps struct {
	UserSvc     userService
	CategorySvc categoryService
	ProductSvc  productService
	CartSvc     cartService
	OrderSvc    orderService
}

type userService interface {
	Signup(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	Logout(ctx context.Context, token string)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, username, password string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, username, password, role string) (*domain.User, error)
	Update(ctx context.Context, u domain.User) error
	Delete(ctx context.Context, id int64) error
}

type categoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	Update(ctx context.Context, id int64, name string) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

type productService interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, in productsvc.Input) (*domain.Product, error)
	Update(ctx context.Context, id int64, in productsvc.Input) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type cartService interface {
	Add(ctx context.Context, userID, productID int64) error
	Fetch(ctx context.Context, userID int64) (*cartsvc.Cart, error)
	UpdateQuantity(ctx context.Context, cartID int64, quantity int) error
	Remove(ctx context.Context, cartID int64) error
}

type orderService interface {
	Checkout(ctx context.Context, userID int64, in ordersvc.CheckoutInput) (*domain.Order, error)
	History(ctx context.Context, userID int64) ([]domain.Order, error)
	ItemsForUser(ctx context.Context, userID, orderID int64) ([]domain.OrderItem, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	Items(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	UpdateStatus(ctx context.Context, orderID int64, next domain.OrderStatus) (*domain.Order, error)
}

// buildRouter wires routes for the storefront and admin surfaces.
func buildRouter(logger *log.Logger, db *sql.DB, deps Deps, uploadDir string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	if uploadDir != "" {
		router.Static("/uploads", uploadDir)
	}

	router.POST("/auth/signup", signupHandler(deps.UserSvc))
	router.POST("/auth/login", loginHandler(deps.UserSvc))

	router.GET("/categories", listCategoriesHandler(deps.CategorySvc))
	router.GET("/categories/:id/products", productsByCategoryHandler(deps.CategorySvc, deps.ProductSvc))
	router.GET("/products", listProductsHandler(deps.ProductSvc))
	router.GET("/products/:id", getProductHandler(deps.ProductSvc))

	authed := router.Group("/", authRequired(deps.UserSvc))
	{
		authed.POST("/auth/logout", logoutHandler(deps.UserSvc))
		authed.GET("/auth/me", meHandler)
		authed.PUT("/auth/me", updateMeHandler(deps.UserSvc))

		authed.GET("/cart", getCartHandler(deps.CartSvc))
		authed.POST("/cart/items", addCartItemHandler(deps.CartSvc))
		authed.PATCH("/cart/items/:id", updateCartItemHandler(deps.CartSvc))
		authed.DELETE("/cart/items/:id", removeCartItemHandler(deps.CartSvc))

		authed.POST("/orders", checkoutHandler(deps.OrderSvc))
		authed.GET("/orders", orderHistoryHandler(deps.OrderSvc))
		authed.GET("/orders/:id/items", orderItemsHandler(deps.OrderSvc))
	}

	admin := router.Group("/admin", authRequired(deps.UserSvc), adminRequired())
	{
		admin.POST("/categories", createCategoryHandler(deps.CategorySvc))
		admin.PUT("/categories/:id", updateCategoryHandler(deps.CategorySvc))
		admin.DELETE("/categories/:id", deleteCategoryHandler(deps.CategorySvc))

		admin.POST("/products", createProductHandler(deps.ProductSvc))
		admin.PUT("/products/:id", updateProductHandler(deps.ProductSvc))
		admin.DELETE("/products/:id", deleteProductHandler(deps.ProductSvc))

		admin.GET("/users", listUsersHandler(deps.UserSvc))
		admin.POST("/users", createUserHandler(deps.UserSvc))
		admin.PUT("/users/:id", updateUserHandler(deps.UserSvc))
		admin.DELETE("/users/:id", deleteUserHandler(deps.UserSvc))

		admin.GET("/orders", listAllOrdersHandler(deps.OrderSvc))
		admin.GET("/orders/:id/items", adminOrderItemsHandler(deps.OrderSvc))
		admin.PATCH("/orders/:id/status", updateOrderStatusHandler(deps.OrderSvc))

		admin.POST("/uploads", uploadHandler(uploadDir))
	}

	return router, nil
}
