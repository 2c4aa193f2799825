package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/policy"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	accountSvc := services.NewAccountService(userRepo, roleRepo)
	groupSvc := services.NewGroupService(userRepo, roleRepo)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)
	purchaseSvc := services.NewPurchaseService(orderRepo)

	// One rule table for the whole API; roles are re-read per request.
	pol := policy.Default()

	// Controllers
	authCtrl := controllers.NewAuthController(userRepo, cfg)
	accountCtrl := controllers.NewAccountController(accountSvc, pol)
	groupCtrl := controllers.NewGroupController(groupSvc, pol)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	cartItemCtrl := controllers.NewCartItemController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, pol)
	purchaseCtrl := controllers.NewPurchaseController(purchaseSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret, userRepo)
	optional := middlewares.OptionalAuth(cfg.JWTSecret, userRepo)
	guard := func(resource string) gin.HandlerFunc { return middlewares.Authorize(pol, resource) }

	// Auth
	r.POST("/auth/login", authCtrl.Login)
	r.GET("/auth/me", auth, authCtrl.Me)

	// Accounts: POST is public registration, hence optional auth.
	r.POST("/users", optional, accountCtrl.Create)
	r.GET("/users", auth, accountCtrl.List)
	r.GET("/users/:id", auth, accountCtrl.Get)
	r.PATCH("/users/:id", auth, accountCtrl.Update)
	r.DELETE("/users/:id", auth, accountCtrl.Delete)

	// Groups and role membership
	groups := r.Group("/groups", auth)
	{
		groups.GET("", guard(policy.ResourceGroups), groupCtrl.List)
		groups.POST("", guard(policy.ResourceGroups), groupCtrl.Create)

		groups.GET("/admins", guard(policy.ResourceAdminGroup), groupCtrl.Members(entity.RoleSysAdmin))
		groups.POST("/admins", guard(policy.ResourceAdminGroup), groupCtrl.AddMember(entity.RoleSysAdmin))
		groups.DELETE("/admins/:id", groupCtrl.RemoveMember(policy.ResourceAdminGroup, entity.RoleSysAdmin))

		groups.GET("/managers", guard(policy.ResourceManagerGroup), groupCtrl.Members(entity.RoleManager))
		groups.POST("/managers", guard(policy.ResourceManagerGroup), groupCtrl.AddMember(entity.RoleManager))
		groups.DELETE("/managers/:id", groupCtrl.RemoveMember(policy.ResourceManagerGroup, entity.RoleManager))

		groups.GET("/delivery-crew", guard(policy.ResourceDeliveryGroup), groupCtrl.Members(entity.RoleDeliveryCrew))
		groups.POST("/delivery-crew", guard(policy.ResourceDeliveryGroup), groupCtrl.AddMember(entity.RoleDeliveryCrew))
		groups.DELETE("/delivery-crew/:id", groupCtrl.RemoveMember(policy.ResourceDeliveryGroup, entity.RoleDeliveryCrew))

		groups.GET("/customers", guard(policy.ResourceCustomerGroup), groupCtrl.Members(entity.RoleCustomer))
		groups.POST("/customers", guard(policy.ResourceCustomerGroup), groupCtrl.AddMember(entity.RoleCustomer))
		groups.DELETE("/customers/:id", groupCtrl.RemoveMember(policy.ResourceCustomerGroup, entity.RoleCustomer))

		groups.GET("/:id", groupCtrl.Get)
		groups.PUT("/:id", groupCtrl.Update)
		groups.PATCH("/:id", groupCtrl.Update)
		groups.DELETE("/:id", groupCtrl.Delete)
	}

	// Menu
	menu := r.Group("/menu-items", auth, guard(policy.ResourceMenu))
	{
		menu.GET("", menuCtrl.ListItems)
		menu.POST("", menuCtrl.CreateItem)
		menu.GET("/:id", menuCtrl.GetItem)
		menu.PUT("/:id", menuCtrl.UpdateItem)
		menu.PATCH("/:id", menuCtrl.UpdateItem)
		menu.DELETE("/:id", menuCtrl.DeleteItem)
	}

	// Categories
	cats := r.Group("/categories", auth, guard(policy.ResourceCategory))
	{
		cats.GET("", menuCtrl.ListCategories)
		cats.POST("", menuCtrl.CreateCategory)
		cats.GET("/:id", menuCtrl.GetCategory)
		cats.PUT("/:id", menuCtrl.UpdateCategory)
		cats.PATCH("/:id", menuCtrl.UpdateCategory)
		cats.DELETE("/:id", menuCtrl.DeleteCategory)
		cats.GET("/:id/menu-items", menuCtrl.ItemsInCategory)
	}

	// Cart
	cart := r.Group("/cart", auth, guard(policy.ResourceCart))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("", cartCtrl.Attach)
		cart.DELETE("", cartCtrl.Remove)
	}

	// Cart line items
	lines := r.Group("/order-items", auth, guard(policy.ResourceCartItem))
	{
		lines.GET("", cartItemCtrl.List)
		lines.POST("", cartItemCtrl.Create)
		lines.GET("/:id", cartItemCtrl.Get)
		lines.PATCH("/:id", cartItemCtrl.Update)
		lines.DELETE("/:id", cartItemCtrl.Delete)
	}

	// Orders: detail verbs decide in the controller because the outcome
	// depends on the addressed order.
	orders := r.Group("/orders", auth)
	{
		orders.GET("", guard(policy.ResourceOrders), orderCtrl.List)
		orders.POST("", guard(policy.ResourceOrders), orderCtrl.Create)
		orders.GET("/:id", orderCtrl.Get)
		orders.PATCH("/:id", orderCtrl.Update)
		orders.DELETE("/:id", orderCtrl.Delete)
	}

	// Purchases (transactions)
	purchases := r.Group("/purchases", auth, guard(policy.ResourcePurchase))
	{
		purchases.GET("", purchaseCtrl.List)
		purchases.GET("/:id", purchaseCtrl.Get)
		purchases.DELETE("/:id", purchaseCtrl.Delete)
	}

	// Purchase items
	pitems := r.Group("/purchase-items", auth, guard(policy.ResourcePurchaseItem))
	{
		pitems.GET("", purchaseCtrl.ListItems)
		pitems.GET("/:id", purchaseCtrl.GetItem)
		pitems.PUT("/:id", purchaseCtrl.UpdateItem)
		pitems.PATCH("/:id", purchaseCtrl.UpdateItem)
		pitems.DELETE("/:id", purchaseCtrl.DeleteItem)
	}
}
