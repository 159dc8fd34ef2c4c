package http

import (
	"github.com/nhadat/marketplace/internal/interfaces/http/handlers"
)

// allHandlers holds every HTTP handler instance.
type allHandlers struct {
	authHandler     *handlers.AuthHandler
	propertyHandler *handlers.PropertyHandler
	orderHandler    *handlers.OrderHandler
	chatHandler     *handlers.ChatHandler
	adminHandler    *handlers.AdminHandler
	healthHandler   *handlers.HealthHandler
}

// ============================================================
// Section 4: Handlers
// ============================================================

func (c *Container) initHandlers() error {
	cfg := c.cfg
	log := c.log
	ucs := c.ucs

	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	h := &allHandlers{}

	// The code flow handlers must receive untyped nil when the flow is off.
	if ucs.initiateLoginUC != nil && ucs.handleCallbackUC != nil {
		h.authHandler = handlers.NewAuthHandler(ucs.googleSignInUC, ucs.initiateLoginUC, ucs.handleCallbackUC,
			ucs.getMeUC, cfg.Auth.Cookie, cfg.Server.ClientOrigin, log)
	} else {
		h.authHandler = handlers.NewAuthHandler(ucs.googleSignInUC, nil, nil,
			ucs.getMeUC, cfg.Auth.Cookie, cfg.Server.ClientOrigin, log)
	}

	h.propertyHandler = handlers.NewPropertyHandler(
		ucs.createPropertyUC,
		ucs.updatePropertyUC,
		ucs.deletePropertyUC,
		ucs.moderatePropertyUC,
		ucs.markSoldUC,
		ucs.listPropertiesUC,
		ucs.listMyPropertiesUC,
		ucs.getPropertyUC,
		c.svcs.images,
		cfg.Upload.MaxFiles,
		log,
	)

	h.orderHandler = handlers.NewOrderHandler(
		ucs.listPackagesUC,
		ucs.createOrderUC,
		ucs.listMyOrdersUC,
		ucs.listOrdersUC,
		ucs.markPaidUC,
		log,
	)

	h.chatHandler = handlers.NewChatHandler(
		ucs.getOrCreateChatUC,
		ucs.listChatsUC,
		ucs.getChatUC,
		ucs.getMessagesUC,
		ucs.sendMessageUC,
		c.svcs.hub,
		cfg.Server.AllowedOrigins,
		log,
	)

	h.adminHandler = handlers.NewAdminHandler(ucs.getStatsUC, ucs.listUsersUC, ucs.toggleUserLockUC, log)
	h.healthHandler = handlers.NewHealthHandler(sqlDB)

	c.hdlrs = h
	return nil
}
