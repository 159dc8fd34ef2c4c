package http

import (
	adminUsecases "github.com/nhadat/marketplace/internal/application/admin/usecases"
	chatUsecases "github.com/nhadat/marketplace/internal/application/chat/usecases"
	orderUsecases "github.com/nhadat/marketplace/internal/application/order/usecases"
	propertyUsecases "github.com/nhadat/marketplace/internal/application/property/usecases"
	userUsecases "github.com/nhadat/marketplace/internal/application/user/usecases"
)

// allUseCases holds every use case instance wired by the container.
type allUseCases struct {
	// Auth
	syncUserUC       *userUsecases.SyncUserUseCase
	googleSignInUC   *userUsecases.GoogleSignInUseCase
	initiateLoginUC  *userUsecases.InitiateGoogleLoginUseCase
	handleCallbackUC *userUsecases.HandleGoogleCallbackUseCase
	getMeUC          *userUsecases.GetMeUseCase
	seedAdminUC      *userUsecases.SeedAdminUseCase

	// Listings
	createPropertyUC   *propertyUsecases.CreatePropertyUseCase
	updatePropertyUC   *propertyUsecases.UpdatePropertyUseCase
	deletePropertyUC   *propertyUsecases.DeletePropertyUseCase
	moderatePropertyUC *propertyUsecases.ModeratePropertyUseCase
	markSoldUC         *propertyUsecases.MarkSoldUseCase
	listPropertiesUC   *propertyUsecases.ListPropertiesUseCase
	listMyPropertiesUC *propertyUsecases.ListMyPropertiesUseCase
	getPropertyUC      *propertyUsecases.GetPropertyUseCase

	// Packages & orders
	listPackagesUC *orderUsecases.ListPackagesUseCase
	seedPackagesUC *orderUsecases.SeedPackagesUseCase
	createOrderUC  *orderUsecases.CreateOrderUseCase
	listMyOrdersUC *orderUsecases.ListMyOrdersUseCase
	listOrdersUC   *orderUsecases.ListOrdersUseCase
	markPaidUC     *orderUsecases.MarkPaidUseCase

	// Chat
	getOrCreateChatUC *chatUsecases.GetOrCreateChatUseCase
	listChatsUC       *chatUsecases.ListChatsUseCase
	getChatUC         *chatUsecases.GetChatUseCase
	getMessagesUC     *chatUsecases.GetMessagesUseCase
	sendMessageUC     *chatUsecases.SendMessageUseCase

	// Back office
	getStatsUC       *adminUsecases.GetStatsUseCase
	listUsersUC      *adminUsecases.ListUsersUseCase
	toggleUserLockUC *adminUsecases.ToggleUserLockUseCase
}

// ============================================================
// Section 3: Use cases
// ============================================================

func (c *Container) initUseCases() {
	log := c.log
	r := c.repos
	s := c.svcs

	ucs := &allUseCases{}

	ucs.syncUserUC = userUsecases.NewSyncUserUseCase(r.userRepo, log)
	ucs.googleSignInUC = userUsecases.NewGoogleSignInUseCase(s.google, ucs.syncUserUC, s.sessions, log)
	if s.stateStore != nil {
		ucs.initiateLoginUC = userUsecases.NewInitiateGoogleLoginUseCase(s.google, s.stateStore, log)
		ucs.handleCallbackUC = userUsecases.NewHandleGoogleCallbackUseCase(s.google, s.stateStore, ucs.syncUserUC, s.sessions, log)
	}
	ucs.getMeUC = userUsecases.NewGetMeUseCase(r.userRepo, log)
	ucs.seedAdminUC = userUsecases.NewSeedAdminUseCase(r.userRepo, s.hasher, log)

	ucs.createPropertyUC = propertyUsecases.NewCreatePropertyUseCase(r.txMgr, r.ledger, r.propertyRepo, log)
	ucs.updatePropertyUC = propertyUsecases.NewUpdatePropertyUseCase(r.propertyRepo, s.images, log)
	ucs.deletePropertyUC = propertyUsecases.NewDeletePropertyUseCase(r.propertyRepo, log)
	ucs.moderatePropertyUC = propertyUsecases.NewModeratePropertyUseCase(r.propertyRepo, r.userRepo, s.notifier, log)
	ucs.markSoldUC = propertyUsecases.NewMarkSoldUseCase(r.propertyRepo, log)
	ucs.listPropertiesUC = propertyUsecases.NewListPropertiesUseCase(r.propertyRepo, r.userRepo, log)
	ucs.listMyPropertiesUC = propertyUsecases.NewListMyPropertiesUseCase(r.propertyRepo, log)
	ucs.getPropertyUC = propertyUsecases.NewGetPropertyUseCase(r.propertyRepo, r.userRepo, s.renderer, log)

	ucs.listPackagesUC = orderUsecases.NewListPackagesUseCase(r.packageRepo, s.packageCache, log)
	ucs.seedPackagesUC = orderUsecases.NewSeedPackagesUseCase(r.packageRepo, s.packageCache, log)
	ucs.createOrderUC = orderUsecases.NewCreateOrderUseCase(r.orderRepo, r.packageRepo, log)
	ucs.listMyOrdersUC = orderUsecases.NewListMyOrdersUseCase(r.orderRepo, r.packageRepo, log)
	ucs.listOrdersUC = orderUsecases.NewListOrdersUseCase(r.orderRepo, r.packageRepo, r.userRepo, log)
	ucs.markPaidUC = orderUsecases.NewMarkPaidUseCase(r.txMgr, r.orderRepo, r.packageRepo, r.userRepo, r.ledger, log)

	ucs.getOrCreateChatUC = chatUsecases.NewGetOrCreateChatUseCase(r.chatRepo, r.propertyRepo, r.userRepo, log)
	ucs.listChatsUC = chatUsecases.NewListChatsUseCase(r.chatRepo, r.messageRepo, r.userRepo, r.propertyRepo, log)
	ucs.getChatUC = chatUsecases.NewGetChatUseCase(r.chatRepo, r.messageRepo, r.userRepo, r.propertyRepo, log)
	ucs.getMessagesUC = chatUsecases.NewGetMessagesUseCase(r.chatRepo, r.messageRepo, r.userRepo, log)
	ucs.sendMessageUC = chatUsecases.NewSendMessageUseCase(r.txMgr, r.chatRepo, r.messageRepo, r.userRepo, s.hub, log)

	ucs.getStatsUC = adminUsecases.NewGetStatsUseCase(r.userRepo, r.propertyRepo, log)
	ucs.listUsersUC = adminUsecases.NewListUsersUseCase(r.userRepo, log)
	ucs.toggleUserLockUC = adminUsecases.NewToggleUserLockUseCase(r.userRepo, log)

	c.ucs = ucs
}
