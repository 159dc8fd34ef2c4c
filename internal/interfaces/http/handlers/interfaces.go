package handlers

import (
	"context"
	"io"

	admindto "github.com/nhadat/marketplace/internal/application/admin/dto"
	adminusecases "github.com/nhadat/marketplace/internal/application/admin/usecases"
	chatdto "github.com/nhadat/marketplace/internal/application/chat/dto"
	chatusecases "github.com/nhadat/marketplace/internal/application/chat/usecases"
	orderdto "github.com/nhadat/marketplace/internal/application/order/dto"
	orderusecases "github.com/nhadat/marketplace/internal/application/order/usecases"
	propertydto "github.com/nhadat/marketplace/internal/application/property/dto"
	propertyusecases "github.com/nhadat/marketplace/internal/application/property/usecases"
	userdto "github.com/nhadat/marketplace/internal/application/user/dto"
	userusecases "github.com/nhadat/marketplace/internal/application/user/usecases"
)

// Use case interfaces for AuthHandler

type googleSignInUseCase interface {
	Execute(ctx context.Context, cmd userusecases.GoogleSignInCommand) (*userusecases.SignInResult, error)
}

type initiateGoogleLoginUseCase interface {
	Execute(ctx context.Context) (*userusecases.InitiateGoogleLoginResult, error)
}

type handleGoogleCallbackUseCase interface {
	Execute(ctx context.Context, cmd userusecases.HandleGoogleCallbackCommand) (*userusecases.SignInResult, error)
}

type getMeUseCase interface {
	Execute(ctx context.Context, userID uint) (*userdto.UserResponse, error)
}

// Use case interfaces for PropertyHandler

type createPropertyUseCase interface {
	Execute(ctx context.Context, cmd propertyusecases.CreatePropertyCommand) (*propertydto.PropertyResponse, error)
}

type updatePropertyUseCase interface {
	Execute(ctx context.Context, cmd propertyusecases.UpdatePropertyCommand) (*propertydto.PropertyResponse, error)
}

type deletePropertyUseCase interface {
	Execute(ctx context.Context, cmd propertyusecases.DeletePropertyCommand) error
}

type moderatePropertyUseCase interface {
	Execute(ctx context.Context, cmd propertyusecases.ModeratePropertyCommand) (*propertydto.PropertyResponse, error)
}

type markSoldUseCase interface {
	Execute(ctx context.Context, cmd propertyusecases.MarkSoldCommand) (*propertydto.PropertyResponse, error)
}

type listPropertiesUseCase interface {
	Execute(ctx context.Context, query propertyusecases.ListPropertiesQuery) (*propertydto.ListPropertiesResult, error)
}

type listMyPropertiesUseCase interface {
	Execute(ctx context.Context, ownerID uint) ([]*propertydto.PropertyResponse, error)
}

type getPropertyUseCase interface {
	Execute(ctx context.Context, query propertyusecases.GetPropertyQuery) (*propertydto.PropertyResponse, error)
}

// imageStore persists uploaded listing photos and returns their public URLs.
type imageStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	Remove(url string) error
}

// Use case interfaces for OrderHandler

type listPackagesUseCase interface {
	Execute(ctx context.Context) ([]*orderdto.PackageResponse, error)
}

type createOrderUseCase interface {
	Execute(ctx context.Context, cmd orderusecases.CreateOrderCommand) (*orderdto.OrderResponse, error)
}

type listMyOrdersUseCase interface {
	Execute(ctx context.Context, userID uint) ([]*orderdto.OrderResponse, error)
}

type listOrdersUseCase interface {
	Execute(ctx context.Context, query orderusecases.ListOrdersQuery) (*orderdto.ListOrdersResult, error)
}

type markPaidUseCase interface {
	Execute(ctx context.Context, cmd orderusecases.MarkPaidCommand) (*orderdto.OrderResponse, error)
}

// Use case interfaces for ChatHandler

type getOrCreateChatUseCase interface {
	Execute(ctx context.Context, cmd chatusecases.GetOrCreateChatCommand) (*chatdto.ChatResponse, error)
}

type listChatsUseCase interface {
	Execute(ctx context.Context, userID uint) ([]*chatdto.ChatResponse, error)
}

type getChatUseCase interface {
	Execute(ctx context.Context, chatSID string, callerID uint) (*chatdto.ChatResponse, error)
}

type getMessagesUseCase interface {
	Execute(ctx context.Context, chatSID string, callerID uint) ([]*chatdto.MessageResponse, error)
}

type sendMessageUseCase interface {
	Execute(ctx context.Context, cmd chatusecases.SendMessageCommand) (*chatdto.MessageResponse, error)
}

// Use case interfaces for AdminHandler

type getStatsUseCase interface {
	Execute(ctx context.Context) (*admindto.StatsResponse, error)
}

type listUsersUseCase interface {
	Execute(ctx context.Context, query adminusecases.ListUsersQuery) (*admindto.ListUsersResult, error)
}

type toggleUserLockUseCase interface {
	Execute(ctx context.Context, cmd adminusecases.ToggleUserLockCommand) (*userdto.UserResponse, error)
}
