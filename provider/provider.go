package provider

import (
	"school-chat/biz/application/service"
	"school-chat/biz/infrastructure/config"
	"school-chat/biz/infrastructure/repository/class"
	"school-chat/biz/infrastructure/repository/room"
	"school-chat/biz/infrastructure/repository/token"
	"school-chat/biz/infrastructure/repository/user"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config       *config.Config
	UserService  service.IUserService
	ClassService service.IClassService
	RoomService  service.IRoomService
	StsService   service.IStsService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.UserServiceSet,
	service.ClassServiceSet,
	service.RoomServiceSet,
	service.StsServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	token.NewMongoMapper,
	wire.Bind(new(token.Mapper), new(*token.MongoMapper)),
	user.NewMongoMapper,
	wire.Bind(new(user.Mapper), new(*user.MongoMapper)),
	class.NewMongoMapper,
	wire.Bind(new(class.Mapper), new(*class.MongoMapper)),
	room.NewMongoMapper,
	wire.Bind(new(room.Mapper), new(*room.MongoMapper)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
