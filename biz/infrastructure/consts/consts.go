package consts

// 数据库相关
const (
	ID          = "_id"
	UserName    = "userName"
	Email       = "email"
	Teacher     = "teacher"
	Owner       = "owner"
	Admins      = "admins"
	AllMembers  = "allMembers"
	Messages    = "messages"
	Students    = "students"
	Notices     = "notices"
	Assignments = "assignments"
	TokenUser   = "user"
)

// 鉴权头
const (
	HeaderAuthToken = "X-Auth-Token"
	HeaderUserId    = "X-User-Id"
)

// 默认值
const (
	SignedUrlExpireMinutes = 15
)
