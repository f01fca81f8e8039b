package chat

type SignUpReq struct {
	UserName    string `form:"userName" json:"userName" query:"userName"`
	RealName    string `form:"realName" json:"realName" query:"realName"`
	Email       string `form:"email" json:"email" query:"email"`
	Password    string `form:"password" json:"password" query:"password"`
	Teacher     bool   `form:"teacher" json:"teacher" query:"teacher"`
	Year        int    `form:"year" json:"year" query:"year"`
	ClassLetter string `form:"classLetter" json:"classLetter" query:"classLetter"`
}

type SignUpResp struct {
	Id string `json:"id"`
}

type SignInReq struct {
	UserName string `form:"userName" json:"userName" query:"userName"`
	Email    string `form:"email" json:"email" query:"email"`
	Password string `form:"password" json:"password" query:"password"`
}

type SignInResp struct {
	Id    string `json:"id"`
	Token string `json:"token"`
}

type SignOutReq struct {
}

type DeleteUserReq struct {
}

type GetUserInfoReq struct {
	TargetId string `form:"targetId" json:"targetId" query:"targetId"`
}

type UserInfo struct {
	Id       string   `json:"id"`
	UserName string   `json:"userName"`
	RealName string   `json:"realName"`
	Email    string   `json:"email"`
	Teacher  bool     `json:"teacher"`
	Form     string   `json:"form"`
	Classes  []string `json:"classes"`
}

type GetUserInfoResp struct {
	User *UserInfo `json:"user"`
}
