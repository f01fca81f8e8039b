package basic

// AuthMeta 透传的鉴权信息：不透明令牌 + 声明的用户身份
type AuthMeta struct {
	Token  string `json:"token" mapstructure:"token"`
	UserId string `json:"userId" mapstructure:"userId"`
}

func (m *AuthMeta) GetToken() string {
	if m == nil {
		return ""
	}
	return m.Token
}

func (m *AuthMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	return m.UserId
}

type Response struct {
	Code int64  `json:"code" form:"code" query:"code"`
	Msg  string `json:"msg" form:"msg" query:"msg"`
}
