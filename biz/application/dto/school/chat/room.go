package chat

type CreateRoomReq struct {
	RoomName string `form:"roomName" json:"roomName" query:"roomName"`
}

type CreateRoomResp struct {
	Id string `json:"id"`
}

type GetRoomInfoReq struct {
	RoomId string `form:"roomId" json:"roomId" query:"roomId"`
}

type MessageInfo struct {
	Id       string  `json:"id"`
	Author   string  `json:"author"`
	Contents string  `json:"contents"`
	Reply    *string `json:"reply,omitempty"`
	Edited   bool    `json:"edited"`
}

type RoomInfo struct {
	Id       string         `json:"id"`
	RoomName string         `json:"roomName"`
	Owner    string         `json:"owner"`
	Admins   []string       `json:"admins"`
	Members  []string       `json:"members"`
	Messages []*MessageInfo `json:"messages"`
}

type GetRoomInfoResp struct {
	Room *RoomInfo `json:"room"`
}

type DeleteRoomReq struct {
	RoomId string `form:"roomId" json:"roomId" query:"roomId"`
}

type AddUserReq struct {
	RoomId   string `form:"roomId" json:"roomId" query:"roomId"`
	TargetId string `form:"targetId" json:"targetId" query:"targetId"`
}

type KickUserReq struct {
	RoomId   string `form:"roomId" json:"roomId" query:"roomId"`
	TargetId string `form:"targetId" json:"targetId" query:"targetId"`
}

type PromoteAdminReq struct {
	RoomId   string `form:"roomId" json:"roomId" query:"roomId"`
	TargetId string `form:"targetId" json:"targetId" query:"targetId"`
}

type DemoteAdminReq struct {
	RoomId   string `form:"roomId" json:"roomId" query:"roomId"`
	TargetId string `form:"targetId" json:"targetId" query:"targetId"`
}

type CreateMessageReq struct {
	RoomId   string  `form:"roomId" json:"roomId" query:"roomId"`
	Contents string  `form:"contents" json:"contents" query:"contents"`
	Reply    *string `form:"reply" json:"reply,omitempty" query:"reply"`
}

type CreateMessageResp struct {
	Id string `json:"id"`
}

type EditMessageReq struct {
	RoomId      string `form:"roomId" json:"roomId" query:"roomId"`
	MessageId   string `form:"messageId" json:"messageId" query:"messageId"`
	NewContents string `form:"newContents" json:"newContents" query:"newContents"`
}
