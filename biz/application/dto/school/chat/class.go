package chat

type CreateClassReq struct {
	ClassName string `form:"className" json:"className" query:"className"`
}

type CreateClassResp struct {
	Id string `json:"id"`
}

type GetClassInfoReq struct {
	ClassId string `form:"classId" json:"classId" query:"classId"`
}

type NoticeInfo struct {
	Id          string  `json:"id"`
	Author      string  `json:"author"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       *string `json:"image,omitempty"`
}

type AssignmentInfo struct {
	Id          string  `json:"id"`
	Author      string  `json:"author"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       *string `json:"image,omitempty"`
	DueDate     int64   `json:"dueDate"`
}

type ClassInfo struct {
	Id          string            `json:"id"`
	ClassName   string            `json:"className"`
	Teacher     string            `json:"teacher"`
	Students    []string          `json:"students"`
	Notices     []*NoticeInfo     `json:"notices"`
	Assignments []*AssignmentInfo `json:"assignments"`
}

type GetClassInfoResp struct {
	Class *ClassInfo `json:"class"`
}

type AddStudentReq struct {
	ClassId  string `form:"classId" json:"classId" query:"classId"`
	TargetId string `form:"targetId" json:"targetId" query:"targetId"`
}

type RemoveStudentReq struct {
	ClassId  string `form:"classId" json:"classId" query:"classId"`
	TargetId string `form:"targetId" json:"targetId" query:"targetId"`
}

type CreateNoticeReq struct {
	ClassId     string  `form:"classId" json:"classId" query:"classId"`
	Title       string  `form:"title" json:"title" query:"title"`
	Description string  `form:"description" json:"description" query:"description"`
	Image       *string `form:"image" json:"image,omitempty" query:"image"`
}

type CreateNoticeResp struct {
	Id string `json:"id"`
}

type EditNoticeReq struct {
	ClassId     string  `form:"classId" json:"classId" query:"classId"`
	NoticeId    string  `form:"noticeId" json:"noticeId" query:"noticeId"`
	Title       *string `form:"title" json:"title,omitempty" query:"title"`
	Description *string `form:"description" json:"description,omitempty" query:"description"`
	Image       *string `form:"image" json:"image,omitempty" query:"image"`
}

type DeleteNoticeReq struct {
	ClassId  string `form:"classId" json:"classId" query:"classId"`
	NoticeId string `form:"noticeId" json:"noticeId" query:"noticeId"`
}

type CreateAssignmentReq struct {
	ClassId     string  `form:"classId" json:"classId" query:"classId"`
	Title       string  `form:"title" json:"title" query:"title"`
	Description string  `form:"description" json:"description" query:"description"`
	Image       *string `form:"image" json:"image,omitempty" query:"image"`
	DueDate     int64   `form:"dueDate" json:"dueDate" query:"dueDate"`
}

type CreateAssignmentResp struct {
	Id string `json:"id"`
}

type EditAssignmentReq struct {
	ClassId      string  `form:"classId" json:"classId" query:"classId"`
	AssignmentId string  `form:"assignmentId" json:"assignmentId" query:"assignmentId"`
	Title        *string `form:"title" json:"title,omitempty" query:"title"`
	Description  *string `form:"description" json:"description,omitempty" query:"description"`
	Image        *string `form:"image" json:"image,omitempty" query:"image"`
	DueDate      *int64  `form:"dueDate" json:"dueDate,omitempty" query:"dueDate"`
}

type DeleteAssignmentReq struct {
	ClassId      string `form:"classId" json:"classId" query:"classId"`
	AssignmentId string `form:"assignmentId" json:"assignmentId" query:"assignmentId"`
}
