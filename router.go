package main

import (
	handler "school-chat/biz/adaptor/controller"
	v1 "school-chat/biz/adaptor/controller/v1"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizedRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	apiV1 := r.Group("/api/v1")
	{
		user := apiV1.Group("/user")
		{
			user.POST("", v1.SignUp)
			user.GET("", v1.GetUserInfo)
			user.DELETE("", v1.DeleteUser)
			user.POST("/login", v1.SignIn)
			user.POST("/logout", v1.SignOut)
		}

		classes := apiV1.Group("/classes")
		{
			classes.POST("", v1.CreateClass)
			classes.GET("", v1.GetClassInfo)
			classes.POST("/students", v1.AddStudent)
			classes.DELETE("/students", v1.RemoveStudent)
			classes.POST("/notices", v1.CreateNotice)
			classes.PATCH("/notices", v1.EditNotice)
			classes.DELETE("/notices", v1.DeleteNotice)
			classes.POST("/assignments", v1.CreateAssignment)
			classes.PATCH("/assignments", v1.EditAssignment)
			classes.DELETE("/assignments", v1.DeleteAssignment)
		}

		rooms := apiV1.Group("/rooms")
		{
			rooms.POST("", v1.CreateRoom)
			rooms.GET("", v1.GetRoomInfo)
			rooms.DELETE("", v1.DeleteRoom)
			rooms.POST("/members", v1.AddUser)
			rooms.DELETE("/members", v1.KickUser)
			rooms.POST("/admins", v1.PromoteAdmin)
			rooms.DELETE("/admins", v1.DemoteAdmin)
			rooms.POST("/messages", v1.CreateMessage)
			rooms.PATCH("/messages", v1.EditMessage)
		}

		sts := apiV1.Group("/sts")
		{
			sts.POST("/apply", v1.ApplySignedUrl)
		}
	}
}
