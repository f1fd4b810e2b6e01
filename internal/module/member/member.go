package member

import (
	"github.com/gin-gonic/gin"

	"wakeup-punch-system/internal/global/response"
)

type addReq struct {
	Name string `json:"name" binding:"required"`
}

func (m *ModuleMember) list(c *gin.Context) {
	members, err := m.Service.ListMembers(c.Request.Context())
	if err != nil {
		log.Error("查询成员列表失败", "error", err)
		response.Fail(c, response.FromError(err))
		return
	}
	response.Success(c, members)
}

// add 成员码由服务端生成，随成员一起返回
func (m *ModuleMember) add(c *gin.Context) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	member, err := m.Service.AddMember(c.Request.Context(), req.Name)
	if err != nil {
		log.Error("新增成员失败", "name", req.Name, "error", err)
		response.Fail(c, response.FromError(err))
		return
	}
	response.Success(c, member)
}

// remove 连同该成员的打卡和 MUST 记录一起删除
func (m *ModuleMember) remove(c *gin.Context) {
	id := c.Param("id")
	if err := m.Service.DeleteMember(c.Request.Context(), id); err != nil {
		log.Error("删除成员失败", "member_id", id, "error", err)
		response.Fail(c, response.FromError(err))
		return
	}
	response.Success(c)
}
