package must

import (
	"github.com/gin-gonic/gin"

	"wakeup-punch-system/internal/global/jwt"
	"wakeup-punch-system/internal/global/response"
)

type saveReq struct {
	Content string `json:"content" binding:"required"`
}

// today 返回今天和昨天的 MUST，昨天的只读
func (m *ModuleMust) today(c *gin.Context) {
	sess, _ := jwt.GetSession(c)
	overview, err := m.Service.MustRecords(c.Request.Context(), sess.MemberID)
	if err != nil {
		log.Error("查询 MUST 失败", "member_id", sess.MemberID, "error", err)
		response.Fail(c, response.FromError(err))
		return
	}
	response.Success(c, overview)
}

func (m *ModuleMust) save(c *gin.Context) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	sess, _ := jwt.GetSession(c)
	record, err := m.Service.SaveMustRecord(c.Request.Context(), sess.MemberID, req.Content)
	if err != nil {
		log.Error("保存 MUST 失败", "member_id", sess.MemberID, "error", err)
		response.Fail(c, response.FromError(err))
		return
	}
	response.Success(c, record)
}

func (m *ModuleMust) remove(c *gin.Context) {
	id := c.Param("id")
	if err := m.Service.DeleteMustRecord(c.Request.Context(), id); err != nil {
		log.Error("删除 MUST 失败", "id", id, "error", err)
		response.Fail(c, response.FromError(err))
		return
	}
	response.Success(c)
}
