package wakeup

import (
	"github.com/gin-gonic/gin"

	"wakeup-punch-system/internal/global/jwt"
	"wakeup-punch-system/internal/global/logger"
	"wakeup-punch-system/internal/global/response"
	"wakeup-punch-system/internal/model"
)

type setStatusReq struct {
	MemberID     string       `json:"member_id" binding:"required"`
	Date         string       `json:"date" binding:"required"`
	WakeupStatus model.Status `json:"wakeup_status" binding:"required"`
	FrogStatus   model.Status `json:"frog_status" binding:"required"`
}

func (m *ModuleWakeup) today(c *gin.Context) {
	sess, _ := jwt.GetSession(c)
	status, err := m.Service.TodayStatus(c.Request.Context(), sess.MemberID)
	if err != nil {
		log.Error("查询今日打卡失败", "member_id", sess.MemberID, "error", err)
		response.Fail(c, response.FromError(err))
		return
	}
	response.Success(c, status)
}

func (m *ModuleWakeup) check(c *gin.Context) {
	sess, _ := jwt.GetSession(c)
	wakeupLog, err := m.Service.CheckWakeup(c.Request.Context(), sess.MemberID)
	if err != nil {
		logger.WithContext(log, c).Warn("起床打卡失败", "member_id", sess.MemberID, "error", err)
		response.Fail(c, response.FromError(err))
		return
	}
	logger.WithContext(log, c).Info("起床打卡", "member_id", sess.MemberID, "date", wakeupLog.Date)
	response.Success(c, wakeupLog)
}

func (m *ModuleWakeup) frog(c *gin.Context) {
	sess, _ := jwt.GetSession(c)
	wakeupLog, err := m.Service.CatchFrog(c.Request.Context(), sess.MemberID)
	if err != nil {
		logger.WithContext(log, c).Warn("青蛙任务打卡失败", "member_id", sess.MemberID, "error", err)
		response.Fail(c, response.FromError(err))
		return
	}
	logger.WithContext(log, c).Info("青蛙任务打卡", "member_id", sess.MemberID, "date", wakeupLog.Date)
	response.Success(c, wakeupLog)
}

// setStatus 管理员补录或修正，两个状态都要给
func (m *ModuleWakeup) setStatus(c *gin.Context) {
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	wakeupLog, err := m.Service.SetWakeupStatus(c.Request.Context(), req.MemberID, req.Date, req.WakeupStatus, req.FrogStatus)
	if err != nil {
		log.Error("修正打卡状态失败", "member_id", req.MemberID, "date", req.Date, "error", err)
		response.Fail(c, response.FromError(err))
		return
	}
	response.Success(c, wakeupLog)
}
