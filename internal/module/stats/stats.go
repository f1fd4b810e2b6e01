package stats

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"wakeup-punch-system/internal/global/jwt"
	"wakeup-punch-system/internal/global/response"
	"wakeup-punch-system/internal/global/sentry/tracing"
	"wakeup-punch-system/tools"
)

const (
	rankSheet = "排行榜"
	xlsxType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// me 成员自己的月度统计和日历
func (m *ModuleStats) me(c *gin.Context) {
	month, err := m.Service.ResolveMonth(c.Query("month"))
	if err != nil {
		response.Fail(c, response.FromError(err))
		return
	}
	sess, _ := jwt.GetSession(c)
	dashboard, err := m.Service.MemberDashboard(c.Request.Context(), sess.MemberID, month)
	if err != nil {
		log.Error("查询成员统计失败", "member_id", sess.MemberID, "month", month.String(), "error", err)
		response.Fail(c, response.FromError(err))
		return
	}
	response.Success(c, dashboard)
}

func (m *ModuleStats) overview(c *gin.Context) {
	month, err := m.Service.ResolveMonth(c.Query("month"))
	if err != nil {
		response.Fail(c, response.FromError(err))
		return
	}
	dashboard, err := m.Service.AdminDashboard(c.Request.Context(), month)
	if err != nil {
		log.Error("查询整体统计失败", "month", month.String(), "error", err)
		response.Fail(c, response.FromError(err))
		return
	}
	response.Success(c, dashboard)
}

// exportRank 配置了归档时上传并返回下载链接，否则直接返回 xlsx
func (m *ModuleStats) exportRank(c *gin.Context) {
	month, err := m.Service.ResolveMonth(c.Query("month"))
	if err != nil {
		response.Fail(c, response.FromError(err))
		return
	}
	ctx := c.Request.Context()
	span := tracing.StartSpan(ctx, "export.rank", month.String())

	dashboard, err := m.Service.AdminDashboard(ctx, month)
	if err != nil {
		tracing.Finish(span, err)
		log.Error("导出排行榜失败", "month", month.String(), "error", err)
		response.Fail(c, response.FromError(err))
		return
	}
	buf, err := tools.WriteExcel(rankSheet, dashboard.Ranking)
	if err != nil {
		tracing.Finish(span, err)
		log.Error("生成排行榜 Excel 失败", "month", month.String(), "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	filename := fmt.Sprintf("ranking-%s.xlsx", month.String())

	if m.Archive == nil {
		tracing.Finish(span, nil)
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Data(http.StatusOK, xlsxType, buf.Bytes())
		return
	}

	object, err := m.Archive.Put(ctx, filename, xlsxType, buf)
	tracing.Finish(span, err)
	if err != nil {
		log.Error("上传排行榜失败", "filename", filename, "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	log.Info("排行榜已归档", "key", object.Key, "members", len(dashboard.Ranking))
	response.Success(c, object)
}
