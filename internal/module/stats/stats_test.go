package stats

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"wakeup-punch-system/config"
	"wakeup-punch-system/internal/global/archive"
	"wakeup-punch-system/internal/global/response"
	"wakeup-punch-system/internal/global/session"
	"wakeup-punch-system/internal/model"
	"wakeup-punch-system/internal/service"
	"wakeup-punch-system/internal/store"
	"wakeup-punch-system/test"
)

type memoryArchive struct {
	filename    string
	contentType string
	body        []byte
}

func (a *memoryArchive) Put(_ context.Context, filename, contentType string, body io.Reader) (*archive.Object, error) {
	a.filename, a.contentType = filename, contentType
	var err error
	a.body, err = io.ReadAll(body)
	return &archive.Object{Key: "exports/" + filename, URL: "https://s3.local/exports/" + filename}, err
}

type fixture struct {
	svc   *service.Service
	kim   *model.Member
	lee   *model.Member
	token string
}

// seed 五月：Kim 两天起床+青蛙，Lee 一天起床
func seed(t *testing.T) *fixture {
	test.UseConfig(t, &config.Config{})
	ctx := context.Background()
	svc := service.New(store.NewMemory(), service.WithClock(func() time.Time {
		return time.Date(2024, 5, 10, 3, 0, 0, 0, time.UTC)
	}))

	kim, err := svc.AddMember(ctx, "Kim")
	require.NoError(t, err)
	lee, err := svc.AddMember(ctx, "Lee")
	require.NoError(t, err)

	for _, date := range []string{"2024-05-01", "2024-05-02"} {
		_, err = svc.SetWakeupStatus(ctx, kim.ID, date, model.StatusSuccess, model.StatusSuccess)
		require.NoError(t, err)
	}
	_, err = svc.SetWakeupStatus(ctx, lee.ID, "2024-05-01", model.StatusSuccess, model.StatusFailed)
	require.NoError(t, err)
	_, err = svc.SaveMustRecord(ctx, kim.ID, "stretch")
	require.NoError(t, err)

	return &fixture{
		svc:   svc,
		kim:   kim,
		lee:   lee,
		token: test.Token(t, session.Session{MemberID: kim.ID, Name: kim.Name, MemberCode: kim.MemberCode}),
	}
}

func (f *fixture) router(a archive.Archive) *gin.Engine {
	return test.Router(&ModuleStats{Service: f.svc, Revoker: session.NewMemoryRevoker(), Archive: a})
}

func TestMemberDashboard(t *testing.T) {
	f := seed(t)
	r := f.router(nil)

	var dash service.MemberDashboard
	test.NoError(t, test.Decode(t, test.Call(t, r, http.MethodGet, "/api/stats/me?month=2024-05", f.token, nil), &dash))
	assert.Equal(t, "2024-05", dash.Month)
	assert.Equal(t, 3, dash.StartDay)
	assert.Equal(t, 2, dash.Stats.WakeupSuccess)
	assert.Equal(t, 6, dash.Stats.WakeupRate)
	assert.Equal(t, 5, dash.Stats.TotalScore)

	var current service.MemberDashboard
	test.NoError(t, test.Decode(t, test.Call(t, r, http.MethodGet, "/api/stats/me", f.token, nil), &current))
	assert.Equal(t, "2024-05", current.Month)

	resp := test.Decode(t, test.Call(t, r, http.MethodGet, "/api/stats/me?month=2024-13", f.token, nil), nil)
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestAdminOverview(t *testing.T) {
	f := seed(t)
	r := f.router(nil)

	var dash service.AdminDashboard
	test.NoError(t, test.Decode(t, test.Call(t, r, http.MethodGet, "/api/stats/overview?month=2024-05", test.AdminToken(t), nil), &dash))
	assert.Equal(t, 2, dash.Overall.TotalMembers)
	assert.Equal(t, 3, dash.Overall.TotalWakeupSuccess)
	assert.Equal(t, 100, dash.Overall.OverallWakeupRate)
	assert.Equal(t, 5, dash.Overall.TotalScore)
	require.Len(t, dash.Ranking, 2)
	assert.Equal(t, "Kim", dash.Ranking[0].Name)
	assert.Equal(t, 4, dash.Ranking[0].Score)
	assert.Equal(t, 2, dash.Ranking[1].Rank)

	w := test.Call(t, r, http.MethodGet, "/api/stats/overview", f.token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func readRanking(t *testing.T, body []byte) [][]string {
	x, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer x.Close()
	rows, err := x.GetRows(rankSheet)
	require.NoError(t, err)
	return rows
}

func TestExportDownload(t *testing.T) {
	f := seed(t)
	r := f.router(nil)

	w := test.Call(t, r, http.MethodGet, "/api/stats/rank/export?month=2024-05", test.AdminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ranking-2024-05.xlsx")

	rows := readRanking(t, w.Body.Bytes())
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"排名", "姓名", "分数"}, rows[0])
	assert.Equal(t, []string{"1", "Kim", "4"}, rows[1])
	assert.Equal(t, []string{"2", "Lee", "1"}, rows[2])
}

func TestExportToArchive(t *testing.T) {
	f := seed(t)
	a := &memoryArchive{}
	r := f.router(a)

	var obj archive.Object
	test.NoError(t, test.Decode(t, test.Call(t, r, http.MethodGet, "/api/stats/rank/export?month=2024-05", test.AdminToken(t), nil), &obj))
	assert.Equal(t, "exports/ranking-2024-05.xlsx", obj.Key)
	assert.Equal(t, "ranking-2024-05.xlsx", a.filename)
	assert.Equal(t, xlsxType, a.contentType)
	assert.Len(t, readRanking(t, a.body), 3)
}
