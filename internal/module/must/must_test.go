package must

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakeup-punch-system/config"
	"wakeup-punch-system/internal/global/response"
	"wakeup-punch-system/internal/global/session"
	"wakeup-punch-system/internal/model"
	"wakeup-punch-system/internal/service"
	"wakeup-punch-system/internal/store"
	"wakeup-punch-system/test"
)

func setup(t *testing.T, now *time.Time) (*gin.Engine, string) {
	test.UseConfig(t, &config.Config{})
	svc := service.New(store.NewMemory(), service.WithClock(func() time.Time { return *now }))
	m, err := svc.AddMember(context.Background(), "Kim")
	require.NoError(t, err)
	r := test.Router(&ModuleMust{Service: svc, Revoker: session.NewMemoryRevoker()})
	return r, test.Token(t, session.Session{MemberID: m.ID, Name: m.Name, MemberCode: m.MemberCode})
}

func TestSaveOverwritesAndRollsToYesterday(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	r, token := setup(t, &now)

	var record model.MustRecord
	test.NoError(t, test.Decode(t, test.Call(t, r, http.MethodPost, "/api/must/save", token, gin.H{"content": "first"}), &record))
	var again model.MustRecord
	test.NoError(t, test.Decode(t, test.Call(t, r, http.MethodPost, "/api/must/save", token, gin.H{"content": "second"}), &again))
	assert.Equal(t, record.ID, again.ID)
	assert.Equal(t, "second", again.Content)

	now = now.AddDate(0, 0, 1)
	var overview service.MustOverview
	test.NoError(t, test.Decode(t, test.Call(t, r, http.MethodGet, "/api/must/today", token, nil), &overview))
	assert.Equal(t, "2024-05-02", overview.Date)
	assert.Nil(t, overview.Today)
	require.NotNil(t, overview.Yesterday)
	assert.Equal(t, "second", overview.Yesterday.Content)
}

func TestSaveValidation(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	r, token := setup(t, &now)

	resp := test.Decode(t, test.Call(t, r, http.MethodPost, "/api/must/save", token, gin.H{"content": "  "}), nil)
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)

	resp = test.Decode(t, test.Call(t, r, http.MethodPost, "/api/must/save", token,
		gin.H{"content": strings.Repeat("가", 2001)}), nil)
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestAdminDelete(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	r, token := setup(t, &now)

	var record model.MustRecord
	test.NoError(t, test.Decode(t, test.Call(t, r, http.MethodPost, "/api/must/save", token, gin.H{"content": "x"}), &record))

	w := test.Call(t, r, http.MethodDelete, "/api/must/"+record.ID, token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	test.NoError(t, test.Decode(t, test.Call(t, r, http.MethodDelete, "/api/must/"+record.ID, test.AdminToken(t), nil), nil))

	var overview service.MustOverview
	test.NoError(t, test.Decode(t, test.Call(t, r, http.MethodGet, "/api/must/today", token, nil), &overview))
	assert.Nil(t, overview.Today)
}

func TestSaveRejectsDeletedMember(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	r, _ := setup(t, &now)
	stale := test.Token(t, session.Session{MemberID: "deleted-member", Name: "Gone", MemberCode: "GONE00"})

	w := test.Call(t, r, http.MethodPost, "/api/must/save", stale, gin.H{"content": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	test.ErrorEqual(t, response.ErrTokenInvalid, test.Decode(t, w, nil))
}
