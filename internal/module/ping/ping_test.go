package ping

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wakeup-punch-system/config"
	"wakeup-punch-system/internal/service"
	"wakeup-punch-system/internal/store"
	"wakeup-punch-system/test"
)

func TestPing(t *testing.T) {
	test.UseConfig(t, &config.Config{})
	svc := service.New(store.NewMemory(), service.WithClock(func() time.Time {
		return time.Date(2024, 5, 1, 2, 0, 0, 0, time.UTC)
	}))
	r := test.Router(&ModulePing{Service: svc})

	var out struct {
		Message    string `json:"message"`
		Today      string `json:"today"`
		WakeupOpen bool   `json:"wakeup_open"`
	}
	test.NoError(t, test.Decode(t, test.Call(t, r, http.MethodGet, "/api/ping", "", nil), &out))
	assert.Equal(t, "pong", out.Message)
	assert.Equal(t, "2024-05-01", out.Today)
	assert.True(t, out.WakeupOpen)
}
