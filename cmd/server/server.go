package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"wakeup-punch-system/config"
	"wakeup-punch-system/internal/global/archive"
	"wakeup-punch-system/internal/global/database"
	"wakeup-punch-system/internal/global/logger"
	"wakeup-punch-system/internal/global/middleware"
	"wakeup-punch-system/internal/global/sentry"
	"wakeup-punch-system/internal/global/session"
	"wakeup-punch-system/internal/module"
	"wakeup-punch-system/internal/service"
	"wakeup-punch-system/internal/store"
	"wakeup-punch-system/tools"
)

var (
	log       *slog.Logger
	modules   []module.Module
	scheduler *cron.Cron
)

func Init() {
	config.Init()
	cfg := config.Get()
	log = logger.New("Server")

	if err := sentry.Init(); err != nil {
		log.Error("Sentry 初始化失败", "error", err)
	}

	st, err := store.Open(cfg)
	tools.PanicOnErr(err)
	svc, err := service.NewFromConfig(st, cfg.Habit)
	tools.PanicOnErr(err)

	deps := module.Deps{
		Service: svc,
		Revoker: newRevoker(cfg.Redis),
		Limiter: middleware.NewIPRateLimiter(cfg.RateLimit),
	}

	s3, err := archive.New(context.Background(), cfg.S3)
	switch {
	case err != nil:
		log.Error("S3 初始化失败，导出改为直接下载", "error", err)
	case s3 != nil:
		deps.Archive = s3
	}

	scheduler = newScheduler(svc, cfg.Habit.PurgeSpec)

	modules = module.Modules(deps)
	for _, m := range modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

// newRevoker Redis 不可用时退回进程内存，多实例部署下登出只在本实例生效
func newRevoker(c config.Redis) session.Revoker {
	client, err := database.OpenRedis(context.Background(), c)
	if err != nil {
		log.Error("连接 Redis 失败，会话吊销列表使用内存", "error", err)
		return session.NewMemoryRevoker()
	}
	if client == nil {
		log.Warn("Redis 未配置，会话吊销列表使用内存")
		return session.NewMemoryRevoker()
	}
	return session.NewRedisRevoker(client)
}

// newScheduler 定时清理过期的手机登录码
func newScheduler(svc *service.Service, spec string) *cron.Cron {
	if spec == "" {
		return nil
	}
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := svc.PurgeExpiredLoginCodes(ctx); err != nil {
			log.Error("清理过期登录码失败", "error", err)
			sentry.CaptureMessage("purge expired login codes failed: " + err.Error())
		}
	})
	if err != nil {
		log.Error("无效的清理任务表达式", "spec", spec, "error", err)
		return nil
	}
	return c
}

func Run() {
	cfg := config.Get()
	gin.SetMode(string(cfg.Mode))
	r := gin.New()

	switch cfg.Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(sentry.Middleware())
	r.Use(middleware.SentryEnrichIP())
	r.Use(middleware.Cors(cfg.Cors))
	r.Use(middleware.Recovery())

	for _, m := range modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + cfg.Prefix))
	}

	if scheduler != nil {
		scheduler.Start()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: cfg.Host + ":" + cfg.Port, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("服务启动失败", "error", err)
			stop()
		}
	}()
	log.Info("服务已启动", "addr", srv.Addr)

	<-ctx.Done()
	log.Info("正在关闭服务")
	shutdown(srv)
}

func shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("关闭 HTTP 服务失败", "error", err)
	}
	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	if database.Redis != nil {
		_ = database.Redis.Close()
	}
	sentry.Flush(2 * time.Second)
}
