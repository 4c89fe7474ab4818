package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Msahu05/smart-campus-comms/config"
	"github.com/Msahu05/smart-campus-comms/internal/api/handler"
	"github.com/Msahu05/smart-campus-comms/internal/api/middleware"
	"github.com/Msahu05/smart-campus-comms/internal/model"
	"github.com/Msahu05/smart-campus-comms/internal/repository"
	"github.com/Msahu05/smart-campus-comms/pkg/jwt"
	"github.com/Msahu05/smart-campus-comms/pkg/redis"
)

// 请求体上限，防止超大 payload 拖垮服务
const maxBodyBytes = 1 << 20 // 1 MiB

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, repo *repository.Repository, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// 接口变量单独赋值：空指针直接塞进接口会得到非 nil 接口值
	var blacklist middleware.TokenBlacklist
	if rdb != nil {
		blacklist = rdb
	}

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 / 指标 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，登录接口限流）
		auth := v1.Group("/auth")
		auth.Use(middleware.LoginRateLimit(rdb, cfg.Auth.LoginRateLimitPerMin))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, blacklist))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 个人资料（所有角色共用）
			authorized.GET("/profiles/me", h.Profile.GetMine)
			authorized.PUT("/profiles/me", h.Profile.UpdateMine)

			// ── 学生侧 ──
			student := authorized.Group("/student")
			student.Use(middleware.RoleGuard(model.RoleStudent, repo.UserRole, blacklist, logger))
			{
				student.POST("/queries", h.Query.Ask)
				student.GET("/queries", h.Query.ListMine)
				student.GET("/professors", h.Profile.ListProfessors)
				student.GET("/professors/:id/office-hours", h.OfficeHours.AvailableSlots)
				student.POST("/appointments", h.Appointment.Book)
				student.GET("/appointments", h.Appointment.ListMine)
				student.GET("/appointments/calendar.ics", h.Export.AppointmentsCalendar)
				student.POST("/assistant/messages", h.Assistant.Send)
				student.GET("/assistant/messages", h.Assistant.History)
			}

			// ── 教授侧 ──
			professor := authorized.Group("/professor")
			professor.Use(middleware.RoleGuard(model.RoleProfessor, repo.UserRole, blacklist, logger))
			{
				professor.GET("/queries", h.Query.Inbox)
				professor.GET("/students", h.Profile.ListStudents)
				professor.PUT("/queries/:id/response", h.Query.Respond)
				professor.POST("/office-hours", h.OfficeHours.Create)
				professor.GET("/office-hours", h.OfficeHours.ListMine)
				professor.DELETE("/office-hours/:id", h.OfficeHours.Delete)
				professor.GET("/office-hours/calendar.ics", h.Export.OfficeHoursCalendar)
				professor.GET("/appointments", h.Appointment.ListForProfessor)
				professor.GET("/appointments/pending", h.Appointment.ListPending)
				professor.PUT("/appointments/:id/approve", h.Appointment.Approve)
				professor.PUT("/appointments/:id/reject", h.Appointment.Reject)
				professor.GET("/stats", h.Analytics.Engagement)
				professor.GET("/suggestions", h.Assistant.Suggestions)
			}

			// ── 系主任侧 ──
			hod := authorized.Group("/hod")
			hod.Use(middleware.RoleGuard(model.RoleHod, repo.UserRole, blacklist, logger))
			{
				hod.GET("/analytics", h.Analytics.Overview)
				hod.GET("/reputation", h.Analytics.Reputation)
				hod.GET("/users", h.User.List)
				hod.DELETE("/users/:id", h.User.Delete)
				hod.POST("/registration-keys", h.Key.Generate)
				hod.GET("/registration-keys", h.Key.List)
				hod.GET("/insights", h.Assistant.Insights)
				hod.GET("/settings", h.SystemSettings.Get)
				hod.PUT("/settings", h.SystemSettings.Update)
				hod.GET("/details/:kind", h.Detail.View)
				hod.GET("/export/analytics", h.Export.Analytics)
			}
		}
	}

	return r
}
