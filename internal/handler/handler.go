package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/config"
	"github.com/careshift-dev/roster-manager/backend/internal/domain"
	"github.com/careshift-dev/roster-manager/backend/internal/repository"
	"github.com/careshift-dev/roster-manager/backend/internal/roster"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  repository.Repository
	resolver    *roster.Resolver
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		resolver:    roster.NewResolver(time.Weekday(cfg.Roster.ClosureWeekday)),
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

// publishMailMessage 把邮件消息发到消息队列，由 cmd/mail 进程消费并发送
func (h *Handler) publishMailMessage(message domain.MailMessage) error {
	mailData, err := json.Marshal(message)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	)
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
			r.Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).Delete("/", h.DeleteUser)
			})
		})

		// 班次类别目录是固定的，只读
		r.Get("/shift-types", h.GetShiftTypes)

		r.Route("/staff", func(r chi.Router) {
			r.Get("/", h.ListStaff)
			r.Post("/", h.CreateStaff)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.staffRecord)
				r.Patch("/", h.UpdateStaff)
				r.Delete("/", h.DeleteStaff)
			})
		})

		r.Route("/task-types", func(r chi.Router) {
			r.Get("/", h.ListTaskTypes)
			r.Post("/", h.CreateTaskType)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.taskTypeRecord)
				r.Patch("/", h.UpdateTaskType)
				r.Delete("/", h.DeleteTaskType)
			})
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.ListShifts)
			r.Put("/", h.UpsertShift)
		})

		r.Route("/requests", func(r chi.Router) {
			r.Get("/", h.ListRequests)
			r.Post("/", h.CreateRequest)
			r.Delete("/{id}", h.DeleteRequest)
		})

		r.Route("/assignments", func(r chi.Router) {
			r.Get("/", h.ListAssignments)
			r.Post("/", h.PlaceAssignment)
			r.Post("/remove-at-click", h.RemoveAssignmentAtClick)
			r.Post("/copy", h.CopyAssignments)
			r.Post("/paste", h.PasteAssignments)
			r.Delete("/", h.ClearAssignmentsByDate)
			r.Delete("/{id}", h.DeleteAssignment)
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/gantt", h.GetGantt)
			r.Get("/daily-counts", h.GetDailyCounts)
			r.Get("/monthly-counts", h.GetMonthlyCounts)
		})

		r.Route("/sync", func(r chi.Router) {
			r.Use(h.requireSyncKey)
			r.Get("/export", h.ExportSnapshot)
			r.Put("/import", h.ImportSnapshot)
		})
	})
}
