package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alanfo18/stcd/internal/audit"
	"github.com/alanfo18/stcd/internal/auth"
	"github.com/alanfo18/stcd/internal/config"
	"github.com/alanfo18/stcd/internal/domain/booking"
	"github.com/alanfo18/stcd/internal/domain/notification"
	"github.com/alanfo18/stcd/internal/domain/payment"
	"github.com/alanfo18/stcd/internal/domain/rating"
	"github.com/alanfo18/stcd/internal/domain/receipt"
	"github.com/alanfo18/stcd/internal/domain/report"
	"github.com/alanfo18/stcd/internal/domain/staff"
	"github.com/alanfo18/stcd/internal/domain/user"
	"github.com/alanfo18/stcd/internal/gateway"
	"github.com/alanfo18/stcd/internal/handlers"
	"github.com/alanfo18/stcd/internal/middleware"
	"github.com/alanfo18/stcd/internal/notify"
	"github.com/alanfo18/stcd/internal/ratelimit"
	"github.com/alanfo18/stcd/internal/session"
	"github.com/alanfo18/stcd/internal/storage"
	ucBooking "github.com/alanfo18/stcd/internal/usecase/booking"
	ucPayment "github.com/alanfo18/stcd/internal/usecase/payment"
	ucRating "github.com/alanfo18/stcd/internal/usecase/rating"
	ucReceipt "github.com/alanfo18/stcd/internal/usecase/receipt"
	ucReport "github.com/alanfo18/stcd/internal/usecase/report"
	ucStaff "github.com/alanfo18/stcd/internal/usecase/staff"
	ucUser "github.com/alanfo18/stcd/internal/usecase/user"
	"github.com/alanfo18/stcd/internal/validators"
	"github.com/alanfo18/stcd/internal/whatsapp"
)

// Store é tudo que a API precisa do banco: GormStore ou NoopStore.
type Store interface {
	booking.Repository
	payment.Repository
	staff.Repository
	rating.Repository
	receipt.Repository
	user.Repository
	notification.Repository
	notification.MessageLogRepository
	report.Repository
	audit.Store
	audit.Reader
}

// Deps são os adaptadores externos montados no main.
type Deps struct {
	Store    Store
	Audit    audit.Sink
	Sender   whatsapp.Sender
	Uploader storage.Uploader
	Gateway  gateway.Lookup
	Revoker  session.Revoker
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.AllowOrigins))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	store := deps.Store
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)
	loginLimiter := ratelimit.New(cfg.LoginRate.RequestsPerSecond, cfg.LoginRate.Burst)
	ipLimiter := ratelimit.New(cfg.LoginRate.RequestsPerSecond*4, cfg.LoginRate.Burst*4)

	notifier := notify.New(deps.Sender, store, store, cfg.WhatsApp, cfg.Timezone)

	// ======================================================
	// USE CASES
	// ======================================================
	authUC := ucUser.NewAuth(store, issuer, deps.Revoker, deps.Audit, loginLimiter, notifier.SuspiciousAccess)
	if cfg.EmailDomainCheck {
		authUC.CheckEmailDomain = validators.EmailDomainResolves
	}
	usersUC := ucUser.NewUsers(store, deps.Audit)

	staffSvc := ucStaff.NewService(store, deps.Audit, cfg.Timezone, notifier.StaffHooks())

	createBookingUC := ucBooking.NewCreateBooking(store, deps.Audit, cfg.Timezone, notifier.BookingHooks())
	updateBookingUC := ucBooking.NewUpdateBooking(store, deps.Audit, cfg.Timezone)
	completeBookingUC := ucBooking.NewCompleteBooking(store, deps.Audit)
	cancelBookingUC := ucBooking.NewCancelBooking(store, deps.Audit)
	listBookingsUC := ucBooking.NewListBookings(store)
	deleteBookingUC := ucBooking.NewDeleteBooking(store, deps.Audit)

	createPaymentUC := ucPayment.NewCreatePayment(
		store,
		deps.Audit,
		cfg.Timezone,
		cfg.PaymentNotifyRequirePaid,
		notifier.PaymentHooks(),
	)
	updatePaymentUC := ucPayment.NewUpdatePayment(store, deps.Audit, cfg.Timezone, notifier.PaidHooks())
	listPaymentsUC := ucPayment.NewListPayments(store)
	uploadProofUC := ucPayment.NewUploadProof(store, deps.Uploader, deps.Audit)
	reconcileUC := ucPayment.NewReconcilePayment(store, deps.Gateway, deps.Audit, notifier.PaidHooks())

	createRatingUC := ucRating.NewCreateRating(store, deps.Audit, notifier.RatingHooks())
	updateRatingUC := ucRating.NewUpdateRating(store, deps.Audit)
	listRatingsUC := ucRating.NewListRatings(store)

	issueReceiptUC := ucReceipt.NewIssueReceipt(store, deps.Audit, notifier.ReceiptHooks())
	receiptsUC := ucReceipt.NewReceipts(store, deps.Audit)

	summaryUC := ucReport.NewBuildSummary(store)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authUC)
	userHandler := handlers.NewUserHandler(usersUC)
	staffHandler := handlers.NewStaffHandler(staffSvc)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		completeBookingUC,
		cancelBookingUC,
		listBookingsUC,
		deleteBookingUC,
	)

	paymentHandler := handlers.NewPaymentHandler(
		createPaymentUC,
		updatePaymentUC,
		listPaymentsUC,
		uploadProofUC,
		reconcileUC,
	)

	ratingHandler := handlers.NewRatingHandler(createRatingUC, updateRatingUC, listRatingsUC)
	receiptHandler := handlers.NewReceiptHandler(issueReceiptUC, receiptsUC)
	reportHandler := handlers.NewReportHandler(summaryUC)
	notificationHandler := handlers.NewNotificationHandler(store, store)
	auditLogsHandler := handlers.NewAuditLogsHandler(store, cfg.Timezone)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO
		// ------------------------------
		authAPI := api.Group("/auth", middleware.IPRateLimit(ipLimiter))
		{
			authAPI.POST("/register", authHandler.Register)
			authAPI.POST("/login", authHandler.Login)
		}
		api.GET("/specialties", staffHandler.ListSpecialties)

		// ------------------------------
		// PRIVADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(issuer, deps.Revoker, store))
		{
			secured.GET("/me", userHandler.GetMe)
			secured.POST("/auth/logout", authHandler.Logout)

			secured.POST("/specialties", staffHandler.CreateSpecialty)

			// ------------------------------
			// STAFF
			// ------------------------------
			secured.GET("/staff", staffHandler.List)
			secured.POST("/staff", staffHandler.Create)
			secured.GET("/staff/:id", staffHandler.Get)
			secured.PATCH("/staff/:id", staffHandler.Update)
			secured.PATCH("/staff/:id/deactivate", staffHandler.Deactivate)
			secured.DELETE("/staff/:id", staffHandler.Delete)
			secured.GET("/staff/:id/specialties", staffHandler.ListStaffSpecialties)
			secured.PUT("/staff/:id/specialties/:specialtyId", staffHandler.LinkSpecialty)
			secured.DELETE("/staff/:id/specialties/:specialtyId", staffHandler.UnlinkSpecialty)
			secured.GET("/staff/:id/bookings", bookingHandler.ListForStaff)
			secured.GET("/staff/:id/payments", paymentHandler.ListForStaff)
			secured.GET("/staff/:id/ratings", ratingHandler.ListForStaff)
			secured.GET("/staff/:id/ratings/average", ratingHandler.Average)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id", bookingHandler.Update)
			secured.PATCH("/bookings/:id/complete", bookingHandler.Complete)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)

			// ------------------------------
			// PAYMENTS
			// ------------------------------
			secured.POST("/payments", paymentHandler.Create)
			secured.GET("/payments", paymentHandler.List)
			secured.POST("/payments/extract-amount", paymentHandler.ExtractAmount)
			secured.GET("/payments/:id", paymentHandler.Get)
			secured.PATCH("/payments/:id", paymentHandler.Update)
			secured.POST("/payments/:id/proofs", paymentHandler.UploadProof)
			secured.GET("/payments/:id/proofs", paymentHandler.ListProofs)
			secured.POST("/payments/:id/reconcile", paymentHandler.Reconcile)

			// ------------------------------
			// RATINGS / RECEIPTS / REPORTS
			// ------------------------------
			secured.POST("/ratings", ratingHandler.Create)
			secured.PATCH("/ratings/:id", ratingHandler.Update)

			secured.POST("/receipts", receiptHandler.Issue)
			secured.GET("/receipts", receiptHandler.List)
			secured.GET("/receipts/:id", receiptHandler.Get)
			secured.PATCH("/receipts/:id/sign", receiptHandler.Sign)

			secured.GET("/reports/summary", reportHandler.Summary)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/notifications", notificationHandler.List)
			secured.GET("/notifications/unread-count", notificationHandler.UnreadCount)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin", middleware.RequireAdmin())
			{
				admin.GET("/users", userHandler.List)
				admin.PATCH("/users/:id/role", userHandler.ChangeRole)
				admin.GET("/audit-logs", auditLogsHandler.List)
				admin.GET("/message-logs", notificationHandler.MessageLogs)
			}
		}
	}
}
