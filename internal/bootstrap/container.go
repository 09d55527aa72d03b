package bootstrap

import (
	"time"

	"studiq-be/internal/config"
	"studiq-be/internal/constant"
	"studiq-be/internal/controller"
	"studiq-be/internal/pkg/logger"
	"studiq-be/internal/pkg/mailer"
	"studiq-be/internal/repository/unitofwork"
	"studiq-be/internal/service"
	"studiq-be/pkg/events"
	"studiq-be/pkg/genai"
	"studiq-be/pkg/speech"
	"studiq-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

// Container holds every wired dependency of the application. Construction
// order matters: infrastructure first, then services, then controllers.
type Container struct {
	Logger logger.ILogger

	AuthController    controller.IAuthController
	ProfileController controller.IProfileController
	TutorController   controller.ITutorController
	TeacherController controller.ITeacherController
	AdminController   controller.IAdminController

	AuditService   service.IAuditService
	CleanupService service.ICleanupService

	// Exposed for the healthcheck endpoint
	Sessions    *store.SessionStore
	Generator   genai.Generator
	Synthesizer speech.Synthesizer
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// --- Infrastructure ---
	isProd := cfg.App.Environment == "production"
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, isProd)

	// Cleanup runs hourly and would drown the main log; it gets its own file.
	cleanupLogger := logger.NewIsolatedLogger("logs/cleanup.log")

	uowFactory := unitofwork.NewRepositoryFactory(db)

	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
	eventPublisher := events.NewPublisher(pubSub, constant.AuditTopic)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)

	sessions := store.NewSessionStore()
	documents := store.NewDocumentStore()

	generator := genai.NewGeminiClient(cfg.Keys.GoogleGemini, cfg.Tutor.GeminiModel)
	synthesizer := speech.NewGoogleSynthesizer(cfg.Tutor.AudioDir, cfg.Tutor.TTSLanguage, cfg.Tutor.TTSEnabled)

	// --- Services ---
	authService := service.NewAuthService(uowFactory, emailService, eventPublisher, sessions)
	profileService := service.NewProfileService(uowFactory, sessions)
	tutorService := service.NewTutorService(uowFactory, sessions, documents, generator, synthesizer, eventPublisher, sysLogger)
	teacherService := service.NewTeacherService(uowFactory)
	adminService := service.NewAdminService(uowFactory, sessions, sysLogger)
	auditService := service.NewAuditService(pubSub, constant.AuditTopic, uowFactory, sysLogger)
	cleanupService := service.NewCleanupService(sessions, documents, eventPublisher, cleanupLogger, cfg.Tutor.AudioDir, time.Hour)

	// --- Controllers ---
	return &Container{
		Logger: sysLogger,

		AuthController:    controller.NewAuthController(authService),
		ProfileController: controller.NewProfileController(profileService),
		TutorController:   controller.NewTutorController(tutorService, cfg.Tutor.UploadDir),
		TeacherController: controller.NewTeacherController(teacherService),
		AdminController:   controller.NewAdminController(adminService),

		AuditService:   auditService,
		CleanupService: cleanupService,

		Sessions:    sessions,
		Generator:   generator,
		Synthesizer: synthesizer,
	}
}
