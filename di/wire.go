//go:build wireinject
// +build wireinject

package di

import (
	"sportshub/config"
	"sportshub/infras/jwt"
	"sportshub/infras/kafka"
	"sportshub/infras/mail"
	"sportshub/infras/mongo"
	"sportshub/infras/otel"
	"sportshub/infras/postgres"
	"sportshub/infras/redis"
	"sportshub/infras/s3"
	"sportshub/permissions"
	"sportshub/shared/cache"
	"sportshub/transport/http"
	"sportshub/transport/http/middleware"
	"sportshub/transport/http/router"

	authService "sportshub/internal/domains/auth/service"
	bookingRepository "sportshub/internal/domains/booking/repository"
	bookingService "sportshub/internal/domains/booking/service"
	coachService "sportshub/internal/domains/coach/service"
	contactRepository "sportshub/internal/domains/contact/repository"
	contactService "sportshub/internal/domains/contact/service"
	scheduleRepository "sportshub/internal/domains/schedule/repository"
	scheduleService "sportshub/internal/domains/schedule/service"
	sportRepository "sportshub/internal/domains/sport/repository"
	sportService "sportshub/internal/domains/sport/service"
	statsService "sportshub/internal/domains/stats/service"
	teamRepository "sportshub/internal/domains/team/repository"
	teamService "sportshub/internal/domains/team/service"
	userRepository "sportshub/internal/domains/user/repository"
	userService "sportshub/internal/domains/user/service"
	venueRepository "sportshub/internal/domains/venue/repository"
	venueService "sportshub/internal/domains/venue/service"

	authHandler "sportshub/internal/handlers/auth"
	bookingHandler "sportshub/internal/handlers/booking"
	coachHandler "sportshub/internal/handlers/coach"
	contactHandler "sportshub/internal/handlers/contact"
	scheduleHandler "sportshub/internal/handlers/schedule"
	sportHandler "sportshub/internal/handlers/sport"
	statsHandler "sportshub/internal/handlers/stats"
	teamHandler "sportshub/internal/handlers/team"
	userHandler "sportshub/internal/handlers/user"
	venueHandler "sportshub/internal/handlers/venue"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	mongo.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	mail.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var sportDomain = wire.NewSet(
	sportRepository.New,
	sportService.New,
)

var venueDomain = wire.NewSet(
	venueRepository.New,
	venueService.New,
)

var scheduleDomain = wire.NewSet(
	bookingRepository.New,
	scheduleRepository.New,
	ProvideConflictChecker,
	bookingService.New,
	scheduleService.New,
)

var teamDomain = wire.NewSet(
	teamRepository.New,
	teamRepository.NewMember,
	teamService.New,
)

var coachDomain = wire.NewSet(
	coachService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var postDomain = wire.NewSet(
	ProvideNewsRepository,
	ProvideAnnouncementRepository,
	ProvideNewsService,
	ProvideAnnouncementService,
)

var statsDomain = wire.NewSet(
	ProvideStatsSources,
	statsService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	sportDomain,
	venueDomain,
	scheduleDomain,
	teamDomain,
	coachDomain,
	contactDomain,
	postDomain,
	statsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	sportHandler.New,
	venueHandler.New,
	bookingHandler.New,
	scheduleHandler.New,
	teamHandler.New,
	coachHandler.New,
	contactHandler.New,
	ProvideNewsHandler,
	ProvideAnnouncementHandler,
	statsHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeNotifier() *Notifier {
	wire.Build(
		config.Get,
		otel.New,
		kafka.New,
		ProvideRelaySender,
		wire.Struct(new(Notifier), "*"),
	)

	return &Notifier{}
}
