package di

import (
	"sportshub/config"
	"sportshub/infras/kafka"
	"sportshub/infras/mail"
	"sportshub/infras/mongo"
	"sportshub/infras/otel"
	"sportshub/infras/postgres"
	"sportshub/infras/s3"
	bookingRepository "sportshub/internal/domains/booking/repository"
	"sportshub/internal/domains/conflict"
	postModel "sportshub/internal/domains/post/model"
	postRepository "sportshub/internal/domains/post/repository"
	postService "sportshub/internal/domains/post/service"
	scheduleRepository "sportshub/internal/domains/schedule/repository"
	sportRepository "sportshub/internal/domains/sport/repository"
	statsService "sportshub/internal/domains/stats/service"
	teamRepository "sportshub/internal/domains/team/repository"
	userRepository "sportshub/internal/domains/user/repository"
	postHandler "sportshub/internal/handlers/post"
	"sportshub/shared/cache"
)

// News and announcements share one implementation; these types keep the two feeds apart in the graph.
type (
	NewsRepository         postRepository.Post
	AnnouncementRepository postRepository.Post
	NewsService            postService.Post
	AnnouncementService    postService.Post
)

func ProvideConflictChecker(
	transactor postgres.Transactor,
	otl otel.Otel,
	bookings bookingRepository.Booking,
	schedules scheduleRepository.Schedule,
) conflict.Checker {
	return conflict.NewChecker(transactor, otl, bookings, schedules)
}

func ProvideNewsRepository(conn *mongo.Connection, otl otel.Otel) NewsRepository {
	return postRepository.New(conn, postModel.KindNews, otl)
}

func ProvideAnnouncementRepository(conn *mongo.Connection, otl otel.Otel) AnnouncementRepository {
	return postRepository.New(conn, postModel.KindAnnouncement, otl)
}

func ProvideNewsService(repo NewsRepository, storage s3.Storage, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel) NewsService {
	return postService.New(postModel.KindNews, repo, storage, cfg, redisCache, otl)
}

func ProvideAnnouncementService(
	repo AnnouncementRepository,
	storage s3.Storage,
	cfg *config.Config,
	redisCache cache.RedisCache,
	otl otel.Otel,
) AnnouncementService {
	return postService.New(postModel.KindAnnouncement, repo, storage, cfg, redisCache, otl)
}

func ProvideNewsHandler(svc NewsService, otl otel.Otel) postHandler.News {
	return postHandler.News{Handler: postHandler.New(postHandler.PathNews, svc, otl)}
}

func ProvideAnnouncementHandler(svc AnnouncementService, otl otel.Otel) postHandler.Announcements {
	return postHandler.Announcements{Handler: postHandler.New(postHandler.PathAnnouncements, svc, otl)}
}

func ProvideStatsSources(
	news NewsRepository,
	announcements AnnouncementRepository,
	users userRepository.User,
	bookings bookingRepository.Booking,
	schedules scheduleRepository.Schedule,
	sports sportRepository.Sport,
	teams teamRepository.Team,
) statsService.Sources {
	return statsService.Sources{
		News:          news,
		Announcements: announcements,
		Users:         users,
		Bookings:      bookings,
		Schedules:     schedules,
		Sports:        sports,
		Teams:         teams,
	}
}

// ProvideRelaySender is the sender the notifier delivers with. It never publishes back to Kafka.
func ProvideRelaySender(cfg *config.Config, otl otel.Otel) mail.Sender {
	if cfg.Mail.Resend.APIKey == "" {
		return mail.NewNoopSender()
	}

	return mail.NewResendSender(cfg.Mail.Resend.APIKey, cfg.Mail.From, otl)
}

// Notifier consumes queued emails and hands them to the relay sender.
type Notifier struct {
	Config *config.Config
	Client kafka.Client
	Sender mail.Sender
	Otel   otel.Otel
}

// Relay wraps the sender in a consumer handler for the mail topic.
func (n *Notifier) Relay() kafka.Handler {
	return mail.Relay(n.Sender)
}
