package router

import (
	"sportshub/internal/handlers/auth"
	"sportshub/internal/handlers/booking"
	"sportshub/internal/handlers/coach"
	"sportshub/internal/handlers/contact"
	"sportshub/internal/handlers/post"
	"sportshub/internal/handlers/schedule"
	"sportshub/internal/handlers/sport"
	"sportshub/internal/handlers/stats"
	"sportshub/internal/handlers/team"
	"sportshub/internal/handlers/user"
	"sportshub/internal/handlers/venue"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth          auth.Handler
	User          user.Handler
	Sport         sport.Handler
	Venue         venue.Handler
	Booking       booking.Handler
	Schedule      schedule.Handler
	Team          team.Handler
	Coach         coach.Handler
	Contact       contact.Handler
	News          post.News
	Announcements post.Announcements
	Stats         stats.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Sport.Router(routerGroup)
		r.DomainHandlers.Venue.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
		r.DomainHandlers.Team.Router(routerGroup)
		r.DomainHandlers.Coach.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.News.Router(routerGroup)
		r.DomainHandlers.Announcements.Router(routerGroup)
		r.DomainHandlers.Stats.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
