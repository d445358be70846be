package giftoutfit

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	// swagger-описание API
	_ "github.com/magabrotheeeer/giftoutfit/docs"
	"github.com/magabrotheeeer/giftoutfit/internal/config"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/album/cellpin"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/album/cellswap"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/album/cellupdate"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/album/gridcreate"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/album/gridlist"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/album/gridremove"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/album/pinned"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/album/rowadd"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/catalog/backdrops"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/catalog/giftmodels"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/catalog/gifts"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/catalog/patterns"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/catalog/prefetch"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/constructor/options"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/constructor/resolve"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/constructor/selectattr"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/health"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/payment/invoice"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/payment/invoiceclosed"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/profile/bio"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/profile/deeplink"
	profileread "github.com/magabrotheeeer/giftoutfit/internal/http/handlers/profile/read"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/profile/share"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/profile/view"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/subscription/my"
	"github.com/magabrotheeeer/giftoutfit/internal/http/handlers/subscription/plans"
	"github.com/magabrotheeeer/giftoutfit/internal/http/middlewarectx"
	"github.com/magabrotheeeer/giftoutfit/internal/metrics"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, svc *Services) {
	// Глобальные middleware
	r.Use(middleware.RequestID)
	if cfg.TrustProxy {
		// Адрес клиента берётся из заголовков прокси, иначе из соединения.
		r.Use(middleware.RealIP)
	}
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		metrics.InstrumentHandler,
	)

	limit := middlewarectx.RateLimitMiddleware(logger, cfg.RPS, cfg.Burst)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/health", health.New().ServeHTTP)

		// Группа с проверкой данных запуска Telegram
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.TelegramAuth(cfg.BotToken, cfg.InitDataTTL, logger))
			r.Use(limit)

			r.Get("/users/{userID}/grids", gridlist.New(logger, svc.Album).ServeHTTP)
			r.Post("/me/grids", gridcreate.New(logger, svc.Album).ServeHTTP)
			r.Delete("/me/grids/{gridID}", gridremove.New(logger, svc.Album).ServeHTTP)
			r.Post("/grids/{gridID}/rows", rowadd.New(logger, svc.Album).ServeHTTP)
			r.Put("/grids/{gridID}/rows/{row}/cells/{cell}", cellupdate.New(logger, svc.Album).ServeHTTP)
			r.Post("/grids/{gridID}/cells/swap", cellswap.New(logger, svc.Album).ServeHTTP)
			r.Post("/grids/{gridID}/cells/{row}/{cell}/pin", cellpin.New(logger, svc.Album).ServeHTTP)
			r.Get("/users/{userID}/pinned", pinned.New(logger, svc.Album, svc.URLs).ServeHTTP)

			r.Get("/users/{userID}", profileread.New(logger, svc.Profile).ServeHTTP)
			r.Post("/users/{userID}/views", view.New(logger, svc.Profile).ServeHTTP)
			r.Put("/me/bio", bio.New(logger, svc.Profile).ServeHTTP)
			r.Get("/me/share", share.New(logger, svc.Profile).ServeHTTP)
			r.Get("/deeplink", deeplink.New(logger, svc.Profile).ServeHTTP)

			r.Get("/me/subscription", my.New(logger, svc.Subscription).ServeHTTP)
			r.Get("/subscriptions/plans", plans.New(logger, svc.Subscription).ServeHTTP)
			r.Post("/payments/stars/invoice", invoice.New(logger, svc.Subscription).ServeHTTP)
			r.Post("/payments/stars/invoice/closed", invoiceclosed.New(logger, svc.Subscription).ServeHTTP)

			r.Get("/constructor/options", options.New(logger, svc.Constructor).ServeHTTP)
			r.Post("/constructor/select", selectattr.New(logger).ServeHTTP)
			r.Post("/constructor/resolve", resolve.New(logger, svc.Constructor, svc.URLs).ServeHTTP)

			r.Get("/catalog/gifts", gifts.New(logger, svc.Catalog).ServeHTTP)
			r.Get("/catalog/backdrops", backdrops.New(logger, svc.Catalog).ServeHTTP)
			r.Get("/catalog/models/{name}", giftmodels.New(logger, svc.Catalog).ServeHTTP)
			r.Get("/catalog/patterns/{name}", patterns.New(logger, svc.Catalog).ServeHTTP)
			r.Post("/catalog/prefetch", prefetch.New(logger, svc.Catalog).ServeHTTP)
		})
	})

	// Изображения грузятся тегами <img> без заголовков, поэтому прокси открыт
	// и ограничивается по IP.
	r.With(limit).Get("/proxy/image/", svc.ImageProxy.ServeHTTP)

	r.Handle("/metrics", metrics.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
