package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/collection"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/config"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/http/handlers/admin"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/http/middleware"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/notify"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/records"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/storage"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/upstream"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/verification"
	"github.com/Amanpatel30/Fresh-Connect-sub000/pkg/view"
)

func NewRouter(cfg config.Config, logger *slog.Logger, db *gorm.DB) *gin.Engine {
	client := upstream.NewClient(cfg.Upstream, logger)
	sink := &notify.Log{Logger: logger}
	events := verification.NewEventLog(db, logger)

	var backup storage.Storage
	if fr, err := storage.FromConfig(context.Background(), cfg.Storage); err != nil {
		logger.Warn("snapshot storage disabled", "err", err)
	} else {
		backup = fr.Storage
		logger.Info("snapshot storage ready", "driver", fr.Driver)
	}

	builders := map[records.Kind]admin.ViewBuilder{
		records.KindSeller:    func(r records.Record) any { return view.SellerItem(r) },
		records.KindHotel:     func(r records.Record) any { return view.HotelItem(r) },
		records.KindComplaint: func(r records.Record) any { return view.ComplaintItem(r) },
		records.KindPayment:   func(r records.Record) any { return view.PaymentItem(r) },
		records.KindReport:    func(r records.Record) any { return view.ReportItem(r) },
	}

	resources := map[records.Kind]*admin.Resource{}
	for _, kind := range records.Kinds() {
		spec, _ := records.SpecFor(kind)
		store := collection.New(spec, client, backup, sink, logger)
		wf := verification.New(spec, store, client, events, sink, logger, cfg.Upstream.FanoutLimit)
		resources[kind] = &admin.Resource{
			Spec:     spec,
			Store:    store,
			Workflow: wf,
			Events:   events,
			Build:    builders[kind],
			Logger:   logger,
		}
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	// ErrorHandler sits outside Recovery so a recovered panic still drains
	// through it as a JSON 500.
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.Recovery(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api := r.Group("/api/admin", middleware.RequireAdmin(cfg.AdminToken))

	mount := func(path string, res *admin.Resource) *gin.RouterGroup {
		g := api.Group(path)
		g.GET("", res.List)
		g.POST("/refresh", res.Refresh)
		g.POST("/bulk", res.Bulk)
		g.POST("/:id/action", res.Action)
		g.GET("/:id/events", res.EventLog)
		return g
	}

	mount("/sellers", resources[records.KindSeller])
	mount("/hotels", resources[records.KindHotel])
	mount("/complaints", resources[records.KindComplaint])
	mount("/payments", resources[records.KindPayment])

	reports := &admin.ReportsHandler{Resource: *resources[records.KindReport], Client: client}
	rg := mount("/reports", &reports.Resource)
	rg.GET("/summary", reports.Summary)

	return r
}
