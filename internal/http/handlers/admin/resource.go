// Package admin exposes the console API: one Resource per collection, all
// sharing the same acquisition pipeline, view pipeline and verification
// workflow underneath.
package admin

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/collection"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/http/validation"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/listing"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/records"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/shared/apperr"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/upstream"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/verification"
	"github.com/Amanpatel30/Fresh-Connect-sub000/pkg/view"
)

// HeaderViewActive carries the frontend's activation gate: list requests from
// a mounted-but-offscreen view send "false" and get served without upstream
// I/O.
const HeaderViewActive = "X-View-Active"

type ViewBuilder func(records.Record) any

type Resource struct {
	Spec     records.KindSpec
	Store    *collection.Store
	Workflow *verification.Workflow
	Events   *verification.EventLog
	Build    ViewBuilder
	Logger   *slog.Logger
}

func (h *Resource) gate(c *gin.Context) upstream.Gate {
	active := !strings.EqualFold(c.GetHeader(HeaderViewActive), "false")
	return upstream.GateFunc(func() bool { return active })
}

// List serves one page of the collection. The canonical set is refreshed
// lazily (first hit, or refresh=1); the view pipeline always recomputes from
// the current canonical state.
func (h *Resource) List(c *gin.Context) {
	ctx := c.Request.Context()

	if h.Store.Len() == 0 || c.Query("refresh") == "1" {
		if _, err := h.Store.Refresh(ctx, h.gate(c)); err != nil {
			// context cancelled: the view is gone, nothing to render
			c.Error(apperr.Wrap(err))
			return
		}
	}

	f, s, p := parseListQuery(c)
	res := listing.Apply(h.Spec, h.Store.Items(), f, s, p)

	items := make([]any, 0, len(res.Items))
	for _, rec := range res.Items {
		items = append(items, h.Build(rec))
	}

	c.JSON(http.StatusOK, view.ListPage{
		Items:      items,
		TotalCount: res.TotalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		Source:     string(h.Store.Source()),
	})
}

// Refresh forces a refetch regardless of cache state.
func (h *Resource) Refresh(c *gin.Context) {
	src, err := h.Store.Refresh(c.Request.Context(), h.gate(c))
	if err != nil {
		c.Error(apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"source": string(src), "count": h.Store.Len()})
}

type actionRequest struct {
	Action string `json:"action" binding:"required"`
	Note   string `json:"note"`
}

// Action runs a single verification transition.
func (h *Resource) Action(c *gin.Context) {
	id := c.Param("id")

	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Invalid action payload.", validation.FromBindError(err, &req)))
		return
	}

	err := h.Workflow.Transition(c.Request.Context(), verification.TransitionInput{
		ID:          id,
		ActorUserID: actor(c),
		Action:      req.Action,
		Note:        req.Note,
	})
	if err != nil {
		switch err {
		case verification.ErrInvalidTransition:
			c.Error(apperr.InvalidErr("Invalid status transition.", nil))
		case verification.ErrNotActionable:
			c.Error(apperr.NotFoundErr("Record not found."))
		default:
			c.Error(apperr.Wrap(err))
		}
		return
	}

	rec, _ := h.Store.Get(id)
	c.JSON(http.StatusOK, gin.H{"record": h.Build(rec)})
}

type bulkRequest struct {
	IDs    []string `json:"ids" binding:"required,min=1"`
	Action string   `json:"action" binding:"required"`
}

// Bulk runs a best-effort, non-atomic bulk transition and reports the
// per-id outcome map.
func (h *Resource) Bulk(c *gin.Context) {
	var req bulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Invalid bulk payload.", validation.FromBindError(err, &req)))
		return
	}

	res := h.Workflow.BulkTransition(c.Request.Context(), req.IDs, req.Action, actor(c))
	c.JSON(http.StatusOK, gin.H{
		"results":   res.Results,
		"confirmed": res.Confirmed,
		"failed":    res.Failed,
	})
}

// EventLog returns the audit trail for one record (empty without a DB).
func (h *Resource) EventLog(c *gin.Context) {
	evs, err := h.Events.ForRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": evs})
}

func actor(c *gin.Context) string {
	if a := c.GetHeader("X-Actor"); a != "" {
		return a
	}
	return "staff"
}

func parseListQuery(c *gin.Context) (listing.FilterState, listing.SortState, listing.PageState) {
	f := listing.FilterState{
		Search: strings.TrimSpace(c.Query("q")),
		Tab:    strings.TrimSpace(c.Query("tab")),
		Fields: map[string]string{},
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		f.Fields["status"] = st
	}
	// arbitrary field filters: f_priority=high, f_farmingType=organic, ...
	for key, vals := range c.Request.URL.Query() {
		if !strings.HasPrefix(key, "f_") || len(vals) == 0 {
			continue
		}
		if name := key[len("f_"):]; name != "" {
			f.Fields[name] = vals[0]
		}
	}
	if t, err := time.Parse("2006-01-02", c.Query("start_date")); err == nil {
		f.DateFrom = t
	}
	if t, err := time.Parse("2006-01-02", c.Query("end_date")); err == nil {
		// inclusive end of day
		f.DateTo = t.Add(24*time.Hour - time.Second)
	}

	s := listing.SortState{
		Field: strings.TrimSpace(c.Query("sort")),
		Desc:  c.Query("dir") == "desc",
	}
	if s.Field == "" {
		s = listing.SortState{Field: "created_at", Desc: true}
	}

	p := listing.PageState{
		Page:     parseInt(c.Query("page"), 0),
		PageSize: parseInt(c.Query("page_size"), 10),
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
	return f, s, p
}

func parseInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return def
	}
	return n
}
