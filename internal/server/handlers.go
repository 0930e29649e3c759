package server

import (
	"context"
	"encoding/json"
	"html"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/marcosmenezes/portfolio/internal/ui"
)

// page resolves the page addressed by the request cookie. When it has
// expired the client is asked to reload, which mounts a fresh one.
func (s *Server) page(c *gin.Context) (*ui.Page, bool) {
	id, err := c.Cookie(pageCookie)
	if err == nil {
		if page, ok := s.pages.Get(id); ok {
			return page, true
		}
	}
	c.Header("HX-Refresh", "true")
	c.Status(http.StatusNoContent)
	return nil, false
}

func (s *Server) handleIndex(c *gin.Context) {
	previous, _ := c.Cookie(pageCookie)
	page := s.pages.Mount(previous)
	s.metrics.PageMounts.Inc()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(pageCookie, page.ID(), 0, "/", "", false, true)
	c.HTML(http.StatusOK, "index.html", s.view(page))
}

// handleHeroStream sends the intro as server-sent events: "loaded" once
// the load delay has passed, "typed" with the escaped text after every
// reveal and "done" when the greeting is complete. The stream only reads
// page state; closing it does not stop the intro.
func (s *Server) handleHeroStream(c *gin.Context) {
	page, ok := s.page(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ctx := c.Request.Context()
	intro := page.Intro()
	var sent ui.IntroSnapshot
	for {
		snap, changed := intro.Snapshot()
		if snap.Loaded && !sent.Loaded {
			c.SSEvent("loaded", "true")
		}
		if snap.Text != sent.Text {
			c.SSEvent("typed", html.EscapeString(snap.Text))
		}
		sent = snap
		if snap.Loaded && snap.Done {
			c.SSEvent("done", "true")
			c.Writer.Flush()
			return
		}
		c.Writer.Flush()

		select {
		case <-changed:
		case <-ctx.Done():
			return
		}
	}
}

func (s *Server) handleToggleTheme(c *gin.Context) {
	page, ok := s.page(c)
	if !ok {
		return
	}
	page.ToggleTheme()
	s.metrics.ThemeToggles.Inc()
	c.HTML(http.StatusOK, "app", s.view(page))
}

// reportedOffset is a section offset measured by the browser. It is
// unattached when the client could not find the element.
type reportedOffset string

func (r reportedOffset) Offset() (int, bool) {
	if r == "" {
		return 0, false
	}
	top, err := strconv.ParseFloat(string(r), 64)
	if err != nil {
		return 0, false
	}
	return int(top), true
}

// hxScroller delivers scroll commands as an HX-Trigger response header,
// which the page script turns into window.scrollTo.
type hxScroller struct {
	c      *gin.Context
	issued bool
}

type scrollEvent struct {
	Top      int    `json:"top"`
	Behavior string `json:"behavior"`
}

func (h *hxScroller) ScrollTo(top int, behavior string) {
	payload, err := json.Marshal(map[string]scrollEvent{
		"portfolio:scroll": {Top: top, Behavior: behavior},
	})
	if err != nil {
		return
	}
	h.c.Header("HX-Trigger", string(payload))
	h.issued = true
}

func (s *Server) handleNavigate(c *gin.Context) {
	section, ok := ui.ParseSection(c.Param("section"))
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}

	scroller := &hxScroller{c: c}
	ui.Navigator{Scroller: scroller}.ScrollTo(reportedOffset(c.PostForm("offset")))
	s.metrics.ScrollRequests.WithLabelValues(string(section), strconv.FormatBool(scroller.issued)).Inc()
	c.Status(http.StatusNoContent)
}

func (s *Server) handleOpenProject(c *gin.Context) {
	page, ok := s.page(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNoContent)
		return
	}

	page.ActivateProject(id)
	s.metrics.ModalOpens.Inc()

	lookup, _ := page.ActiveProject(s.catalog)
	modal := newModalView(lookup)
	c.HTML(http.StatusOK, "modal", modalFragment{Theme: page.Theme(), Modal: &modal})
}

func (s *Server) handleCloseProject(c *gin.Context) {
	page, ok := s.page(c)
	if !ok {
		return
	}
	page.ClearActiveProject()
	c.String(http.StatusOK, "")
}

// redirectOpener turns an Open call into a redirect. Anchors that reach
// these routes use target="_blank", so the redirect lands in a new
// browsing context.
type redirectOpener struct {
	url string
}

func (r *redirectOpener) Open(url string) {
	r.url = url
}

func (s *Server) handleLink(c *gin.Context) {
	key := c.Param("key")
	opener := &redirectOpener{}

	switch key {
	case "email":
		s.links.OpenEmail(opener)
	case "location":
		s.links.OpenLocation(opener)
	default:
		s.links.OpenPlatform(opener, key)
	}
	s.dispatch(c, key, opener)
}

func (s *Server) handleProjectLink(c *gin.Context) {
	opener := &redirectOpener{}
	kind := ui.LinkKind(c.Param("kind"))
	key := "project:" + c.Param("id") + ":" + string(kind)

	if id, err := strconv.Atoi(c.Param("id")); err == nil {
		if lookup := s.catalog.Lookup(id); lookup.Found {
			ui.OpenProject(opener, lookup.Project, kind)
		}
	}
	s.dispatch(c, key, opener)
}

// dispatch finishes a link click: redirect when something was opened,
// otherwise an empty 204 so the browser stays put.
func (s *Server) dispatch(c *gin.Context, key string, opener *redirectOpener) {
	opened := opener.url != ""
	if !opened {
		// Unknown keys are not labelled individually.
		s.metrics.LinkDispatches.WithLabelValues("unknown", "false").Inc()
		c.Status(http.StatusNoContent)
		return
	}

	s.metrics.LinkDispatches.WithLabelValues(key, "true").Inc()
	url := opener.url
	go func() {
		if err := s.store.RecordLinkClick(context.Background(), key, url); err != nil {
			s.log.Error(err, "Error recording link click")
		}
	}()
	c.Redirect(http.StatusFound, url)
}
