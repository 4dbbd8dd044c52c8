package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/libshelf/catalog/internal/auth"
)

// PagesController serves the root redirect and the landing page.
type PagesController struct {
	sessions *auth.SessionManager
}

func NewPagesController(sessions *auth.SessionManager) *PagesController {
	return &PagesController{sessions: sessions}
}

// Root sends authenticated visitors to /index and everyone else to /login.
func (controller *PagesController) Root(c *gin.Context) {
	if controller.sessions.IsAuthenticated(c.Request) {
		c.Redirect(http.StatusFound, "/index")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// Index renders the landing page. The login gate runs before this handler.
func (controller *PagesController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":    "Library",
		"Username": controller.sessions.GetUsername(c.Request),
	})
}
