package response

import (
	"github.com/gin-gonic/gin"

	"github.com/Jamesakeluru/IHRIS/internal/shared/apperror"
)

// PageError is what templates render inside the error banner.
type PageError struct {
	Code    string
	Message string
}

// Render writes an HTML page from the named template.
func Render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	c.HTML(status, tmpl, data)
}

// RenderError re-renders the originating page with an error banner and the
// submitted form values so the user does not lose their input.
func RenderError(c *gin.Context, tmpl string, data gin.H, err error, form map[string]string) {
	httpErr := apperror.ToHTTP(err)
	if data == nil {
		data = gin.H{}
	}
	data["Error"] = PageError{Code: httpErr.Code, Message: httpErr.Message}
	data["Form"] = form
	c.HTML(httpErr.Status, tmpl, data)
}

// PostedValues snapshots the submitted form fields for re-display.
func PostedValues(c *gin.Context) map[string]string {
	_ = c.Request.ParseForm()
	values := make(map[string]string, len(c.Request.PostForm))
	for k := range c.Request.PostForm {
		values[k] = c.Request.PostForm.Get(k)
	}
	return values
}
