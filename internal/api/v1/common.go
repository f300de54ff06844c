package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/pointsclub/clubadmin/internal/action"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
)

// multipart bodies above this are spooled to disk by net/http
const maxFormMemory = 8 << 20

// bindInput reads the submitted record from a JSON body or an HTML form
func bindInput(c *gin.Context) (schema.Input, error) {
	switch c.ContentType() {
	case binding.MIMEJSON:
		return schema.FromJSON(c.Request.Body)
	case binding.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Could not read the submitted form").
				Mark(ierr.ErrValidation)
		}
	default:
		if err := c.Request.ParseForm(); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Could not read the submitted form").
				Mark(ierr.ErrValidation)
		}
	}
	return schema.FromForm(c.Request.PostForm), nil
}

func bindFilter(c *gin.Context) (*types.QueryFilter, error) {
	filter := types.NewDefaultQueryFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}
	return filter, nil
}

// readUpload returns the contents of the multipart "file" field
func readUpload(c *gin.Context) ([]byte, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Choose a file to upload").
			Mark(ierr.ErrValidation)
	}

	f, err := header.Open()
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Could not read the uploaded file").
			Mark(ierr.ErrValidation)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Could not read the uploaded file").
			Mark(ierr.ErrValidation)
	}
	return data, nil
}

// render writes the outcome of a create or update. Errors go to the error
// middleware; failed states are sent back to the form with 422.
func render[T any](c *gin.Context, status int, state *action.State[T], err error) {
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !state.Success {
		c.JSON(http.StatusUnprocessableEntity, state)
		return
	}
	c.JSON(status, state)
}

func respond[T any](c *gin.Context, data T, err error) {
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, data)
}
