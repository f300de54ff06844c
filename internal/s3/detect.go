package s3

import (
	"github.com/h2non/filetype"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// DetectImage sniffs the content of img and fills its content type and
// extension. Anything other than a common web image is rejected.
func DetectImage(img *Image) error {
	kind, err := filetype.Match(img.Data)
	if err != nil || !filetype.IsImage(img.Data) {
		return ierr.NewError("uploaded file is not an image").
			WithHint("The file must be a JPEG, PNG, GIF or WebP image").
			Mark(ierr.ErrValidation)
	}

	for _, allowed := range allowedImageTypes {
		if kind.MIME.Value == allowed {
			img.ContentType = kind.MIME.Value
			img.Extension = kind.Extension
			return nil
		}
	}

	return ierr.NewErrorf("unsupported image type %s", kind.MIME.Value).
		WithHint("The file must be a JPEG, PNG, GIF or WebP image").
		Mark(ierr.ErrValidation)
}
