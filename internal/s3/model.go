package s3

// Image is an uploaded picture ready to be stored
type Image struct {
	// OwnerID is the record the image belongs to
	OwnerID string
	Kind    ImageKind
	Data    []byte

	// set by DetectImage
	ContentType string
	Extension   string
}

type ImageKind string

const (
	ImageKindProduct ImageKind = "products"
	ImageKindLogo    ImageKind = "logos"
)
