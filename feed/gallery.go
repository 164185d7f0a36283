package feed

import "github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"

// MaxGalleryPreview is how many images a gallery card shows before "+N".
const MaxGalleryPreview = 6

// GalleryPreview returns the image URLs to render and how many more the post
// claims to have beyond them.
func GalleryPreview(p domain.Post) ([]string, int) {
	if p.Kind != domain.KindGallery {
		return nil, 0
	}
	shown := min(MaxGalleryPreview, len(p.Images))
	remaining := p.TotalImageCount - shown
	if remaining < 0 {
		remaining = 0
	}
	return p.Images[:shown], remaining
}
