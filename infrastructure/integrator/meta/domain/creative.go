package metadomain

type AdCreative struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	ImageURL        string           `json:"image_url"`
	ThumbnailURL    string           `json:"thumbnail_url"`
	ObjectStorySpec *ObjectStorySpec `json:"object_story_spec"`
}

type ObjectStorySpec struct {
	PageID    string     `json:"page_id"`
	LinkData  *LinkData  `json:"link_data"`
	VideoData *VideoData `json:"video_data"`
	PhotoData *PhotoData `json:"photo_data"`
}

type LinkData struct {
	Link    string `json:"link"`
	Picture string `json:"picture"`
}

type VideoData struct {
	VideoID  string `json:"video_id"`
	ImageURL string `json:"image_url"`
}

type PhotoData struct {
	URL string `json:"url"`
}

type AdCreativeList struct {
	Data []AdCreative `json:"data"`
}

// ImageRefs lista as imagens do criativo na ordem:
// image_url, link_data.picture, video_data.image_url, photo_data.url
func (c AdCreative) ImageRefs() []string {
	refs := make([]string, 0, 4)
	if c.ImageURL != "" {
		refs = append(refs, c.ImageURL)
	}

	spec := c.ObjectStorySpec
	if spec == nil {
		return refs
	}

	if spec.LinkData != nil && spec.LinkData.Picture != "" {
		refs = append(refs, spec.LinkData.Picture)
	}
	if spec.VideoData != nil && spec.VideoData.ImageURL != "" {
		refs = append(refs, spec.VideoData.ImageURL)
	}
	if spec.PhotoData != nil && spec.PhotoData.URL != "" {
		refs = append(refs, spec.PhotoData.URL)
	}

	return refs
}

// ImageURLs reduz uma lista de criativos às URLs de imagem, sem repetição e na ordem original
func ImageURLs(creatives []AdCreative) []string {
	images := make([]string, 0, len(creatives))
	seen := make(map[string]struct{}, len(creatives))

	for _, creative := range creatives {
		for _, url := range creative.ImageRefs() {
			if _, ok := seen[url]; ok {
				continue
			}
			seen[url] = struct{}{}
			images = append(images, url)
		}
	}

	return images
}

// FirstThumbnailURL retorna o primeiro thumbnail_url não vazio
func FirstThumbnailURL(creatives []AdCreative) string {
	for _, creative := range creatives {
		if creative.ThumbnailURL != "" {
			return creative.ThumbnailURL
		}
	}
	return ""
}
